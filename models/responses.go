package models

// AreaPage is the envelope returned by the paginated listing endpoint.
//
// NoAreas distinguishes "the user has no areas at all" from "this page is past
// the end of the result set"; the engine turns the former into its first-page
// failure signal.
type AreaPage struct {
	Items   []Area `json:"items"`
	NoAreas bool   `json:"no_areas"`
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	Total   int    `json:"total"`
}
