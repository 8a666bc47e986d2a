package models

// CategoryMap is the static reference mapping of category codes to display
// text. It is fetched from the server once, cached locally, and treated as
// read-only afterwards.
type CategoryMap map[string]string

// Text returns the display text for code and whether the code is known.
func (m CategoryMap) Text(code string) (string, bool) {
	text, ok := m[code]
	return text, ok
}
