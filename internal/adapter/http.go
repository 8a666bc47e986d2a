package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-area-keeper/internal/config"
	"github.com/MKhiriev/go-area-keeper/internal/logger"
	"github.com/MKhiriev/go-area-keeper/internal/utils"
	"github.com/MKhiriev/go-area-keeper/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [AreaServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (AreaServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [AreaServerAdapter]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [AreaServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [AreaServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, mapTransportError("register", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return user, nil
}

// Login implements [AreaServerAdapter]. It POSTs the credentials to
// POST /api/auth/login, stores the bearer token from the Authorization
// response header via SetToken, and returns the server-side user record.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&foundUser).
		Post("/api/auth/login")
	if err != nil {
		return user, mapTransportError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return user, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return user, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return foundUser, nil
}

// GetCategories implements [AreaServerAdapter]. It GETs /api/categories and
// decodes the response into a [models.CategoryMap]. Requires a valid bearer
// token.
func (h *httpServerAdapter) GetCategories(ctx context.Context) (models.CategoryMap, error) {
	resp, err := h.authedRequest(ctx).Get("/api/categories")
	if err != nil {
		return nil, mapTransportError("get categories", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var categories models.CategoryMap
	if err = json.Unmarshal(resp.Body(), &categories); err != nil {
		return nil, fmt.Errorf("decode categories response: %w", err)
	}

	return categories, nil
}

// GetAreas implements [AreaServerAdapter]. It GETs /api/areas with page,
// limit, and optional search query parameters and decodes the paginated
// envelope. Requires a valid bearer token.
func (h *httpServerAdapter) GetAreas(ctx context.Context, page, limit int, search string) (models.AreaPage, error) {
	req := h.authedRequest(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(limit))
	if search != "" {
		req.SetQueryParam("search", search)
	}

	resp, err := req.Get("/api/areas")
	if err != nil {
		return models.AreaPage{}, mapTransportError("get areas", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AreaPage{}, err
	}

	var areaPage models.AreaPage
	if err = json.Unmarshal(resp.Body(), &areaPage); err != nil {
		return models.AreaPage{}, fmt.Errorf("decode areas page response: %w", err)
	}

	return areaPage, nil
}

// GetArea implements [AreaServerAdapter]. It GETs /api/areas/{id}. Requires a
// valid bearer token. Returns [ErrNotFound] (wrapped) on HTTP 404.
func (h *httpServerAdapter) GetArea(ctx context.Context, id string) (models.Area, error) {
	var area models.Area

	resp, err := h.authedRequest(ctx).
		SetResult(&area).
		Get("/api/areas/" + url.PathEscape(id))
	if err != nil {
		return models.Area{}, mapTransportError("get area", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Area{}, err
	}

	return area, nil
}

// CreateArea implements [AreaServerAdapter]. It POSTs the area fields to
// POST /api/areas and returns the canonical server record with the assigned
// identifier. Requires a valid bearer token.
func (h *httpServerAdapter) CreateArea(ctx context.Context, area models.Area) (models.Area, error) {
	var created models.Area

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(area).
		SetResult(&created).
		Post("/api/areas")
	if err != nil {
		return models.Area{}, mapTransportError("create area", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Area{}, err
	}

	return created, nil
}

// UpdateArea implements [AreaServerAdapter]. It PATCHes /api/areas/{id} with
// the partial update and returns the canonical record. Requires a valid
// bearer token.
func (h *httpServerAdapter) UpdateArea(ctx context.Context, id string, patch models.AreaPatch) (models.Area, error) {
	var updated models.Area

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&updated).
		Patch("/api/areas/" + url.PathEscape(id))
	if err != nil {
		return models.Area{}, mapTransportError("update area", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Area{}, err
	}

	return updated, nil
}

// DeleteArea implements [AreaServerAdapter]. It sends DELETE
// /api/areas/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteArea(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/areas/" + url.PathEscape(id))
	if err != nil {
		return mapTransportError("delete area", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
