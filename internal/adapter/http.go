package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/beatfluencer/beatfluencer-api/internal/config"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/utils"
	"github.com/beatfluencer/beatfluencer-api/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs the REST implementation of [APIAdapter].
// The base URL is taken from cfg.HTTPAddress; a missing scheme defaults to
// http. Returns an error if the address is empty or not a valid URL.
func NewHTTPAPIAdapter(cfg config.Adapter, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpAPIAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
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

func (h *httpAPIAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login POSTs the credentials to /api/auth/login and stores the returned
// access token.
func (h *httpAPIAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/api/auth/login")
	if err != nil {
		return out, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return out, err
	}

	if out.AccessToken == "" {
		return out, fmt.Errorf("login response carries no access token")
	}

	h.SetToken(out.AccessToken)
	h.logger.Debug().Str("email", out.User.Email).Msg("logged in")
	return out, nil
}

func (h *httpAPIAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User
	err := h.getJSON(ctx, "/api/auth/me", nil, &user)
	return user, err
}

func (h *httpAPIAdapter) ListInfluencers(ctx context.Context, query models.InfluencerListQuery) ([]models.Influencer, error) {
	params := url.Values{}
	setIfNotEmpty(params, "status", query.Status)
	setIfNotEmpty(params, "category", query.Category)
	setIfNotEmpty(params, "platform", query.Platform)

	var infs []models.Influencer
	err := h.getJSON(ctx, "/api/influencers", params, &infs)
	return infs, err
}

func (h *httpAPIAdapter) GetInfluencer(ctx context.Context, id string) (models.Influencer, error) {
	var inf models.Influencer
	err := h.getJSON(ctx, "/api/influencers/"+url.PathEscape(id), nil, &inf)
	return inf, err
}

func (h *httpAPIAdapter) SearchInfluencers(ctx context.Context, query models.InfluencerSearchQuery) ([]models.Influencer, error) {
	params := url.Values{}
	setIfNotEmpty(params, "q", query.Q)
	setIfNotEmpty(params, "platform", query.Platform)
	setIfNotEmpty(params, "category", query.Category)
	setIfNotEmpty(params, "gender", query.Gender)
	setIfNotEmpty(params, "division", query.Division)
	if query.MinFollowers > 0 {
		params.Set("min_followers", strconv.FormatInt(query.MinFollowers, 10))
	}
	if query.MaxFollowers > 0 {
		params.Set("max_followers", strconv.FormatInt(query.MaxFollowers, 10))
	}
	if query.MinAge > 0 {
		params.Set("min_age", strconv.Itoa(query.MinAge))
	}
	if query.MaxAge > 0 {
		params.Set("max_age", strconv.Itoa(query.MaxAge))
	}

	var infs []models.Influencer
	err := h.getJSON(ctx, "/api/search/influencers", params, &infs)
	return infs, err
}

func (h *httpAPIAdapter) CheckSocialURL(ctx context.Context, socialURL string) (bool, error) {
	var out models.URLCheckResponse
	err := h.getJSON(ctx, "/api/influencers/check-url", url.Values{"url": {socialURL}}, &out)
	return out.Exists, err
}

func (h *httpAPIAdapter) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	err := h.getJSON(ctx, "/api/brands", nil, &brands)
	return brands, err
}

func (h *httpAPIAdapter) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := h.getJSON(ctx, "/api/campaigns", nil, &campaigns)
	return campaigns, err
}

// Version GETs /api/version, which answers with plain text.
func (h *httpAPIAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpAPIAdapter) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req := h.authedRequest(ctx).SetResult(out)
	if len(params) > 0 {
		req.SetQueryParamsFromValues(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func setIfNotEmpty(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}
