package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/go-resty/resty/v2"
)

// Config configures [NewHTTPRegistryAdapter].
type Config struct {
	// Address is a base URL or a bare "host:port" (http is assumed).
	Address string
	Token   string
	Timeout time.Duration
}

type httpRegistryAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRegistryAdapter normalises cfg.Address and builds a resty-backed
// [RegistryAdapter]. It fails for an empty or unparsable address.
func NewHTTPRegistryAdapter(cfg Config, logger *logger.Logger) (RegistryAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpRegistryAdapter{
		client: utils.NewAPIClient(baseURL, cfg.Timeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
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

func (h *httpRegistryAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRegistryAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRegistryAdapter) List(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&users).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpRegistryAdapter) Get(ctx context.Context, id int64) (models.User, error) {
	return h.getUser(ctx, "/api/users/{id}", "id", strconv.FormatInt(id, 10))
}

func (h *httpRegistryAdapter) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return h.getUser(ctx, "/api/users/email/{email}", "email", email)
}

func (h *httpRegistryAdapter) ListByDepartment(ctx context.Context, department string) ([]models.User, error) {
	var users []models.User

	resp, err := h.authedRequest(ctx).
		SetPathParam("department", department).
		SetResult(&users).
		Get("/api/users/department/{department}")
	if err != nil {
		return nil, fmt.Errorf("list department request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpRegistryAdapter) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&user).
		Post("/api/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.logger.Debug().Str("location", resp.Header().Get("Location")).Msg("user created")
	return user, nil
}

func (h *httpRegistryAdapter) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(req).
		SetResult(&user).
		Put("/api/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpRegistryAdapter) Delete(ctx context.Context, id int64) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&user).
		Delete("/api/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("delete user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpRegistryAdapter) Health(ctx context.Context) (models.DetailedHealthResponse, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/health/detailed")
	if err != nil {
		return models.DetailedHealthResponse{}, fmt.Errorf("health request: %w", err)
	}

	var health models.DetailedHealthResponse
	decodeErr := json.Unmarshal(resp.Body(), &health)

	if resp.StatusCode() == http.StatusServiceUnavailable && decodeErr == nil {
		return health, fmt.Errorf("%w: storage %s", ErrServiceUnavailable, health.Storage.Status)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DetailedHealthResponse{}, err
	}
	if decodeErr != nil {
		return models.DetailedHealthResponse{}, fmt.Errorf("decode health response: %w", decodeErr)
	}

	return health, nil
}

func (h *httpRegistryAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpRegistryAdapter) getUser(ctx context.Context, path, param, value string) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetPathParam(param, value).
		SetResult(&user).
		Get(path)
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpRegistryAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
