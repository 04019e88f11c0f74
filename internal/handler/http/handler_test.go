package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/mock"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestHandler creates a development-mode Handler with a nop logger and
// a fixed clock.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services == nil {
		services = &service.Services{}
	}

	h := NewHandler(services, config.Defaults().App, logger.Nop())
	h.now = func() time.Time { return fixedNow }
	return h
}

type testServices struct {
	users   *mock.MockUserService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

func newMockServices(t *testing.T) (*service.Services, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := testServices{
		users:   mock.NewMockUserService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	return &service.Services{
		UserService:    m.users,
		AuthService:    m.auth,
		AppInfoService: m.appInfo,
	}, m
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp
}

func TestNewHandler_AppliesAppConfig(t *testing.T) {
	svc := &service.Services{}

	dev := NewHandler(svc, config.App{Environment: config.EnvironmentDevelopment, AuthExemptPaths: []string{"/health"}}, logger.Nop())
	prod := NewHandler(svc, config.App{Environment: config.EnvironmentProduction}, logger.Nop())

	assert.Same(t, svc, dev.services)
	assert.False(t, dev.production)
	assert.Equal(t, []string{"/health"}, dev.exemptPaths)
	assert.True(t, prod.production)
	assert.NotNil(t, prod.now)
}
