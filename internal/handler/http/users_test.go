package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/internal/validators"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "admin_alice_01"

func newUsersRouter(t *testing.T) (http.Handler, testServices) {
	t.Helper()
	svcs, m := newMockServices(t)
	svcs.AuthService = service.NewAuthService(logger.Nop())
	return newTestHandler(t, svcs).Init(), m
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func sampleUser(id int64) models.User {
	hireDate, _ := models.ParseDate("2024-02-01")
	return models.User{
		ID:         id,
		FirstName:  "Sarah",
		LastName:   "Wilson",
		Email:      "sarah.wilson@techhive.com",
		Department: "Engineering",
		Position:   "Developer",
		HireDate:   hireDate,
		Active:     true,
		CreatedAt:  fixedNow,
	}
}

func TestListUsers(t *testing.T) {
	router, m := newUsersRouter(t)
	m.users.EXPECT().ListActive(gomock.Any()).Return([]models.User{sampleUser(1), sampleUser(2)}, nil)

	rr := doRequest(router, http.MethodGet, "/api/users", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var users []models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	assert.Len(t, users, 2)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestListUsers_EmptyIsArray(t *testing.T) {
	router, m := newUsersRouter(t)
	m.users.EXPECT().ListActive(gomock.Any()).Return([]models.User{}, nil)

	rr := doRequest(router, http.MethodGet, "/api/users", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestGetUser(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(m testServices)
		wantStatus int
	}{
		{
			name: "found",
			path: "/api/users/7",
			setup: func(m testServices) {
				m.users.EXPECT().GetByID(gomock.Any(), int64(7)).Return(sampleUser(7), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/users/99",
			setup: func(m testServices) {
				m.users.EXPECT().GetByID(gomock.Any(), int64(99)).
					Return(models.User{}, fmt.Errorf("%w: id 99", service.ErrUserNotFound))
			},
			wantStatus: http.StatusNotFound,
		},
		{name: "non-numeric id", path: "/api/users/abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/api/users/0", wantStatus: http.StatusBadRequest},
		{name: "negative id", path: "/api/users/-3", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newUsersRouter(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			rr := doRequest(router, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantStatus != http.StatusOK {
				resp := decodeErrorResponse(t, rr)
				assert.Equal(t, http.StatusText(tt.wantStatus), resp.Error)
				assert.NotEmpty(t, resp.CorrelationID)
				assert.Equal(t, rr.Header().Get(traceIDHeader), resp.CorrelationID)
				assert.True(t, fixedNow.Equal(resp.Timestamp))
			}
		})
	}
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("found with encoded email", func(t *testing.T) {
		router, m := newUsersRouter(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "sarah.wilson@techhive.com").Return(sampleUser(3), nil)

		rr := doRequest(router, http.MethodGet, "/api/users/email/sarah.wilson%40techhive.com", "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, m := newUsersRouter(t)
		m.users.EXPECT().GetByEmail(gomock.Any(), "nobody@techhive.com").Return(models.User{}, service.ErrUserNotFound)

		rr := doRequest(router, http.MethodGet, "/api/users/email/nobody@techhive.com", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("blank email", func(t *testing.T) {
		router, _ := newUsersRouter(t)

		rr := doRequest(router, http.MethodGet, "/api/users/email/%20%20", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListUsersByDepartment(t *testing.T) {
	t.Run("matches", func(t *testing.T) {
		router, m := newUsersRouter(t)
		m.users.EXPECT().GetByDepartment(gomock.Any(), "Human Resources").Return([]models.User{sampleUser(1)}, nil)

		rr := doRequest(router, http.MethodGet, "/api/users/department/Human%20Resources", "")

		require.Equal(t, http.StatusOK, rr.Code)
		var users []models.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
		assert.Len(t, users, 1)
	})

	t.Run("blank department", func(t *testing.T) {
		router, _ := newUsersRouter(t)

		rr := doRequest(router, http.MethodGet, "/api/users/department/%20", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCreateUser(t *testing.T) {
	body := `{"firstName":"Sarah","lastName":"Wilson","email":"Sarah.Wilson@TechHive.com",` +
		`"department":"Engineering","position":"Developer","hireDate":"2024-02-01"}`

	t.Run("created with location", func(t *testing.T) {
		router, m := newUsersRouter(t)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req models.CreateUserRequest) (models.User, error) {
				assert.Equal(t, "Sarah.Wilson@TechHive.com", req.Email)
				return sampleUser(6), nil
			})

		rr := doRequest(router, http.MethodPost, "/api/users", body)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "/api/users/6", rr.Header().Get("Location"))
		var user models.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
		assert.Equal(t, int64(6), user.ID)
		assert.True(t, user.Active)
	})

	t.Run("validation failure lists every message", func(t *testing.T) {
		router, m := newUsersRouter(t)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.User{}, &validators.ValidationError{
			Messages: []string{"First name is required", "Email must be a valid email address"},
		})

		rr := doRequest(router, http.MethodPost, "/api/users", `{"lastName":"Wilson"}`)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		resp := decodeErrorResponse(t, rr)
		assert.Equal(t, "Validation Failed", resp.Error)
		assert.Equal(t, []string{"First name is required", "Email must be a valid email address"}, resp.Errors)
		assert.Nil(t, resp.Details)
	})

	t.Run("duplicate email", func(t *testing.T) {
		router, m := newUsersRouter(t)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(models.User{}, fmt.Errorf("%w: %s", store.ErrEmailAlreadyExists, "sarah.wilson@techhive.com"))

		rr := doRequest(router, http.MethodPost, "/api/users", body)

		require.Equal(t, http.StatusConflict, rr.Code)
		resp := decodeErrorResponse(t, rr)
		assert.Equal(t, "Conflict", resp.Error)
		assert.Contains(t, resp.Message, "sarah.wilson@techhive.com")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		router, _ := newUsersRouter(t)

		rr := doRequest(router, http.MethodPost, "/api/users", `{"firstName":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		router, _ := newUsersRouter(t)

		rr := doRequest(router, http.MethodPost, "/api/users", "")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateUser(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		err        error
		expectCall bool
		wantStatus int
	}{
		{name: "updated", path: "/api/users/4", body: `{"position":"Lead"}`, expectCall: true, wantStatus: http.StatusOK},
		{name: "not found", path: "/api/users/4", body: `{"position":"Lead"}`, err: service.ErrUserNotFound, expectCall: true, wantStatus: http.StatusNotFound},
		{name: "email conflict", path: "/api/users/4", body: `{"email":"jane.smith@techhive.com"}`, err: store.ErrEmailAlreadyExists, expectCall: true, wantStatus: http.StatusConflict},
		{name: "validation", path: "/api/users/4", body: `{"firstName":""}`, err: &validators.ValidationError{Messages: []string{"First name is required"}}, expectCall: true, wantStatus: http.StatusBadRequest},
		{name: "bad id", path: "/api/users/x", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "bad body", path: "/api/users/4", body: `[`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newUsersRouter(t)
			if tt.expectCall {
				user := sampleUser(4)
				user.Position = "Lead"
				m.users.EXPECT().Update(gomock.Any(), int64(4), gomock.Any()).Return(user, tt.err)
			}

			rr := doRequest(router, http.MethodPut, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestDeleteUser(t *testing.T) {
	t.Run("returns the deactivated record", func(t *testing.T) {
		router, m := newUsersRouter(t)
		deleted := sampleUser(5)
		deleted.Active = false
		deleted.UpdatedAt = &fixedNow
		m.users.EXPECT().SoftDelete(gomock.Any(), int64(5)).Return(deleted, nil)

		rr := doRequest(router, http.MethodDelete, "/api/users/5", "")

		require.Equal(t, http.StatusOK, rr.Code)
		var user models.User
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
		assert.False(t, user.Active)
		require.NotNil(t, user.UpdatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		router, m := newUsersRouter(t)
		m.users.EXPECT().SoftDelete(gomock.Any(), int64(5)).Return(models.User{}, service.ErrUserNotFound)

		rr := doRequest(router, http.MethodDelete, "/api/users/5", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUnexpectedError(t *testing.T) {
	boom := errors.New("connection reset by peer")

	t.Run("development includes details", func(t *testing.T) {
		router, m := newUsersRouter(t)
		m.users.EXPECT().ListActive(gomock.Any()).Return(nil, boom)

		rr := doRequest(router, http.MethodGet, "/api/users", "")

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		resp := decodeErrorResponse(t, rr)
		assert.Equal(t, "Internal Server Error", resp.Error)
		assert.Equal(t, "An unexpected error occurred", resp.Message)
		require.NotNil(t, resp.Details)
		assert.Equal(t, "*errors.errorString", resp.Details.Type)
		assert.NotEmpty(t, resp.Details.Stack)
	})

	t.Run("production hides details", func(t *testing.T) {
		svcs, m := newMockServices(t)
		svcs.AuthService = service.NewAuthService(logger.Nop())
		h := newTestHandler(t, svcs)
		h.production = true
		m.users.EXPECT().ListActive(gomock.Any()).Return(nil, boom)

		rr := doRequest(h.Init(), http.MethodGet, "/api/users", "")

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		resp := decodeErrorResponse(t, rr)
		assert.Nil(t, resp.Details)
		assert.NotContains(t, rr.Body.String(), "connection reset")
	})
}
