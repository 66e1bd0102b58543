package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/kioracare/kiora-backend/internal/pkg/database"
	"github.com/kioracare/kiora-backend/internal/pkg/middleware"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	adminhttp "github.com/kioracare/kiora-backend/services/admin/handler/http"
	"github.com/kioracare/kiora-backend/services/admin/repository"
	"github.com/kioracare/kiora-backend/services/admin/usecase"
	leadmocks "github.com/kioracare/kiora-backend/services/leads/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAdminServer(t *testing.T, submissionRepo *leadmocks.MockSubmissionRepo) *echo.Echo {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &models.Config{
		JWT:   models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "kiora-api"},
		Admin: models.AdminConfig{Username: "admin", Password: "s3cret"},
	}

	adminUC, err := usecase.NewAdminUC(repository.NewSessionRepo(&database.RedisClient{Client: client}), submissionRepo, cfg)
	require.NoError(t, err)

	e := echo.New()
	e.HTTPErrorHandler = middleware.HTTPErrorHandler
	NewHandler(adminhttp.NewAdminHandler(adminUC), adminUC).RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAdminSessionFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submissionRepo := leadmocks.NewMockSubmissionRepo(ctrl)
	e := setupAdminServer(t, submissionRepo)

	rec := doRequest(e, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"s3cret"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var auth models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &auth))
	require.True(t, auth.Success)
	require.NotEmpty(t, auth.Token)

	submissionRepo.EXPECT().
		List(gomock.Any(), models.SubmissionQuery{FormType: models.FormTypeScheduleTest, Limit: 50}).
		Return([]*models.Submission{{ID: 1, FormType: models.FormTypeScheduleTest}}, nil)

	rec = doRequest(e, http.MethodGet, "/api/admin/submissions?form_type=schedule-test", "", auth.Token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/admin/logout", "", auth.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/api/admin/submissions?form_type=schedule-test", "", auth.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestAdminRoutes_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := setupAdminServer(t, leadmocks.NewMockSubmissionRepo(ctrl))

	testCases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic YWRtaW46czNjcmV0"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/submissions?form_type=contact", nil)
			if tc.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tc.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestAdminRoutes_BadLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := setupAdminServer(t, leadmocks.NewMockSubmissionRepo(ctrl))

	rec := doRequest(e, http.MethodPost, "/api/admin/login", `{"username":"admin","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid credentials"}`, rec.Body.String())
}
