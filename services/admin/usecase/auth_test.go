package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/kioracare/kiora-backend/internal/pkg/jwt"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	"github.com/kioracare/kiora-backend/services/admin"
	"github.com/kioracare/kiora-backend/services/admin/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test-issuer",
		},
		Admin: models.AdminConfig{
			Username: "admin",
			Password: "s3cret",
		},
	}
}

func newTestUC(t *testing.T, sessionRepo admin.SessionRepo, cfg *models.Config) *AdminUC {
	uc, err := NewAdminUC(sessionRepo, nil, cfg)
	require.NoError(t, err)
	return uc
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
	uc := newTestUC(t, mockSessionRepo, testConfig())

	var saved *models.AdminSession
	mockSessionRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any(), time.Hour).DoAndReturn(
		func(_ context.Context, session *models.AdminSession, _ time.Duration) error {
			saved = session
			return nil
		})

	resp, err := uc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "s3cret"})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), resp.ExpiresAt, 5)

	claims, err := jwt.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, claims.ID, saved.ID)
	assert.Equal(t, "admin", saved.Username)
}

func TestLogin_WithPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Admin.Password = ""
	cfg.Admin.PasswordHash = string(hash)
	uc := newTestUC(t, nil, cfg)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "hashed-pass"})

	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	testCases := []struct {
		name string
		cfg  func() *models.Config
		req  models.LoginRequest
	}{
		{
			name: "wrong password",
			cfg:  testConfig,
			req:  models.LoginRequest{Username: "admin", Password: "nope"},
		},
		{
			name: "wrong username",
			cfg:  testConfig,
			req:  models.LoginRequest{Username: "root", Password: "s3cret"},
		},
		{
			name: "missing fields",
			cfg:  testConfig,
			req:  models.LoginRequest{},
		},
		{
			name: "no password configured",
			cfg: func() *models.Config {
				cfg := testConfig()
				cfg.Admin.Password = ""
				return cfg
			},
			req: models.LoginRequest{Username: "admin", Password: ""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := newTestUC(t, mocks.NewMockSessionRepo(ctrl), tc.cfg())

			resp, err := uc.Login(context.Background(), &tc.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, models.ErrInvalidCredentials)
		})
	}
}

func TestLogin_SessionStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
	uc := newTestUC(t, mockSessionRepo, testConfig())

	mockSessionRepo.EXPECT().SaveSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	resp, err := uc.Login(context.Background(), &models.LoginRequest{Username: "admin", Password: "s3cret"})

	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestVerifyToken(t *testing.T) {
	cfg := testConfig()
	token, claims, err := jwt.GenerateToken("admin", cfg.JWT)
	require.NoError(t, err)

	t.Run("active session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
		mockSessionRepo.EXPECT().SessionExists(gomock.Any(), claims.ID).Return(true, nil)
		uc := newTestUC(t, mockSessionRepo, cfg)

		session, err := uc.VerifyToken(context.Background(), token)

		require.NoError(t, err)
		assert.Equal(t, claims.ID, session.ID)
		assert.Equal(t, "admin", session.Username)
	})

	t.Run("revoked session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
		mockSessionRepo.EXPECT().SessionExists(gomock.Any(), claims.ID).Return(false, nil)
		uc := newTestUC(t, mockSessionRepo, cfg)

		_, err := uc.VerifyToken(context.Background(), token)
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})

	t.Run("session store unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
		mockSessionRepo.EXPECT().SessionExists(gomock.Any(), claims.ID).Return(false, errors.New("redis down"))
		uc := newTestUC(t, mockSessionRepo, cfg)

		_, err := uc.VerifyToken(context.Background(), token)
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})

	t.Run("without redis", func(t *testing.T) {
		uc := newTestUC(t, nil, cfg)

		session, err := uc.VerifyToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "admin", session.Username)
	})

	t.Run("bad signature", func(t *testing.T) {
		other := testConfig()
		other.JWT.Secret = "other-secret"
		uc := newTestUC(t, nil, other)

		_, err := uc.VerifyToken(context.Background(), token)
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expiredCfg := cfg.JWT
		expiredCfg.Expiration = -1
		expired, _, err := jwt.GenerateToken("admin", expiredCfg)
		require.NoError(t, err)

		uc := newTestUC(t, nil, cfg)
		_, err = uc.VerifyToken(context.Background(), expired)
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})

	t.Run("different admin", func(t *testing.T) {
		other, _, err := jwt.GenerateToken("intruder", cfg.JWT)
		require.NoError(t, err)

		uc := newTestUC(t, nil, cfg)
		_, err = uc.VerifyToken(context.Background(), other)
		assert.ErrorIs(t, err, models.ErrInvalidToken)
	})
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
	uc := newTestUC(t, mockSessionRepo, testConfig())

	mockSessionRepo.EXPECT().DeleteSession(gomock.Any(), "jti-1").Return(nil)

	assert.NoError(t, uc.Logout(context.Background(), &models.AdminSession{ID: "jti-1", Username: "admin"}))
}

func TestLogout_WithoutRedis(t *testing.T) {
	uc := newTestUC(t, nil, testConfig())

	assert.NoError(t, uc.Logout(context.Background(), &models.AdminSession{ID: "jti-1"}))
}
