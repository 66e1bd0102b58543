package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/kioracare/kiora-backend/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "kiora-test",
	}
}

func TestGenerateToken(t *testing.T) {
	config := getTestConfig()

	beforeGeneration := time.Now()
	tokenString, claims, err := GenerateToken("admin", config)
	afterGeneration := time.Now()

	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "kiora-test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)

	assert.GreaterOrEqual(t, claims.ExpiresAt.Unix(), beforeGeneration.Add(time.Hour).Unix())
	assert.LessOrEqual(t, claims.ExpiresAt.Unix(), afterGeneration.Add(time.Hour).Unix())

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Secret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "HS256", token.Header["alg"])
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	_, first, err := GenerateToken("admin", getTestConfig())
	require.NoError(t, err)
	_, second, err := GenerateToken("admin", getTestConfig())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestValidateToken(t *testing.T) {
	config := getTestConfig()

	validToken, issued, err := GenerateToken("admin", config)
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
		secret      string
		expectError bool
		setupToken  func() string
	}{
		{
			name:        "Valid token",
			tokenString: validToken,
			secret:      config.Secret,
		},
		{
			name:        "Invalid secret",
			tokenString: validToken,
			secret:      "wrong-secret",
			expectError: true,
		},
		{
			name:        "Malformed token",
			tokenString: "invalid.token.string",
			secret:      config.Secret,
			expectError: true,
		},
		{
			name:        "Empty token",
			tokenString: "",
			secret:      config.Secret,
			expectError: true,
		},
		{
			name: "Expired token",
			setupToken: func() string {
				expired := config
				expired.Expiration = -1
				token, _, _ := GenerateToken("admin", expired)
				return token
			},
			secret:      config.Secret,
			expectError: true,
		},
		{
			name: "Unsigned token",
			setupToken: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
					Username: "admin",
					RegisteredClaims: jwt.RegisteredClaims{
						ID:        "jti",
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				})
				s, _ := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				return s
			},
			secret:      config.Secret,
			expectError: true,
		},
		{
			name: "Token without identity",
			setupToken: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				})
				s, _ := token.SignedString([]byte(config.Secret))
				return s
			},
			secret:      config.Secret,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenToTest := tt.tokenString
			if tt.setupToken != nil {
				tokenToTest = tt.setupToken()
			}

			claims, err := ValidateToken(tokenToTest, tt.secret)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "admin", claims.Username)
				assert.Equal(t, issued.ID, claims.ID)
				assert.Equal(t, config.Issuer, claims.Issuer)
			}
		})
	}
}

func BenchmarkValidateToken(b *testing.B) {
	config := getTestConfig()

	tokenString, _, err := GenerateToken("admin", config)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ValidateToken(tokenString, config.Secret)
	}
}
