package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)

	userID, err := j.GetUserID(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestJWT_DefaultExpiration(t *testing.T) {
	j := New(WithSecretKey("s"))
	claims, err := j.GetClaims(context.Background(), mustGenerate(t, j, 1))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultExpiration), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute)) // already expired
	ctx := context.Background()

	token := mustGenerate(t, j, 7)

	err := j.Validate(ctx, token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)

	userID, err := j.GetUserID(ctx, token)
	assert.Error(t, err)
	assert.Zero(t, userID)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	assert.Error(t, j.Validate(ctx, "invalid.token.string"))

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_MissingUserID(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	token := mustGenerate(t, j, 0)

	_, err := j.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_RejectsOtherSigningMethod(t *testing.T) {
	j := New(WithSecretKey("secret"))
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.Error(t, j.Validate(context.Background(), unsigned))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectedErr   error
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", nil},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", nil},
		{"NoHeader", "", "", ErrMissingAuthHeader},
		{"InvalidFormat", "Token mytoken123", "", ErrInvalidAuthHeader},
		{"TooManyParts", "Bearer a b c", "", ErrInvalidAuthHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestJWT_Validate_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))

	token := mustGenerate(t, j1, 1)

	assert.Error(t, j2.Validate(context.Background(), token))
}

func mustGenerate(t *testing.T, j *JWT, userID int64) string {
	t.Helper()
	token, err := j.Generate(context.Background(), userID)
	require.NoError(t, err)
	return token
}
