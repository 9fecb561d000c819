package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultExpiration is the session lifetime used when none is configured.
const DefaultExpiration = time.Hour

var (
	ErrMissingAuthHeader = errors.New("authorization header missing")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrInvalidToken      = errors.New("invalid token")
)

// Claims are the session claims carried by an identity JWT.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate session tokens.
type JWT struct {
	secretKey []byte
	exp       time.Duration
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the HMAC signing key.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) {
		j.secretKey = []byte(secret)
	}
}

// WithExpiration sets the session lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.exp = exp
	}
}

// New creates a new JWT instance
func New(opts ...Opt) *JWT {
	j := &JWT{exp: DefaultExpiration}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed session token for the user.
func (j *JWT) Generate(ctx context.Context, userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// GetClaims parses and verifies the token, returning its claims.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Validate reports whether the token is a valid, unexpired session token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetUserID returns the user id of a valid session token.
func (j *JWT) GetUserID(ctx context.Context, tokenString string) (int64, error) {
	claims, err := j.GetClaims(ctx, tokenString)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", ErrInvalidAuthHeader
	}

	return parts[1], nil
}
