package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-user-identity/internal/logger"
	"github.com/sbilibin2017/gw-user-identity/internal/metrics"
	"github.com/sbilibin2017/gw-user-identity/internal/models"
)

// Error variables
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserInactive       = errors.New("user is not active")
	ErrUnauthorized       = errors.New("unauthorized")
)

// JWTManager issues and parses session JWTs.
type JWTManager interface {
	Generate(ctx context.Context, userID int64) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// TokenIssuer issues and resolves access tokens.
type TokenIssuer interface {
	IssueToken(ctx context.Context, userID int64, typeCode string) (*models.AccessToken, error)
	FindByToken(ctx context.Context, tokenString string) (*models.AccessToken, error)
}

// AddressRecorder records the networks users connect from.
type AddressRecorder interface {
	AddAddressIfAbsent(ctx context.Context, userID int64, ip string) (*models.Network, error)
}

// AuthService handles login and request authentication.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	hasher   PasswordHasher
	tokens   TokenIssuer
	networks AddressRecorder
	jwt      JWTManager
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	hasher PasswordHasher,
	tokens TokenIssuer,
	networks AddressRecorder,
	jwt JWTManager,
) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		hasher:   hasher,
		tokens:   tokens,
		networks: networks,
		jwt:      jwt,
	}
}

// Login authenticates a user by username or email and password and returns a
// session JWT. With remember set it also issues a REMEMBER access token.
// remoteAddr, when not empty, is recorded as one of the user's networks.
func (svc *AuthService) Login(ctx context.Context, req models.LoginRequest, remoteAddr string) (*models.LoginResponse, error) {
	user, err := svc.findLogin(ctx, req.Login)
	if err != nil {
		logger.Log.Errorw("failed to get user", "login", req.Login, "err", err)
		metrics.RecordLogin(metrics.StatusError)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "login", req.Login)
		metrics.RecordLogin(metrics.StatusInvalid)
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		logger.Log.Errorw("inactive user tried to log in", "user_id", user.ID)
		metrics.RecordLogin(metrics.StatusInactive)
		return nil, ErrUserInactive
	}

	now := time.Now()
	if !user.HasPassword() || !svc.hasher.Verify(req.Password, *user.PasswordHash) {
		user.FailedLogins++
		user.LastFailedLogin = &now
		if err := svc.writer.Update(ctx, user); err != nil {
			logger.Log.Errorw("failed to record failed login", "user_id", user.ID, "err", err)
		}
		logger.Log.Errorw("invalid credentials", "user_id", user.ID, "failed_logins", user.FailedLogins)
		metrics.RecordLogin(metrics.StatusInvalid)
		return nil, ErrInvalidCredentials
	}

	user.FailedLogins = 0
	user.LastLogin = &now
	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to record login", "user_id", user.ID, "err", err)
		metrics.RecordLogin(metrics.StatusError)
		return nil, err
	}

	if remoteAddr != "" {
		if _, err := svc.networks.AddAddressIfAbsent(ctx, user.ID, remoteAddr); err != nil {
			logger.Log.Warnw("failed to record login network", "user_id", user.ID, "addr", remoteAddr, "err", err)
		}
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		metrics.RecordLogin(metrics.StatusError)
		return nil, err
	}

	resp := &models.LoginResponse{Token: token, User: user.ToPublic()}
	if req.Remember {
		remember, err := svc.tokens.IssueToken(ctx, user.ID, models.TokenTypeRemember)
		if err != nil {
			logger.Log.Errorw("failed to issue remember token", "user_id", user.ID, "err", err)
			metrics.RecordLogin(metrics.StatusError)
			return nil, err
		}
		resp.RememberToken = remember.Token
	}

	metrics.RecordLogin(metrics.StatusSuccess)
	return resp, nil
}

// Usernames are alphanumeric, so a login containing '@' can only be an email.
func (svc *AuthService) findLogin(ctx context.Context, login string) (*models.User, error) {
	if strings.Contains(login, "@") {
		return svc.reader.GetByEmail(ctx, login)
	}
	return svc.reader.GetByUsername(ctx, login)
}

// GetTokenFromRequest extracts the bearer token from the request.
func (svc *AuthService) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	return svc.jwt.GetTokenFromRequest(ctx, r)
}

// Authenticate resolves a bearer token to a user id. The token is either a
// session JWT or an unexpired API access token.
func (svc *AuthService) Authenticate(ctx context.Context, tokenString string) (int64, error) {
	userID, jwtErr := svc.jwt.GetUserID(ctx, tokenString)
	if jwtErr == nil {
		return userID, nil
	}

	token, err := svc.tokens.FindByToken(ctx, tokenString)
	if err != nil {
		return 0, err
	}
	if token == nil || token.TypeCode != models.TokenTypeAPI || token.IsExpired() {
		logger.Log.Debugw("bearer token rejected", "jwt_err", jwtErr)
		return 0, ErrUnauthorized
	}
	return token.UserID, nil
}
