package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-user-identity/internal/logger"
	"github.com/sbilibin2017/gw-user-identity/internal/metrics"
	"github.com/sbilibin2017/gw-user-identity/internal/models"
	"github.com/sbilibin2017/gw-user-identity/internal/repositories"
)

// tokenBytes is the amount of random data behind every access token.
const tokenBytes = 32

// Error variables
var (
	ErrTokenAlreadyExists = fmt.Errorf("%w: access token already exists", repositories.ErrConflict)
	ErrUnknownTokenType   = errors.New("unknown access token type")
)

// AccessTokenReader defines read-only operations for access tokens.
type AccessTokenReader interface {
	GetByUserAndType(ctx context.Context, userID int64, typeCode string) (*models.AccessToken, error)
	GetByToken(ctx context.Context, token string) (*models.AccessToken, error)
	ListByUser(ctx context.Context, userID int64) ([]models.AccessToken, error)
}

// AccessTokenWriter defines write operations for access tokens.
type AccessTokenWriter interface {
	Create(ctx context.Context, token *models.AccessToken) error
	Update(ctx context.Context, token *models.AccessToken) error
	DeleteByUser(ctx context.Context, userID int64) ([]string, error)
}

// AccessTokenTypeReader resolves access token types.
type AccessTokenTypeReader interface {
	GetByCode(ctx context.Context, code string) (*models.AccessTokenType, error)
}

// AccessTokenCache caches token lookups by token string.
type AccessTokenCache interface {
	Get(ctx context.Context, token string) (*models.AccessToken, error)
	Set(ctx context.Context, token *models.AccessToken) error
	Delete(ctx context.Context, tokens ...string) error
}

// TokenService issues, finds and expires access tokens. A user holds at most
// one token per token type.
type TokenService struct {
	reader      AccessTokenReader
	writer      AccessTokenWriter
	types       AccessTokenTypeReader
	cache       AccessTokenCache
	kafkaWriter KafkaWriter
}

// NewTokenService creates a new TokenService. cache and kafkaWriter may be nil.
func NewTokenService(
	reader AccessTokenReader,
	writer AccessTokenWriter,
	types AccessTokenTypeReader,
	cache AccessTokenCache,
	kafkaWriter KafkaWriter,
) *TokenService {
	return &TokenService{
		reader:      reader,
		writer:      writer,
		types:       types,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// generateToken returns 32 bytes from the system CSPRNG, URL-safe encoded.
func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// FindToken returns the user's token of the given type, or nil when absent.
func (s *TokenService) FindToken(ctx context.Context, userID int64, typeCode string) (*models.AccessToken, error) {
	token, err := s.reader.GetByUserAndType(ctx, userID, typeCode)
	if err != nil {
		logger.Log.Errorw("failed to get access token", "user_id", userID, "type", typeCode, "error", err)
		return nil, err
	}
	return token, nil
}

// FindByToken returns the token with exactly this token string, or nil when
// absent. Lookups go through the cache when one is configured.
func (s *TokenService) FindByToken(ctx context.Context, tokenString string) (*models.AccessToken, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, tokenString)
		if err != nil {
			logger.Log.Errorw("failed to read token cache", "error", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	token, err := s.reader.GetByToken(ctx, tokenString)
	if err != nil {
		logger.Log.Errorw("failed to get access token by value", "error", err)
		return nil, err
	}

	if token != nil && s.cache != nil {
		if err := s.cache.Set(ctx, token); err != nil {
			logger.Log.Errorw("failed to cache access token", "token_id", token.ID, "error", err)
		}
	}
	return token, nil
}

// CreateToken mints and persists a new token of the given type for the user.
// It expires tokenType.ExpirationInterval seconds from now.
func (s *TokenService) CreateToken(ctx context.Context, userID int64, tokenType models.AccessTokenType) (*models.AccessToken, error) {
	value, err := generateToken()
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "error", err)
		return nil, err
	}

	expires := time.Now().Add(tokenType.Expiration())
	token := &models.AccessToken{
		TypeCode:  tokenType.Code,
		UserID:    userID,
		Token:     value,
		ExpiresAt: &expires,
	}

	if err := s.writer.Create(ctx, token); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrTokenAlreadyExists
		}
		logger.Log.Errorw("failed to save access token", "user_id", userID, "type", tokenType.Code, "error", err)
		return nil, err
	}

	metrics.RecordTokenIssued(tokenType.Code)
	publishEvent(ctx, s.kafkaWriter, models.EventTokenIssued, userID, tokenType.Code)

	return token, nil
}

// FindOrCreateToken returns the user's existing token of the type, expired or
// not, and creates one when there is none. When a concurrent request creates
// the token first, its row is returned.
func (s *TokenService) FindOrCreateToken(ctx context.Context, userID int64, tokenType models.AccessTokenType) (*models.AccessToken, error) {
	token, err := s.FindToken(ctx, userID, tokenType.Code)
	if err != nil || token != nil {
		return token, err
	}

	token, err = s.CreateToken(ctx, userID, tokenType)
	if !errors.Is(err, repositories.ErrConflict) {
		return token, err
	}

	winner, rerr := s.FindToken(ctx, userID, tokenType.Code)
	if rerr != nil {
		return nil, rerr
	}
	if winner == nil {
		return nil, err
	}
	return winner, nil
}

// FindOrCreateTokenCode resolves the token type by code and behaves like
// FindOrCreateToken.
func (s *TokenService) FindOrCreateTokenCode(ctx context.Context, userID int64, typeCode string) (*models.AccessToken, error) {
	tokenType, err := s.tokenType(ctx, typeCode)
	if err != nil {
		return nil, err
	}
	return s.FindOrCreateToken(ctx, userID, *tokenType)
}

// IssueToken returns a usable token of the type for the user: the existing
// one while it is valid, otherwise a renewed or newly created one.
func (s *TokenService) IssueToken(ctx context.Context, userID int64, typeCode string) (*models.AccessToken, error) {
	tokenType, err := s.tokenType(ctx, typeCode)
	if err != nil {
		return nil, err
	}

	token, err := s.FindOrCreateToken(ctx, userID, *tokenType)
	if err != nil {
		return nil, err
	}
	if !token.IsExpired() {
		return token, nil
	}
	return s.RenewToken(ctx, token, *tokenType)
}

// RenewToken replaces the token value and restarts its lifetime.
func (s *TokenService) RenewToken(ctx context.Context, token *models.AccessToken, tokenType models.AccessTokenType) (*models.AccessToken, error) {
	value, err := generateToken()
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "error", err)
		return nil, err
	}

	renewed := *token
	expires := time.Now().Add(tokenType.Expiration())
	renewed.Token = value
	renewed.ExpiresAt = &expires

	if err := s.writer.Update(ctx, &renewed); err != nil {
		logger.Log.Errorw("failed to renew access token", "token_id", token.ID, "error", err)
		return nil, err
	}
	s.evict(ctx, token.Token)

	metrics.RecordTokenIssued(tokenType.Code)
	publishEvent(ctx, s.kafkaWriter, models.EventTokenIssued, token.UserID, tokenType.Code)

	return &renewed, nil
}

// TokensForUser returns every token owned by the user.
func (s *TokenService) TokensForUser(ctx context.Context, userID int64) ([]models.AccessToken, error) {
	tokens, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list access tokens", "user_id", userID, "error", err)
		return nil, err
	}
	return tokens, nil
}

// ExpireToken revokes the token by back-dating its expiration.
func (s *TokenService) ExpireToken(ctx context.Context, token *models.AccessToken) error {
	previous := token.ExpiresAt
	token.SetExpired(true)

	if err := s.writer.Update(ctx, token); err != nil {
		token.ExpiresAt = previous
		logger.Log.Errorw("failed to expire access token", "token_id", token.ID, "error", err)
		return err
	}
	s.evict(ctx, token.Token)

	publishEvent(ctx, s.kafkaWriter, models.EventTokenExpired, token.UserID, token.TypeCode)
	return nil
}

// ExpireTokenCode revokes the user's token of the given type. It returns nil,
// nil when the user holds no such token.
func (s *TokenService) ExpireTokenCode(ctx context.Context, userID int64, typeCode string) (*models.AccessToken, error) {
	token, err := s.FindToken(ctx, userID, typeCode)
	if err != nil || token == nil {
		return nil, err
	}
	if err := s.ExpireToken(ctx, token); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *TokenService) tokenType(ctx context.Context, typeCode string) (*models.AccessTokenType, error) {
	tokenType, err := s.types.GetByCode(ctx, typeCode)
	if err != nil {
		logger.Log.Errorw("failed to get access token type", "code", typeCode, "error", err)
		return nil, err
	}
	if tokenType == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTokenType, typeCode)
	}
	return tokenType, nil
}

func (s *TokenService) evict(ctx context.Context, tokens ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, tokens...); err != nil {
		logger.Log.Errorw("failed to evict access tokens from cache", "error", err)
	}
}
