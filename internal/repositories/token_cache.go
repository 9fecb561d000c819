package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-user-identity/internal/logger"
	"github.com/sbilibin2017/gw-user-identity/internal/models"
)

const tokenCacheKeyPrefix = "access_token:"

// AccessTokenCacheRepository caches token lookups by token string in Redis.
type AccessTokenCacheRepository struct {
	client *redis.Client
	exp    time.Duration // upper bound on how long an entry lives
}

// NewAccessTokenCacheRepository creates a cache whose entries live at most expiration.
func NewAccessTokenCacheRepository(client *redis.Client, expiration time.Duration) *AccessTokenCacheRepository {
	return &AccessTokenCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func tokenCacheKey(token string) string {
	return tokenCacheKeyPrefix + token
}

// Get returns the cached token, or nil on a cache miss.
func (r *AccessTokenCacheRepository) Get(ctx context.Context, token string) (*models.AccessToken, error) {
	key := tokenCacheKey(token)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("token cache miss")
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("token cache get failed", "error", err)
		return nil, err
	}

	var cached models.AccessToken
	if err := json.Unmarshal(val, &cached); err != nil {
		logger.Log.Errorw("token cache entry is corrupt", "error", err)
		return nil, err
	}
	return &cached, nil
}

// Set caches the token until it expires, bounded by the cache expiration.
// Expired tokens are not cached.
func (r *AccessTokenCacheRepository) Set(ctx context.Context, token *models.AccessToken) error {
	ttl := r.exp
	if token.ExpiresAt != nil {
		remaining := time.Until(*token.ExpiresAt)
		if remaining <= 0 {
			return nil
		}
		if remaining < ttl {
			ttl = remaining
		}
	}

	data, err := json.Marshal(token)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, tokenCacheKey(token.Token), data, ttl).Err()

	logger.Log.Infow(
		"token cached",
		"token_id", token.ID,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// Delete evicts the given tokens.
func (r *AccessTokenCacheRepository) Delete(ctx context.Context, tokens ...string) error {
	if len(tokens) == 0 {
		return nil
	}

	keys := make([]string, len(tokens))
	for i, t := range tokens {
		keys[i] = tokenCacheKey(t)
	}

	removed, err := r.client.Del(ctx, keys...).Result()

	logger.Log.Infow(
		"token cache evicted",
		"requested", len(keys),
		"removed", removed,
		"error", err,
	)

	return err
}
