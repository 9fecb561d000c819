package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-user-identity/internal/logger"
	"github.com/sbilibin2017/gw-user-identity/internal/metrics"
	"github.com/sbilibin2017/gw-user-identity/internal/models"
	"github.com/sbilibin2017/gw-user-identity/internal/repositories"
)

// TxRunner runs a unit of work in a single transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DeletionService removes users together with the rows that reference them.
type DeletionService struct {
	tx          TxRunner
	users       UserWriter
	tokens      AccessTokenWriter
	networks    NetworkWriter
	cache       AccessTokenCache
	kafkaWriter KafkaWriter
}

// NewDeletionService creates a new DeletionService. cache and kafkaWriter may be nil.
func NewDeletionService(
	tx TxRunner,
	users UserWriter,
	tokens AccessTokenWriter,
	networks NetworkWriter,
	cache AccessTokenCache,
	kafkaWriter KafkaWriter,
) *DeletionService {
	return &DeletionService{
		tx:          tx,
		users:       users,
		tokens:      tokens,
		networks:    networks,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// DeleteUser removes the user's access tokens, then its network joins, then
// the user row, in one transaction. Nothing is removed when any step fails.
// The deleted token values are evicted from the cache after commit.
func (s *DeletionService) DeleteUser(ctx context.Context, userID int64) error {
	var evicted []string

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		if evicted, err = s.tokens.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := s.networks.DeleteJoinsByUser(ctx, userID); err != nil {
			return err
		}
		return s.users.Delete(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			metrics.RecordUserDeletion(metrics.StatusNotFound)
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to delete user", "user_id", userID, "error", err)
		metrics.RecordUserDeletion(metrics.StatusError)
		return err
	}

	if s.cache != nil && len(evicted) > 0 {
		if err := s.cache.Delete(ctx, evicted...); err != nil {
			logger.Log.Errorw("failed to evict deleted user's tokens", "user_id", userID, "error", err)
		}
	}

	metrics.RecordUserDeletion(metrics.StatusSuccess)
	publishEvent(ctx, s.kafkaWriter, models.EventUserDeleted, userID, "")

	return nil
}
