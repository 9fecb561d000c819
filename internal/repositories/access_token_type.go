package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-user-identity/internal/models"
)

type AccessTokenTypeReadRepository struct {
	db *sqlx.DB
}

func NewAccessTokenTypeReadRepository(db *sqlx.DB) *AccessTokenTypeReadRepository {
	return &AccessTokenTypeReadRepository{db: db}
}

// GetByCode returns the token type with the given code, or nil when absent.
func (r *AccessTokenTypeReadRepository) GetByCode(ctx context.Context, code string) (*models.AccessTokenType, error) {
	const query = `SELECT code, display_name, expiration_interval FROM access_token_type WHERE code = $1`

	var tokenType models.AccessTokenType
	err := r.db.GetContext(ctx, &tokenType, query, code)

	logQuery(query, []any{code}, tokenType, err)

	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tokenType, nil
}

// List returns all token types ordered by code.
func (r *AccessTokenTypeReadRepository) List(ctx context.Context) ([]models.AccessTokenType, error) {
	const query = `SELECT code, display_name, expiration_interval FROM access_token_type ORDER BY code`

	var types []models.AccessTokenType
	err := r.db.SelectContext(ctx, &types, query)

	logQuery(query, nil, len(types), err)

	return types, err
}
