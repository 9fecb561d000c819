package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-user-identity/internal/models"
)

const accessTokenColumns = `id, type_code, user_id, token, created_at, updated_at, expires_at`

type AccessTokenReadRepository struct {
	db *sqlx.DB
}

func NewAccessTokenReadRepository(db *sqlx.DB) *AccessTokenReadRepository {
	return &AccessTokenReadRepository{db: db}
}

// GetByID returns the token with the given id, or nil when absent.
func (r *AccessTokenReadRepository) GetByID(ctx context.Context, id int64) (*models.AccessToken, error) {
	return r.getOne(ctx, `SELECT `+accessTokenColumns+` FROM access_token WHERE id = $1`, id)
}

// GetByUserAndType returns the user's token of the given type, or nil when absent.
func (r *AccessTokenReadRepository) GetByUserAndType(ctx context.Context, userID int64, typeCode string) (*models.AccessToken, error) {
	return r.getOne(ctx, `SELECT `+accessTokenColumns+` FROM access_token WHERE user_id = $1 AND type_code = $2`, userID, typeCode)
}

// GetByToken returns the token with exactly this token string, or nil when absent.
func (r *AccessTokenReadRepository) GetByToken(ctx context.Context, token string) (*models.AccessToken, error) {
	return r.getOne(ctx, `SELECT `+accessTokenColumns+` FROM access_token WHERE token = $1`, token)
}

func (r *AccessTokenReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.AccessToken, error) {
	var token models.AccessToken
	err := r.db.GetContext(ctx, &token, query, args...)

	logQuery(query, args, token.ID, err)

	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// ListByUser returns every token owned by the user ordered by type.
func (r *AccessTokenReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.AccessToken, error) {
	const query = `SELECT ` + accessTokenColumns + ` FROM access_token WHERE user_id = $1 ORDER BY type_code`

	var tokens []models.AccessToken
	err := r.db.SelectContext(ctx, &tokens, query, userID)

	logQuery(query, []any{userID}, len(tokens), err)

	if err != nil {
		return nil, err
	}
	return tokens, nil
}

type AccessTokenWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccessTokenWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccessTokenWriteRepository {
	return &AccessTokenWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts the token and fills in its id and timestamps. A second token
// for the same (user, type) pair or a duplicate token string is ErrConflict.
func (r *AccessTokenWriteRepository) Create(ctx context.Context, token *models.AccessToken) error {
	const query = `
		INSERT INTO access_token (type_code, user_id, token, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, token.TypeCode, token.UserID, token.Token, token.ExpiresAt).
		Scan(&token.ID, &token.CreatedAt, &token.UpdatedAt)

	logQuery(query, []any{token.TypeCode, token.UserID, token.ExpiresAt}, token.ID, err)

	return classifyError(err)
}

// Update persists the token string and expiration and refreshes updated_at.
func (r *AccessTokenWriteRepository) Update(ctx context.Context, token *models.AccessToken) error {
	const query = `
		UPDATE access_token
		SET token = $2, expires_at = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, token.ID, token.Token, token.ExpiresAt).
		Scan(&token.UpdatedAt)

	logQuery(query, []any{token.ID, token.ExpiresAt}, token.UpdatedAt, err)

	if noRows(err) {
		return ErrNotFound
	}
	return classifyError(err)
}

// DeleteByUser removes every token owned by the user and returns the removed
// token values.
func (r *AccessTokenWriteRepository) DeleteByUser(ctx context.Context, userID int64) ([]string, error) {
	const query = `DELETE FROM access_token WHERE user_id = $1 RETURNING token`

	var tokens []string
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &tokens, query, userID)

	logQuery(query, []any{userID}, len(tokens), err)

	if err != nil {
		return nil, err
	}
	return tokens, nil
}
