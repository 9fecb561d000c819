package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-user-identity/internal/models"
)

const userColumns = `id, type_code, username, email, password_hash, failed_logins, fullname,
	active, created_at, updated_at, last_login, last_failed_login`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByUsername returns the user with exactly this username, or nil when absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// GetByEmail returns the user with exactly this email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, query, arg)

	logQuery(query, []any{arg}, user.ID, err)

	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListByUsernameOrEmail returns every user whose username or email matches.
// Both comparisons are exact and case-sensitive.
func (r *UserReadRepository) ListByUsernameOrEmail(ctx context.Context, username, email string) ([]models.User, error) {
	const query = `SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 OR email = $2
		ORDER BY id`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, username, email)

	logQuery(query, []any{username, email}, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts the user and fills in its id and timestamps.
// Unique violations on username or email are reported as ErrConflict.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (type_code, username, email, password_hash, failed_logins, fullname,
			active, last_login, last_failed_login, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{
		user.TypeCode, user.Username, user.Email, user.PasswordHash, user.FailedLogins,
		user.Fullname, user.Active, user.LastLogin, user.LastFailedLogin,
	}

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, args...).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	logQuery(query, []any{user.TypeCode, user.Username, user.Email}, user.ID, err)

	return classifyError(err)
}

// Update persists every mutable column of the user and refreshes updated_at.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.User) error {
	const query = `
		UPDATE users
		SET type_code = $2, username = $3, email = $4, password_hash = $5, failed_logins = $6,
			fullname = $7, active = $8, last_login = $9, last_failed_login = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	args := []any{
		user.ID, user.TypeCode, user.Username, user.Email, user.PasswordHash, user.FailedLogins,
		user.Fullname, user.Active, user.LastLogin, user.LastFailedLogin,
	}

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, args...).
		Scan(&user.UpdatedAt)

	logQuery(query, []any{user.ID, user.Username, user.Email}, user.UpdatedAt, err)

	if noRows(err) {
		return ErrNotFound
	}
	return classifyError(err)
}

// Delete removes the user row. Dependent rows must already be gone.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
