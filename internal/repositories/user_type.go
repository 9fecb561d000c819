package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-user-identity/internal/models"
)

type UserTypeReadRepository struct {
	db *sqlx.DB
}

func NewUserTypeReadRepository(db *sqlx.DB) *UserTypeReadRepository {
	return &UserTypeReadRepository{db: db}
}

// GetByCode returns the user type with the given code, or nil when absent.
func (r *UserTypeReadRepository) GetByCode(ctx context.Context, code string) (*models.UserType, error) {
	const query = `SELECT code, display_name, is_default FROM user_type WHERE code = $1`
	return r.getOne(ctx, query, code)
}

// GetDefault returns the user type flagged as default, or nil when none is.
func (r *UserTypeReadRepository) GetDefault(ctx context.Context) (*models.UserType, error) {
	const query = `SELECT code, display_name, is_default FROM user_type WHERE is_default LIMIT 1`
	return r.getOne(ctx, query)
}

func (r *UserTypeReadRepository) getOne(ctx context.Context, query string, args ...any) (*models.UserType, error) {
	var userType models.UserType
	err := r.db.GetContext(ctx, &userType, query, args...)

	logQuery(query, args, userType, err)

	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &userType, nil
}

// List returns all user types ordered by code.
func (r *UserTypeReadRepository) List(ctx context.Context) ([]models.UserType, error) {
	const query = `SELECT code, display_name, is_default FROM user_type ORDER BY code`

	var types []models.UserType
	err := r.db.SelectContext(ctx, &types, query)

	logQuery(query, nil, len(types), err)

	return types, err
}
