package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-user-identity/internal/models"
)

type NetworkReadRepository struct {
	db *sqlx.DB
}

func NewNetworkReadRepository(db *sqlx.DB) *NetworkReadRepository {
	return &NetworkReadRepository{db: db}
}

// GetByIPAddress returns the network for the address, or nil when absent.
func (r *NetworkReadRepository) GetByIPAddress(ctx context.Context, ipAddress string) (*models.Network, error) {
	const query = `SELECT id, ip_address, ip_hash, active, created_at FROM network WHERE ip_address = $1`

	var network models.Network
	err := r.db.GetContext(ctx, &network, query, ipAddress)

	logQuery(query, []any{ipAddress}, network.ID, err)

	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &network, nil
}

// ListByUser returns the networks attached to the user.
func (r *NetworkReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.Network, error) {
	const query = `
		SELECT n.id, n.ip_address, n.ip_hash, n.active, n.created_at
		FROM network n
		JOIN user_network un ON un.network_id = n.id
		WHERE un.user_id = $1
		ORDER BY n.id
	`

	var networks []models.Network
	err := r.db.SelectContext(ctx, &networks, query, userID)

	logQuery(query, []any{userID}, len(networks), err)

	if err != nil {
		return nil, err
	}
	return networks, nil
}

type NetworkWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNetworkWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NetworkWriteRepository {
	return &NetworkWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts the network and fills in its id and creation time.
// A duplicate address is ErrConflict.
func (r *NetworkWriteRepository) Create(ctx context.Context, network *models.Network) error {
	const query = `
		INSERT INTO network (ip_address, ip_hash, active, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := executor(ctx, r.db, r.txGetter).
		QueryRowxContext(ctx, query, network.IPAddress, network.IPHash, network.Active).
		Scan(&network.ID, &network.CreatedAt)

	logQuery(query, []any{network.IPAddress, network.IPHash, network.Active}, network.ID, err)

	return classifyError(err)
}

// AttachUser records that the user was seen on the network. Attaching an
// already attached pair only refreshes updated_at.
func (r *NetworkWriteRepository) AttachUser(ctx context.Context, userID, networkID int64) error {
	const query = `
		INSERT INTO user_network (user_id, network_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id, network_id) DO UPDATE SET updated_at = NOW()
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, networkID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{userID, networkID}, rowsAffected, err)

	return err
}

// DeleteJoinsByUser removes every user_network row of the user.
func (r *NetworkWriteRepository) DeleteJoinsByUser(ctx context.Context, userID int64) error {
	const query = `DELETE FROM user_network WHERE user_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{userID}, rowsAffected, err)

	return err
}
