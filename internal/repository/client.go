package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/wesamghrayeb/crm-app/internal/domain"
)

const clientColumns = `id, full_name, email, password_hash, role, admin_id,
		subscription_type, total_sessions, used_sessions, start_date, end_date, created_at`

type ClientRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClientRepo(db *dbpg.DB) *ClientRepository {
	return &ClientRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (` + clientColumns + `)
			  VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.FullName, c.Email, c.PasswordHash, c.Role, c.AdminID,
		c.SubscriptionType, c.TotalSessions, c.UsedSessions,
		c.StartDate, c.EndDate, c.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert client: %w", err)
	}

	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + `
			  FROM clients
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	return scanClient(row)
}

func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + `
			  FROM clients
			  WHERE email = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get client by email: %w", err)
	}

	return scanClient(row)
}

func (r *ClientRepository) ListByAdmin(ctx context.Context, adminID string) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + `
			  FROM clients
			  WHERE admin_id = $1 AND role = $2
			  ORDER BY full_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, adminID, domain.RoleClient)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	return collectClients(rows)
}

func (r *ClientRepository) ListExpiring(ctx context.Context, before time.Time) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + `
			  FROM clients
			  WHERE role = $1 AND end_date IS NOT NULL AND end_date <= $2
			  ORDER BY end_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.RoleClient, before)
	if err != nil {
		return nil, fmt.Errorf("list expiring clients: %w", err)
	}
	defer rows.Close()

	return collectClients(rows)
}

func (r *ClientRepository) Renew(ctx context.Context, id, adminID string, input domain.RenewMembershipInput) (*domain.Client, error) {
	query := `UPDATE clients
			  SET subscription_type = $3, total_sessions = $4, used_sessions = 0,
			      start_date = $5, end_date = $6
			  WHERE id = $1 AND admin_id = $2 AND role = $7
			  RETURNING ` + clientColumns

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		id, adminID, input.SubscriptionType, input.TotalSessions,
		input.StartDate, input.EndDate, domain.RoleClient,
	)
	if err != nil {
		return nil, fmt.Errorf("renew membership: %w", err)
	}

	return scanClient(row)
}

func (r *ClientRepository) Delete(ctx context.Context, id, adminID string) error {
	query := `DELETE FROM clients WHERE id = $1 AND admin_id = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, adminID)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete client rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

// IncrementUsed is a conditional update: it never drives used_sessions past
// total_sessions even when two bookings race on the same quota.
func (r *ClientRepository) IncrementUsed(ctx context.Context, id string) error {
	query := `UPDATE clients
			  SET used_sessions = used_sessions + 1
			  WHERE id = $1 AND used_sessions < total_sessions`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("increment used sessions: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment rows affected: %w", err)
	}
	if affected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrQuotaExhausted
	}

	return nil
}

// DecrementUsed floors at zero so that cancelling never drives usage negative
// even if the prior state was inconsistent.
func (r *ClientRepository) DecrementUsed(ctx context.Context, id string) error {
	query := `UPDATE clients
			  SET used_sessions = GREATEST(used_sessions - 1, 0)
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("decrement used sessions: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("decrement rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrClientNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var c domain.Client
	var adminID sql.NullString
	if err := row.Scan(
		&c.ID, &c.FullName, &c.Email, &c.PasswordHash, &c.Role, &adminID,
		&c.SubscriptionType, &c.TotalSessions, &c.UsedSessions,
		&c.StartDate, &c.EndDate, &c.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("scan client: %w", err)
	}
	c.AdminID = adminID.String

	return &c, nil
}

func collectClients(rows *sql.Rows) ([]*domain.Client, error) {
	var res []*domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}

	return res, rows.Err()
}
