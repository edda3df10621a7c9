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

// slotSelect aggregates the current booked set next to the slot row so reads
// see one consistent snapshot.
const slotSelect = `
	SELECT s.id, s.slot_date, s.slot_time, s.max_clients, s.admin_id,
	       s.created_at, s.updated_at,
	       COALESCE(array_agg(b.client_id::text) FILTER (WHERE b.client_id IS NOT NULL), '{}')
	FROM slots s
	LEFT JOIN slot_bookings b ON b.slot_id = s.id`

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.Slot) error {
	query := `INSERT INTO slots (id, slot_date, slot_time, max_clients, admin_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Date, s.Time, s.MaxClients, s.AdminID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert slot: %w", err)
	}
	s.CreatedAt = now
	s.UpdatedAt = now

	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := slotSelect + `
	WHERE s.id = $1
	GROUP BY s.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	return scanSlot(row)
}

func (r *SlotRepository) ListByAdmin(ctx context.Context, adminID string) ([]*domain.Slot, error) {
	query := slotSelect + `
	WHERE s.admin_id = $1
	GROUP BY s.id
	ORDER BY s.slot_date, s.slot_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, adminID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	return collectSlots(rows)
}

func (r *SlotRepository) ListAvailable(ctx context.Context, adminID string) ([]*domain.Slot, error) {
	query := slotSelect + `
	WHERE s.admin_id = $1
	GROUP BY s.id
	HAVING COUNT(b.client_id) < s.max_clients
	ORDER BY s.slot_date, s.slot_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, adminID)
	if err != nil {
		return nil, fmt.Errorf("list available slots: %w", err)
	}
	defer rows.Close()

	return collectSlots(rows)
}

func (r *SlotRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Slot, error) {
	query := slotSelect + `
	WHERE s.id IN (SELECT slot_id FROM slot_bookings WHERE client_id = $1)
	GROUP BY s.id
	ORDER BY s.slot_date, s.slot_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list slots by client: %w", err)
	}
	defer rows.Close()

	return collectSlots(rows)
}

func (r *SlotRepository) UpdateCapacity(ctx context.Context, id, adminID string, maxClients int) (*domain.Slot, error) {
	query := `UPDATE slots
			  SET max_clients = $3, updated_at = now()
			  WHERE id = $1 AND admin_id = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, adminID, maxClients)
	if err != nil {
		return nil, fmt.Errorf("update slot capacity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update slot rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrSlotNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *SlotRepository) Delete(ctx context.Context, id, adminID string) error {
	query := `DELETE FROM slots WHERE id = $1 AND admin_id = $2`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, adminID)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete slot rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrSlotNotFound
	}

	return nil
}

// AddBooking serializes on the slot row: the FOR UPDATE lock is held across the
// capacity check, the membership insert and the history append, so two racers
// for the last seat cannot both commit.
func (r *SlotRepository) AddBooking(ctx context.Context, slotID, clientID string) error {
	return r.retryContention(ctx, func() error {
		return r.addBooking(ctx, slotID, clientID)
	})
}

func (r *SlotRepository) addBooking(ctx context.Context, slotID, clientID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var maxClients, booked int
	lockQuery := `SELECT max_clients FROM slots WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, slotID).Scan(&maxClients); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlotNotFound
		}
		return fmt.Errorf("lock slot: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM slot_bookings WHERE slot_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, slotID).Scan(&booked); err != nil {
		return fmt.Errorf("count bookings: %w", err)
	}

	if booked >= maxClients {
		return domain.ErrSlotFull
	}

	insertQuery := `INSERT INTO slot_bookings (slot_id, client_id, created_at)
					VALUES ($1, $2, now())`
	if _, err = tx.ExecContext(ctx, insertQuery, slotID, clientID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if err = appendHistory(ctx, tx, slotID, clientID, domain.ActionBooked); err != nil {
		return err
	}

	return tx.Commit()
}

// RemoveBooking holds the same lock so the history append always reflects an
// actual membership removal.
func (r *SlotRepository) RemoveBooking(ctx context.Context, slotID, clientID string) error {
	return r.retryContention(ctx, func() error {
		return r.removeBooking(ctx, slotID, clientID)
	})
}

func (r *SlotRepository) removeBooking(ctx context.Context, slotID, clientID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT 1 FROM slots WHERE id = $1 FOR UPDATE`
	var one int
	if err = tx.QueryRowContext(ctx, lockQuery, slotID).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlotNotFound
		}
		return fmt.Errorf("lock slot: %w", err)
	}

	deleteQuery := `DELETE FROM slot_bookings WHERE slot_id = $1 AND client_id = $2`
	res, err := tx.ExecContext(ctx, deleteQuery, slotID, clientID)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete booking rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotBooked
	}

	if err = appendHistory(ctx, tx, slotID, clientID, domain.ActionCanceled); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *SlotRepository) ListHistory(ctx context.Context, adminID string, limit int) ([]*domain.ActivityEntry, error) {
	query := `SELECT h.slot_id, s.slot_date, s.slot_time, h.client_id,
					 COALESCE(c.full_name, ''), h.action, h.created_at
			  FROM slot_history h
			  JOIN slots s ON s.id = h.slot_id
			  LEFT JOIN clients c ON c.id = h.client_id
			  WHERE s.admin_id = $1
			  ORDER BY h.created_at DESC
			  LIMIT $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, adminID, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var res []*domain.ActivityEntry
	for rows.Next() {
		var e domain.ActivityEntry
		if err = rows.Scan(
			&e.SlotID, &e.SlotDate, &e.SlotTime, &e.ClientID,
			&e.ClientName, &e.Action, &e.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// retryContention re-runs a booking transaction when Postgres aborts it with a
// contention-class error. Business failures (SlotFull, AlreadyBooked, NotBooked)
// pass through untouched; a retry budget spent on contention surfaces as
// ErrTransient.
func (r *SlotRepository) retryContention(ctx context.Context, op func() error) error {
	delay := r.strategy.Delay
	var err error
	for attempt := 0; attempt < r.strategy.Attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay = time.Duration(float64(delay) * float64(r.strategy.Backoff))
		}
		if err = op(); err == nil || !isContention(err) {
			return err
		}
	}

	return fmt.Errorf("%w: %v", domain.ErrTransient, err)
}

// isContention reports whether Postgres aborted the transaction for a reason
// that is safe to retry: serialization failure or deadlock.
func isContention(err error) bool {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

func appendHistory(ctx context.Context, tx *sql.Tx, slotID, clientID string, action domain.HistoryAction) error {
	query := `INSERT INTO slot_history (slot_id, client_id, action, created_at)
			  VALUES ($1, $2, $3, now())`
	if _, err := tx.ExecContext(ctx, query, slotID, clientID, action); err != nil {
		return fmt.Errorf("append history: %w", err)
	}

	return nil
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var s domain.Slot
	if err := row.Scan(
		&s.ID, &s.Date, &s.Time, &s.MaxClients, &s.AdminID,
		&s.CreatedAt, &s.UpdatedAt, pq.Array(&s.BookedClients),
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return &s, nil
}

func collectSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	var res []*domain.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}

	return res, rows.Err()
}
