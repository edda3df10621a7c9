package ports

import (
	"context"
	"time"

	"github.com/wesamghrayeb/crm-app/internal/domain"
)

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	ListByAdmin(ctx context.Context, adminID string) ([]*domain.Client, error)
	ListExpiring(ctx context.Context, before time.Time) ([]*domain.Client, error)
	Renew(ctx context.Context, id, adminID string, input domain.RenewMembershipInput) (*domain.Client, error)
	Delete(ctx context.Context, id, adminID string) error

	// IncrementUsed applies used_sessions+1 only while used < total and fails
	// with ErrQuotaExhausted otherwise; DecrementUsed floors at zero. Both are
	// single conditional updates against the stored record.
	IncrementUsed(ctx context.Context, id string) error
	DecrementUsed(ctx context.Context, id string) error
}
