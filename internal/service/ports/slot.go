package ports

import (
	"context"

	"github.com/wesamghrayeb/crm-app/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, s *domain.Slot) error
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	ListByAdmin(ctx context.Context, adminID string) ([]*domain.Slot, error)
	ListAvailable(ctx context.Context, adminID string) ([]*domain.Slot, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Slot, error)
	UpdateCapacity(ctx context.Context, id, adminID string, maxClients int) (*domain.Slot, error)
	Delete(ctx context.Context, id, adminID string) error

	// AddBooking and RemoveBooking mutate the booked set and append one history
	// entry in a single transaction with the slot row locked. AddBooking fails
	// with ErrSlotFull when the slot is at capacity at commit time and with
	// ErrAlreadyBooked on duplicate membership; RemoveBooking fails with
	// ErrNotBooked when the client holds no reservation.
	AddBooking(ctx context.Context, slotID, clientID string) error
	RemoveBooking(ctx context.Context, slotID, clientID string) error

	ListHistory(ctx context.Context, adminID string, limit int) ([]*domain.ActivityEntry, error)
}
