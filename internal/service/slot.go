package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wesamghrayeb/crm-app/internal/domain"
	"github.com/wesamghrayeb/crm-app/internal/service/ports"
)

type SlotService struct {
	repo ports.SlotRepo
}

func NewSlotService(repo ports.SlotRepo) *SlotService {
	return &SlotService{repo: repo}
}

func (s *SlotService) Create(ctx context.Context, adminID string, input domain.CreateSlotInput) (*domain.Slot, error) {
	if input.Time == "" {
		return nil, fmt.Errorf("%w: time is required", domain.ErrValidation)
	}
	if input.MaxClients <= 0 {
		return nil, fmt.Errorf("%w: max_clients must be positive", domain.ErrValidation)
	}

	date, err := domain.NormalizeDate(input.Date)
	if err != nil {
		return nil, err
	}

	slot := &domain.Slot{
		ID:            uuid.New().String(),
		Date:          date,
		Time:          input.Time,
		MaxClients:    input.MaxClients,
		AdminID:       adminID,
		BookedClients: []string{},
	}

	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	return slot, nil
}

func (s *SlotService) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SlotService) ListByAdmin(ctx context.Context, adminID string) ([]*domain.Slot, error) {
	return s.repo.ListByAdmin(ctx, adminID)
}

// ListAvailable returns the slots of the client's administrator that still
// have free capacity.
func (s *SlotService) ListAvailable(ctx context.Context, adminID string) ([]*domain.Slot, error) {
	return s.repo.ListAvailable(ctx, adminID)
}

func (s *SlotService) UpdateCapacity(ctx context.Context, id, adminID string, maxClients int) (*domain.Slot, error) {
	if maxClients <= 0 {
		return nil, fmt.Errorf("%w: max_clients must be positive", domain.ErrValidation)
	}

	return s.repo.UpdateCapacity(ctx, id, adminID, maxClients)
}

func (s *SlotService) Delete(ctx context.Context, id, adminID string) error {
	return s.repo.Delete(ctx, id, adminID)
}

func (s *SlotService) ListByClient(ctx context.Context, clientID string) ([]*domain.Slot, error) {
	return s.repo.ListByClient(ctx, clientID)
}
