package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/logger"
	"github.com/wesamghrayeb/crm-app/internal/domain"
	"github.com/wesamghrayeb/crm-app/internal/service/ports"
)

type BookingService struct {
	clientRepo ports.ClientRepo
	slotRepo   ports.SlotRepo
	mailer     ports.Mailer
	notifier   ports.AdminNotifier
	logger     logger.Logger
}

func NewBookingService(
	clientRepo ports.ClientRepo,
	slotRepo ports.SlotRepo,
	mailer ports.Mailer,
	notifier ports.AdminNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		clientRepo: clientRepo,
		slotRepo:   slotRepo,
		mailer:     mailer,
		notifier:   notifier,
		logger:     logger,
	}
}

// Book runs the admissibility checks in their fixed order, then commits
// slot-first-then-client: the slot's booked set plus history entry go in one
// transaction, the quota counter follows. A crash between the two leaves the
// slot as the source of truth.
func (s *BookingService) Book(ctx context.Context, clientID, slotID string) error {
	client, slot, err := s.loadPair(ctx, clientID, slotID)
	if err != nil {
		return err
	}

	booked, err := s.slotRepo.ListByClient(ctx, clientID)
	if err != nil {
		return fmt.Errorf("list client bookings: %w", err)
	}

	if err = domain.CheckBook(client, slot, booked); err != nil {
		return err
	}

	// The repo re-validates capacity and uniqueness under the slot lock, so a
	// race that slipped past the read above still resolves to SlotFull or
	// AlreadyBooked for exactly one of the contenders.
	if err = s.slotRepo.AddBooking(ctx, slotID, clientID); err != nil {
		return err
	}

	if err = s.clientRepo.IncrementUsed(ctx, clientID); err != nil {
		// A quota loss here means a same-client race took the last session
		// between the admissibility check and the counter update. Undo the
		// booking so the client never holds more seats than sessions.
		if errors.Is(err, domain.ErrQuotaExhausted) {
			if rbErr := s.slotRepo.RemoveBooking(ctx, slotID, clientID); rbErr != nil {
				s.logger.Error("booking rollback after quota loss failed",
					logger.String("client_id", clientID),
					logger.String("slot_id", slotID),
					logger.String("error", rbErr.Error()),
				)
			}
			return domain.ErrQuotaExhausted
		}

		// The slot mutation is committed; history stays authoritative and the
		// ledger is reconciled from it.
		s.logger.Error("used-session increment failed after booking commit",
			logger.String("client_id", clientID),
			logger.String("slot_id", slotID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("slot booked",
		logger.String("client_id", clientID),
		logger.String("slot_id", slotID),
		logger.String("date", slot.Date),
		logger.String("time", slot.Time),
	)

	s.notifyBooked(ctx, client, slot)

	return nil
}

// Cancel removes the reservation, appends the canceled history entry and
// refunds one session, floored at zero.
func (s *BookingService) Cancel(ctx context.Context, clientID, slotID string) error {
	client, slot, err := s.loadPair(ctx, clientID, slotID)
	if err != nil {
		return err
	}

	if err = domain.CheckCancel(client, slot); err != nil {
		return err
	}

	if err = s.slotRepo.RemoveBooking(ctx, slotID, clientID); err != nil {
		return err
	}

	if err = s.clientRepo.DecrementUsed(ctx, clientID); err != nil {
		s.logger.Error("used-session decrement failed after cancellation commit",
			logger.String("client_id", clientID),
			logger.String("slot_id", slotID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("booking canceled",
		logger.String("client_id", clientID),
		logger.String("slot_id", slotID),
	)

	s.notifyCanceled(ctx, client, slot)

	return nil
}

// AdminBook books a client into a slot on the administrator's behalf. The slot
// must belong to the acting admin; beyond that the client goes through the
// same transition rules as a self-service booking.
func (s *BookingService) AdminBook(ctx context.Context, adminID, clientID, slotID string) error {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot.AdminID != adminID {
		return domain.ErrSlotNotFound
	}

	return s.Book(ctx, clientID, slotID)
}

func (s *BookingService) ListClientSlots(ctx context.Context, clientID string) ([]*domain.Slot, error) {
	return s.slotRepo.ListByClient(ctx, clientID)
}

func (s *BookingService) loadPair(ctx context.Context, clientID, slotID string) (*domain.Client, *domain.Slot, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		// An unknown caller is an authorization failure, not a lookup miss.
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, nil, domain.ErrAccessDenied
		}
		return nil, nil, fmt.Errorf("check client: %w", err)
	}

	// The role rule ranks above slot existence: a non-client caller is denied
	// before the slot lookup can report anything about the registry.
	if client.Role != domain.RoleClient {
		return nil, nil, domain.ErrAccessDenied
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, nil, err
	}

	return client, slot, nil
}

func (s *BookingService) notifyBooked(ctx context.Context, client *domain.Client, slot *domain.Slot) {
	bg := context.WithoutCancel(ctx)
	go func() {
		body := fmt.Sprintf("You booked: %s %s", slot.Date, slot.Time)
		if err := s.mailer.Send(bg, client.Email, "Booking Confirmed", body); err != nil {
			s.logger.Error("booking confirmation mail failed",
				logger.String("client_id", client.ID),
				logger.String("error", err.Error()),
			)
		}
	}()
	go s.notifier.NotifyBooked(bg, client, slot)
}

func (s *BookingService) notifyCanceled(ctx context.Context, client *domain.Client, slot *domain.Slot) {
	bg := context.WithoutCancel(ctx)
	go func() {
		body := fmt.Sprintf("Canceled: %s %s", slot.Date, slot.Time)
		if err := s.mailer.Send(bg, client.Email, "Booking Canceled", body); err != nil {
			s.logger.Error("cancellation mail failed",
				logger.String("client_id", client.ID),
				logger.String("error", err.Error()),
			)
		}
	}()
	go s.notifier.NotifyCanceled(bg, client, slot)
}
