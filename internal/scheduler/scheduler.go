package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/wesamghrayeb/crm-app/internal/domain"
)

type membershipNotifier interface {
	NotifyExpiring(ctx context.Context) ([]*domain.Client, error)
}

// Scheduler runs the membership-expiry sweep on a fixed interval. It only
// reads the client ledger and never touches booking state.
type Scheduler struct {
	clientService membershipNotifier
	interval      time.Duration
	logger        logger.Logger
}

func New(
	clientService membershipNotifier,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		clientService: clientService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("membership scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("membership scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expiring, err := s.clientService.NotifyExpiring(ctx)
	if err != nil {
		s.logger.Error("membership expiry sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, c := range expiring {
		s.logger.Info("membership expiring soon",
			logger.String("client_id", c.ID),
			logger.String("email", c.Email),
		)
	}
}
