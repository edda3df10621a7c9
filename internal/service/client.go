package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"github.com/wesamghrayeb/crm-app/internal/domain"
	"github.com/wesamghrayeb/crm-app/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

// expiryWindow is how far ahead the membership sweep looks: a reminder goes
// out while endDate <= now + 3 days.
const expiryWindow = 72 * time.Hour

type ClientService struct {
	repo   ports.ClientRepo
	mailer ports.Mailer
	logger logger.Logger
}

func NewClientService(repo ports.ClientRepo, mailer ports.Mailer, logger logger.Logger) *ClientService {
	return &ClientService{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

func (s *ClientService) Register(ctx context.Context, input domain.RegisterClientInput) (*domain.Client, error) {
	if input.FullName == "" {
		return nil, fmt.Errorf("%w: full_name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if len(input.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}
	if input.TotalSessions < 0 {
		return nil, fmt.Errorf("%w: total_sessions must not be negative", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	start := input.StartDate
	if start.IsZero() {
		start = time.Now().UTC()
	}

	client := &domain.Client{
		ID:               uuid.New().String(),
		FullName:         input.FullName,
		Email:            input.Email,
		PasswordHash:     string(hash),
		Role:             domain.RoleClient,
		AdminID:          input.AdminID,
		SubscriptionType: input.SubscriptionType,
		TotalSessions:    input.TotalSessions,
		UsedSessions:     0,
		StartDate:        start,
		EndDate:          input.EndDate,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.logger.Info("client registered",
		logger.String("client_id", client.ID),
		logger.String("email", client.Email),
	)

	return client, nil
}

// Login checks the credentials and returns the matching client. Both a missing
// account and a wrong password collapse into ErrInvalidCredentials.
func (s *ClientService) Login(ctx context.Context, email, password string) (*domain.Client, error) {
	client, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return client, nil
}

func (s *ClientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ClientService) ListByAdmin(ctx context.Context, adminID string) ([]*domain.Client, error) {
	return s.repo.ListByAdmin(ctx, adminID)
}

func (s *ClientService) GetForAdmin(ctx context.Context, id, adminID string) (*domain.Client, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client.AdminID != adminID {
		return nil, domain.ErrClientNotFound
	}

	return client, nil
}

func (s *ClientService) Renew(ctx context.Context, id, adminID string, input domain.RenewMembershipInput) (*domain.Client, error) {
	if input.TotalSessions <= 0 {
		return nil, fmt.Errorf("%w: total_sessions must be positive", domain.ErrValidation)
	}

	client, err := s.repo.Renew(ctx, id, adminID, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info("membership renewed",
		logger.String("client_id", client.ID),
		logger.Int("total_sessions", client.TotalSessions),
	)

	return client, nil
}

func (s *ClientService) Delete(ctx context.Context, id, adminID string) error {
	return s.repo.Delete(ctx, id, adminID)
}

// NotifyExpiring emails every client whose membership ends within the window.
// There is no dedup key: a client inside the window gets a reminder on every
// sweep. Mail failures are logged and skipped, never returned.
func (s *ClientService) NotifyExpiring(ctx context.Context) ([]*domain.Client, error) {
	expiring, err := s.repo.ListExpiring(ctx, time.Now().UTC().Add(expiryWindow))
	if err != nil {
		return nil, fmt.Errorf("list expiring: %w", err)
	}

	for _, client := range expiring {
		body := fmt.Sprintf(
			"Hello %s, your membership is about to expire. We would be happy to renew it!",
			client.FullName,
		)
		if err := s.mailer.Send(ctx, client.Email, "Your membership expires in 3 days", body); err != nil {
			s.logger.Error("expiry reminder mail failed",
				logger.String("client_id", client.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	return expiring, nil
}
