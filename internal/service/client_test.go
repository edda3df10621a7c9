package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wesamghrayeb/crm-app/internal/domain"
	"github.com/wesamghrayeb/crm-app/internal/service/ports/mocks"
	"golang.org/x/crypto/bcrypt"
)

func TestClientService_Register_Success(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewClientService(repo, mailer, newTestLogger(t))

	var created *domain.Client
	repo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, c *domain.Client) {
		created = c
	}).Return(nil)

	client, err := svc.Register(context.Background(), domain.RegisterClientInput{
		FullName:         "Alice",
		Email:            "alice@example.com",
		Password:         "secret1",
		AdminID:          "a1",
		SubscriptionType: "monthly",
		TotalSessions:    8,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, domain.RoleClient, client.Role)
	assert.Equal(t, 0, client.UsedSessions)
	assert.Equal(t, 8, client.TotalSessions)
	assert.NotEmpty(t, client.ID)
	assert.False(t, client.StartDate.IsZero())

	// The stored hash must verify against the original password and never
	// equal it.
	assert.NotEqual(t, "secret1", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret1")))
}

func TestClientService_Register_Validation(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewClientService(repo, mailer, newTestLogger(t))

	tests := []struct {
		name  string
		input domain.RegisterClientInput
	}{
		{"missing name", domain.RegisterClientInput{Email: "a@b.c", Password: "secret1"}},
		{"missing email", domain.RegisterClientInput{FullName: "A", Password: "secret1"}},
		{"short password", domain.RegisterClientInput{FullName: "A", Email: "a@b.c", Password: "123"}},
		{"negative sessions", domain.RegisterClientInput{FullName: "A", Email: "a@b.c", Password: "secret1", TotalSessions: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestClientService_Register_EmailTaken(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewClientService(repo, mailer, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.RegisterClientInput{
		FullName: "Alice",
		Email:    "taken@example.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestClientService_Login_Success(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewClientService(repo, mailer, newTestLogger(t))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.Client{ID: "c1", Email: "alice@example.com", PasswordHash: string(hash)}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	client, err := svc.Login(context.Background(), "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "c1", client.ID)
}

func TestClientService_Login_WrongPassword(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewClientService(repo, mailer, newTestLogger(t))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.Client{ID: "c1", PasswordHash: string(hash)}
	repo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(stored, nil)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestClientService_Login_UnknownEmailSameError(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewClientService(repo, mailer, newTestLogger(t))

	repo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrClientNotFound)

	_, err := svc.Login(context.Background(), "ghost@example.com", "secret1")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestClientService_GetForAdmin_WrongTenant(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewClientService(repo, mailer, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Client{ID: "c1", AdminID: "a2"}, nil)

	_, err := svc.GetForAdmin(context.Background(), "c1", "a1")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientService_Renew_Success(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewClientService(repo, mailer, newTestLogger(t))

	input := domain.RenewMembershipInput{
		SubscriptionType: "monthly",
		TotalSessions:    12,
		StartDate:        time.Now(),
	}
	renewed := &domain.Client{ID: "c1", TotalSessions: 12, UsedSessions: 0}
	repo.EXPECT().Renew(mock.Anything, "c1", "a1", input).Return(renewed, nil)

	client, err := svc.Renew(context.Background(), "c1", "a1", input)
	require.NoError(t, err)
	assert.Equal(t, 12, client.TotalSessions)
	assert.Equal(t, 0, client.UsedSessions)
}

func TestClientService_Renew_InvalidSessions(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewClientService(repo, mailer, newTestLogger(t))

	_, err := svc.Renew(context.Background(), "c1", "a1", domain.RenewMembershipInput{TotalSessions: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClientService_NotifyExpiring_SendsPerClient(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewClientService(repo, mailer, newTestLogger(t))

	expiring := []*domain.Client{
		{ID: "c1", FullName: "Alice", Email: "alice@example.com"},
		{ID: "c2", FullName: "Bob", Email: "bob@example.com"},
	}
	repo.EXPECT().ListExpiring(mock.Anything, mock.Anything).Return(expiring, nil)
	mailer.EXPECT().Send(mock.Anything, "alice@example.com", mock.Anything, mock.Anything).Return(nil)
	mailer.EXPECT().Send(mock.Anything, "bob@example.com", mock.Anything, mock.Anything).Return(nil)

	got, err := svc.NotifyExpiring(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClientService_NotifyExpiring_MailFailureSkipped(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewClientService(repo, mailer, newTestLogger(t))

	expiring := []*domain.Client{
		{ID: "c1", FullName: "Alice", Email: "alice@example.com"},
		{ID: "c2", FullName: "Bob", Email: "bob@example.com"},
	}
	repo.EXPECT().ListExpiring(mock.Anything, mock.Anything).Return(expiring, nil)
	mailer.EXPECT().Send(mock.Anything, "alice@example.com", mock.Anything, mock.Anything).Return(assert.AnError)
	mailer.EXPECT().Send(mock.Anything, "bob@example.com", mock.Anything, mock.Anything).Return(nil)

	got, err := svc.NotifyExpiring(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClientService_NotifyExpiring_ListError(t *testing.T) {
	repo := mocks.NewMockClientRepo(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewClientService(repo, mailer, newTestLogger(t))

	repo.EXPECT().ListExpiring(mock.Anything, mock.Anything).Return(nil, assert.AnError)

	_, err := svc.NotifyExpiring(context.Background())
	require.Error(t, err)
}
