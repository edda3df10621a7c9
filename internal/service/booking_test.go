package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/wesamghrayeb/crm-app/internal/domain"
	"github.com/wesamghrayeb/crm-app/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingFixture struct {
	clientRepo *mocks.MockClientRepo
	slotRepo   *mocks.MockSlotRepo
	mailer     *mocks.MockMailer
	notifier   *mocks.MockAdminNotifier
	svc        *BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	f := &bookingFixture{
		clientRepo: mocks.NewMockClientRepo(t),
		slotRepo:   mocks.NewMockSlotRepo(t),
		mailer:     mocks.NewMockMailer(t),
		notifier:   mocks.NewMockAdminNotifier(t),
	}
	f.svc = NewBookingService(f.clientRepo, f.slotRepo, f.mailer, f.notifier, newTestLogger(t))
	return f
}

func memberClient() *domain.Client {
	return &domain.Client{
		ID:            "c1",
		FullName:      "Alice",
		Email:         "alice@example.com",
		Role:          domain.RoleClient,
		AdminID:       "a1",
		TotalSessions: 8,
		UsedSessions:  2,
	}
}

func morningSlot() *domain.Slot {
	return &domain.Slot{
		ID:         "s1",
		Date:       "2026-09-01",
		Time:       "10:00",
		MaxClients: 5,
		AdminID:    "a1",
	}
}

func TestBookingService_Book_Success(t *testing.T) {
	f := newBookingFixture(t)

	client := memberClient()
	slot := morningSlot()

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(client, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	f.slotRepo.EXPECT().ListByClient(mock.Anything, "c1").Return(nil, nil)
	f.slotRepo.EXPECT().AddBooking(mock.Anything, "s1", "c1").Return(nil)
	f.clientRepo.EXPECT().IncrementUsed(mock.Anything, "c1").Return(nil)
	f.mailer.EXPECT().Send(mock.Anything, "alice@example.com", "Booking Confirmed", mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyBooked(mock.Anything, client, slot).Return()

	err := f.svc.Book(context.Background(), "c1", "s1")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_UnknownClientDenied(t *testing.T) {
	f := newBookingFixture(t)

	f.clientRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrClientNotFound)

	err := f.svc.Book(context.Background(), "ghost", "s1")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestBookingService_Book_SlotNotFound(t *testing.T) {
	f := newBookingFixture(t)

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(memberClient(), nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrSlotNotFound)

	err := f.svc.Book(context.Background(), "c1", "missing")
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

// A non-client caller is denied before the slot is even looked up, so the
// precedence holds regardless of what the registry would say.
func TestBookingService_Book_AdminCallerDenied(t *testing.T) {
	f := newBookingFixture(t)

	admin := memberClient()
	admin.Role = domain.RoleAdmin

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(admin, nil)

	err := f.svc.Book(context.Background(), "c1", "s1")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

// Even with the slot missing, the role rule wins: an admin booking a
// nonexistent slot gets access-denied, not not-found.
func TestBookingService_Book_AdminCallerMissingSlotDenied(t *testing.T) {
	f := newBookingFixture(t)

	admin := memberClient()
	admin.Role = domain.RoleAdmin

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(admin, nil)

	err := f.svc.Book(context.Background(), "c1", "missing")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestBookingService_Cancel_AdminCallerMissingSlotDenied(t *testing.T) {
	f := newBookingFixture(t)

	admin := memberClient()
	admin.Role = domain.RoleAdmin

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(admin, nil)

	err := f.svc.Cancel(context.Background(), "c1", "missing")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestBookingService_Book_WrongTenant(t *testing.T) {
	f := newBookingFixture(t)

	slot := morningSlot()
	slot.AdminID = "a2"

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(memberClient(), nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	f.slotRepo.EXPECT().ListByClient(mock.Anything, "c1").Return(nil, nil)

	err := f.svc.Book(context.Background(), "c1", "s1")
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestBookingService_Book_AlreadyBooked(t *testing.T) {
	f := newBookingFixture(t)

	slot := morningSlot()
	slot.BookedClients = []string{"c1"}

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(memberClient(), nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	f.slotRepo.EXPECT().ListByClient(mock.Anything, "c1").Return([]*domain.Slot{slot}, nil)

	err := f.svc.Book(context.Background(), "c1", "s1")
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestBookingService_Book_SlotFull(t *testing.T) {
	f := newBookingFixture(t)

	slot := morningSlot()
	slot.MaxClients = 2
	slot.BookedClients = []string{"c2", "c3"}

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(memberClient(), nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	f.slotRepo.EXPECT().ListByClient(mock.Anything, "c1").Return(nil, nil)

	err := f.svc.Book(context.Background(), "c1", "s1")
	assert.ErrorIs(t, err, domain.ErrSlotFull)
}

func TestBookingService_Book_QuotaExhausted(t *testing.T) {
	f := newBookingFixture(t)

	client := memberClient()
	client.UsedSessions = client.TotalSessions

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(client, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(morningSlot(), nil)
	f.slotRepo.EXPECT().ListByClient(mock.Anything, "c1").Return(nil, nil)

	err := f.svc.Book(context.Background(), "c1", "s1")
	assert.ErrorIs(t, err, domain.ErrQuotaExhausted)
}

func TestBookingService_Book_SameDayConflict(t *testing.T) {
	f := newBookingFixture(t)

	evening := morningSlot()
	evening.ID = "s2"
	evening.Time = "18:00"
	evening.BookedClients = []string{"c1"}

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(memberClient(), nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(morningSlot(), nil)
	f.slotRepo.EXPECT().ListByClient(mock.Anything, "c1").Return([]*domain.Slot{evening}, nil)

	err := f.svc.Book(context.Background(), "c1", "s1")
	assert.ErrorIs(t, err, domain.ErrDateConflict)
}

// The repo re-checks capacity under the row lock; when it loses the race the
// service surfaces the conflict and never touches the session counter.
func TestBookingService_Book_LostRace(t *testing.T) {
	f := newBookingFixture(t)

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(memberClient(), nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(morningSlot(), nil)
	f.slotRepo.EXPECT().ListByClient(mock.Anything, "c1").Return(nil, nil)
	f.slotRepo.EXPECT().AddBooking(mock.Anything, "s1", "c1").Return(domain.ErrSlotFull)

	err := f.svc.Book(context.Background(), "c1", "s1")
	assert.ErrorIs(t, err, domain.ErrSlotFull)
}

// A failed counter update after the booking commit is logged, not returned;
// the booked set and history are already durable.
func TestBookingService_Book_IncrementFailureSwallowed(t *testing.T) {
	f := newBookingFixture(t)

	client := memberClient()
	slot := morningSlot()

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(client, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	f.slotRepo.EXPECT().ListByClient(mock.Anything, "c1").Return(nil, nil)
	f.slotRepo.EXPECT().AddBooking(mock.Anything, "s1", "c1").Return(nil)
	f.clientRepo.EXPECT().IncrementUsed(mock.Anything, "c1").Return(assert.AnError)
	f.mailer.EXPECT().Send(mock.Anything, "alice@example.com", "Booking Confirmed", mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyBooked(mock.Anything, client, slot).Return()

	err := f.svc.Book(context.Background(), "c1", "s1")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

// When a same-client race takes the last session between the admissibility
// check and the counter update, the booking is rolled back and the caller sees
// the quota failure.
func TestBookingService_Book_QuotaLossRollsBackBooking(t *testing.T) {
	f := newBookingFixture(t)

	client := memberClient()
	client.TotalSessions = 1

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(client, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(morningSlot(), nil)
	f.slotRepo.EXPECT().ListByClient(mock.Anything, "c1").Return(nil, nil)
	f.slotRepo.EXPECT().AddBooking(mock.Anything, "s1", "c1").Return(nil)
	f.clientRepo.EXPECT().IncrementUsed(mock.Anything, "c1").Return(domain.ErrQuotaExhausted)
	f.slotRepo.EXPECT().RemoveBooking(mock.Anything, "s1", "c1").Return(nil)

	err := f.svc.Book(context.Background(), "c1", "s1")
	assert.ErrorIs(t, err, domain.ErrQuotaExhausted)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	f := newBookingFixture(t)

	client := memberClient()
	slot := morningSlot()
	slot.BookedClients = []string{"c1"}

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(client, nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)
	f.slotRepo.EXPECT().RemoveBooking(mock.Anything, "s1", "c1").Return(nil)
	f.clientRepo.EXPECT().DecrementUsed(mock.Anything, "c1").Return(nil)
	f.mailer.EXPECT().Send(mock.Anything, "alice@example.com", "Booking Canceled", mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyCanceled(mock.Anything, client, slot).Return()

	err := f.svc.Cancel(context.Background(), "c1", "s1")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NotBooked(t *testing.T) {
	f := newBookingFixture(t)

	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(memberClient(), nil)
	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(morningSlot(), nil)

	err := f.svc.Cancel(context.Background(), "c1", "s1")
	assert.ErrorIs(t, err, domain.ErrNotBooked)
}

func TestBookingService_AdminBook_Success(t *testing.T) {
	f := newBookingFixture(t)

	client := memberClient()
	slot := morningSlot()

	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil).Times(2)
	f.clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(client, nil)
	f.slotRepo.EXPECT().ListByClient(mock.Anything, "c1").Return(nil, nil)
	f.slotRepo.EXPECT().AddBooking(mock.Anything, "s1", "c1").Return(nil)
	f.clientRepo.EXPECT().IncrementUsed(mock.Anything, "c1").Return(nil)
	f.mailer.EXPECT().Send(mock.Anything, "alice@example.com", "Booking Confirmed", mock.Anything).Return(nil)
	f.notifier.EXPECT().NotifyBooked(mock.Anything, client, slot).Return()

	err := f.svc.AdminBook(context.Background(), "a1", "c1", "s1")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_AdminBook_ForeignSlot(t *testing.T) {
	f := newBookingFixture(t)

	slot := morningSlot()
	slot.AdminID = "a2"

	f.slotRepo.EXPECT().GetByID(mock.Anything, "s1").Return(slot, nil)

	err := f.svc.AdminBook(context.Background(), "a1", "c1", "s1")
	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}
