package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wesamghrayeb/crm-app/internal/domain"
)

// memStore backs the race tests below. AddBooking and RemoveBooking re-check
// capacity and membership under the lock and append history atomically with
// the mutation, the same contract the SQL transaction gives the service.
type memStore struct {
	mu      sync.Mutex
	clients map[string]*domain.Client
	slots   map[string]*domain.Slot
	history map[string][]domain.HistoryEntry
}

func newMemStore() *memStore {
	return &memStore{
		clients: make(map[string]*domain.Client),
		slots:   make(map[string]*domain.Slot),
		history: make(map[string][]domain.HistoryEntry),
	}
}

type memClients struct{ s *memStore }

func (r memClients) Create(_ context.Context, c *domain.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients[c.ID] = c
	return nil
}

func (r memClients) GetByID(_ context.Context, id string) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	cp := *c
	return &cp, nil
}

func (r memClients) GetByEmail(context.Context, string) (*domain.Client, error) {
	panic("unused")
}

func (r memClients) ListByAdmin(context.Context, string) ([]*domain.Client, error) {
	panic("unused")
}

func (r memClients) ListExpiring(context.Context, time.Time) ([]*domain.Client, error) {
	panic("unused")
}

func (r memClients) Renew(context.Context, string, string, domain.RenewMembershipInput) (*domain.Client, error) {
	panic("unused")
}

func (r memClients) Delete(context.Context, string, string) error { panic("unused") }

func (r memClients) IncrementUsed(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok {
		return domain.ErrClientNotFound
	}
	if c.UsedSessions >= c.TotalSessions {
		return domain.ErrQuotaExhausted
	}
	c.UsedSessions++
	return nil
}

func (r memClients) DecrementUsed(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok {
		return domain.ErrClientNotFound
	}
	if c.UsedSessions > 0 {
		c.UsedSessions--
	}
	return nil
}

type memSlots struct{ s *memStore }

func (r memSlots) Create(_ context.Context, sl *domain.Slot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.slots[sl.ID] = sl
	return nil
}

func (r memSlots) GetByID(_ context.Context, id string) (*domain.Slot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sl, ok := r.s.slots[id]
	if !ok {
		return nil, domain.ErrSlotNotFound
	}
	cp := *sl
	cp.BookedClients = append([]string(nil), sl.BookedClients...)
	return &cp, nil
}

func (r memSlots) ListByAdmin(context.Context, string) ([]*domain.Slot, error) { panic("unused") }

func (r memSlots) ListAvailable(context.Context, string) ([]*domain.Slot, error) { panic("unused") }

func (r memSlots) ListByClient(_ context.Context, clientID string) ([]*domain.Slot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Slot
	for _, sl := range r.s.slots {
		for _, id := range sl.BookedClients {
			if id == clientID {
				cp := *sl
				cp.BookedClients = append([]string(nil), sl.BookedClients...)
				out = append(out, &cp)
				break
			}
		}
	}
	return out, nil
}

func (r memSlots) UpdateCapacity(context.Context, string, string, int) (*domain.Slot, error) {
	panic("unused")
}

func (r memSlots) Delete(context.Context, string, string) error { panic("unused") }

func (r memSlots) AddBooking(_ context.Context, slotID, clientID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sl, ok := r.s.slots[slotID]
	if !ok {
		return domain.ErrSlotNotFound
	}
	for _, id := range sl.BookedClients {
		if id == clientID {
			return domain.ErrAlreadyBooked
		}
	}
	if len(sl.BookedClients) >= sl.MaxClients {
		return domain.ErrSlotFull
	}
	sl.BookedClients = append(sl.BookedClients, clientID)
	r.s.history[slotID] = append(r.s.history[slotID], domain.HistoryEntry{
		ClientID:  clientID,
		Action:    domain.ActionBooked,
		Timestamp: time.Now(),
	})
	return nil
}

func (r memSlots) RemoveBooking(_ context.Context, slotID, clientID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sl, ok := r.s.slots[slotID]
	if !ok {
		return domain.ErrSlotNotFound
	}
	for i, id := range sl.BookedClients {
		if id == clientID {
			sl.BookedClients = append(sl.BookedClients[:i], sl.BookedClients[i+1:]...)
			r.s.history[slotID] = append(r.s.history[slotID], domain.HistoryEntry{
				ClientID:  clientID,
				Action:    domain.ActionCanceled,
				Timestamp: time.Now(),
			})
			return nil
		}
	}
	return domain.ErrNotBooked
}

func (r memSlots) ListHistory(context.Context, string, int) ([]*domain.ActivityEntry, error) {
	panic("unused")
}

type nopMailer struct{}

func (nopMailer) Send(context.Context, string, string, string) error { return nil }

type nopNotifier struct{}

func (nopNotifier) NotifyBooked(context.Context, *domain.Client, *domain.Slot)   {}
func (nopNotifier) NotifyCanceled(context.Context, *domain.Client, *domain.Slot) {}

// Racing bookings for the last seats must admit exactly MaxClients clients;
// every loser sees the slot as full.
func TestBookingService_ConcurrentBook_NeverOverCapacity(t *testing.T) {
	const (
		capacity = 3
		racers   = 20
	)

	store := newMemStore()
	svc := NewBookingService(memClients{store}, memSlots{store}, nopMailer{}, nopNotifier{}, newTestLogger(t))

	slot := &domain.Slot{
		ID:         "s1",
		Date:       "2026-09-01",
		Time:       "10:00",
		MaxClients: capacity,
		AdminID:    "a1",
	}
	store.slots[slot.ID] = slot

	for i := 0; i < racers; i++ {
		store.clients[fmt.Sprintf("c%d", i)] = &domain.Client{
			ID:            fmt.Sprintf("c%d", i),
			Role:          domain.RoleClient,
			AdminID:       "a1",
			TotalSessions: 1,
		}
	}

	errs := make([]error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Book(context.Background(), fmt.Sprintf("c%d", i), "s1")
		}(i)
	}
	wg.Wait()

	var won, full int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, domain.ErrSlotFull):
			full++
		default:
			t.Fatalf("unexpected booking error: %v", err)
		}
	}

	assert.Equal(t, capacity, won)
	assert.Equal(t, racers-capacity, full)
	assert.Len(t, store.slots["s1"].BookedClients, capacity)

	// The booked set must replay exactly from history.
	assert.ElementsMatch(t, store.slots["s1"].BookedClients, domain.BookedFromHistory(store.history["s1"]))
}

// Interleaved books and cancels on one slot keep the booked set and the
// history log consistent with each other.
func TestBookingService_ConcurrentBookCancel_HistoryConsistent(t *testing.T) {
	const racers = 10

	store := newMemStore()
	svc := NewBookingService(memClients{store}, memSlots{store}, nopMailer{}, nopNotifier{}, newTestLogger(t))

	slot := &domain.Slot{
		ID:         "s1",
		Date:       "2026-09-01",
		Time:       "10:00",
		MaxClients: racers,
		AdminID:    "a1",
	}
	store.slots[slot.ID] = slot

	for i := 0; i < racers; i++ {
		store.clients[fmt.Sprintf("c%d", i)] = &domain.Client{
			ID:            fmt.Sprintf("c%d", i),
			Role:          domain.RoleClient,
			AdminID:       "a1",
			TotalSessions: 5,
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("c%d", i)
			assert.NoError(t, svc.Book(context.Background(), id, "s1"))
			if i%2 == 0 {
				assert.NoError(t, svc.Cancel(context.Background(), id, "s1"))
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.slots["s1"].BookedClients, racers/2)
	assert.ElementsMatch(t, store.slots["s1"].BookedClients, domain.BookedFromHistory(store.history["s1"]))
}
