package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *Client {
	return &Client{
		ID:            "c1",
		Role:          RoleClient,
		AdminID:       "a1",
		TotalSessions: 10,
		UsedSessions:  0,
	}
}

func testSlot() *Slot {
	return &Slot{
		ID:         "s1",
		Date:       "2026-09-01",
		Time:       "10:00",
		MaxClients: 2,
		AdminID:    "a1",
	}
}

func TestCheckBook_Success(t *testing.T) {
	err := CheckBook(testClient(), testSlot(), nil)
	require.NoError(t, err)
}

func TestCheckBook_AdminDenied(t *testing.T) {
	admin := testClient()
	admin.Role = RoleAdmin

	err := CheckBook(admin, testSlot(), nil)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCheckBook_NilClient(t *testing.T) {
	err := CheckBook(nil, testSlot(), nil)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCheckBook_NilSlot(t *testing.T) {
	err := CheckBook(testClient(), nil, nil)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCheckBook_WrongAdmin(t *testing.T) {
	slot := testSlot()
	slot.AdminID = "a2"

	err := CheckBook(testClient(), slot, nil)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCheckBook_AlreadyBooked(t *testing.T) {
	slot := testSlot()
	slot.BookedClients = []string{"c1"}

	err := CheckBook(testClient(), slot, nil)
	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestCheckBook_SlotFull(t *testing.T) {
	slot := testSlot()
	slot.BookedClients = []string{"c2", "c3"}

	err := CheckBook(testClient(), slot, nil)
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestCheckBook_QuotaExhausted(t *testing.T) {
	client := testClient()
	client.UsedSessions = client.TotalSessions

	err := CheckBook(client, testSlot(), nil)
	assert.ErrorIs(t, err, ErrQuotaExhausted)
}

func TestCheckBook_ZeroQuota(t *testing.T) {
	client := testClient()
	client.TotalSessions = 0
	client.UsedSessions = 0

	err := CheckBook(client, testSlot(), nil)
	assert.ErrorIs(t, err, ErrQuotaExhausted)
}

func TestCheckBook_SameDayConflict(t *testing.T) {
	other := testSlot()
	other.ID = "s2"
	other.Time = "18:00"

	err := CheckBook(testClient(), testSlot(), []*Slot{other})
	assert.ErrorIs(t, err, ErrDateConflict)
}

func TestCheckBook_DifferentDayNoConflict(t *testing.T) {
	other := testSlot()
	other.ID = "s2"
	other.Date = "2026-09-02"

	err := CheckBook(testClient(), testSlot(), []*Slot{other})
	require.NoError(t, err)
}

// The slot itself may appear in the client's booked list without tripping the
// same-day rule; the duplicate check comes earlier and looks at the slot only.
func TestCheckBook_SelfIgnoredInConflictScan(t *testing.T) {
	slot := testSlot()

	err := CheckBook(testClient(), slot, []*Slot{slot})
	require.NoError(t, err)
}

// Precondition order is fixed: a request that violates several rules reports
// the first one. A full slot on another admin's calendar denies access rather
// than reporting fullness.
func TestCheckBook_PreconditionOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Client, s *Slot)
		wantErr error
	}{
		{
			name: "role before tenant",
			mutate: func(c *Client, s *Slot) {
				c.Role = RoleAdmin
				s.AdminID = "a2"
			},
			wantErr: ErrAccessDenied,
		},
		{
			name: "tenant before capacity",
			mutate: func(c *Client, s *Slot) {
				s.AdminID = "a2"
				s.BookedClients = []string{"c2", "c3"}
			},
			wantErr: ErrAccessDenied,
		},
		{
			name: "duplicate before capacity",
			mutate: func(c *Client, s *Slot) {
				s.BookedClients = []string{"c1", "c2"}
			},
			wantErr: ErrAlreadyBooked,
		},
		{
			name: "capacity before quota",
			mutate: func(c *Client, s *Slot) {
				s.BookedClients = []string{"c2", "c3"}
				c.UsedSessions = c.TotalSessions
			},
			wantErr: ErrSlotFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := testClient()
			slot := testSlot()
			tt.mutate(client, slot)

			assert.ErrorIs(t, CheckBook(client, slot, nil), tt.wantErr)
		})
	}
}

func TestCheckCancel_Success(t *testing.T) {
	slot := testSlot()
	slot.BookedClients = []string{"c1"}

	require.NoError(t, CheckCancel(testClient(), slot))
}

func TestCheckCancel_NotBooked(t *testing.T) {
	err := CheckCancel(testClient(), testSlot())
	assert.ErrorIs(t, err, ErrNotBooked)
}

func TestCheckCancel_AdminDenied(t *testing.T) {
	admin := testClient()
	admin.Role = RoleAdmin
	slot := testSlot()
	slot.BookedClients = []string{"c1"}

	err := CheckCancel(admin, slot)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCheckCancel_NilSlot(t *testing.T) {
	err := CheckCancel(testClient(), nil)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

// Cancel frees the seat and refunds the session, so book-cancel-book on the
// same slot is admissible at every step.
func TestBookCancelBookCycle(t *testing.T) {
	client := testClient()
	slot := testSlot()

	require.NoError(t, CheckBook(client, slot, nil))
	slot.BookedClients = append(slot.BookedClients, client.ID)
	client.UsedSessions++

	require.NoError(t, CheckCancel(client, slot))
	slot.BookedClients = slot.BookedClients[:0]
	client.UsedSessions--

	require.NoError(t, CheckBook(client, slot, nil))
}

func TestBookedFromHistory_LastActionWins(t *testing.T) {
	base := time.Now()
	entries := []HistoryEntry{
		{ClientID: "c1", Action: ActionBooked, Timestamp: base},
		{ClientID: "c2", Action: ActionBooked, Timestamp: base.Add(time.Minute)},
		{ClientID: "c1", Action: ActionCanceled, Timestamp: base.Add(2 * time.Minute)},
		{ClientID: "c3", Action: ActionBooked, Timestamp: base.Add(3 * time.Minute)},
		{ClientID: "c1", Action: ActionBooked, Timestamp: base.Add(4 * time.Minute)},
	}

	booked := BookedFromHistory(entries)
	assert.Equal(t, []string{"c1", "c2", "c3"}, booked)
}

func TestBookedFromHistory_Empty(t *testing.T) {
	assert.Empty(t, BookedFromHistory(nil))
}

func TestBookedFromHistory_AllCanceled(t *testing.T) {
	entries := []HistoryEntry{
		{ClientID: "c1", Action: ActionBooked},
		{ClientID: "c1", Action: ActionCanceled},
	}

	assert.Empty(t, BookedFromHistory(entries))
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"2026-09-01", "2026-09-01"},
		{"01.09.2026", "2026-09-01"},
		{"01/09/2026", "2026-09-01"},
		{"2026-09-01T10:00:00Z", "2026-09-01"},
	}

	for _, tt := range tests {
		got, err := NormalizeDate(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestNormalizeDate_Invalid(t *testing.T) {
	_, err := NormalizeDate("not-a-date")
	assert.ErrorIs(t, err, ErrValidation)
}
