package domain

import (
	"fmt"
	"time"
)

// Slot is a bookable unit of admission owned by one administrator. Date is kept
// in the canonical YYYY-MM-DD form, Time as an opaque HH:MM string.
type Slot struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	MaxClients    int       `json:"max_clients"`
	AdminID       string    `json:"admin_id"`
	BookedClients []string  `json:"booked_clients"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s *Slot) HasClient(clientID string) bool {
	for _, id := range s.BookedClients {
		if id == clientID {
			return true
		}
	}
	return false
}

func (s *Slot) IsFull() bool {
	return len(s.BookedClients) >= s.MaxClients
}

type CreateSlotInput struct {
	Date       string
	Time       string
	MaxClients int
}

// slotDateLayouts are the date forms accepted on input. Everything is stored
// and compared as dateLayout.
const dateLayout = "2006-01-02"

var slotDateLayouts = []string{
	dateLayout,
	"02.01.2006",
	"02/01/2006",
	time.RFC3339,
}

// NormalizeDate parses a slot date in any accepted form and returns the
// canonical YYYY-MM-DD representation. Same-date conflict checks rely on every
// stored date having passed through here.
func NormalizeDate(raw string) (string, error) {
	for _, layout := range slotDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(dateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: unrecognized date %q", ErrValidation, raw)
}
