package domain

import "time"

type HistoryAction string

const (
	ActionBooked   HistoryAction = "booked"
	ActionCanceled HistoryAction = "canceled"
)

// HistoryEntry is one record of a slot's append-only audit log. The log is the
// source-of-truth event stream; the booked set is a materialized view of it.
type HistoryEntry struct {
	ClientID  string        `json:"client_id"`
	Action    HistoryAction `json:"action"`
	Timestamp time.Time     `json:"timestamp"`
}

// ActivityEntry is a history record joined with slot coordinates and the
// client's name, used by the recent-activity report.
type ActivityEntry struct {
	SlotID     string        `json:"slot_id"`
	SlotDate   string        `json:"slot_date"`
	SlotTime   string        `json:"slot_time"`
	ClientID   string        `json:"client_id"`
	ClientName string        `json:"client_name"`
	Action     HistoryAction `json:"action"`
	Timestamp  time.Time     `json:"timestamp"`
}

// BookedFromHistory replays a slot's log and returns the clients that end in
// the booked state, i.e. those whose last entry is a booking. Tests compare
// this against the stored booked set to catch drift between the two.
func BookedFromHistory(entries []HistoryEntry) []string {
	state := make(map[string]bool)
	order := make([]string, 0)
	for _, e := range entries {
		if _, seen := state[e.ClientID]; !seen {
			order = append(order, e.ClientID)
		}
		state[e.ClientID] = e.Action == ActionBooked
	}

	booked := make([]string, 0, len(order))
	for _, id := range order {
		if state[id] {
			booked = append(booked, id)
		}
	}
	return booked
}
