package domain

// The booking state machine per (client, slot) pair is a two-state toggle:
// unbooked -> booked -> unbooked, with every transition appended to the slot's
// history. CheckBook and CheckCancel hold the full ordered admissibility rule
// list so it can be tested without storage; the repository re-validates the
// capacity and uniqueness rules under a row lock when the transition commits.

// CheckBook reports whether the client may book the slot. Checks run in a
// fixed order and the first failure wins, so simultaneous violations always
// produce the same error: access, existence, membership, capacity, quota,
// then the same-date conflict against otherBooked (the slots this client
// currently holds).
func CheckBook(client *Client, slot *Slot, otherBooked []*Slot) error {
	if client == nil || client.Role != RoleClient {
		return ErrAccessDenied
	}
	if slot == nil {
		return ErrSlotNotFound
	}
	if client.AdminID != slot.AdminID {
		return ErrAccessDenied
	}
	if slot.HasClient(client.ID) {
		return ErrAlreadyBooked
	}
	if slot.IsFull() {
		return ErrSlotFull
	}
	if !client.HasRemainingSessions() {
		return ErrQuotaExhausted
	}
	for _, other := range otherBooked {
		if other.ID != slot.ID && other.Date == slot.Date {
			return ErrDateConflict
		}
	}
	return nil
}

// CheckCancel reports whether the client may cancel its booking in the slot.
func CheckCancel(client *Client, slot *Slot) error {
	if client == nil || client.Role != RoleClient {
		return ErrAccessDenied
	}
	if slot == nil {
		return ErrSlotNotFound
	}
	if !slot.HasClient(client.ID) {
		return ErrNotBooked
	}
	return nil
}
