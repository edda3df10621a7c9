package domain

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrSlotNotFound   = errors.New("slot not found")
)

var (
	ErrAccessDenied   = errors.New("access denied")
	ErrAlreadyBooked  = errors.New("client already booked in this slot")
	ErrSlotFull       = errors.New("slot is full")
	ErrQuotaExhausted = errors.New("no sessions left in subscription")
	ErrDateConflict   = errors.New("client already has a booking on this date")
	ErrNotBooked      = errors.New("client is not booked in this slot")
)

// ErrTransient marks storage contention that outlived the retry budget. It is
// the only storage failure callers may treat as retryable.
var ErrTransient = errors.New("transient storage conflict")

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrValidation         = errors.New("validation error")
)
