package errs

import "errors"

// Booking lifecycle error taxonomy shared by the domain and usecase layers.
// Callers match with errors.Is; the HTTP layer maps each to a status code.
var (
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidState        = errors.New("invalid booking state")
	ErrSlotTaken           = errors.New("slot already taken")
	ErrTooLate             = errors.New("booking has already started")
	ErrTooEarly            = errors.New("booking has not started yet")
	ErrAlreadyPaid         = errors.New("booking already paid")
	ErrInvalidPaymentState = errors.New("invalid payment state")

	// Intake validation
	ErrInvalidTimeSlot = errors.New("invalid time slot")
	ErrInvalidBooking  = errors.New("invalid booking")

	// Mutation phase failures (store write, commit)
	ErrPersistence = errors.New("persistence failure")
)
