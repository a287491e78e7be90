package services

import "errors"

// Caller-facing errors. Handlers map these to HTTP status codes; anything
// else that escapes a service is an infrastructure failure and surfaces as
// a generic 500.
var (
	ErrNotAuthenticated    = errors.New("no authenticated user")
	ErrNotAuthorized       = errors.New("not authorized for this action")
	ErrNotFound            = errors.New("resource not found")
	ErrInstructorNotFound  = errors.New("instructor not found")
	ErrInvalidState        = errors.New("transition not allowed from current status")
	ErrInvalidInput        = errors.New("missing or malformed input")
	ErrInvalidPeriod       = errors.New("unknown time slot period")
	ErrSlotUnavailable     = errors.New("slot is not available")
	ErrAlreadyReviewed     = errors.New("booking has already been reviewed")
	ErrBookingNotCompleted = errors.New("booking is not completed")
)
