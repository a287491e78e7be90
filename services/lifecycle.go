package services

import (
	"github.com/drivelink/driving_school/models"
	"github.com/google/uuid"
)

// The booking state machine. Guards are pure: the handlers, the admin
// surface and the completion sweep all run the same rules. Authorization is
// checked before state, so a caller probing someone else's booking learns
// nothing beyond "not yours".

// legalTransitions enumerates every reachable edge. Terminal states have
// no outgoing edges.
var legalTransitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCompleted, models.BookingStatusCancelled},
}

// CanTransition reports whether the state machine has an edge from -> to.
func CanTransition(from, to string) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// GuardConfirm checks that actor may move the booking pending -> confirmed.
func GuardConfirm(b *models.Booking, actorID uuid.UUID) error {
	if b == nil {
		return ErrNotFound
	}
	if actorID != b.InstructorID {
		return ErrNotAuthorized
	}
	if !CanTransition(b.Status, models.BookingStatusConfirmed) {
		return ErrInvalidState
	}
	return nil
}

// GuardCancel checks that actor may cancel the booking. Either side of the
// booking may cancel any non-terminal status.
func GuardCancel(b *models.Booking, actorID uuid.UUID) error {
	if b == nil {
		return ErrNotFound
	}
	if actorID != b.StudentID && actorID != b.InstructorID {
		return ErrNotAuthorized
	}
	if !CanTransition(b.Status, models.BookingStatusCancelled) {
		return ErrInvalidState
	}
	return nil
}

// GuardSlot applies the default-allow policy to a slot lookup: a nil slot
// means the instructor never closed the period and booking may proceed; an
// explicit row blocks only when flagged unavailable.
func GuardSlot(slot *models.AvailabilitySlot) error {
	if slot == nil {
		return nil
	}
	if !slot.IsAvailable {
		return ErrSlotUnavailable
	}
	return nil
}

// GuardReview checks review-creation preconditions against the booking and
// the result of the duplicate lookup.
func GuardReview(b *models.Booking, studentID uuid.UUID, alreadyReviewed bool) error {
	if b == nil {
		return ErrNotFound
	}
	if b.StudentID != studentID {
		return ErrNotAuthorized
	}
	if b.Status != models.BookingStatusCompleted {
		return ErrBookingNotCompleted
	}
	if alreadyReviewed {
		return ErrAlreadyReviewed
	}
	return nil
}

// GuardComplete checks the administrative confirmed -> completed move.
// Completion is not gated on an actor: it is triggered by the scheduler or
// staff, never by the student/instructor routes.
func GuardComplete(b *models.Booking) error {
	if b == nil {
		return ErrNotFound
	}
	if !CanTransition(b.Status, models.BookingStatusCompleted) {
		return ErrInvalidState
	}
	return nil
}
