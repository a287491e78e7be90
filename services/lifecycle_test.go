package services

import (
	"errors"
	"testing"

	"github.com/drivelink/driving_school/models"
	"github.com/google/uuid"
)

func TestCanTransition(t *testing.T) {
	statuses := []string{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCompleted,
		models.BookingStatusCancelled,
	}

	legal := map[[2]string]bool{
		{models.BookingStatusPending, models.BookingStatusConfirmed}:   true,
		{models.BookingStatusPending, models.BookingStatusCancelled}:   true,
		{models.BookingStatusConfirmed, models.BookingStatusCompleted}: true,
		{models.BookingStatusConfirmed, models.BookingStatusCancelled}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			got := CanTransition(from, to)
			want := legal[[2]string{from, to}]
			if got != want {
				t.Errorf("CanTransition(%q, %q) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	if CanTransition("unattended", models.BookingStatusCancelled) {
		t.Error("unknown status must have no outgoing edges")
	}
}

func TestGuardConfirm(t *testing.T) {
	instructorID := uuid.New()
	studentID := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name    string
		booking *models.Booking
		actor   uuid.UUID
		wantErr error
	}{
		{
			name:    "missing booking",
			booking: nil,
			actor:   instructorID,
			wantErr: ErrNotFound,
		},
		{
			name:    "instructor confirms pending",
			booking: &models.Booking{StudentID: studentID, InstructorID: instructorID, Status: models.BookingStatusPending},
			actor:   instructorID,
			wantErr: nil,
		},
		{
			name:    "student cannot confirm",
			booking: &models.Booking{StudentID: studentID, InstructorID: instructorID, Status: models.BookingStatusPending},
			actor:   studentID,
			wantErr: ErrNotAuthorized,
		},
		{
			name:    "stranger cannot confirm",
			booking: &models.Booking{StudentID: studentID, InstructorID: instructorID, Status: models.BookingStatusPending},
			actor:   stranger,
			wantErr: ErrNotAuthorized,
		},
		{
			name:    "already confirmed",
			booking: &models.Booking{StudentID: studentID, InstructorID: instructorID, Status: models.BookingStatusConfirmed},
			actor:   instructorID,
			wantErr: ErrInvalidState,
		},
		{
			name:    "cancelled is terminal",
			booking: &models.Booking{StudentID: studentID, InstructorID: instructorID, Status: models.BookingStatusCancelled},
			actor:   instructorID,
			wantErr: ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GuardConfirm(tt.booking, tt.actor)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GuardConfirm() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGuardCancel(t *testing.T) {
	instructorID := uuid.New()
	studentID := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name    string
		status  string
		actor   uuid.UUID
		wantErr error
	}{
		{"student cancels pending", models.BookingStatusPending, studentID, nil},
		{"instructor cancels pending", models.BookingStatusPending, instructorID, nil},
		{"student cancels confirmed", models.BookingStatusConfirmed, studentID, nil},
		{"stranger cannot cancel", models.BookingStatusPending, stranger, ErrNotAuthorized},
		{"completed is terminal", models.BookingStatusCompleted, studentID, ErrInvalidState},
		{"cancelled is terminal", models.BookingStatusCancelled, studentID, ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &models.Booking{StudentID: studentID, InstructorID: instructorID, Status: tt.status}
			err := GuardCancel(b, tt.actor)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GuardCancel() = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("missing booking", func(t *testing.T) {
		if err := GuardCancel(nil, studentID); !errors.Is(err, ErrNotFound) {
			t.Errorf("GuardCancel(nil) = %v, want %v", err, ErrNotFound)
		}
	})
}

// Cancelling twice: the first pass succeeds, the second finds a terminal
// booking and is rejected without touching anything.
func TestCancelIdempotence(t *testing.T) {
	studentID := uuid.New()
	b := &models.Booking{StudentID: studentID, InstructorID: uuid.New(), Status: models.BookingStatusPending}

	if err := GuardCancel(b, studentID); err != nil {
		t.Fatalf("first cancel rejected: %v", err)
	}
	b.Status = models.BookingStatusCancelled

	if err := GuardCancel(b, studentID); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second cancel = %v, want %v", err, ErrInvalidState)
	}
	if b.Status != models.BookingStatusCancelled {
		t.Errorf("status changed on rejected cancel: %q", b.Status)
	}
}

func TestGuardSlot(t *testing.T) {
	tests := []struct {
		name    string
		slot    *models.AvailabilitySlot
		wantErr error
	}{
		{"absent row is bookable by default", nil, nil},
		{"explicitly open slot", &models.AvailabilitySlot{IsAvailable: true}, nil},
		{"explicitly closed slot", &models.AvailabilitySlot{IsAvailable: false}, ErrSlotUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := GuardSlot(tt.slot); !errors.Is(err, tt.wantErr) {
				t.Errorf("GuardSlot() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGuardComplete(t *testing.T) {
	tests := []struct {
		status  string
		wantErr error
	}{
		{models.BookingStatusConfirmed, nil},
		{models.BookingStatusPending, ErrInvalidState},
		{models.BookingStatusCompleted, ErrInvalidState},
		{models.BookingStatusCancelled, ErrInvalidState},
	}

	for _, tt := range tests {
		b := &models.Booking{StudentID: uuid.New(), InstructorID: uuid.New(), Status: tt.status}
		if err := GuardComplete(b); !errors.Is(err, tt.wantErr) {
			t.Errorf("GuardComplete(%q) = %v, want %v", tt.status, err, tt.wantErr)
		}
	}

	if err := GuardComplete(nil); !errors.Is(err, ErrNotFound) {
		t.Errorf("GuardComplete(nil) = %v, want %v", err, ErrNotFound)
	}
}
