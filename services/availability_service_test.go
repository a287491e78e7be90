package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

// These exercise the validations that run strictly before any store access,
// so a failed precondition can never leave a partial write behind.

func TestSetAvailabilityOwnership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	_, err := SetAvailability(stranger, owner, time.Now(), "morning", false)
	if !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("SetAvailability by non-owner = %v, want %v", err, ErrNotAuthorized)
	}
}

func TestSetAvailabilityRejectsUnknownPeriod(t *testing.T) {
	owner := uuid.New()

	for _, period := range []string{"", "night", "09:00"} {
		_, err := SetAvailability(owner, owner, time.Now(), period, true)
		if !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("SetAvailability(period=%q) = %v, want %v", period, err, ErrInvalidPeriod)
		}
	}
}

func TestCreateBookingInputValidation(t *testing.T) {
	studentID := uuid.New()
	instructorID := uuid.New()
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      CreateBookingInput
		wantErr error
	}{
		{
			name:    "missing instructor",
			in:      CreateBookingInput{LessonDate: date, TimeSlot: "morning"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing date",
			in:      CreateBookingInput{InstructorID: instructorID, TimeSlot: "morning"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown period",
			in:      CreateBookingInput{InstructorID: instructorID, LessonDate: date, TimeSlot: "midnight"},
			wantErr: ErrInvalidPeriod,
		},
		{
			name:    "negative price",
			in:      CreateBookingInput{InstructorID: instructorID, LessonDate: date, TimeSlot: "morning", TotalPrice: -1},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateBooking(studentID, tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateBooking() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateReviewRatingBounds(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		_, err := CreateReview(uuid.New(), uuid.New(), rating, "")
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("CreateReview(rating=%d) = %v, want %v", rating, err, ErrInvalidInput)
		}
	}
}
