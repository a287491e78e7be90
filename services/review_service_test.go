package services

import (
	"errors"
	"testing"

	"github.com/drivelink/driving_school/models"
	"github.com/google/uuid"
)

func TestGuardReview(t *testing.T) {
	studentID := uuid.New()
	stranger := uuid.New()

	completed := func() *models.Booking {
		return &models.Booking{StudentID: studentID, InstructorID: uuid.New(), Status: models.BookingStatusCompleted}
	}

	tests := []struct {
		name            string
		booking         *models.Booking
		actor           uuid.UUID
		alreadyReviewed bool
		wantErr         error
	}{
		{"missing booking", nil, studentID, false, ErrNotFound},
		{"first review of completed booking", completed(), studentID, false, nil},
		{"not the booking's student", completed(), stranger, false, ErrNotAuthorized},
		{"pending booking", &models.Booking{StudentID: studentID, Status: models.BookingStatusPending}, studentID, false, ErrBookingNotCompleted},
		{"confirmed booking", &models.Booking{StudentID: studentID, Status: models.BookingStatusConfirmed}, studentID, false, ErrBookingNotCompleted},
		{"cancelled booking", &models.Booking{StudentID: studentID, Status: models.BookingStatusCancelled}, studentID, false, ErrBookingNotCompleted},
		{"duplicate review", completed(), studentID, true, ErrAlreadyReviewed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GuardReview(tt.booking, tt.actor, tt.alreadyReviewed)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("GuardReview() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []int{4}, 4},
		{"mixed rounds up", []int{5, 4, 5}, 4.7},
		{"rounds down", []int{4, 4, 5}, 4.3},
		{"all fives", []int{5, 5, 5, 5}, 5},
		{"half rounds away", []int{4, 5}, 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageRating(tt.ratings); got != tt.want {
				t.Errorf("AverageRating(%v) = %v, want %v", tt.ratings, got, tt.want)
			}
		})
	}
}
