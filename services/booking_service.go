package services

import (
	"errors"
	"time"

	"github.com/drivelink/driving_school/database"
	"github.com/drivelink/driving_school/models"
	"github.com/drivelink/driving_school/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreateBookingInput struct {
	InstructorID         uuid.UUID
	LessonDate           time.Time
	TimeSlot             string
	Location             string
	CourseName           string
	UseInstructorVehicle bool
	TotalPrice           float64
	Notes                string
}

// CreateBooking claims a slot for a student. The whole check-and-insert runs
// in one transaction: the availability row (when present) is locked FOR
// UPDATE, the slot key is re-checked for a live booking under that lock, and
// the insert sits behind a partial unique index on
// (instructor_id, lesson_date, time_slot) WHERE status <> 'cancelled'.
// Two concurrent creates for the same key get exactly one booking; the loser
// sees ErrSlotUnavailable.
func CreateBooking(studentID uuid.UUID, in CreateBookingInput) (*models.Booking, error) {
	if in.InstructorID == uuid.Nil || in.LessonDate.IsZero() {
		return nil, ErrInvalidInput
	}
	if !models.ValidTimeSlot(in.TimeSlot) {
		return nil, ErrInvalidPeriod
	}
	if in.TotalPrice < 0 {
		return nil, ErrInvalidInput
	}

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var instructor models.Instructor
		if err := tx.First(&instructor, "user_id = ? AND status = ?", in.InstructorID, "active").Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInstructorNotFound
			}
			return err
		}

		// Absent row stays nil: GuardSlot treats that as bookable.
		var claimed *models.AvailabilitySlot
		var slot models.AvailabilitySlot
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, "instructor_id = ? AND slot_date = ? AND period = ?",
				in.InstructorID, utils.StartOfDay(in.LessonDate), in.TimeSlot).Error
		switch {
		case err == nil:
			claimed = &slot
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}
		if err := GuardSlot(claimed); err != nil {
			return err
		}

		var taken int64
		if err := tx.Model(&models.Booking{}).
			Where("instructor_id = ? AND lesson_date = ? AND time_slot = ? AND status <> ?",
				in.InstructorID, utils.StartOfDay(in.LessonDate), in.TimeSlot, models.BookingStatusCancelled).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return ErrSlotUnavailable
		}

		booking = models.Booking{
			StudentID:            studentID,
			InstructorID:         in.InstructorID,
			LessonDate:           utils.StartOfDay(in.LessonDate),
			TimeSlot:             in.TimeSlot,
			Status:               models.BookingStatusPending,
			TotalPrice:           in.TotalPrice,
			Location:             in.Location,
			CourseName:           in.CourseName,
			UseInstructorVehicle: in.UseInstructorVehicle,
			Notes:                in.Notes,
		}
		if err := tx.Create(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotUnavailable
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ConfirmBooking moves pending -> confirmed. Only the booking's instructor
// may confirm.
func ConfirmBooking(bookingID, actorID uuid.UUID) (*models.Booking, error) {
	return transition(bookingID, models.BookingStatusConfirmed, func(b *models.Booking) error {
		return GuardConfirm(b, actorID)
	})
}

// CancelBooking moves any non-terminal booking to cancelled. Either party
// may cancel; a second cancel fails ErrInvalidState and changes nothing.
func CancelBooking(bookingID, actorID uuid.UUID) (*models.Booking, error) {
	return transition(bookingID, models.BookingStatusCancelled, func(b *models.Booking) error {
		return GuardCancel(b, actorID)
	})
}

// CompleteBooking moves confirmed -> completed. Administrative: called by
// the admin surface and the completion sweep.
func CompleteBooking(bookingID uuid.UUID) (*models.Booking, error) {
	return transition(bookingID, models.BookingStatusCompleted, GuardComplete)
}

// transition applies one state-machine edge. The row is locked for the
// duration so concurrent transitions on one booking serialize; the guard
// runs strictly before the write and a failed guard mutates nothing.
func transition(bookingID uuid.UUID, to string, guard func(*models.Booking) error) (*models.Booking, error) {
	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, "id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := guard(&booking); err != nil {
			return err
		}
		booking.Status = to
		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListBookings returns a user's bookings from their side of the marketplace,
// date descending for dashboards. With upcoming=true it instead returns only
// future, non-terminal bookings date ascending.
func ListBookings(userID uuid.UUID, role, statusFilter string, upcoming bool) ([]models.Booking, error) {
	query := database.DB.Preload("Student").Preload("Instructor")

	switch role {
	case models.RoleInstructor:
		query = query.Where("instructor_id = ?", userID)
	default:
		query = query.Where("student_id = ?", userID)
	}

	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}

	if upcoming {
		query = query.
			Where("lesson_date >= ? AND status IN ?", utils.StartOfDay(time.Now()),
				[]string{models.BookingStatusPending, models.BookingStatusConfirmed}).
			Order("lesson_date asc")
	} else {
		query = query.Order("lesson_date desc")
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetBooking loads one booking with both parties preloaded.
func GetBooking(bookingID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := database.DB.Preload("Student").Preload("Instructor").
		First(&booking, "id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}
