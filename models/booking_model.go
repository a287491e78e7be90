package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
)

// ValidTimeSlot reports whether s is one of the bookable periods.
func ValidTimeSlot(s string) bool {
	return s == SlotMorning || s == SlotAfternoon || s == SlotEvening
}

// IsTerminalStatus reports whether a booking in this status accepts no
// further transitions.
func IsTerminalStatus(status string) bool {
	return status == BookingStatusCompleted || status == BookingStatusCancelled
}

// Booking rows are never deleted; cancellation is a status change so
// history stays linked to reviews and earnings. The partial unique index
// keeps at most one non-cancelled booking per (instructor, date, slot).
type Booking struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID    uuid.UUID `gorm:"not null" json:"student_id"`
	InstructorID uuid.UUID `gorm:"not null;uniqueIndex:idx_slot_claim,where:status <> 'cancelled'" json:"instructor_id"`
	LessonDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_slot_claim,where:status <> 'cancelled'" json:"lesson_date"`
	TimeSlot     string    `gorm:"size:20;not null;uniqueIndex:idx_slot_claim,where:status <> 'cancelled'" json:"time_slot"`
	Status       string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	TotalPrice           float64 `gorm:"type:numeric(10,2);not null;default:0" json:"total_price"`
	Location             string  `gorm:"size:255" json:"location"`
	CourseName           string  `gorm:"size:100" json:"course_name"`
	UseInstructorVehicle bool    `gorm:"default:true" json:"use_instructor_vehicle"`
	Notes                string  `gorm:"type:text" json:"notes"`

	Student    User `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Instructor User `gorm:"foreignkey:InstructorID" json:"instructor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
