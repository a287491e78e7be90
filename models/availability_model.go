package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is an explicit per-day flag on an instructor's calendar.
// A missing row for a (instructor, date, period) key means the period is
// open for booking.
type AvailabilitySlot struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InstructorID uuid.UUID `gorm:"not null;uniqueIndex:idx_instructor_day_period" json:"-"`
	SlotDate     time.Time `gorm:"type:date;not null;uniqueIndex:idx_instructor_day_period" json:"slot_date"`
	Period       string    `gorm:"size:20;not null;uniqueIndex:idx_instructor_day_period" json:"period"`
	IsAvailable  bool      `gorm:"not null;default:true" json:"is_available"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
