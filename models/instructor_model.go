package models

import (
	"time"

	"github.com/google/uuid"
)

type Instructor struct {
	UserID       uuid.UUID `gorm:"primary_key" json:"user_id"`
	Headline     *string   `gorm:"size:255" json:"headline"`
	Bio          *string   `gorm:"type:text" json:"bio"`
	VehicleModel *string   `gorm:"size:100" json:"vehicle_model"`
	Transmission string    `gorm:"size:20;not null;default:'manual'" json:"transmission"`
	HourlyRate   float64   `gorm:"type:numeric(10,2);not null;default:0" json:"hourly_rate"`
	Status       string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	AvgRating    float64   `gorm:"default:0" json:"avg_rating"`
	ReviewCount  int       `gorm:"default:0" json:"review_count"`

	User User `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
