package services

import (
	"math"
	"time"

	config "github.com/drivelink/driving_school/configs"
	"github.com/drivelink/driving_school/database"
	"github.com/drivelink/driving_school/models"
	"github.com/drivelink/driving_school/utils"
	"github.com/google/uuid"
)

type MonthEarnings struct {
	Month       string  `json:"month"`
	Gross       float64 `json:"gross"`
	Commission  float64 `json:"commission"`
	Earnings    float64 `json:"earnings"`
	LessonCount int     `json:"lesson_count"`
}

type EarningsSummary struct {
	CurrentMonth    MonthEarnings   `json:"current_month"`
	Monthly         []MonthEarnings `json:"monthly"`
	PendingEarnings float64         `json:"pending_earnings"`
	LifetimeGross   float64         `json:"lifetime_gross"`
	LifetimeNet     float64         `json:"lifetime_net"`
	LifetimeLessons int             `json:"lifetime_lessons"`
}

// ComputeEarnings folds an instructor's booking history into the earnings
// report. Pure function of its inputs: completed bookings count toward gross,
// confirmed-but-not-completed ones toward the pending estimate, everything
// else is ignored. Monthly covers the trailing 12 months oldest first,
// current month last. Money is rounded to 2 decimals at the edges only.
func ComputeEarnings(bookings []models.Booking, now time.Time, rate float64) EarningsSummary {
	// Anchor on the first of the month so month arithmetic never spills
	// across a short month.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	months := make([]MonthEarnings, 12)
	index := make(map[string]*MonthEarnings, 12)
	for i := 0; i < 12; i++ {
		key := utils.MonthKey(anchor.AddDate(0, i-11, 0))
		months[i].Month = key
		index[key] = &months[i]
	}

	var summary EarningsSummary
	for _, b := range bookings {
		switch b.Status {
		case models.BookingStatusConfirmed:
			summary.PendingEarnings += b.TotalPrice * (1 - rate)
		case models.BookingStatusCompleted:
			summary.LifetimeGross += b.TotalPrice
			summary.LifetimeLessons++
			if bucket, ok := index[utils.MonthKey(b.LessonDate)]; ok {
				bucket.Gross += b.TotalPrice
				bucket.LessonCount++
			}
		}
	}

	for i := range months {
		months[i].Commission = round2(months[i].Gross * rate)
		months[i].Earnings = round2(months[i].Gross * (1 - rate))
		months[i].Gross = round2(months[i].Gross)
	}

	summary.Monthly = months
	summary.CurrentMonth = months[11]
	summary.PendingEarnings = round2(summary.PendingEarnings)
	summary.LifetimeNet = round2(summary.LifetimeGross * (1 - rate))
	summary.LifetimeGross = round2(summary.LifetimeGross)
	return summary
}

// GetInstructorEarnings snapshots the instructor's ledger and aggregates it.
// Read-only: nothing here writes back.
func GetInstructorEarnings(instructorID uuid.UUID) (*EarningsSummary, error) {
	var bookings []models.Booking
	if err := database.DB.
		Where("instructor_id = ?", instructorID).
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	summary := ComputeEarnings(bookings, time.Now(), config.CommissionRate())
	return &summary, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
