package services

import (
	"time"

	"github.com/drivelink/driving_school/cache"
	"github.com/drivelink/driving_school/database"
	"github.com/drivelink/driving_school/models"
	"github.com/drivelink/driving_school/utils"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

// SetAvailability writes one calendar flag. Only the owning instructor may
// touch their calendar, and the period must be a known slot before anything
// is written.
func SetAvailability(actorID, instructorID uuid.UUID, date time.Time, period string, isAvailable bool) (*models.AvailabilitySlot, error) {
	if actorID != instructorID {
		return nil, ErrNotAuthorized
	}
	if !models.ValidTimeSlot(period) {
		return nil, ErrInvalidPeriod
	}

	slot := models.AvailabilitySlot{
		InstructorID: instructorID,
		SlotDate:     utils.StartOfDay(date),
		Period:       period,
		IsAvailable:  isAvailable,
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "instructor_id"}, {Name: "slot_date"}, {Name: "period"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_available", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return nil, err
	}

	cache.InvalidateInstructor(instructorID)
	return &slot, nil
}

// GetAvailability returns the explicit calendar rows in [startDate, endDate]
// grouped by date key. Dates with no entry for a period are open by default;
// callers render absence as bookable.
func GetAvailability(instructorID uuid.UUID, startDate, endDate time.Time) (map[string][]models.AvailabilitySlot, error) {
	start := utils.StartOfDay(startDate)
	end := utils.StartOfDay(endDate)

	slots, ok := cache.GetInstructorSlots(instructorID)
	if !ok {
		if err := database.DB.
			Where("instructor_id = ?", instructorID).
			Order("slot_date asc, period asc").
			Find(&slots).Error; err != nil {
			return nil, err
		}
		cache.SetInstructorSlots(instructorID, slots)
	}

	byDate := make(map[string][]models.AvailabilitySlot)
	for _, slot := range slots {
		if slot.SlotDate.Before(start) || slot.SlotDate.After(end) {
			continue
		}
		key := utils.DateKey(slot.SlotDate)
		byDate[key] = append(byDate[key], slot)
	}
	return byDate, nil
}
