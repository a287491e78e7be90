package jobs

import (
	"log"
	"time"

	"github.com/drivelink/driving_school/database"
	"github.com/drivelink/driving_school/models"
	"github.com/drivelink/driving_school/services"
	"github.com/drivelink/driving_school/utils"
)

// CompleteElapsedLessons moves confirmed bookings whose lesson date has
// passed into completed. This is the administrative Complete trigger for the
// common case; staff can also complete individual bookings by hand.
func CompleteElapsedLessons() {
	log.Println("Running job: CompleteElapsedLessons...")

	today := utils.StartOfDay(time.Now())

	var elapsed []models.Booking
	err := database.DB.
		Where("status = ? AND lesson_date < ?", models.BookingStatusConfirmed, today).
		Find(&elapsed).Error
	if err != nil {
		log.Printf("Error finding elapsed lessons: %v", err)
		return
	}

	if len(elapsed) == 0 {
		log.Println("No elapsed lessons to complete.")
		return
	}

	completed := 0
	for _, booking := range elapsed {
		if _, err := services.CompleteBooking(booking.ID); err != nil {
			// Another transition may have won the race for this booking.
			log.Printf("Skipping booking %s: %v", booking.ID, err)
			continue
		}
		completed++
	}

	log.Printf("Marked %d lesson(s) as completed.", completed)
}
