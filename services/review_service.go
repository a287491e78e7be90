package services

import (
	"errors"
	"math"

	"github.com/drivelink/driving_school/database"
	"github.com/drivelink/driving_school/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AverageRating is the mean of ratings rounded to 1 decimal, 0 when empty.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return math.Round(float64(sum)/float64(len(ratings))*10) / 10
}

// CreateReview records a student's review of a completed booking and
// refreshes the instructor's aggregate in the same transaction. One review
// per booking, backed by the unique constraint on booking_id.
func CreateReview(studentID, bookingID uuid.UUID, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidInput
	}

	var review models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var existing models.Review
		alreadyReviewed := false
		err := tx.Where("booking_id = ?", bookingID).First(&existing).Error
		switch {
		case err == nil:
			alreadyReviewed = true
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}

		if err := GuardReview(&booking, studentID, alreadyReviewed); err != nil {
			return err
		}

		review = models.Review{
			BookingID:    booking.ID,
			StudentID:    studentID,
			InstructorID: booking.InstructorID,
			Rating:       rating,
			Comment:      comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyReviewed
			}
			return err
		}

		var ratings []int
		if err := tx.Model(&models.Review{}).
			Where("instructor_id = ?", booking.InstructorID).
			Pluck("rating", &ratings).Error; err != nil {
			return err
		}

		return tx.Model(&models.Instructor{}).
			Where("user_id = ?", booking.InstructorID).
			Updates(map[string]interface{}{
				"avg_rating":   AverageRating(ratings),
				"review_count": len(ratings),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ReplyToReview lets the reviewed instructor attach one public reply.
func ReplyToReview(instructorID, reviewID uuid.UUID, reply string) (*models.Review, error) {
	if reply == "" {
		return nil, ErrInvalidInput
	}

	var review models.Review
	if err := database.DB.First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if review.InstructorID != instructorID {
		return nil, ErrNotAuthorized
	}

	review.Reply = &reply
	if err := database.DB.Save(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// ListInstructorReviews returns an instructor's reviews, newest first.
func ListInstructorReviews(instructorID uuid.UUID) ([]models.Review, error) {
	var reviews []models.Review
	err := database.DB.Preload("Student").
		Where("instructor_id = ?", instructorID).
		Order("created_at desc").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
