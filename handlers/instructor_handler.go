package handlers

import (
	"errors"
	"time"

	"github.com/drivelink/driving_school/database"
	"github.com/drivelink/driving_school/models"
	"github.com/drivelink/driving_school/services"
	"github.com/drivelink/driving_school/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstructorApplicationRequest struct {
	Headline     string  `json:"headline" validate:"required"`
	Bio          string  `json:"bio" validate:"required"`
	VehicleModel string  `json:"vehicle_model,omitempty"`
	Transmission string  `json:"transmission" validate:"required,oneof=manual automatic"`
	HourlyRate   float64 `json:"hourly_rate" validate:"required,gt=0"`
}

func ApplyToBeAnInstructor(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req InstructorApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.Instructor
	err := database.DB.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already submitted an application."})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	application := models.Instructor{
		UserID:       userID,
		Headline:     &req.Headline,
		Bio:          &req.Bio,
		Transmission: req.Transmission,
		HourlyRate:   req.HourlyRate,
	}
	if req.VehicleModel != "" {
		application.VehicleModel = &req.VehicleModel
	}

	if err := database.DB.Create(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create application"})
	}

	return c.Status(fiber.StatusCreated).JSON(application)
}

func ListActiveInstructors(c *fiber.Ctx) error {
	var instructors []models.Instructor
	query := database.DB.Preload("User").Where("status = ?", "active")

	if transmission := c.Query("transmission"); transmission != "" {
		query = query.Where("transmission = ?", transmission)
	}
	if minRating := c.Query("min_rating"); minRating != "" {
		query = query.Where("avg_rating >= ?", minRating)
	}

	if err := query.Order("avg_rating desc").Find(&instructors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve instructors"})
	}

	return c.JSON(instructors)
}

func GetInstructorProfile(c *fiber.Ctx) error {
	instructorID := c.Params("instructorId")

	var instructor models.Instructor
	if err := database.DB.Preload("User").First(&instructor, "user_id = ? AND status = ?", instructorID, "active").Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Active instructor not found"})
	}

	return c.JSON(instructor)
}

type SetAvailabilityRequest struct {
	Date        string `json:"date" validate:"required"`
	Period      string `json:"period" validate:"required"`
	IsAvailable *bool  `json:"is_available" validate:"required"`
}

func SetAvailability(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	instructorID, _ := uuid.Parse(claims["user_id"].(string))

	var req SetAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slot, err := services.SetAvailability(instructorID, instructorID, date, req.Period, *req.IsAvailable)
	if err != nil {
		return serviceError(c, err)
	}
	// Upsert: the same response whether the flag was inserted or overwritten.
	return c.JSON(slot)
}

func GetMyAvailability(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	instructorID, _ := uuid.Parse(claims["user_id"].(string))

	return availabilityRange(c, instructorID)
}

func GetInstructorAvailability(c *fiber.Ctx) error {
	instructorID, err := uuid.Parse(c.Params("instructorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructor id"})
	}

	return availabilityRange(c, instructorID)
}

// availabilityRange answers calendar queries. Defaults to the next 30 days
// when the range is not given. Dates absent from the response are open.
func availabilityRange(c *fiber.Ctx, instructorID uuid.UUID) error {
	start := time.Now()
	end := start.AddDate(0, 0, 30)

	if from := c.Query("from"); from != "" {
		parsed, err := utils.ParseDate(from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		start = parsed
	}
	if to := c.Query("to"); to != "" {
		parsed, err := utils.ParseDate(to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		end = parsed
	}

	slots, err := services.GetAvailability(instructorID, start, end)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(slots)
}

func GetInstructorEarnings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	instructorID, _ := uuid.Parse(claims["user_id"].(string))

	summary, err := services.GetInstructorEarnings(instructorID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(summary)
}

func GetMyReviews(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	instructorID, _ := uuid.Parse(claims["user_id"].(string))

	reviews, err := services.ListInstructorReviews(instructorID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(reviews)
}

type ReviewReplyRequest struct {
	Reply string `json:"reply" validate:"required"`
}

func ReplyToReview(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	instructorID, _ := uuid.Parse(claims["user_id"].(string))

	reviewID, err := uuid.Parse(c.Params("reviewId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid review id"})
	}

	var req ReviewReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := services.ReplyToReview(instructorID, reviewID, req.Reply)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(review)
}
