package handlers

import (
	"github.com/drivelink/driving_school/database"
	"github.com/drivelink/driving_school/models"
	"github.com/drivelink/driving_school/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ListPendingApplications(c *fiber.Ctx) error {
	var pending []models.Instructor
	if err := database.DB.Preload("User").Where("status = ?", "pending").Find(&pending).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(pending)
}

func ManageApplication(c *fiber.Ctx) error {
	type MgtRequest struct {
		Status string `json:"status" validate:"required,oneof=active rejected"`
	}

	var req MgtRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	instructorUserID := c.Params("instructorId")

	var application models.Instructor
	if err := database.DB.Where("user_id = ?", instructorUserID).First(&application).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Application not found"})
	}

	var user models.User
	if err := database.DB.Where("id = ?", instructorUserID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Associated user not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		application.Status = req.Status
		if err := tx.Save(&application).Error; err != nil {
			return err
		}

		if req.Status == "active" {
			user.Role = models.RoleInstructor
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update application"})
	}

	return c.JSON(fiber.Map{"message": "Application processed successfully", "status": application.Status})
}

// CompleteBooking is the administrative confirmed -> completed trigger.
// The scheduled sweep handles elapsed lessons; this endpoint covers manual
// staff intervention.
func CompleteBooking(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := services.CompleteBooking(bookingID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(booking)
}

func AdminGetAllBookings(c *fiber.Ctx) error {
	query := database.DB.Preload("Student").Preload("Instructor").Order("lesson_date desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(bookings)
}

func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(users)
}

func ToggleUserStatus(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = !user.IsActive
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(fiber.Map{"id": user.ID, "is_active": user.IsActive})
}
