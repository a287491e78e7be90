package handlers

import (
	"fmt"

	"github.com/drivelink/driving_school/models"
	"github.com/drivelink/driving_school/notifications"
	"github.com/drivelink/driving_school/services"
	"github.com/drivelink/driving_school/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	InstructorID         string  `json:"instructor_id" validate:"required,uuid"`
	LessonDate           string  `json:"lesson_date" validate:"required"`
	TimeSlot             string  `json:"time_slot" validate:"required,oneof=morning afternoon evening"`
	Location             string  `json:"location" validate:"required"`
	CourseName           string  `json:"course_name,omitempty"`
	UseInstructorVehicle *bool   `json:"use_instructor_vehicle,omitempty"`
	TotalPrice           float64 `json:"total_price,omitempty" validate:"omitempty,gte=0"`
	Notes                string  `json:"notes,omitempty"`
}

func CreateBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	instructorID, _ := uuid.Parse(req.InstructorID)
	lessonDate, err := utils.ParseDate(req.LessonDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	useVehicle := true
	if req.UseInstructorVehicle != nil {
		useVehicle = *req.UseInstructorVehicle
	}

	booking, err := services.CreateBooking(studentID, services.CreateBookingInput{
		InstructorID:         instructorID,
		LessonDate:           lessonDate,
		TimeSlot:             req.TimeSlot,
		Location:             req.Location,
		CourseName:           req.CourseName,
		UseInstructorVehicle: useVehicle,
		TotalPrice:           req.TotalPrice,
		Notes:                req.Notes,
	})
	if err != nil {
		return serviceError(c, err)
	}

	if full, err := services.GetBooking(booking.ID); err == nil {
		go notifications.SendEmail(full.Instructor.FullName, full.Instructor.Email,
			"New Lesson Request",
			fmt.Sprintf("<h1>New Booking Request</h1><p>%s has requested a %s lesson on %s. Log in to confirm or decline.</p>",
				full.Student.FullName, booking.TimeSlot, utils.DateKey(booking.LessonDate)))
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func ConfirmBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	actorID, _ := uuid.Parse(claims["user_id"].(string))

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := services.ConfirmBooking(bookingID, actorID)
	if err != nil {
		return serviceError(c, err)
	}

	if full, err := services.GetBooking(booking.ID); err == nil {
		go notifications.SendEmail(full.Student.FullName, full.Student.Email,
			"Your Lesson is Confirmed!",
			fmt.Sprintf("<h1>Booking Confirmed</h1><p>Your %s lesson on %s has been confirmed by your instructor.</p>",
				booking.TimeSlot, utils.DateKey(booking.LessonDate)))
	}

	return c.JSON(booking)
}

func CancelBooking(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	actorID, _ := uuid.Parse(claims["user_id"].(string))

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	booking, err := services.CancelBooking(bookingID, actorID)
	if err != nil {
		return serviceError(c, err)
	}

	if full, err := services.GetBooking(booking.ID); err == nil {
		// Notify whichever side did not cancel.
		recipient := full.Student
		if actorID == full.StudentID {
			recipient = full.Instructor
		}
		go notifications.SendEmail(recipient.FullName, recipient.Email,
			"Lesson Cancelled",
			fmt.Sprintf("<h1>Booking Cancelled</h1><p>The %s lesson on %s has been cancelled.</p>",
				booking.TimeSlot, utils.DateKey(booking.LessonDate)))
	}

	return c.JSON(booking)
}

func GetMyBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	bookings, err := services.ListBookings(userID, models.RoleStudent,
		c.Query("status"), c.Query("upcoming") == "true")
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(bookings)
}

func GetMyInstructorBookings(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	bookings, err := services.ListBookings(userID, models.RoleInstructor,
		c.Query("status"), c.Query("upcoming") == "true")
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(bookings)
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func CreateReview(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	studentID, _ := uuid.Parse(claims["user_id"].(string))

	bookingID, err := uuid.Parse(c.Params("bookingId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid booking id"})
	}

	var req ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review, err := services.CreateReview(studentID, bookingID, req.Rating, req.Comment)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}
