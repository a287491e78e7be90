package routes

import (
	"github.com/drivelink/driving_school/handlers"
	"github.com/drivelink/driving_school/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Post("/:bookingId/cancel", handlers.CancelBooking)
	booking.Post("/:bookingId/review", handlers.CreateReview)

	instructorBooking := api.Group("/instructor/bookings", middleware.Protected(), middleware.InstructorRequired())
	instructorBooking.Get("", handlers.GetMyInstructorBookings)
	instructorBooking.Post("/:bookingId/confirm", handlers.ConfirmBooking)
	instructorBooking.Post("/:bookingId/cancel", handlers.CancelBooking)
}
