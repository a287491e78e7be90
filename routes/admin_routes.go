package routes

import (
	"github.com/drivelink/driving_school/handlers"
	"github.com/drivelink/driving_school/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/applications/pending", handlers.ListPendingApplications)
	admin.Put("/applications/:instructorId", handlers.ManageApplication)

	admin.Get("/bookings", handlers.AdminGetAllBookings)
	admin.Post("/bookings/:bookingId/complete", handlers.CompleteBooking)

	users := admin.Group("/users")
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId/status", handlers.ToggleUserStatus)
}
