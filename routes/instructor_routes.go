package routes

import (
	"github.com/drivelink/driving_school/handlers"
	"github.com/drivelink/driving_school/middleware"
	"github.com/gofiber/fiber/v2"
)

func InstructorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/instructors", handlers.ListActiveInstructors)
	api.Get("/instructors/:instructorId", handlers.GetInstructorProfile)
	api.Get("/instructors/:instructorId/availability", handlers.GetInstructorAvailability)

	instructor := api.Group("/instructor", middleware.Protected())
	instructor.Post("/apply", handlers.ApplyToBeAnInstructor)
	instructor.Get("/earnings", middleware.InstructorRequired(), handlers.GetInstructorEarnings)
	instructor.Get("/reviews/me", middleware.InstructorRequired(), handlers.GetMyReviews)
	instructor.Post("/reviews/:reviewId/reply", middleware.InstructorRequired(), handlers.ReplyToReview)

	availability := instructor.Group("/availability", middleware.InstructorRequired())
	availability.Post("", handlers.SetAvailability)
	availability.Get("/me", handlers.GetMyAvailability)
}
