package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/dra200/exwork/internal/handlers"
	"github.com/dra200/exwork/internal/middleware"
	"github.com/dra200/exwork/internal/store"
)

// ErrorHandler renders fiber errors as the JSON error envelope used
// across the API. Wire it into fiber.Config so middleware short-circuits
// (401/403/404) share the shape of handler responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"message": err.Error()})
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, st *store.Store, sessions *session.Store) {
	authHandler := handlers.NewAuthHandler(st, sessions)
	contentHandler := handlers.NewContentHandler(st)
	contactHandler := handlers.NewContactHandler(st)
	companyHandler := handlers.NewCompanyHandler(st)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/status", authHandler.Status)

	// Public content
	api.Get("/services", contentHandler.ListServices)
	api.Get("/features", contentHandler.ListFeatures)
	api.Get("/testimonials", contentHandler.ListTestimonials)
	api.Get("/company-details", companyHandler.Get)
	api.Post("/contact", contactHandler.Submit)

	// Admin routes
	admin := api.Group("/admin", middleware.RequireAdmin(sessions, st))

	admin.Get("/contact-requests", contactHandler.List)
	admin.Patch("/contact-requests/:id/status", contactHandler.UpdateStatus)
	admin.Delete("/contact-requests/:id", contactHandler.Delete)

	admin.Post("/services", contentHandler.CreateService)
	admin.Put("/services/:id", contentHandler.UpdateService)
	admin.Delete("/services/:id", contentHandler.DeleteService)

	admin.Post("/features", contentHandler.CreateFeature)
	admin.Put("/features/:id", contentHandler.UpdateFeature)
	admin.Delete("/features/:id", contentHandler.DeleteFeature)

	admin.Post("/testimonials", contentHandler.CreateTestimonial)
	admin.Put("/testimonials/:id", contentHandler.UpdateTestimonial)
	admin.Delete("/testimonials/:id", contentHandler.DeleteTestimonial)

	admin.Put("/company-details", companyHandler.Update)
}
