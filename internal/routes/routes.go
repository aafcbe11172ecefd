package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/velora/internal/config"
	"github.com/example/velora/internal/handlers"
	"github.com/example/velora/internal/middleware"
	"github.com/example/velora/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, st *store.Store, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(st, cfg)
	profileHandler := handlers.NewProfileHandler(st)
	paymentHandler := handlers.NewPaymentHandler(st)
	adminHandler := handlers.NewAdminHandler(st, cfg)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/verify", authHandler.Verify)
	auth.Post("/resend", authHandler.Resend)
	auth.Post("/social", authHandler.Social)

	// Catalog routes
	profiles := api.Group("/profiles")
	profiles.Get("/", profileHandler.ListProfiles)
	profiles.Get("/:id", profileHandler.GetProfile)

	// Ledger routes
	payments := api.Group("/payments", middleware.AuthMiddleware(cfg))
	payments.Post("/", paymentHandler.CreatePayment)
	payments.Get("/", paymentHandler.ListPayments)

	// Admin routes
	admin := api.Group("/admin")
	admin.Post("/login", adminHandler.Login)

	adminOnly := admin.Group("", middleware.AdminMiddleware(cfg))
	adminOnly.Get("/stats", adminHandler.DashboardStats)
	adminOnly.Get("/users", adminHandler.ListUsers)
	adminOnly.Get("/export", adminHandler.Export)
	adminOnly.Post("/import", adminHandler.Import)
	adminOnly.Post("/clear", adminHandler.Clear)
	adminOnly.Post("/profiles", profileHandler.CreateProfile)
	adminOnly.Put("/profiles/:id", profileHandler.UpdateProfile)
	adminOnly.Delete("/profiles/:id", profileHandler.DeleteProfile)
}
