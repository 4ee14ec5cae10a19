package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/dhohnholt/davidhohnholt/internal/config"
	"github.com/dhohnholt/davidhohnholt/internal/handlers"
	"github.com/dhohnholt/davidhohnholt/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	portfolioHandler *handlers.PortfolioHandler,
	bookingHandler *handlers.BookingHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public catalog
	api.Get("/portfolio", portfolioHandler.List)
	api.Get("/portfolio/:id", portfolioHandler.Get)

	// Public booking intake: stricter limit, the form posts here directly
	api.Post("/bookings", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), bookingHandler.Create)

	// Auth endpoints are public but get a stricter rate limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required) - applied per route so the JWT
	// middleware never touches the public surface
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/session", middleware.JWTProtected(cfg), authHandler.Session)
	api.Get("/profile", middleware.JWTProtected(cfg), profileHandler.Get)
	api.Put("/profile", middleware.JWTProtected(cfg), profileHandler.Update)

	// Admin dashboard (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Post("/portfolio", portfolioHandler.Create)
	admin.Put("/portfolio/:id", portfolioHandler.Update)
	admin.Delete("/portfolio/:id", portfolioHandler.Delete)
	admin.Get("/bookings", bookingHandler.List)
	admin.Get("/bookings/:id", bookingHandler.Get)
	admin.Put("/bookings/:id", bookingHandler.Update)
	admin.Delete("/bookings/:id", bookingHandler.Delete)
}
