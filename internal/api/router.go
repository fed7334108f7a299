package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/billboardbooker/marketplace/internal/api/handler"
	"github.com/billboardbooker/marketplace/internal/api/middleware"
	"github.com/billboardbooker/marketplace/internal/core/domain"
	"github.com/billboardbooker/marketplace/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store ports.DocumentStore, authService ports.AuthService, inventory ports.InventoryService, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("billboard"))

	authHandler := handler.NewAuthHandler(authService)
	billboardHandler := handler.NewBillboardHandler(inventory)
	bookingHandler := handler.NewBookingHandler(inventory)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	// --- Inventory & bookings ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/billboards", billboardHandler.List)
	v1.POST("/billboards", billboardHandler.Create, middleware.RBAC(domain.RoleOwner))
	v1.PUT("/billboards/:id", billboardHandler.Update, middleware.RBAC(domain.RoleOwner))
	v1.DELETE("/billboards/:id", billboardHandler.Remove, middleware.RBAC(domain.RoleOwner))
	v1.POST("/billboards/:id/toggle", billboardHandler.Toggle, middleware.RBAC(domain.RoleOwner))
	v1.POST("/billboards/:id/cancel-bookings", billboardHandler.CancelBookings, middleware.RBAC(domain.RoleOwner))

	v1.GET("/bookings", bookingHandler.List)
	v1.POST("/bookings", bookingHandler.Create, middleware.RBAC(domain.RoleCustomer))
	v1.POST("/bookings/:id/cancel", bookingHandler.Cancel)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – does the backend answer?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
