package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hostaltucan/reservas-api/docs"
	"github.com/hostaltucan/reservas-api/internal/api/handler"
	"github.com/hostaltucan/reservas-api/internal/api/middleware"
	"github.com/hostaltucan/reservas-api/internal/core/domain"
	"github.com/hostaltucan/reservas-api/internal/core/ports"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Logger       zerolog.Logger
	Tokens       middleware.TokenParser
	Auth         ports.AuthService
	Users        ports.UserService
	Reservations ports.ReservationService
	DB           handler.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomiddleware.CORS())
	e.Use(middleware.Metrics())

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	reservationHandler := handler.NewReservationHandler(d.Reservations)
	auth := middleware.Auth(d.Tokens)

	// --- Session ---
	e.POST("/login", authHandler.Login)

	// --- Users (administrators only) ---
	users := e.Group("/usuarios", auth, middleware.RBAC(domain.RoleAdministrator))
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.PUT("/:id", userHandler.Update)

	// --- Reservations ---
	reservations := e.Group("/reservas", auth)
	reservations.POST("", reservationHandler.Create,
		middleware.RBAC(domain.RoleEmployee))
	reservations.GET("", reservationHandler.List,
		middleware.RBAC(domain.RoleSupervisor, domain.RoleEmployee, domain.RoleClient))
	reservations.PUT("/:id", reservationHandler.Update,
		middleware.RBAC(domain.RoleSupervisor, domain.RoleEmployee))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.DB)

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness

	// --- Operations ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
