package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/paqueteria/logistics-api/internal/api/handler"
	"github.com/paqueteria/logistics-api/internal/api/middleware"
	"github.com/paqueteria/logistics-api/internal/core/domain"
	"github.com/paqueteria/logistics-api/internal/core/ports"
	"github.com/paqueteria/logistics-api/internal/infrastructure/http/handlers"
	"github.com/paqueteria/logistics-api/pkg/logger"
)

const metricsSubsystem = "http"

// Dependencies carries everything the router wires into handlers and gates.
type Dependencies struct {
	Log    zerolog.Logger
	Tokens ports.TokenVerifier

	Auth     ports.AuthService
	Personas ports.PersonaService
	Clientes ports.ClienteService
	Paquetes ports.PaqueteService
	Facturas ports.FacturaService
	Rutas    ports.RutaService
	Centros  ports.CentroService

	// Idempotency is optional; without it Idempotency-Key is ignored.
	Idempotency ports.IdempotencyStore
	Readiness   []handlers.DependencyCheck

	// Registry receives the HTTP metrics. Nil uses the Prometheus default.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(logger.RequestLogger(deps.Log))
	e.Use(prometheusMiddleware(deps.Registry))

	// --- Infrastructure routes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Readiness...)

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness
	e.GET("/metrics", metricsHandler(deps.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Gates ---
	// Attached per route: Group.Use would also gate unknown /api paths,
	// turning their 404 into 403.
	authenticated := middleware.Auth(deps.Tokens)
	anyRole := middleware.PermitirRoles(domain.RoleAdmin, domain.RoleCliente, domain.RoleEmpleado)
	staff := middleware.PermitirRoles(domain.RoleAdmin, domain.RoleEmpleado)
	admin := middleware.SoloAdmin()

	api := e.Group("/api")

	// --- Auth ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, authenticated)

	// --- Personas ---
	personas := handler.NewPersonaHandler(deps.Personas)
	api.GET("/personas", personas.List, authenticated, staff)
	api.GET("/personas/:id", personas.Get, authenticated, staff)
	api.POST("/personas", personas.Create, authenticated, staff)
	api.PUT("/personas/:id", personas.Update, authenticated, staff)
	api.DELETE("/personas/:id", personas.Delete, authenticated, admin)

	// --- Clientes ---
	clientes := handler.NewClienteHandler(deps.Clientes)
	api.GET("/clientes", clientes.List, authenticated, admin)
	api.GET("/clientes/:id", clientes.Get, authenticated, anyRole)
	api.POST("/clientes", clientes.Create, authenticated, staff)
	api.PUT("/clientes/:id/direccion", clientes.UpdateDireccion, authenticated, anyRole)
	api.DELETE("/clientes/:id", clientes.Delete, authenticated, admin)

	// --- Paquetes ---
	paquetes := handler.NewPaqueteHandler(deps.Paquetes)
	createPaquete := []echo.MiddlewareFunc{authenticated, anyRole}
	if deps.Idempotency != nil {
		createPaquete = append(createPaquete, middleware.Idempotency(deps.Idempotency, deps.Log))
	}
	api.POST("/paquetes", paquetes.Create, createPaquete...)
	api.PUT("/paquetes/:id/estado", paquetes.UpdateEstado, authenticated, staff)
	api.PUT("/paquetes/:id", paquetes.Update, authenticated, staff)
	api.GET("/paquetes", paquetes.List, authenticated, staff)
	api.GET("/paquetes/:id", paquetes.Get, authenticated, anyRole)
	api.DELETE("/paquetes/:id", paquetes.Delete, authenticated, admin)

	// --- Facturas ---
	facturas := handler.NewFacturaHandler(deps.Facturas)
	api.POST("/facturas", facturas.Create, authenticated, staff)
	api.PUT("/facturas/:id/pagar", facturas.Pay, authenticated, middleware.PermitirRoles(domain.RoleAdmin, domain.RoleCliente))
	api.GET("/facturas", facturas.List, authenticated, staff)
	api.GET("/facturas/:id", facturas.Get, authenticated, anyRole)
	api.DELETE("/facturas/:id", facturas.Delete, authenticated, admin)

	// --- Rutas ---
	rutas := handler.NewRutaHandler(deps.Rutas)
	api.POST("/rutas", rutas.Create, authenticated, staff)
	api.GET("/rutas", rutas.List, authenticated, staff)
	api.GET("/rutas/:id", rutas.Get, authenticated, staff)
	api.PUT("/rutas/:id/completar", rutas.Complete, authenticated, staff)
	api.DELETE("/rutas/:id", rutas.Delete, authenticated, admin)

	// --- Centros ---
	centros := handler.NewCentroHandler(deps.Centros)
	api.GET("/centros", centros.List, authenticated, anyRole)
	api.GET("/centros/:id", centros.Get, authenticated, anyRole)
	api.POST("/centros", centros.Create, authenticated, admin)
	api.PUT("/centros/:id", centros.Update, authenticated, admin)
	api.DELETE("/centros/:id", centros.Delete, authenticated, admin)

	return e
}

func prometheusMiddleware(reg *prometheus.Registry) echo.MiddlewareFunc {
	if reg == nil {
		return echoprometheus.NewMiddleware(metricsSubsystem)
	}
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: reg,
	})
}

func metricsHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}
