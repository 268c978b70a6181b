package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/hrledger/payroll-system/internal/api/docs"
	"github.com/hrledger/payroll-system/internal/api/handler"
	"github.com/hrledger/payroll-system/internal/api/metrics"
	"github.com/hrledger/payroll-system/internal/api/middleware"
	"github.com/hrledger/payroll-system/internal/core/ports"
)

// Deps are the collaborators the HTTP shell is built from.
type Deps struct {
	// Company must be safe for concurrent use, e.g. a queue.CompanyService.
	Company   ports.CompanyService
	Auth      ports.AuthService
	JWTSecret string

	// ReadinessChecks ping the optional stores (Redis, MongoDB) in use.
	ReadinessChecks []handler.DependencyCheck

	// Registry receives HTTP and domain metrics and backs /metrics. A fresh
	// registry is used when nil.
	Registry *prometheus.Registry

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := metrics.New(reg)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "payroll",
		Registerer: reg,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	healthHandler := handler.NewHealthHandler(deps.Company, deps.ReadinessChecks...)
	deptHandler := handler.NewDepartmentHandler(deps.Company)
	empHandler := handler.NewEmployeeHandler(deps.Company, m, deps.Logger)
	payrollHandler := handler.NewPayrollHandler(deps.Company, m)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)        // liveness: is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness: company worker and stores
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", middleware.Auth(deps.JWTSecret))
	read := middleware.ReadAccess()
	write := middleware.WriteAccess()

	v1.GET("/departments", deptHandler.List, read)
	v1.POST("/departments", deptHandler.Create, write)

	v1.POST("/employees", empHandler.Hire, write)
	v1.GET("/employees", empHandler.List, read)
	v1.GET("/employees/:id", empHandler.Get, read)
	v1.PUT("/employees/:id/hours", empHandler.SetHours, write)

	v1.PUT("/payroll/hours", payrollHandler.UpdateHours, write)

	v1.GET("/reports/payroll", payrollHandler.Payroll, read)
	v1.GET("/reports/payroll/departments", payrollHandler.DepartmentPayroll, read)
	v1.GET("/reports/end-of-year", payrollHandler.EndOfYear, read)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Warn().Err(v.Error)
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
