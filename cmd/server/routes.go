package main

import (
	"log/slog"
	"net/http"

	"finance-tracker/internal/config"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routes struct {
	auth        *handlers.AuthHandler
	expenses    *handlers.RecordHandler
	earnings    *handlers.RecordHandler
	reports     *handlers.ReportHandler
	categories  *handlers.CategoryHandler
	health      *handlers.HealthCheckHandler
	dev         *handlers.DevHandler
	requireAuth echo.MiddlewareFunc
}

// newServer builds the echo instance with the global middleware chain. The request id
// runs first so every later log line and error body carries it.
func newServer(cfg *config.Config, logger *slog.Logger, limiter *middleware.IPRateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("trace_id", middleware.GetTraceID(c)),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	if limiter != nil {
		e.Use(limiter.Middleware())
	}

	return e
}

func registerRoutes(e *echo.Echo, r routes) {
	e.GET("/health", r.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/signup", r.auth.SignUp)
	auth.POST("/signin", r.auth.SignIn)
	auth.POST("/signout", r.auth.SignOut, r.requireAuth)
	auth.GET("/me", r.auth.Me, r.requireAuth)
	auth.PATCH("/me", r.auth.UpdateProfile, r.requireAuth)

	protected := api.Group("", r.requireAuth)
	protected.GET("/categories", r.categories.List)

	for _, h := range []*handlers.RecordHandler{r.expenses, r.earnings} {
		records := protected.Group("/" + h.Kind().TableName())
		records.GET("", h.List)
		records.POST("", h.Create)
		records.GET("/:id", h.Get)
		records.PATCH("/:id", h.Update)
		records.DELETE("/:id", h.Delete)
	}

	protected.GET("/transactions/recent", r.reports.Recent)
	protected.GET("/transactions", r.reports.Range)
	protected.GET("/reports/dashboard", r.reports.Dashboard)
	protected.GET("/reports/monthly", r.reports.Monthly)
	protected.GET("/reports/categories", r.reports.Categories)

	if r.dev != nil {
		protected.POST("/dev/sample-data", r.dev.GenerateSampleData)
	}
}
