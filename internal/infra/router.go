package infra

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/umalmyha/inquiries/docs"
	"github.com/umalmyha/inquiries/internal/config"
	"github.com/umalmyha/inquiries/internal/handlers"
	"github.com/umalmyha/inquiries/internal/metrics"
	"github.com/umalmyha/inquiries/internal/middleware"
	"github.com/umalmyha/inquiries/internal/service"
	"github.com/umalmyha/inquiries/internal/validation"
)

// Router builds echo application with all routes registered
func Router(
	cfg config.HTTPCfg,
	log logrus.FieldLogger,
	inquirySvc service.InquiryService,
	validator *validation.InquiryValidator,
	checks map[string]handlers.HealthCheck,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.ErrorHandler(log)

	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	docs.SwaggerInfo.BasePath = cfg.BasePath

	// Middleware
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(metrics.Middleware())
	e.Use(echomw.Recover())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))
	e.Use(echomw.BodyLimit(cfg.BodyLimit))

	// Handlers
	inquiryHandler := handlers.NewInquiryHTTPHandler(inquirySvc, validator)
	healthHandler := handlers.NewHealthHTTPHandler(checks)

	// Service routes
	e.GET("/health", healthHandler.Check)
	e.GET(metrics.MetricsPath, echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API routes
	api := e.Group(cfg.BasePath)

	// inquiries
	inquiriesAPI := api.Group("/inquiries")
	inquiriesAPI.POST("", inquiryHandler.Post)
	inquiriesAPI.GET("", inquiryHandler.GetAll)
	inquiriesAPI.GET("/:id", inquiryHandler.Get)

	return e
}
