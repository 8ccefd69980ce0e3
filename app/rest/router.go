package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"store-service/app/port"
	"store-service/app/rest/handlers"
	custommw "store-service/app/rest/middleware"
	apperrors "store-service/app/utils/errors"
	"store-service/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger          *slog.Logger
	SignupUsecase   port.SignupUsecase
	Provisioner     port.Provisioner
	HandleValidator port.HandleValidator
	DatabaseChecker handlers.DependencyChecker
	KratosChecker   handlers.DependencyChecker
	EnableDebug     bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug
	e.HTTPErrorHandler = newHTTPErrorHandler(config.Logger)

	validate := validator.New()

	// Create handlers
	signupHandler := handlers.NewSignupHandler(config.SignupUsecase, config.Provisioner, validate, config.Logger)
	storeHandler := handlers.NewStoreHandler(config.HandleValidator, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.DatabaseChecker, config.KratosChecker, config.Logger)

	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints
	health := v1.Group("/health")
	health.GET("", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Two-step signup flow endpoints
	flows := v1.Group("/signup/flows")
	flows.POST("", signupHandler.CreateFlow)
	flows.GET("/:flowId", signupHandler.GetFlow)
	flows.POST("/:flowId/credentials", signupHandler.SubmitCredentials)
	flows.POST("/:flowId/store", signupHandler.SubmitStoreDetails)
	flows.POST("/:flowId/back", signupHandler.GoBack)

	// Account-only signup
	v1.POST("/signup", signupHandler.SignupLite)

	// Store endpoints
	stores := v1.Group("/stores")
	stores.GET("/availability", storeHandler.CheckAvailability)

	return e
}

// newHTTPErrorHandler maps errors that escape a handler to JSON
// responses. Typed application errors carry their own status code;
// everything else becomes an opaque 500.
func newHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"
		code := string(apperrors.ErrCodeInternalError)

		var appErr *apperrors.AppError
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.StatusCode
			message = appErr.Message
			code = string(appErr.Code)
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
			code = string(apperrors.ErrCodeBadRequest)
			if status == http.StatusNotFound {
				code = string(apperrors.ErrCodeNotFound)
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error("request failed", "path", c.Path(), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}

		_ = c.JSON(status, map[string]string{
			"error": message,
			"code":  code,
		})
	}
}
