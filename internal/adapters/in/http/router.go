package http

import (
	"context"
	"log/slog"
	"net/http"

	"ordering/internal/core/application/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// BaseURL prefixes every API route.
const BaseURL = "/api/v1"

// RouterConfig carries what NewRouter needs to assemble the API.
type RouterConfig struct {
	Engine    lifecycle.Engine
	Logger    *slog.Logger
	JWTSecret []byte
	JWTIssuer string
}

// NewRouter builds the echo instance: health check, request logging,
// then authentication, authorization and OpenAPI validation on /api/v1.
func NewRouter(ctx context.Context, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadSpec(ctx)
	if err != nil {
		return nil, err
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	authorizer, err := NewAuthorizer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = HTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(requestLogger(cfg.Logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group(BaseURL,
		Authenticate(cfg.JWTSecret, cfg.JWTIssuer, cfg.Logger),
		authorizer.Middleware(cfg.Logger),
		validator,
	)
	RegisterHandlersWithBaseURL(api, NewServer(cfg.Engine, cfg.Logger), "")

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http_access")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "request", attrs...)
				return nil
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	})
}
