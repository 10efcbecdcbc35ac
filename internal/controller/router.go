package controller

import (
	"booking-settlement-api/internal/logger"
	"booking-settlement-api/internal/service"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

// SetupRoutesHandlers mounts everything under /api. Only /api/ping is public.
func SetupRoutesHandlers(handler *echo.Echo, services *service.Services, jwtSecret string, log logger.Logger) {
	handler.Use(requestLogger(log), recoverPanics(log))

	validate := validator.New(validator.WithRequiredStructEnabled())
	api := handler.Group("/api")
	newDiagnosticRoutesHandler(api, services)

	secured := api.Group("", newAuthenticator(jwtSecret).Middleware)
	newBookingRequestRoutesHandler(secured, services, validate)
	newAuctionRoutesHandler(secured, services, validate)
	newBookingRoutesHandler(secured, services, validate)
	newEarningsRoutesHandler(secured, services, validate)
	newPayoutRoutesHandler(secured, services, validate)
}

func requestLogger(log logger.Logger) echo.MiddlewareFunc {
	l := log.Action("http_request")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			args := []any{
				"method", req.Method,
				"path", c.Path(),
				"status", res.Status,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if p := principal(c); p.Subject != "" {
				args = append(args, "subject", p.Subject)
			}
			switch {
			case err != nil:
				l.Error("request failed", err, args...)
			case res.Status >= 500:
				l.Warn("request failed", args...)
			default:
				l.Debug("request served", args...)
			}

			return nil
		}
	}
}

func recoverPanics(log logger.Logger) echo.MiddlewareFunc {
	l := log.Action("http_panic")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					l.Error("handler panicked", fmt.Errorf("%v", r), "path", c.Path(), "stack", string(debug.Stack()))
					err = c.JSON(http.StatusInternalServerError, errorResponse{Reason: "Internal error"})
				}
			}()

			return next(c)
		}
	}
}
