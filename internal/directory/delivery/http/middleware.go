package http

import (
	"context"
	"net/http"
	"time"

	"fund-directory/internal/directory/dto"
	"fund-directory/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RequestID assigns a uuid request id and makes it available to context-aware logging.
func RequestID() echo.MiddlewareFunc {
	assign := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
	attach := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Response().Header().Get(echo.HeaderXRequestID)
			req := c.Request()
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), logger.RequestIDKey, id)))
			return next(c)
		}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return assign(attach(next))
	}
}

// RequestLogger writes one structured line per request.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				logger.StringField("method", v.Method),
				logger.StringField("uri", v.URI),
				logger.IntField("status", v.Status),
				logger.DurationField("latency", v.Latency),
				logger.StringField("remote_ip", v.RemoteIP),
				logger.StringField("request_id", v.RequestID),
			}
			if v.Error != nil {
				log.Error("HTTP request", append(fields, logger.ErrorField(v.Error))...)
				return nil
			}
			log.Info("HTTP request", fields...)
			return nil
		},
	})
}

// RateLimit applies a per-client token bucket of rps requests per second with
// the given burst. Idle clients are forgotten after ten minutes. A
// non-positive rps disables limiting.
func RateLimit(rps float64, burst int) echo.MiddlewareFunc {
	if rps <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiters := cache.New(10*time.Minute, 20*time.Minute)

	limiterFor := func(key string) *rate.Limiter {
		if l, ok := limiters.Get(key); ok {
			return l.(*rate.Limiter)
		}
		l := rate.NewLimiter(rate.Limit(rps), burst)
		if err := limiters.Add(key, l, cache.DefaultExpiration); err != nil {
			// Another request for the same client won the race.
			if existing, ok := limiters.Get(key); ok {
				return existing.(*rate.Limiter)
			}
		}
		return l
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.RealIP()
			l := limiterFor(key)
			if !l.Allow() {
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "too many requests"})
			}
			limiters.SetDefault(key, l)
			return next(c)
		}
	}
}
