package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kn1ghtm0nster/blog/internal/api/metrics"
	"github.com/kn1ghtm0nster/blog/internal/core/domain"
)

// RateLimiter is the interface the throttle middleware uses to count
// requests; the Redis-backed implementation lives in infrastructure.
type RateLimiter interface {
	Allow(ctx context.Context, scope, key string) (bool, error)
}

// Throttle applies a per-client-IP rate limit to the wrapped routes. When the
// limiter itself fails the request is let through: losing rate limiting is
// preferable to losing logins.
func Throttle(limiter RateLimiter, scope string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), scope, c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("throttle check failed, allowing request")
				return next(c)
			}
			if !ok {
				metrics.ThrottleRejectionsTotal.WithLabelValues(scope).Inc()
				return domain.ErrRateLimited
			}
			return next(c)
		}
	}
}
