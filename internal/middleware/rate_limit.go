package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"golang.org/x/time/rate"
)

// RateLimit limits requests per second across all clients.
// If requestsPerSecond <= 0, rate limiting is disabled.
func RateLimit(requestsPerSecond float64, burst int) gin.HandlerFunc {
	if requestsPerSecond <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			logger.FromContext(c.Request.Context()).Warn().
				Str("path", c.Request.URL.Path).
				Float64("rps", requestsPerSecond).
				Int("burst", burst).
				Msg("Rate limit exceeded")

			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeRateLimited, "Too many requests").
					WithSeverity(dto.ErrorSeverityWarning),
			))
			return
		}
		c.Next()
	}
}
