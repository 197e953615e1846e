package middleware

import (
	"log"
	"net/http"
	"strconv"

	"coldchain_pricing/internal/resilience"
	"coldchain_pricing/pkg"

	"github.com/gin-gonic/gin"
)

// RateLimit admits at most the limiter's configured requests per window per
// caller. A rejected request gets 429 with remaining/reset metadata in both
// headers and body so callers can back off precisely.
//
// A limiter store failure fails open: pricing availability beats strict
// admission accounting.
func RateLimit(limiter *resilience.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := "user:" + UserID(c)

		dec, err := limiter.Allow(c.Request.Context(), principal)
		if err != nil {
			log.Printf("[ratelimit][middleware] limiter store failed principal=%s err=%v", principal, err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(dec.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(dec.ResetAt.Unix(), 10))

		if !dec.Allowed {
			appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPErrorWithDetails(map[string]any{
				"remaining": dec.Remaining,
				"reset_at":  dec.ResetAt.UTC(),
			}))
			return
		}
		c.Next()
	}
}
