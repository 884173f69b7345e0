package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/vtiwari/recovery-insights/pkg/utils"
)

// UploadRateLimit bounds dataset replacement to perMinute requests with
// a small burst. One shared bucket: uploads swap global state, so the
// limit is per service, not per client.
func UploadRateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		perMinute = 10
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			utils.SendError(c, http.StatusTooManyRequests, utils.NewAppError(
				utils.ErrCodeRateLimit,
				"Too many dataset uploads",
				"retry shortly",
			))
			c.Abort()
			return
		}
		c.Next()
	}
}
