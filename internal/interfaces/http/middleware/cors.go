package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
)

// CORS allows the configured origins with credentials.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = allowedOrigins
	cfg.AllowCredentials = true
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", constants.HeaderAuthorization, "X-Requested-With", constants.HeaderXRequestID}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.ExposeHeaders = []string{"Content-Length", "Content-Disposition", constants.HeaderXRequestID}
	cfg.MaxAge = 24 * time.Hour
	if len(allowedOrigins) == 0 {
		cfg.AllowOrigins = nil
		cfg.AllowOriginFunc = func(string) bool { return false }
	}
	return cors.New(cfg)
}

// SecurityHeaders sets nosniff, frame-deny and referrer headers. The CSP
// leaves room for the Swagger UI's inline assets.
func SecurityHeaders() gin.HandlerFunc {
	cfg := secure.DefaultConfig()
	cfg.SSLRedirect = false
	cfg.STSSeconds = 0
	cfg.ContentSecurityPolicy = "default-src 'self'; img-src 'self' data:; style-src 'self' 'unsafe-inline'; script-src 'self' 'unsafe-inline'"
	cfg.ReferrerPolicy = "strict-origin-when-cross-origin"
	return secure.New(cfg)
}
