package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
