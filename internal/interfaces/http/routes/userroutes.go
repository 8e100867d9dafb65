package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

// UserRouteConfig holds dependencies for user management routes.
type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupUserRoutes configures user management routes. Directory listing,
// creation and deactivation are admin-only through the policy table; reads
// and updates are narrowed to self by the use cases.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	perm := cfg.PermissionMiddleware

	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", perm.RequirePermission(permission.ResourceUser, permission.ActionList), cfg.UserHandler.ListUsers)
		users.POST("", perm.RequirePermission(permission.ResourceUser, permission.ActionCreate), cfg.UserHandler.CreateUser)

		users.GET("/:id", perm.RequirePermission(permission.ResourceUser, permission.ActionRead), cfg.UserHandler.GetUser)
		users.PATCH("/:id", perm.RequirePermission(permission.ResourceUser, permission.ActionUpdate), cfg.UserHandler.UpdateUser)
		users.DELETE("/:id", perm.RequirePermission(permission.ResourceUser, permission.ActionDeactivate), cfg.UserHandler.DeactivateUser)
	}
}
