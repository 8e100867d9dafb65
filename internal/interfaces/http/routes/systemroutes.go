package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

// SystemRouteConfig holds dependencies for health, docs and upload routes.
type SystemRouteConfig struct {
	SystemHandler        *handlers.SystemHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	// UploadFS serves stored attachments under UploadURLPrefix.
	UploadFS        http.FileSystem
	UploadURLPrefix string
}

// SetupSystemRoutes configures health, API docs and upload routes.
func SetupSystemRoutes(engine *gin.Engine, cfg *SystemRouteConfig) {
	engine.GET("/", cfg.SystemHandler.Health)

	engine.GET("/api/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	engine.GET("/api/docs-json", cfg.SystemHandler.DocsJSON)
	engine.GET("/api/docs-yaml", cfg.SystemHandler.DocsYAML)

	engine.GET("/api/uploads/list",
		cfg.AuthMiddleware.RequireAuth(),
		cfg.PermissionMiddleware.RequirePermission(permission.ResourceUpload, permission.ActionList),
		cfg.SystemHandler.ListUploads)

	if cfg.UploadFS != nil {
		engine.StaticFS(cfg.UploadURLPrefix, cfg.UploadFS)
	}
}
