package http

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/utils"
)

// apiPrefixes never fall through to the single-page frontend.
var apiPrefixes = []string{"/api", "/auth", "/users", "/tickets"}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	routes.SetupSystemRoutes(r.engine, &routes.SystemRouteConfig{
		SystemHandler:        r.hdlrs.systemHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
		UploadFS:             r.fileStore.HTTPFileSystem(),
		UploadURLPrefix:      r.fileStore.URLPrefix(),
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.authHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:          r.hdlrs.userHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:        r.hdlrs.ticketHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	r.setupFrontend(cfg.Server.WebDir)
}

// setupFrontend serves the built SPA from webDir for unmatched GETs outside the API.
func (r *Router) setupFrontend(webDir string) {
	if webDir == "" {
		r.engine.NoRoute(func(c *gin.Context) {
			utils.ErrorResponse(c, http.StatusNotFound, "Route not found")
		})
		return
	}

	webFS := afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), webDir))
	httpFS := afero.NewHttpFs(webFS).Dir("/")
	uploadPrefix := r.fileStore.URLPrefix() + "/"

	r.log.Infow("serving frontend", "web_dir", webDir)

	r.engine.NoRoute(func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) ||
			isAPIPath(reqPath) || strings.HasPrefix(reqPath, uploadPrefix) {
			utils.ErrorResponse(c, http.StatusNotFound, "Route not found")
			return
		}

		name := path.Clean("/" + reqPath)
		if name != "/" && name != "/index.html" {
			if isDir, err := afero.IsDir(webFS, name); err == nil && !isDir {
				c.FileFromFS(name, httpFS)
				return
			}
		}

		index, err := afero.ReadFile(webFS, "/index.html")
		if err != nil {
			r.log.Warnw("frontend index not found", "web_dir", webDir, "error", err)
			utils.ErrorResponse(c, http.StatusNotFound, "Route not found")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
}

func isAPIPath(p string) bool {
	for _, prefix := range apiPrefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
