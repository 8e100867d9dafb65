package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/permission"
	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	perm := config.PermissionMiddleware
	h := config.TicketHandler

	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		tickets.POST("",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionCreate),
			h.CreateTicket)
		tickets.GET("",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionList),
			h.ListTickets)

		// Static segments are registered before /:id
		tickets.GET("/statistics",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionList),
			h.GetStatistics)

		tickets.PATCH("/comments/:commentId",
			perm.RequirePermission(permission.ResourceComment, permission.ActionUpdate),
			h.UpdateComment)
		tickets.DELETE("/comments/:commentId",
			perm.RequirePermission(permission.ResourceComment, permission.ActionDelete),
			h.DeleteComment)

		tickets.DELETE("/attachments/:attachmentId",
			perm.RequirePermission(permission.ResourceAttachment, permission.ActionDelete),
			h.DeleteAttachment)

		// Nested resources
		tickets.POST("/:id/comments",
			perm.RequirePermission(permission.ResourceComment, permission.ActionCreate),
			h.AddComment)
		tickets.POST("/:id/attachments",
			perm.RequirePermission(permission.ResourceAttachment, permission.ActionCreate),
			h.UploadAttachment)
		tickets.POST("/:id/attachments/multiple",
			perm.RequirePermission(permission.ResourceAttachment, permission.ActionCreate),
			h.UploadAttachments)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionRead),
			h.GetTicket)
		tickets.PATCH("/:id",
			perm.RequirePermission(permission.ResourceTicket, permission.ActionUpdate),
			h.UpdateTicket)
	}
}
