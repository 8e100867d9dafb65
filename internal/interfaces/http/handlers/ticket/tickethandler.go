package ticket

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	ticketdto "helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC      usecases.CreateTicketExecutor
	listTicketsUC       usecases.ListTicketsExecutor
	getTicketUC         usecases.GetTicketExecutor
	updateTicketUC      usecases.UpdateTicketExecutor
	getStatisticsUC     usecases.GetStatisticsExecutor
	addCommentUC        usecases.AddCommentExecutor
	updateCommentUC     usecases.UpdateCommentExecutor
	deleteCommentUC     usecases.DeleteCommentExecutor
	uploadAttachmentUC  usecases.UploadAttachmentExecutor
	uploadAttachmentsUC usecases.UploadAttachmentsExecutor
	deleteAttachmentUC  usecases.DeleteAttachmentExecutor
	maxFileSize         int64
	maxFiles            int
	logger              logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	getStatisticsUC usecases.GetStatisticsExecutor,
	addCommentUC usecases.AddCommentExecutor,
	updateCommentUC usecases.UpdateCommentExecutor,
	deleteCommentUC usecases.DeleteCommentExecutor,
	uploadAttachmentUC usecases.UploadAttachmentExecutor,
	uploadAttachmentsUC usecases.UploadAttachmentsExecutor,
	deleteAttachmentUC usecases.DeleteAttachmentExecutor,
	maxFileSize int64,
	maxFiles int,
	logger logger.Interface,
) *TicketHandler {
	if maxFileSize <= 0 {
		maxFileSize = constants.DefaultMaxFileSize
	}
	if maxFiles <= 0 {
		maxFiles = constants.DefaultMaxFiles
	}
	return &TicketHandler{
		createTicketUC:      createTicketUC,
		listTicketsUC:       listTicketsUC,
		getTicketUC:         getTicketUC,
		updateTicketUC:      updateTicketUC,
		getStatisticsUC:     getStatisticsUC,
		addCommentUC:        addCommentUC,
		updateCommentUC:     updateCommentUC,
		deleteCommentUC:     deleteCommentUC,
		uploadAttachmentUC:  uploadAttachmentUC,
		uploadAttachmentsUC: uploadAttachmentsUC,
		deleteAttachmentUC:  deleteAttachmentUC,
		maxFileSize:         maxFileSize,
		maxFiles:            maxFiles,
		logger:              logger,
	}
}

// CreateTicket handles POST /tickets
//
//	@Summary		Create a new ticket
//	@Description	Open a support ticket owned by the caller; priority defaults to MEDIUM
//	@Tags			tickets
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			ticket	body		CreateTicketRequest									true	"Ticket data"
//	@Success		201		{object}	utils.APIResponse{data=ticketdto.TicketResponse}	"Ticket created"
//	@Failure		400		{object}	utils.APIResponse									"Validation error"
//	@Failure		401		{object}	utils.APIResponse									"Unauthorized"
//	@Router			/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ListTickets handles GET /tickets
//
//	@Summary		List tickets
//	@Description	Admins see every ticket, users only their own; newest first
//	@Tags			tickets
//	@Produce		json
//	@Security		Bearer
//	@Param			page	query		int														false	"Page number"		default(1)
//	@Param			limit	query		int														false	"Items per page"	default(10)
//	@Success		200		{object}	utils.APIResponse{data=ticketdto.TicketListResponse}	"Tickets"
//	@Failure		401		{object}	utils.APIResponse										"Unauthorized"
//	@Router			/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	p := utils.ParsePagination(c)
	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Actor: actor,
		Page:  p.Page,
		Limit: p.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetStatistics handles GET /tickets/statistics
//
//	@Summary		Ticket statistics
//	@Description	Count visible tickets by status
//	@Tags			tickets
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	utils.APIResponse{data=ticketdto.StatisticsResponse}	"Counts"
//	@Failure		401	{object}	utils.APIResponse										"Unauthorized"
//	@Router			/tickets/statistics [get]
func (h *TicketHandler) GetStatistics(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getStatisticsUC.Execute(c.Request.Context(), usecases.GetStatisticsQuery{Actor: actor})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicket handles GET /tickets/:id
//
//	@Summary		Get ticket by ID
//	@Description	Ticket with creator, assignee, comments and attachments
//	@Tags			tickets
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path		int													true	"Ticket ID"
//	@Success		200	{object}	utils.APIResponse{data=ticketdto.TicketResponse}	"Ticket"
//	@Failure		403	{object}	utils.APIResponse									"Forbidden"
//	@Failure		404	{object}	utils.APIResponse									"Ticket not found"
//	@Router			/tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PATCH /tickets/:id
//
//	@Summary		Update ticket
//	@Description	Owners may edit title and description; admins may also set status, priority and assignee
//	@Tags			tickets
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			id		path		int													true	"Ticket ID"
//	@Param			ticket	body		UpdateTicketRequest									true	"Fields to change"
//	@Success		200		{object}	utils.APIResponse{data=ticketdto.TicketResponse}	"Ticket updated"
//	@Failure		400		{object}	utils.APIResponse									"Validation error"
//	@Failure		403		{object}	utils.APIResponse									"Forbidden"
//	@Failure		404		{object}	utils.APIResponse									"Ticket not found"
//	@Router			/tickets/{id} [patch]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket",
			"ticket_id", ticketID,
			"error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(actor, ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// AddComment handles POST /tickets/:id/comments
//
//	@Summary		Add comment
//	@Description	Comment on a ticket; isInternal is honoured for admins only
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			id		path		int													true	"Ticket ID"
//	@Param			comment	body		AddCommentRequest									true	"Comment"
//	@Success		201		{object}	utils.APIResponse{data=ticketdto.CommentResponse}	"Comment added"
//	@Failure		400		{object}	utils.APIResponse									"Validation error"
//	@Failure		403		{object}	utils.APIResponse									"Forbidden"
//	@Failure		404		{object}	utils.APIResponse									"Ticket not found"
//	@Router			/tickets/{id}/comments [post]
func (h *TicketHandler) AddComment(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:      actor,
		TicketID:   ticketID,
		Content:    req.Content,
		IsInternal: req.IsInternal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// UpdateComment handles PATCH /tickets/comments/:commentId
//
//	@Summary		Update comment
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			commentId	path		int													true	"Comment ID"
//	@Param			comment		body		UpdateCommentRequest								true	"Fields to change"
//	@Success		200			{object}	utils.APIResponse{data=ticketdto.CommentResponse}	"Comment updated"
//	@Failure		403			{object}	utils.APIResponse									"Forbidden"
//	@Failure		404			{object}	utils.APIResponse									"Comment not found"
//	@Router			/tickets/comments/{commentId} [patch]
func (h *TicketHandler) UpdateComment(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	commentID, err := utils.ParseIDParam(c, "commentId", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateCommentUC.Execute(c.Request.Context(), usecases.UpdateCommentCommand{
		Actor:      actor,
		CommentID:  commentID,
		Content:    req.Content,
		IsInternal: req.IsInternal,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment updated successfully", result)
}

// DeleteComment handles DELETE /tickets/comments/:commentId
//
//	@Summary		Delete comment
//	@Tags			comments
//	@Produce		json
//	@Security		Bearer
//	@Param			commentId	path		int													true	"Comment ID"
//	@Success		200			{object}	utils.APIResponse{data=ticketdto.MessageResponse}	"Comment deleted"
//	@Failure		403			{object}	utils.APIResponse									"Forbidden"
//	@Failure		404			{object}	utils.APIResponse									"Comment not found"
//	@Router			/tickets/comments/{commentId} [delete]
func (h *TicketHandler) DeleteComment(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	commentID, err := utils.ParseIDParam(c, "commentId", "comment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		Actor:     actor,
		CommentID: commentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

// UploadAttachment handles POST /tickets/:id/attachments
//
//	@Summary		Upload attachment
//	@Description	Attach one file (multipart field "file", max 10MB)
//	@Tags			attachments
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		Bearer
//	@Param			id		path		int														true	"Ticket ID"
//	@Param			file	formData	file													true	"File to upload"
//	@Success		201		{object}	utils.APIResponse{data=ticketdto.AttachmentResponse}	"File uploaded"
//	@Failure		400		{object}	utils.APIResponse										"Missing, empty, oversized or disallowed file"
//	@Failure		403		{object}	utils.APIResponse										"Forbidden"
//	@Failure		404		{object}	utils.APIResponse										"Ticket not found"
//	@Router			/tickets/{id}/attachments [post]
func (h *TicketHandler) UploadAttachment(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UploadAttachmentCommand{Actor: actor, TicketID: ticketID}
	if fh, err := c.FormFile(constants.UploadFieldSingle); err == nil {
		file, err := readUploadFile(fh, h.maxFileSize)
		if err != nil {
			h.logger.Errorw("failed to read uploaded file", "ticket_id", ticketID, "error", err)
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.File = &file
	}

	result, err := h.uploadAttachmentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "File uploaded successfully")
}

// UploadAttachments handles POST /tickets/:id/attachments/multiple
//
//	@Summary		Upload several attachments
//	@Description	Attach up to 10 files (multipart field "files"); rejected files are reported while the rest are kept
//	@Tags			attachments
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		Bearer
//	@Param			id		path		int														true	"Ticket ID"
//	@Param			files	formData	[]file													true	"Files to upload"	collectionFormat(multi)
//	@Success		201		{object}	utils.APIResponse{data=ticketdto.MultiUploadResponse}	"At least one file uploaded"
//	@Failure		400		{object}	utils.APIResponse{data=ticketdto.MultiUploadResponse}	"No file could be uploaded"
//	@Failure		403		{object}	utils.APIResponse										"Forbidden"
//	@Failure		404		{object}	utils.APIResponse										"Ticket not found"
//	@Router			/tickets/{id}/attachments/multiple [post]
func (h *TicketHandler) UploadAttachments(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UploadAttachmentsCommand{Actor: actor, TicketID: ticketID}
	if form, err := c.MultipartForm(); err == nil {
		headers := form.File[constants.UploadFieldMultiple]
		if len(headers) > h.maxFiles {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError(
				fmt.Sprintf("Too many files. Maximum is %d per request.", h.maxFiles)))
			return
		}
		for _, fh := range headers {
			file, err := readUploadFile(fh, h.maxFileSize)
			if err != nil {
				h.logger.Errorw("failed to read uploaded file", "ticket_id", ticketID, "error", err)
				utils.ErrorResponseWithError(c, err)
				return
			}
			cmd.Files = append(cmd.Files, file)
		}
	}

	result, err := h.uploadAttachmentsUC.Execute(c.Request.Context(), cmd)
	respondMultiUpload(c, result, err)
}

// respondMultiUpload keeps the per-file report in the body even when every file failed.
func respondMultiUpload(c *gin.Context, result *ticketdto.MultiUploadResponse, err error) {
	if err != nil {
		if result == nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.ErrorResponseWithData(c, err, result)
		return
	}

	utils.CreatedResponse(c, result, result.Message)
}

// DeleteAttachment handles DELETE /tickets/attachments/:attachmentId
//
//	@Summary		Delete attachment
//	@Description	Remove the metadata row; a missing file on disk is not an error
//	@Tags			attachments
//	@Produce		json
//	@Security		Bearer
//	@Param			attachmentId	path		int													true	"Attachment ID"
//	@Success		200				{object}	utils.APIResponse{data=ticketdto.MessageResponse}	"Attachment deleted"
//	@Failure		403				{object}	utils.APIResponse									"Forbidden"
//	@Failure		404				{object}	utils.APIResponse									"Attachment not found"
//	@Router			/tickets/attachments/{attachmentId} [delete]
func (h *TicketHandler) DeleteAttachment(c *gin.Context) {
	actor, err := utils.GetActorFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	attachmentID, err := utils.ParseIDParam(c, "attachmentId", "attachment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.deleteAttachmentUC.Execute(c.Request.Context(), usecases.DeleteAttachmentCommand{
		Actor:        actor,
		AttachmentID: attachmentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}
