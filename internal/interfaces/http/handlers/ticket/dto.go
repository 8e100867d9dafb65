package ticket

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/authorization"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required" example:"Cannot log in"`
	Description string `json:"description" binding:"required" example:"The login form rejects my password."`
	Priority    string `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT" enums:"LOW,MEDIUM,HIGH,URGENT"`
}

func (r *CreateTicketRequest) ToCommand(actor authorization.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Actor:       actor,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
	}
}

// OptionalID tells an explicit JSON null apart from an absent field.
type OptionalID struct {
	Set   bool
	Value *uint
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var id uint
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("assigneeId must be a user id or null")
	}
	o.Value = &id
	return nil
}

// UpdateTicketRequest holds a partial update. Status, priority and assigneeId
// only take effect for admins.
type UpdateTicketRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Description *string    `json:"description" binding:"omitempty,min=1"`
	Status      *string    `json:"status" binding:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED CLOSED" enums:"OPEN,IN_PROGRESS,RESOLVED,CLOSED"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT" enums:"LOW,MEDIUM,HIGH,URGENT"`
	AssigneeID  OptionalID `json:"assigneeId" swaggertype:"integer" extensions:"x-nullable"`
}

func (r *UpdateTicketRequest) ToCommand(actor authorization.Actor, ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		Actor:       actor,
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		AssigneeSet: r.AssigneeID.Set,
		AssigneeID:  r.AssigneeID.Value,
	}
}

type AddCommentRequest struct {
	Content    string `json:"content" binding:"required" example:"Could you attach a screenshot?"`
	IsInternal bool   `json:"isInternal"`
}

type UpdateCommentRequest struct {
	Content    *string `json:"content" binding:"omitempty,min=1"`
	IsInternal *bool   `json:"isInternal"`
}

// readUploadFile reads at most maxSize+1 bytes so oversized files are
// detected without buffering them whole.
func readUploadFile(fh *multipart.FileHeader, maxSize int64) (usecases.UploadFile, error) {
	f, err := fh.Open()
	if err != nil {
		return usecases.UploadFile{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return usecases.UploadFile{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return usecases.UploadFile{
		OriginalName: fh.Filename,
		DeclaredType: fh.Header.Get("Content-Type"),
		Size:         fh.Size,
		Data:         data,
	}, nil
}
