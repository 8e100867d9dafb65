package dto

import (
	"time"

	userdto "helpdesk/internal/application/user/dto"
	"helpdesk/internal/shared/utils"
)

type TicketResponse struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	DescriptionHTML string                `json:"descriptionHtml"`
	Status          string                `json:"status" enums:"OPEN,IN_PROGRESS,RESOLVED,CLOSED"`
	Priority        string                `json:"priority" enums:"LOW,MEDIUM,HIGH,URGENT"`
	CreatorID       uint                  `json:"creatorId"`
	AssigneeID      *uint                 `json:"assigneeId"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
	ResolvedAt      *time.Time            `json:"resolvedAt"`
	Creator         *userdto.UserSummary  `json:"creator"`
	Assignee        *userdto.UserSummary  `json:"assignee"`
	Comments        []*CommentResponse    `json:"comments"`
	Attachments     []*AttachmentResponse `json:"attachments"`
	Count           TicketCount           `json:"_count"`
}

// TicketCount counts only what the caller can see.
type TicketCount struct {
	Comments    int `json:"comments"`
	Attachments int `json:"attachments"`
}

type CommentResponse struct {
	ID          uint                 `json:"id"`
	TicketID    uint                 `json:"ticketId"`
	AuthorID    uint                 `json:"authorId"`
	Content     string               `json:"content"`
	ContentHTML string               `json:"contentHtml"`
	IsInternal  bool                 `json:"isInternal"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Author      *userdto.UserSummary `json:"author"`
}

type AttachmentResponse struct {
	ID           uint      `json:"id"`
	TicketID     uint      `json:"ticketId"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	CreatedAt    time.Time `json:"createdAt"`
}

type TicketListResponse struct {
	Tickets    []*TicketResponse    `json:"tickets"`
	Pagination utils.PaginationMeta `json:"pagination"`
}

type StatisticsResponse struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"inProgress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
}

// MultiUploadResponse reports a batch upload; Errors holds one message per rejected file.
type MultiUploadResponse struct {
	Attachments []*AttachmentResponse `json:"attachments"`
	Errors      []string              `json:"errors,omitempty"`
	Message     string                `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
