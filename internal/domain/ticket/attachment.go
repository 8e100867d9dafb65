package ticket

import (
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// Attachment is the metadata row for an uploaded file. The bytes live in
// the upload store under Filename.
type Attachment struct {
	id           uint
	ticketID     uint
	filename     string
	originalName string
	mimeType     string
	size         int64
	url          string
	createdAt    time.Time
}

func NewAttachment(
	ticketID uint,
	filename string,
	originalName string,
	mimeType string,
	size int64,
	url string,
) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if mimeType == "" {
		return nil, fmt.Errorf("mime type is required")
	}
	if size <= 0 {
		return nil, fmt.Errorf("size must be positive")
	}

	return &Attachment{
		ticketID:     ticketID,
		filename:     filename,
		originalName: originalName,
		mimeType:     mimeType,
		size:         size,
		url:          url,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	filename string,
	originalName string,
	mimeType string,
	size int64,
	url string,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:           id,
		ticketID:     ticketID,
		filename:     filename,
		originalName: originalName,
		mimeType:     mimeType,
		size:         size,
		url:          url,
		createdAt:    createdAt,
	}, nil
}

func (a *Attachment) ID() uint             { return a.id }
func (a *Attachment) TicketID() uint       { return a.ticketID }
func (a *Attachment) Filename() string     { return a.filename }
func (a *Attachment) OriginalName() string { return a.originalName }
func (a *Attachment) MimeType() string     { return a.mimeType }
func (a *Attachment) Size() int64          { return a.size }
func (a *Attachment) URL() string          { return a.url }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
