package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const uploadForbiddenMessage = "You can only upload files to your own tickets"

// UploadFile is one file read from a multipart request. Size is the size the
// client reported; Data holds at most MaxFileSize+1 bytes.
type UploadFile struct {
	OriginalName string
	DeclaredType string
	Size         int64
	Data         []byte
}

type UploadPolicy struct {
	MaxFileSize int64
	MaxFiles    int
	// SingleTypes is the allowlist for single uploads, MultiTypes for batches.
	SingleTypes []string
	MultiTypes  []string
}

var documentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
	"text/csv",
}

func DefaultUploadPolicy() UploadPolicy {
	multi := append(append([]string{}, documentTypes...), "application/zip", "application/x-rar-compressed")
	return UploadPolicy{
		MaxFileSize: constants.DefaultMaxFileSize,
		MaxFiles:    constants.DefaultMaxFiles,
		SingleTypes: append([]string{}, documentTypes...),
		MultiTypes:  multi,
	}
}

// WithLimits overrides the size and count limits when they are positive.
func (p UploadPolicy) WithLimits(maxFileSize int64, maxFiles int) UploadPolicy {
	if maxFileSize > 0 {
		p.MaxFileSize = maxFileSize
	}
	if maxFiles > 0 {
		p.MaxFiles = maxFiles
	}
	return p
}

func (p UploadPolicy) maxSizeLabel() string {
	if p.MaxFileSize%(1<<20) == 0 {
		return fmt.Sprintf("%dMB", p.MaxFileSize>>20)
	}
	return fmt.Sprintf("%d bytes", p.MaxFileSize)
}

func (f UploadFile) size() int64 {
	if n := int64(len(f.Data)); n > f.Size {
		return n
	}
	return f.Size
}

// attachmentWriter stores one file and its metadata row. The row is written
// inside a transaction and the file is removed again if the commit fails.
type attachmentWriter struct {
	attachmentRepo ticket.AttachmentRepository
	fileStore      FileStore
	namer          FileNamer
	txManager      Transactor
	logger         logger.Interface
}

func (w *attachmentWriter) store(ctx context.Context, ticketID uint, file UploadFile, mimeType string) (*ticket.Attachment, error) {
	name, err := w.namer.StoredName(file.OriginalName, biztime.NowUTC())
	if err != nil {
		return nil, fmt.Errorf("failed to generate file name: %w", err)
	}

	attachment, err := ticket.NewAttachment(ticketID, name, file.OriginalName, mimeType, int64(len(file.Data)), w.fileStore.URL(name))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	written := false
	err = w.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := w.attachmentRepo.Create(txCtx, attachment); err != nil {
			return err
		}
		if err := w.fileStore.Save(txCtx, name, file.Data); err != nil {
			return err
		}
		written = true
		return nil
	})
	if err != nil {
		if written {
			if rmErr := w.fileStore.Remove(ctx, name); rmErr != nil {
				w.logger.Warnw("failed to remove orphaned upload", "filename", name, "error", rmErr)
			}
		}
		return nil, err
	}
	return attachment, nil
}

type UploadAttachmentCommand struct {
	Actor    authorization.Actor
	TicketID uint
	File     *UploadFile
}

type UploadAttachmentUseCase struct {
	ticketRepo ticket.TicketRepository
	writer     *attachmentWriter
	resolver   ContentTypeResolver
	policy     UploadPolicy
	logger     logger.Interface
}

func NewUploadAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	fileStore FileStore,
	resolver ContentTypeResolver,
	namer FileNamer,
	txManager Transactor,
	policy UploadPolicy,
	logger logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		ticketRepo: ticketRepo,
		writer: &attachmentWriter{
			attachmentRepo: attachmentRepo,
			fileStore:      fileStore,
			namer:          namer,
			txManager:      txManager,
			logger:         logger,
		},
		resolver: resolver,
		policy:   policy,
		logger:   logger,
	}
}

func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*dto.AttachmentResponse, error) {
	if cmd.File == nil {
		return nil, errors.NewBadRequestError("No file uploaded")
	}

	if _, err := loadAccessibleTicket(ctx, uc.ticketRepo, cmd.Actor, cmd.TicketID, uploadForbiddenMessage); err != nil {
		return nil, err
	}

	file := *cmd.File
	if len(file.Data) == 0 {
		return nil, errors.NewBadRequestError("File is empty")
	}
	if file.size() > uc.policy.MaxFileSize {
		return nil, errors.NewBadRequestError(fmt.Sprintf("File too large. Maximum size is %s.", uc.policy.maxSizeLabel()))
	}

	mimeType, ok := uc.resolver.Resolve(file.Data, file.DeclaredType, uc.policy.SingleTypes)
	if !ok {
		uc.logger.Warnw("rejected upload with disallowed type",
			"ticket_id", cmd.TicketID,
			"detected_mime", mimeType,
			"filename", file.OriginalName,
		)
		return nil, errors.NewBadRequestError(fmt.Sprintf("File type %s is not allowed", mimeType))
	}

	attachment, err := uc.writer.store(ctx, cmd.TicketID, file, mimeType)
	if err != nil {
		uc.logger.Errorw("failed to store attachment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment uploaded",
		"attachment_id", attachment.ID(),
		"ticket_id", cmd.TicketID,
		"size", attachment.Size(),
	)
	return ToAttachmentResponse(attachment), nil
}

type UploadAttachmentsCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Files    []UploadFile
}

type UploadAttachmentsUseCase struct {
	ticketRepo ticket.TicketRepository
	writer     *attachmentWriter
	resolver   ContentTypeResolver
	policy     UploadPolicy
	logger     logger.Interface
}

func NewUploadAttachmentsUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	fileStore FileStore,
	resolver ContentTypeResolver,
	namer FileNamer,
	txManager Transactor,
	policy UploadPolicy,
	logger logger.Interface,
) *UploadAttachmentsUseCase {
	return &UploadAttachmentsUseCase{
		ticketRepo: ticketRepo,
		writer: &attachmentWriter{
			attachmentRepo: attachmentRepo,
			fileStore:      fileStore,
			namer:          namer,
			txManager:      txManager,
			logger:         logger,
		},
		resolver: resolver,
		policy:   policy,
		logger:   logger,
	}
}

// Execute stores each file independently. A rejected file adds a message to
// Errors without undoing the others. When every file fails the response is
// returned together with a bad-request error.
func (uc *UploadAttachmentsUseCase) Execute(ctx context.Context, cmd UploadAttachmentsCommand) (*dto.MultiUploadResponse, error) {
	if len(cmd.Files) == 0 {
		return nil, errors.NewBadRequestError("No files uploaded")
	}
	if len(cmd.Files) > uc.policy.MaxFiles {
		return nil, errors.NewBadRequestError(fmt.Sprintf("Too many files. Maximum is %d per request.", uc.policy.MaxFiles))
	}

	if _, err := loadAccessibleTicket(ctx, uc.ticketRepo, cmd.Actor, cmd.TicketID, uploadForbiddenMessage); err != nil {
		return nil, err
	}

	result := &dto.MultiUploadResponse{Attachments: []*dto.AttachmentResponse{}}
	for _, file := range cmd.Files {
		if msg := uc.reject(file); msg != "" {
			result.Errors = append(result.Errors, msg)
			continue
		}

		mimeType, ok := uc.resolver.Resolve(file.Data, file.DeclaredType, uc.policy.MultiTypes)
		if !ok {
			result.Errors = append(result.Errors, fmt.Sprintf("File %q has a type that is not allowed (%s).", file.OriginalName, mimeType))
			continue
		}

		attachment, err := uc.writer.store(ctx, cmd.TicketID, file, mimeType)
		if err != nil {
			uc.logger.Warnw("failed to store attachment in batch",
				"ticket_id", cmd.TicketID,
				"filename", file.OriginalName,
				"error", err,
			)
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to upload %q: %s", file.OriginalName, err.Error()))
			continue
		}
		result.Attachments = append(result.Attachments, ToAttachmentResponse(attachment))
	}

	result.Message = fmt.Sprintf("Successfully uploaded %d file(s)", len(result.Attachments))
	if len(result.Errors) > 0 {
		result.Message += fmt.Sprintf(". %d file(s) failed to upload.", len(result.Errors))
	}

	uc.logger.Infow("batch upload finished",
		"ticket_id", cmd.TicketID,
		"uploaded", len(result.Attachments),
		"failed", len(result.Errors),
	)

	if len(result.Attachments) == 0 {
		return result, errors.NewBadRequestError(result.Message)
	}
	return result, nil
}

func (uc *UploadAttachmentsUseCase) reject(file UploadFile) string {
	if len(file.Data) == 0 {
		return fmt.Sprintf("File %q is empty.", file.OriginalName)
	}
	if file.size() > uc.policy.MaxFileSize {
		return fmt.Sprintf("File %q is too large. Maximum size is %s.", file.OriginalName, uc.policy.maxSizeLabel())
	}
	return ""
}
