package usecases

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/errors"
)

func TestUploadAttachmentUseCase(t *testing.T) {
	t.Run("stores file and row", func(t *testing.T) {
		f := newFixture()
		id := f.createTicket(userActor(aliceID), "logs")

		view, err := f.uploadOne().Execute(t.Context(), UploadAttachmentCommand{
			Actor: userActor(aliceID), TicketID: id, File: ptr(textFile("error log.txt", 64)),
		})
		require.NoError(t, err)
		assert.Equal(t, "error log.txt", view.OriginalName)
		assert.Equal(t, "1-error_log.txt", view.Filename)
		assert.Equal(t, "/uploads/1-error_log.txt", view.URL)
		assert.Equal(t, "text/plain", view.MimeType)
		assert.EqualValues(t, 64, view.Size)
		assert.Equal(t, 1, f.attachments.count())
		assert.Equal(t, 1, f.files.count())
	})

	t.Run("oversized file leaves nothing behind", func(t *testing.T) {
		f := newFixture()
		id := f.createTicket(userActor(aliceID), "logs")

		_, err := f.uploadOne().Execute(t.Context(), UploadAttachmentCommand{
			Actor: userActor(aliceID), TicketID: id, File: ptr(textFile("huge.txt", 10<<20+1)),
		})
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 400, appErr.Code)
		assert.Equal(t, "File too large. Maximum size is 10MB.", appErr.Message)
		assert.Zero(t, f.attachments.count())
		assert.Zero(t, f.files.count())
	})

	t.Run("disallowed type", func(t *testing.T) {
		f := newFixture()
		id := f.createTicket(userActor(aliceID), "logs")
		file := textFile("bundle.zip", 10)
		file.DeclaredType = "application/zip"

		_, err := f.uploadOne().Execute(t.Context(), UploadAttachmentCommand{Actor: userActor(aliceID), TicketID: id, File: &file})
		require.Error(t, err)
		assert.Equal(t, "File type application/zip is not allowed", errors.GetAppError(err).Message)
	})

	t.Run("missing and empty file", func(t *testing.T) {
		f := newFixture()
		id := f.createTicket(userActor(aliceID), "logs")

		_, err := f.uploadOne().Execute(t.Context(), UploadAttachmentCommand{Actor: userActor(aliceID), TicketID: id})
		assert.Equal(t, "No file uploaded", errors.GetAppError(err).Message)

		_, err = f.uploadOne().Execute(t.Context(), UploadAttachmentCommand{
			Actor: userActor(aliceID), TicketID: id, File: ptr(textFile("empty.txt", 0)),
		})
		assert.Equal(t, 400, errors.GetAppError(err).Code)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		f := newFixture()
		id := f.createTicket(userActor(aliceID), "logs")

		_, err := f.uploadOne().Execute(t.Context(), UploadAttachmentCommand{
			Actor: userActor(bobID), TicketID: id, File: ptr(textFile("a.txt", 3)),
		})
		require.True(t, errors.IsForbiddenError(err))
		assert.Equal(t, "You can only upload files to your own tickets", errors.GetAppError(err).Message)
	})

	t.Run("failed row insert writes no file", func(t *testing.T) {
		f := newFixture()
		id := f.createTicket(userActor(aliceID), "logs")
		f.attachments.createErr = stderrors.New("disk full")

		_, err := f.uploadOne().Execute(t.Context(), UploadAttachmentCommand{
			Actor: userActor(aliceID), TicketID: id, File: ptr(textFile("a.txt", 3)),
		})
		require.Error(t, err)
		assert.Zero(t, f.files.count())
	})

	t.Run("failed commit removes written file", func(t *testing.T) {
		f := newFixture()
		id := f.createTicket(userActor(aliceID), "logs")
		f.tx = fakeTransactor{commitErr: stderrors.New("commit failed")}

		_, err := f.uploadOne().Execute(t.Context(), UploadAttachmentCommand{
			Actor: userActor(aliceID), TicketID: id, File: ptr(textFile("a.txt", 3)),
		})
		require.Error(t, err)
		assert.Zero(t, f.files.count())
	})
}

func TestUploadAttachmentsUseCase(t *testing.T) {
	t.Run("partial success keeps good files", func(t *testing.T) {
		f := newFixture()
		id := f.createTicket(userActor(aliceID), "batch")

		zip := textFile("all.zip", 8)
		zip.DeclaredType = "application/zip"
		result, err := f.uploadMany().Execute(t.Context(), UploadAttachmentsCommand{
			Actor:    userActor(aliceID),
			TicketID: id,
			Files: []UploadFile{
				textFile("one.txt", 10),
				textFile("big.txt", 10<<20+1),
				textFile("two.txt", 20),
				zip,
			},
		})
		require.NoError(t, err)
		require.Len(t, result.Attachments, 3)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, `File "big.txt" is too large. Maximum size is 10MB.`, result.Errors[0])
		assert.Equal(t, "Successfully uploaded 3 file(s). 1 file(s) failed to upload.", result.Message)
		assert.Equal(t, 3, f.attachments.count())
		assert.Equal(t, 3, f.files.count())
	})

	t.Run("all valid has no errors", func(t *testing.T) {
		f := newFixture()
		id := f.createTicket(userActor(aliceID), "batch")

		result, err := f.uploadMany().Execute(t.Context(), UploadAttachmentsCommand{
			Actor: userActor(aliceID), TicketID: id, Files: []UploadFile{textFile("a.txt", 1)},
		})
		require.NoError(t, err)
		assert.Nil(t, result.Errors)
		assert.Equal(t, "Successfully uploaded 1 file(s)", result.Message)
	})

	t.Run("storage failure is reported per file", func(t *testing.T) {
		f := newFixture()
		id := f.createTicket(userActor(aliceID), "batch")
		f.files.saveErr = stderrors.New("read-only file system")

		result, err := f.uploadMany().Execute(t.Context(), UploadAttachmentsCommand{
			Actor: userActor(aliceID), TicketID: id, Files: []UploadFile{textFile("a.txt", 1)},
		})
		require.Error(t, err)
		assert.Equal(t, 400, errors.GetAppError(err).Code)
		require.NotNil(t, result)
		require.Len(t, result.Errors, 1)
		assert.True(t, strings.HasPrefix(result.Errors[0], `Failed to upload "a.txt": `))
		assert.Empty(t, result.Attachments)
	})

	t.Run("empty request fails before ticket lookup", func(t *testing.T) {
		f := newFixture()

		_, err := f.uploadMany().Execute(t.Context(), UploadAttachmentsCommand{Actor: userActor(aliceID), TicketID: 999})
		require.Error(t, err)
		assert.Equal(t, "No files uploaded", errors.GetAppError(err).Message)
	})

	t.Run("too many files", func(t *testing.T) {
		f := newFixture()
		f.policy = f.policy.WithLimits(0, 2)
		id := f.createTicket(userActor(aliceID), "batch")

		_, err := f.uploadMany().Execute(t.Context(), UploadAttachmentsCommand{
			Actor: userActor(aliceID), TicketID: id,
			Files: []UploadFile{textFile("a", 1), textFile("b", 1), textFile("c", 1)},
		})
		assert.Equal(t, 400, errors.GetAppError(err).Code)
		assert.Zero(t, f.attachments.count())
	})
}

func TestDeleteAttachmentUseCase(t *testing.T) {
	upload := func(t *testing.T, f *fixture, ticketID uint) uint {
		t.Helper()
		view, err := f.uploadOne().Execute(t.Context(), UploadAttachmentCommand{
			Actor: userActor(aliceID), TicketID: ticketID, File: ptr(textFile("a.txt", 3)),
		})
		require.NoError(t, err)
		return view.ID
	}

	t.Run("removes row and file", func(t *testing.T) {
		f := newFixture()
		id := f.createTicket(userActor(aliceID), "t")
		attID := upload(t, f, id)
		uc := NewDeleteAttachmentUseCase(f.tickets, f.attachments, f.files, f.log)

		result, err := uc.Execute(t.Context(), DeleteAttachmentCommand{Actor: userActor(aliceID), AttachmentID: attID})
		require.NoError(t, err)
		assert.Equal(t, "Attachment deleted successfully", result.Message)
		assert.Zero(t, f.attachments.count())
		assert.Zero(t, f.files.count())
	})

	t.Run("missing file on disk still deletes row", func(t *testing.T) {
		f := newFixture()
		id := f.createTicket(userActor(aliceID), "t")
		attID := upload(t, f, id)
		f.files = newMemFileStore()
		uc := NewDeleteAttachmentUseCase(f.tickets, f.attachments, f.files, f.log)

		_, err := uc.Execute(t.Context(), DeleteAttachmentCommand{Actor: adminActor(adminID), AttachmentID: attID})
		require.NoError(t, err)
		assert.Zero(t, f.attachments.count())
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		f := newFixture()
		id := f.createTicket(userActor(aliceID), "t")
		attID := upload(t, f, id)
		uc := NewDeleteAttachmentUseCase(f.tickets, f.attachments, f.files, f.log)

		_, err := uc.Execute(t.Context(), DeleteAttachmentCommand{Actor: userActor(bobID), AttachmentID: attID})
		require.True(t, errors.IsForbiddenError(err))
		assert.Equal(t, "You can only delete attachments from your own tickets", errors.GetAppError(err).Message)
		assert.Equal(t, 1, f.attachments.count())
	})

	t.Run("unknown attachment", func(t *testing.T) {
		f := newFixture()
		uc := NewDeleteAttachmentUseCase(f.tickets, f.attachments, f.files, f.log)

		_, err := uc.Execute(t.Context(), DeleteAttachmentCommand{Actor: adminActor(adminID), AttachmentID: 7})
		assert.True(t, errors.IsNotFoundError(err))
	})
}
