package usecases

import (
	"context"
	"time"
)

// FileStore persists attachment bytes under a storage name.
type FileStore interface {
	Save(ctx context.Context, name string, data []byte) error
	Remove(ctx context.Context, name string) error
	URL(name string) string
}

// ContentTypeResolver decides the content type of an upload and whether it is allowed.
type ContentTypeResolver interface {
	Resolve(data []byte, declared string, allowed []string) (string, bool)
}

type FileNamer interface {
	StoredName(original string, now time.Time) (string, error)
}

type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers ticket notifications. Implementations must not block
// the caller on delivery.
type Notifier interface {
	TicketAssigned(ctx context.Context, to, name string, ticketID uint, title string)
	TicketStatusChanged(ctx context.Context, to, name string, ticketID uint, title, status string)
}

type MarkdownRenderer interface {
	RenderSafe(markdown string) string
}
