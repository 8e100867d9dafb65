package email

import (
	"context"
	"html"
	"sync"

	"helpdesk/internal/shared/logger"
)

func escape(s string) string {
	return html.EscapeString(s)
}

// TicketNotifier delivers ticket notifications in the background.
// Delivery errors are logged and never returned to the caller.
type TicketNotifier struct {
	service *SMTPEmailService
	logger  logger.Interface
	wg      sync.WaitGroup
}

func NewTicketNotifier(service *SMTPEmailService, log logger.Interface) *TicketNotifier {
	return &TicketNotifier{service: service, logger: log}
}

func (n *TicketNotifier) TicketAssigned(_ context.Context, to, name string, ticketID uint, title string) {
	n.dispatch("ticket_assigned", to, ticketID, func() error {
		return n.service.SendTicketAssignedEmail(to, name, ticketID, title)
	})
}

func (n *TicketNotifier) TicketStatusChanged(_ context.Context, to, name string, ticketID uint, title, status string) {
	n.dispatch("ticket_status_changed", to, ticketID, func() error {
		return n.service.SendTicketStatusChangedEmail(to, name, ticketID, title, status)
	})
}

func (n *TicketNotifier) dispatch(kind, to string, ticketID uint, send func() error) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := send(); err != nil {
			n.logger.Errorw("failed to deliver notification",
				"kind", kind,
				"to", to,
				"ticket_id", ticketID,
				"error", err,
			)
			return
		}
		n.logger.Debugw("notification delivered", "kind", kind, "to", to, "ticket_id", ticketID)
	}()
}

// Wait blocks until in-flight deliveries finish or ctx is done.
func (n *TicketNotifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NoopNotifier is used when no SMTP host is configured.
type NoopNotifier struct{}

func (NoopNotifier) TicketAssigned(context.Context, string, string, uint, string) {}

func (NoopNotifier) TicketStatusChanged(context.Context, string, string, uint, string, string) {}

func (NoopNotifier) Wait(context.Context) error { return nil }
