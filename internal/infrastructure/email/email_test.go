package email

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"helpdesk/internal/shared/logger"
)

type fakeSender struct {
	mu       sync.Mutex
	messages []*gomail.Message
	err      error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, m...)
	return nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func newTestService(s sender) *SMTPEmailService {
	return &SMTPEmailService{
		config: SMTPConfig{FromAddress: "support@example.com", FromName: "Helpdesk", BaseURL: "http://localhost:3001"},
		dialer: s,
	}
}

func TestSMTPEmailService_Headers(t *testing.T) {
	fs := &fakeSender{}
	svc := newTestService(fs)

	require.NoError(t, svc.SendTicketStatusChangedEmail("jane@example.com", "Jane", 7, "Printer on fire", "RESOLVED"))
	require.Len(t, fs.messages, 1)

	m := fs.messages[0]
	assert.Equal(t, []string{"jane@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"[Ticket #7] Status changed to RESOLVED"}, m.GetHeader("Subject"))
	assert.Contains(t, m.GetHeader("From")[0], "support@example.com")
}

func TestSMTPEmailService_WrapsError(t *testing.T) {
	svc := newTestService(&fakeSender{err: errors.New("connection refused")})
	err := svc.SendTicketAssignedEmail("a@example.com", "A", 1, "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestTicketNotifier_DeliversInBackground(t *testing.T) {
	fs := &fakeSender{}
	n := NewTicketNotifier(newTestService(fs), logger.NewLogger())

	n.TicketAssigned(context.Background(), "a@example.com", "A", 1, "First")
	n.TicketStatusChanged(context.Background(), "b@example.com", "B", 2, "Second", "CLOSED")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, n.Wait(ctx))
	assert.Equal(t, 2, fs.count())
}

func TestTicketNotifier_FailureIsSwallowed(t *testing.T) {
	n := NewTicketNotifier(newTestService(&fakeSender{err: errors.New("boom")}), logger.NewLogger())
	n.TicketAssigned(context.Background(), "a@example.com", "A", 1, "First")
	assert.NoError(t, n.Wait(context.Background()))
}

func TestNewSMTPEmailService_DefaultPort(t *testing.T) {
	svc := NewSMTPEmailService(SMTPConfig{Host: "smtp.example.com"})
	assert.Equal(t, 587, svc.config.Port)
}
