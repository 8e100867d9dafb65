package usecases

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	uservo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// In-memory fakes. Each repository hands out sequential IDs.

type memTicketRepo struct {
	mu      sync.Mutex
	tickets map[uint]*ticket.Ticket
	nextID  uint
}

func newMemTicketRepo() *memTicketRepo {
	return &memTicketRepo{tickets: map[uint]*ticket.Ticket{}, nextID: 1}
}

func (r *memTicketRepo) Create(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := t.SetID(r.nextID); err != nil {
		return err
	}
	r.tickets[r.nextID] = t
	r.nextID++
	return nil
}

func (r *memTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[t.ID()]; !ok {
		return errors.NewNotFoundError("Ticket not found")
	}
	r.tickets[t.ID()] = t
	return nil
}

func (r *memTicketRepo) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tickets[id]
	if !ok {
		return nil, errors.NewNotFoundError("Ticket not found")
	}
	return t, nil
}

func (r *memTicketRepo) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*ticket.Ticket
	for _, t := range r.tickets {
		if filter.CreatorID != nil && t.CreatorID() != *filter.CreatorID {
			continue
		}
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID() > all[j].ID() })
	total := int64(len(all))
	if filter.Offset >= len(all) {
		return []*ticket.Ticket{}, total, nil
	}
	all = all[filter.Offset:]
	if filter.Limit > 0 && len(all) > filter.Limit {
		all = all[:filter.Limit]
	}
	return all, total, nil
}

func (r *memTicketRepo) CountByStatus(ctx context.Context, creatorID *uint) (map[vo.TicketStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[vo.TicketStatus]int64{}
	for _, t := range r.tickets {
		if creatorID != nil && t.CreatorID() != *creatorID {
			continue
		}
		counts[t.Status()]++
	}
	return counts, nil
}

type memCommentRepo struct {
	mu       sync.Mutex
	comments map[uint]*ticket.Comment
	nextID   uint
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: map[uint]*ticket.Comment{}, nextID: 1}
}

func (r *memCommentRepo) Create(ctx context.Context, c *ticket.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := c.SetID(r.nextID); err != nil {
		return err
	}
	r.comments[r.nextID] = c
	r.nextID++
	return nil
}

func (r *memCommentRepo) Update(ctx context.Context, c *ticket.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments[c.ID()] = c
	return nil
}

func (r *memCommentRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return errors.NewNotFoundError("Comment not found")
	}
	delete(r.comments, id)
	return nil
}

func (r *memCommentRepo) GetByID(ctx context.Context, id uint) (*ticket.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, errors.NewNotFoundError("Comment not found")
	}
	return c, nil
}

func (r *memCommentRepo) ListByTicketIDs(ctx context.Context, ids []uint, includeInternal bool) ([]*ticket.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*ticket.Comment
	for _, c := range r.comments {
		if !slices.Contains(ids, c.TicketID()) || (c.IsInternal() && !includeInternal) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

type memAttachmentRepo struct {
	mu          sync.Mutex
	attachments map[uint]*ticket.Attachment
	nextID      uint
	createErr   error
}

func newMemAttachmentRepo() *memAttachmentRepo {
	return &memAttachmentRepo{attachments: map[uint]*ticket.Attachment{}, nextID: 1}
}

func (r *memAttachmentRepo) Create(ctx context.Context, a *ticket.Attachment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if err := a.SetID(r.nextID); err != nil {
		return err
	}
	r.attachments[r.nextID] = a
	r.nextID++
	return nil
}

func (r *memAttachmentRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attachments, id)
	return nil
}

func (r *memAttachmentRepo) GetByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.attachments[id]
	if !ok {
		return nil, errors.NewNotFoundError("Attachment not found")
	}
	return a, nil
}

func (r *memAttachmentRepo) ListByTicketIDs(ctx context.Context, ids []uint) ([]*ticket.Attachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*ticket.Attachment
	for _, a := range r.attachments {
		if slices.Contains(ids, a.TicketID()) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (r *memAttachmentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.attachments)
}

type memUserRepo struct {
	users map[uint]*user.User
}

func newMemUserRepo(users ...*user.User) *memUserRepo {
	r := &memUserRepo{users: map[uint]*user.User{}}
	for _, u := range users {
		r.users[u.ID()] = u
	}
	return r
}

func (r *memUserRepo) Create(ctx context.Context, u *user.User) error { return nil }
func (r *memUserRepo) Update(ctx context.Context, u *user.User) error { return nil }

func (r *memUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NewNotFoundError("User not found")
	}
	return u, nil
}

func (r *memUserRepo) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("User not found")
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *memUserRepo) List(ctx context.Context) ([]*user.User, error) {
	return r.GetByIDs(ctx, []uint{1, 2, 3})
}

func (r *memUserRepo) TicketCounts(ctx context.Context, ids []uint) (map[uint]user.TicketCounts, error) {
	return map[uint]user.TicketCounts{}, nil
}

type memFileStore struct {
	mu      sync.Mutex
	files   map[string][]byte
	saveErr error
}

func newMemFileStore() *memFileStore {
	return &memFileStore{files: map[string][]byte{}}
}

func (s *memFileStore) Save(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.files[name] = data
	return nil
}

func (s *memFileStore) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[name]; !ok {
		return fmt.Errorf("failed to remove file: %w", os.ErrNotExist)
	}
	delete(s.files, name)
	return nil
}

func (s *memFileStore) URL(name string) string { return "/uploads/" + name }

func (s *memFileStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

// declaredTypeResolver trusts the declared type, which keeps sniffing out of these tests.
type declaredTypeResolver struct{}

func (declaredTypeResolver) Resolve(data []byte, declared string, allowed []string) (string, bool) {
	return declared, slices.Contains(allowed, declared)
}

type seqNamer struct {
	mu sync.Mutex
	n  int
}

func (s *seqNamer) StoredName(original string, now time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%d-%s", s.n, strings.ReplaceAll(original, " ", "_")), nil
}

// fakeTransactor runs fn directly; commitErr simulates a failed commit.
type fakeTransactor struct {
	commitErr error
}

func (f fakeTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return f.commitErr
}

type sentNotification struct {
	kind     string
	to       string
	ticketID uint
	status   string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (n *recordingNotifier) TicketAssigned(ctx context.Context, to, name string, ticketID uint, title string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{kind: "assigned", to: to, ticketID: ticketID})
}

func (n *recordingNotifier) TicketStatusChanged(ctx context.Context, to, name string, ticketID uint, title, status string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{kind: "status", to: to, ticketID: ticketID, status: status})
}

type plainRenderer struct{}

func (plainRenderer) RenderSafe(markdown string) string { return "<p>" + markdown + "</p>\n" }

func newTestUser(id uint, email string, role authorization.UserRole) *user.User {
	addr, err := uservo.NewEmail(email)
	if err != nil {
		panic(err)
	}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	u, err := user.ReconstructUser(id, addr, "hash", "Test", fmt.Sprintf("User%d", id), role, true, now, now)
	if err != nil {
		panic(err)
	}
	return u
}

func adminActor(id uint) authorization.Actor {
	return authorization.Actor{UserID: id, Role: authorization.RoleAdmin}
}

func userActor(id uint) authorization.Actor {
	return authorization.Actor{UserID: id, Role: authorization.RoleUser}
}

func ptr[T any](v T) *T {
	return &v
}

const (
	adminID uint = 1
	aliceID uint = 2
	bobID   uint = 3
)

// fixture wires every ticket use case against shared in-memory state with
// one admin and two regular users.
type fixture struct {
	tickets     *memTicketRepo
	comments    *memCommentRepo
	attachments *memAttachmentRepo
	users       *memUserRepo
	files       *memFileStore
	notifier    *recordingNotifier
	assembler   *TicketAssembler
	log         logger.Interface
	tx          fakeTransactor
	policy      UploadPolicy
}

func newFixture() *fixture {
	f := &fixture{
		tickets:     newMemTicketRepo(),
		comments:    newMemCommentRepo(),
		attachments: newMemAttachmentRepo(),
		users: newMemUserRepo(
			newTestUser(adminID, "admin@example.com", authorization.RoleAdmin),
			newTestUser(aliceID, "alice@example.com", authorization.RoleUser),
			newTestUser(bobID, "bob@example.com", authorization.RoleUser),
		),
		files:    newMemFileStore(),
		notifier: &recordingNotifier{},
		log:      logger.NewLogger(),
		policy:   DefaultUploadPolicy(),
	}
	f.assembler = NewTicketAssembler(f.users, f.comments, f.attachments, plainRenderer{})
	return f
}

func (f *fixture) createTicket(actor authorization.Actor, title string) uint {
	uc := NewCreateTicketUseCase(f.tickets, f.assembler, f.log)
	view, err := uc.Execute(context.Background(), CreateTicketCommand{Actor: actor, Title: title, Description: "details"})
	if err != nil {
		panic(err)
	}
	return view.ID
}

func (f *fixture) addComment(actor authorization.Actor, ticketID uint, content string, internal bool) uint {
	uc := NewAddCommentUseCase(f.tickets, f.comments, f.users, f.assembler, f.log)
	view, err := uc.Execute(context.Background(), AddCommentCommand{Actor: actor, TicketID: ticketID, Content: content, IsInternal: internal})
	if err != nil {
		panic(err)
	}
	return view.ID
}

func (f *fixture) uploadOne() *UploadAttachmentUseCase {
	return NewUploadAttachmentUseCase(f.tickets, f.attachments, f.files, declaredTypeResolver{}, &seqNamer{}, f.tx, f.policy, f.log)
}

func (f *fixture) uploadMany() *UploadAttachmentsUseCase {
	return NewUploadAttachmentsUseCase(f.tickets, f.attachments, f.files, declaredTypeResolver{}, &seqNamer{}, f.tx, f.policy, f.log)
}

func textFile(name string, size int) UploadFile {
	return UploadFile{
		OriginalName: name,
		DeclaredType: "text/plain",
		Size:         int64(size),
		Data:         []byte(strings.Repeat("a", size)),
	}
}
