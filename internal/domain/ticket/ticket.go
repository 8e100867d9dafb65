package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 10000
)

type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	creatorID   uint
	assigneeID  *uint
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
}

func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	creatorID uint,
) (*Ticket, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	description, err = normalizeDescription(description)
	if err != nil {
		return nil, err
	}
	if priority == "" {
		priority = vo.DefaultPriority
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       title,
		description: description,
		status:      vo.StatusOpen,
		priority:    priority,
		creatorID:   creatorID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	creatorID uint,
	assigneeID *uint,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
	}, nil
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return "", fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	return title, nil
}

func normalizeDescription(description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return "", fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	return description, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) CreatorID() uint         { return t.creatorID }
func (t *Ticket) AssigneeID() *uint       { return t.assigneeID }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }
func (t *Ticket) ResolvedAt() *time.Time  { return t.resolvedAt }

func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.creatorID == userID
}

// CanBeAccessedBy reports whether the actor may view or act on the ticket.
func (t *Ticket) CanBeAccessedBy(actor authorization.Actor) bool {
	return actor.CanAccessOwnedBy(t.creatorID)
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateDetails changes the supplied fields; nil leaves a field untouched.
func (t *Ticket) UpdateDetails(title, description *string) error {
	newTitle, newDescription := t.title, t.description
	var err error
	if title != nil {
		if newTitle, err = normalizeTitle(*title); err != nil {
			return err
		}
	}
	if description != nil {
		if newDescription, err = normalizeDescription(*description); err != nil {
			return err
		}
	}
	if newTitle != t.title || newDescription != t.description {
		t.title, t.description = newTitle, newDescription
		t.touch()
	}
	return nil
}

// ChangeStatus moves the ticket to newStatus and reports whether anything changed.
// resolvedAt is stamped on entering RESOLVED, kept through CLOSED and cleared
// when the ticket becomes active again.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) (bool, error) {
	if !newStatus.IsValid() {
		return false, fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return false, nil
	}

	now := biztime.NowUTC()
	switch {
	case newStatus.IsResolved():
		t.resolvedAt = &now
	case newStatus.IsActive():
		t.resolvedAt = nil
	}

	t.status = newStatus
	t.updatedAt = now
	return true, nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	if t.priority == newPriority {
		return nil
	}
	t.priority = newPriority
	t.touch()
	return nil
}

// Assign sets or clears (nil) the assignee and reports whether it changed.
func (t *Ticket) Assign(assigneeID *uint) (bool, error) {
	if assigneeID != nil && *assigneeID == 0 {
		return false, fmt.Errorf("assignee ID cannot be zero")
	}
	if sameAssignee(t.assigneeID, assigneeID) {
		return false, nil
	}
	if assigneeID == nil {
		t.assigneeID = nil
	} else {
		id := *assigneeID
		t.assigneeID = &id
	}
	t.touch()
	return true, nil
}

func sameAssignee(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (t *Ticket) touch() {
	t.updatedAt = biztime.NowUTC()
}
