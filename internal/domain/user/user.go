package user

import (
	"fmt"
	"strings"
	"time"

	vo "helpdesk/internal/domain/user/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

const maxNameLength = 100

// User is the account aggregate. Accounts are never removed; deactivation
// flips isActive and blocks authentication.
type User struct {
	id           uint
	email        vo.Email
	passwordHash string
	firstName    string
	lastName     string
	role         authorization.UserRole
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(
	email vo.Email,
	passwordHash string,
	firstName string,
	lastName string,
	role authorization.UserRole,
) (*User, error) {
	if email.String() == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	first, err := normalizeName("firstName", firstName)
	if err != nil {
		return nil, err
	}
	last, err := normalizeName("lastName", lastName)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = authorization.RoleUser
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		email:        email,
		passwordHash: passwordHash,
		firstName:    first,
		lastName:     last,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence
func ReconstructUser(
	id uint,
	email vo.Email,
	passwordHash string,
	firstName string,
	lastName string,
	role authorization.UserRole,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func normalizeName(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%s is required", field)
	}
	if len(trimmed) > maxNameLength {
		return "", fmt.Errorf("%s exceeds maximum length of %d characters", field, maxNameLength)
	}
	return trimmed, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Email() vo.Email              { return u.email }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) FirstName() string            { return u.firstName }
func (u *User) LastName() string             { return u.lastName }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) IsActive() bool               { return u.isActive }
func (u *User) CreatedAt() time.Time         { return u.createdAt }
func (u *User) UpdatedAt() time.Time         { return u.updatedAt }

func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

// Actor returns the authorization identity of this user.
func (u *User) Actor() authorization.Actor {
	return authorization.Actor{UserID: u.id, Role: u.role}
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile changes the supplied name fields; nil leaves a field untouched.
func (u *User) UpdateProfile(firstName, lastName *string) error {
	first, last := u.firstName, u.lastName
	var err error
	if firstName != nil {
		if first, err = normalizeName("firstName", *firstName); err != nil {
			return err
		}
	}
	if lastName != nil {
		if last, err = normalizeName("lastName", *lastName); err != nil {
			return err
		}
	}
	if first != u.firstName || last != u.lastName {
		u.firstName, u.lastName = first, last
		u.touch()
	}
	return nil
}

func (u *User) ChangeEmail(email vo.Email) {
	if u.email.Equals(email) {
		return
	}
	u.email = email
	u.touch()
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.touch()
	return nil
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	if u.role != role {
		u.role = role
		u.touch()
	}
	return nil
}

func (u *User) SetActive(active bool) {
	if u.isActive != active {
		u.isActive = active
		u.touch()
	}
}

func (u *User) Deactivate() {
	u.SetActive(false)
}

func (u *User) touch() {
	u.updatedAt = biztime.NowUTC()
}
