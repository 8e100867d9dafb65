package dto

import (
	"time"

	"helpdesk/internal/domain/user"
)

// UserResponse is the public view of an account; the password hash never leaves the domain.
type UserResponse struct {
	ID        uint      `json:"id" example:"1"`
	Email     string    `json:"email" example:"jane@example.com"`
	FirstName string    `json:"firstName" example:"Jane"`
	LastName  string    `json:"lastName" example:"Doe"`
	Role      string    `json:"role" example:"USER" enums:"ADMIN,USER"`
	IsActive  bool      `json:"isActive" example:"true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TicketCountResponse struct {
	CreatedTickets  int64 `json:"createdTickets"`
	AssignedTickets int64 `json:"assignedTickets"`
}

// UserWithCountsResponse is returned by the user directory.
type UserWithCountsResponse struct {
	UserResponse
	Count TicketCountResponse `json:"_count"`
}

// UserSummary is the compact form embedded in tickets and comments.
type UserSummary struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID(),
		Email:     u.Email().String(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func ToUserWithCountsResponse(u *user.User, counts user.TicketCounts) *UserWithCountsResponse {
	return &UserWithCountsResponse{
		UserResponse: *ToUserResponse(u),
		Count: TicketCountResponse{
			CreatedTickets:  counts.Created,
			AssignedTickets: counts.Assigned,
		},
	}
}

func ToUserSummary(u *user.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email().String(),
	}
}
