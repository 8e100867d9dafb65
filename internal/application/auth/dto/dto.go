package dto

import userdto "helpdesk/internal/application/user/dto"

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  *userdto.UserResponse `json:"user"`
	Token string                `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
