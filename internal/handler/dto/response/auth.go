package response

import (
	"stayline/internal/domain/user"

	"github.com/google/uuid"
)

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromAuthResult(token string, u *user.User) *AuthResponse {
	return &AuthResponse{
		Token: token,
		User:  *FromUser(u),
	}
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:    u.ID(),
		Email: u.Email().String(),
		Role:  u.Role().String(),
	}
}
