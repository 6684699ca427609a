package dto

import (
	"time"

	"github.com/yatraflow/yatraflow/internal/domain"
)

// SignupRequest payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse returns token metadata on login.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse is the public account shape; the credential hash never
// leaves the service.
type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// SessionResponse is the persisted session mirror.
type SessionResponse struct {
	User            *UserResponse `json:"user"`
	IsAuthenticated bool          `json:"isAuthenticated"`
}

// NewSessionResponse maps a domain session.
func NewSessionResponse(s domain.Session) SessionResponse {
	resp := SessionResponse{IsAuthenticated: s.IsAuthenticated}
	if s.User != nil {
		user := NewUserResponse(*s.User)
		resp.User = &user
	}
	return resp
}
