package domain

import "time"

// UserRole distinguishes administrators from regular reporters.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User is an account that can sign in to the dashboard.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is the persisted association between the process and at most one
// authenticated account.
type Session struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}

// LoggedOut returns the zero session.
func LoggedOut() Session {
	return Session{User: nil, IsAuthenticated: false}
}
