package entities

import (
	"strings"
	"time"
)

// Role is the profile (perfil) of an authenticated user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleEditor  Role = "editor"
	RoleCliente Role = "cliente"
)

func ParseRole(raw string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "admin":
		return RoleAdmin, true
	case "editor":
		return RoleEditor, true
	case "cliente", "client":
		return RoleCliente, true
	}
	return "", false
}

// IsStaff reports whether the role may manage orders and the catalog.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleEditor
}

// User is an account of the users (usuarios) collection.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Actor is the authenticated identity acting on a request. A nil *Actor
// means an anonymous caller.
type Actor struct {
	UserID string
	Email  string
	Role   Role
}

func (a *Actor) IsStaff() bool {
	return a != nil && a.Role.IsStaff()
}
