package models

import "time"

// Roles gate which actions a caller may invoke; they never change booking
// semantics.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// User represents a provisioned account. BadgeID is unique and is the lookup
// key for badge check-in.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	BadgeID   string    `json:"badgeId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidRole reports whether role is one of the known role names.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}
