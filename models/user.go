package models

import "time"

// UserRole defines the staff roles allowed in the system
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
	RoleWaiter  UserRole = "waiter"
	RoleChef    UserRole = "chef"
)

// ValidRoles is the closed set of assignable staff roles
var ValidRoles = map[UserRole]bool{
	RoleAdmin:   true,
	RoleManager: true,
	RoleStaff:   true,
	RoleWaiter:  true,
	RoleChef:    true,
}

// User is a staff account. Deletion is immediate, there is no soft-delete.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         UserRole   `json:"role" gorm:"not null;default:'staff'"`
	// No column default on Active: creation paths set it explicitly so a
	// false value persists as false.
	Active       bool       `json:"active" gorm:"not null"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
