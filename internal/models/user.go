package models

import (
	"strings"

	"gorm.io/gorm"
)

// UserRole determines what a user may do beyond managing their own records.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Valid reports whether the role is one of the known user roles.
func (r UserRole) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is the identity record all transactions and budgets belong to.
type User struct {
	DefaultModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	Role         UserRole
}

// BeforeSave normalizes the user record. Emails are compared
// case-insensitively, so they are stored lowercased.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Role == "" {
		u.Role = RoleUser
	}

	if !u.Role.Valid() {
		return ErrUserRoleInvalid
	}

	return nil
}
