package v1

import (
	"github.com/google/uuid"
	"github.com/ledgerlite/backend/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=128" example:"Jane Doe"`       // Display name of the user
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"` // Email address, used for login
	Password string `json:"password" binding:"required,min=8" example:"hunter2hunter2"` // Password, at least 8 characters
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"hunter2hunter2"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

type User struct {
	ID    uuid.UUID       `json:"id" example:"d1b4b0b4-85b2-4f0b-9077-cc4b0c8f63e3"` // ID of the user
	Name  string          `json:"name" example:"Jane Doe"`                           // Display name
	Email string          `json:"email" example:"jane@example.com"`                  // Email address
	Role  models.UserRole `json:"role" example:"user" enums:"user,admin"`            // Role of the user
}

// newUser returns the API representation of the user, without any
// credential material.
func newUser(model models.User) User {
	return User{
		ID:    model.ID,
		Name:  model.Name,
		Email: model.Email,
		Role:  model.Role,
	}
}

type Session struct {
	Token string `json:"token"` // Signed bearer token for the Authorization header
	User  User   `json:"user"`  // The authenticated user
}

type SessionResponse struct {
	Data *Session `json:"data"` // The session
}

type UserResponse struct {
	Data *User `json:"data"` // The user
}
