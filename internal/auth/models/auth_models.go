package models

import (
	"time"
)

// User is a registered player account.
type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Email            string    `gorm:"unique;not null" json:"email"`
	PasswordHash     string    `gorm:"not null" json:"-"`
	DisplayName      string    `json:"displayName"`
	EmailVerified    bool      `gorm:"not null;default:false" json:"emailVerified"`
	VerificationCode string    `json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// RegisterRequest is the request body for account creation.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"displayName"`
}

// VerifyEmailRequest is the request body for email verification.
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the request body for profile updates.
type UpdateProfileRequest struct {
	DisplayName string `json:"displayName" binding:"required,min=1,max=80"`
}

// LoginResponse carries the issued token and the user it belongs to.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
