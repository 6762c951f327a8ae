package dto

import "time"

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponseDTO never carries the password hash.
type UserResponseDTO struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

type LoginResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    UserResponseDTO `json:"user"`
	Token   string          `json:"token"`
}

type ProfileResponse struct {
	Success bool            `json:"success"`
	User    UserResponseDTO `json:"user"`
}
