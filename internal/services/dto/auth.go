package dto

import (
	"techhub_backend/internal/models"
)

// RegisterRequest - solicitud de registro local
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	// Rol opcional; por defecto estudiante.
	Role string `json:"role,omitempty"`
}

// LoginRequest - solicitud de login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// PasswordUpdateRequest - cambio de password
type PasswordUpdateRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

// TokenResponse - respuesta con bearer token y proyección pública del usuario
type TokenResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	User        models.PublicUser `json:"user"`
}

// CompleteAuthResponse - respuesta del flujo federado legacy
type CompleteAuthResponse struct {
	User    *models.User `json:"user"`
	Message string       `json:"message"`
}
