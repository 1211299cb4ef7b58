package dto

import "time"

// RegisterRequest entrada para registro. El password viaja y se guarda en
// texto plano (demo).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=producer consumer"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest entrada para actualizar perfil. Campos vacíos se
// conservan sin cambios; el email no es editable.
type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"omitempty,max=200"`
	Password string `json:"password" validate:"omitempty"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
