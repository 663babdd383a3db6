package dto

import "time"

// RegisterAdminRequest entrada del registro público. El rol no se acepta del
// cliente: siempre se fuerza a admin (punto de entrada de la jerarquía).
type RegisterAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
	// Password en texto, se hashea en el use case.
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
}

// CreateUserRequest entrada del aprovisionamiento de cuentas (solo nivel admin).
// El rol debe pertenecer al subconjunto no administrativo.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Role     string `json:"role" validate:"required,oneof=store_keeper inventory_manager requester vendor viewer"`
}

// UserResponse salida de una cuenta (sin credenciales).
// UUID es el id de correlación del perfil; ID el identificador interno.
type UserResponse struct {
	ID        string    `json:"id"`
	UUID      string    `json:"uuid"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListResponse listado paginado de cuentas.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Page  PageResponse   `json:"page"`
}

// AvailableRolesResponse roles aprovisionables por el nivel administrativo.
type AvailableRolesResponse struct {
	Roles []string `json:"roles"`
}

// UpdateUserRequest campos editables de una cuenta (nivel admin).
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=200"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	IsActive *bool   `json:"is_active"`
	Role     *string `json:"role" validate:"omitempty,oneof=store_keeper inventory_manager requester vendor viewer"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con par de tokens JWT.
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"` // "bearer"
	User         UserResponse `json:"user"`
}

// RefreshRequest entrada para renovar el access token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshResponse nuevo access token.
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// LogoutRequest entrada para logout: el refresh token a revocar.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ChangePasswordRequest cambio de contraseña propio: exige la credencial actual.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// SetPasswordRequest reset administrativo: sin prueba de credencial actual.
type SetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
