package dto

import "time"

// CreateUsuarioRequest entrada para crear un usuario (password en texto, se
// hashea en el caso de uso).
type CreateUsuarioRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Rol      string `json:"rol" validate:"required,oneof=admin gerente empleado"`
	LocalID  *int64 `json:"local_id"`
}

// UpdateUsuarioRequest entrada para actualizar un usuario. Password vacío
// conserva la clave actual.
type UpdateUsuarioRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Nombre   *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Rol      *string `json:"rol" validate:"omitempty,oneof=admin gerente empleado"`
	LocalID  *int64  `json:"local_id"`
	Activo   *bool   `json:"activo"`
}

// UsuarioResponse salida de un usuario (sin password).
type UsuarioResponse struct {
	ID            int64     `json:"id"`
	Username      string    `json:"username"`
	Nombre        string    `json:"nombre"`
	Rol           string    `json:"rol"`
	LocalID       *int64    `json:"local_id"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
