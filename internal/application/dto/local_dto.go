package dto

import "time"

// CreateLocalRequest entrada para crear un local.
type CreateLocalRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Direccion string `json:"direccion" validate:"max=300"`
	Telefono  string `json:"telefono" validate:"max=50"`
}

// UpdateLocalRequest entrada para actualizar un local (campos opcionales).
type UpdateLocalRequest struct {
	Nombre    *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Direccion *string `json:"direccion" validate:"omitempty,max=300"`
	Telefono  *string `json:"telefono" validate:"omitempty,max=50"`
	Activo    *bool   `json:"activo"`
}

// LocalResponse salida de un local.
type LocalResponse struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Direccion     string    `json:"direccion"`
	Telefono      string    `json:"telefono"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
