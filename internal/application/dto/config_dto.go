package dto

// ConfigResponse ajustes visibles de la aplicación.
type ConfigResponse struct {
	NombreEmpresa string `json:"nombre_empresa"`
	Version       string `json:"version"`
}

// UpdateConfigRequest entrada para actualizar los ajustes.
type UpdateConfigRequest struct {
	NombreEmpresa string `json:"nombre_empresa" validate:"required,min=1,max=200"`
}
