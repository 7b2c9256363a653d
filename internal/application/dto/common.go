package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDResponse respuesta mínima de creación: el ID asignado.
type IDResponse struct {
	ID int64 `json:"id"`
}
