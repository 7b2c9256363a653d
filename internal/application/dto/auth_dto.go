package dto

// LoginRequest entrada para login. LocalID es opcional: si viene, un usuario
// no-admin debe coincidir con su local asignado.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	LocalID  *int64 `json:"local_id"`
}

// LoginResponse salida de login: el registro del usuario más el token JWT.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}
