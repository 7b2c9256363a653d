package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrConflict              = errors.New("conflicto con el estado actual")
	ErrConfirmacionRequerida = errors.New("volumen negativo: el ajuste requiere confirmación")
	ErrSinBotellas           = errors.New("no hay botellas completas registradas")
	ErrLocalConDependencias  = errors.New("el local tiene productos o usuarios asociados")
	ErrAutoEliminacion       = errors.New("no puede eliminar su propio usuario")
)
