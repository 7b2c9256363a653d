package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin    = "admin"
	RolGerente  = "gerente"
	RolEmpleado = "empleado"
)

// RolValido indica si el rol pertenece al catálogo conocido.
func RolValido(rol string) bool {
	switch rol {
	case RolAdmin, RolGerente, RolEmpleado:
		return true
	}
	return false
}

// Usuario representa una cuenta del sistema. Los roles distintos de admin
// quedan confinados al local asignado.
type Usuario struct {
	ID            int64
	Username      string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre        string
	Rol           string // admin, gerente, empleado
	LocalID       *int64 // nil para cuentas sin local asignado
	Activo        bool
	FechaCreacion time.Time
}
