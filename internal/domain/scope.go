package domain

import "github.com/igcalvo/licores-api/internal/domain/entity"

// Scope describe el alcance de una sesión autenticada: quién es, con qué rol
// y a qué local queda confinada. Se resuelve una sola vez tras validar el
// token y viaja explícito hasta los repositorios, que lo aplican como filtro.
// Invariante: una sesión con rol distinto de admin siempre trae LocalID
// (el login rechaza cuentas no-admin sin local asignado).
type Scope struct {
	UserID  int64
	Rol     string
	LocalID *int64
}

// EsAdmin indica si la sesión tiene rol administrador.
func (s Scope) EsAdmin() bool { return s.Rol == entity.RolAdmin }

// LocalRestringido devuelve el local al que queda confinada la consulta.
// Para admin no hay restricción; para el resto es su local asignado.
func (s Scope) LocalRestringido() (int64, bool) {
	if s.EsAdmin() || s.LocalID == nil {
		return 0, false
	}
	return *s.LocalID, true
}

// PuedeVerLocal indica si la sesión puede operar sobre el local dado.
func (s Scope) PuedeVerLocal(localID int64) bool {
	if s.EsAdmin() {
		return true
	}
	return s.LocalID != nil && *s.LocalID == localID
}
