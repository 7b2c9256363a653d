package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario.
const (
	TipoEntrada = "entrada"
	TipoSalida  = "salida"
	TipoAjuste  = "ajuste" // cantidad con signo, se suma tal cual
)

// TipoMovimientoValido indica si el tipo pertenece al catálogo conocido.
func TipoMovimientoValido(tipo string) bool {
	switch tipo {
	case TipoEntrada, TipoSalida, TipoAjuste:
		return true
	}
	return false
}

// Movimiento es una línea del libro append-only de un producto. cantidad_ml
// guarda deltas: positivos para entrada/salida (el tipo aporta el signo al
// agregar) y con signo propio para ajuste.
type Movimiento struct {
	ID         int64
	ProductoID int64
	UserID     *int64
	Tipo       string // entrada, salida, ajuste
	CantidadMl decimal.Decimal
	PesoBruto  *decimal.Decimal // gramos de la lectura de báscula, si aplica
	Notas      string
	Fecha      time.Time
}
