package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa una referencia de licor de un local. El nivel actual
// nunca se guarda aquí: siempre se deriva sumando movimientos.
type Producto struct {
	ID                int64
	Nombre            string
	Marca             string
	Tipo              string          // whisky, vodka, ron, etc.
	Densidad          decimal.Decimal // g/ml, rango (0, 2]
	CapacidadMl       decimal.Decimal
	PesoEnvase        decimal.Decimal // gramos de la botella vacía
	LocalID           int64
	BotellasCompletas int
	MinimoInventario  decimal.Decimal // fracción 0-1; porcentaje solo en la frontera
	Activo            bool
	FechaCreacion     time.Time
}
