package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovimientoRequest entrada del registro directo de movimientos
// (superficie pública, espejo de la API original).
type CreateMovimientoRequest struct {
	ProductoID int64            `json:"producto_id" validate:"required"`
	UserID     *int64           `json:"user_id"`
	Tipo       string           `json:"tipo" validate:"required,oneof=entrada salida ajuste"`
	CantidadMl decimal.Decimal  `json:"cantidad_ml"`
	PesoBruto  *decimal.Decimal `json:"peso_bruto"`
	Notas      string           `json:"notas" validate:"max=500"`
}

// FiltroMovimientosRequest filtros del listado; llegan por query string.
// Desde y Hasta son fechas YYYY-MM-DD, Hasta inclusive.
type FiltroMovimientosRequest struct {
	ProductoID *int64 `query:"producto_id"`
	Tipo       string `query:"tipo" validate:"omitempty,oneof=entrada salida ajuste"`
	Desde      string `query:"desde" validate:"omitempty,datetime=2006-01-02"`
	Hasta      string `query:"hasta" validate:"omitempty,datetime=2006-01-02"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// MovimientoResponse una línea del libro con nombres resueltos.
type MovimientoResponse struct {
	ID             int64            `json:"id"`
	ProductoID     int64            `json:"producto_id"`
	UserID         *int64           `json:"user_id"`
	Tipo           string           `json:"tipo"`
	CantidadMl     decimal.Decimal  `json:"cantidad_ml"`
	PesoBruto      *decimal.Decimal `json:"peso_bruto"`
	Notas          string           `json:"notas"`
	Fecha          time.Time        `json:"fecha"`
	ProductoNombre string           `json:"producto_nombre"`
	UsuarioNombre  string           `json:"usuario_nombre"`
}
