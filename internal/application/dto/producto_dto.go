package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto. El mínimo llega en
// porcentaje (como se captura) y se guarda como fracción. Los rangos de los
// campos decimales se verifican en el caso de uso.
type CreateProductoRequest struct {
	Nombre              string          `json:"nombre" validate:"required,min=1,max=200"`
	Marca               string          `json:"marca" validate:"max=200"`
	Tipo                string          `json:"tipo" validate:"max=100"`
	Densidad            decimal.Decimal `json:"densidad"`
	CapacidadMl         decimal.Decimal `json:"capacidad_ml"`
	PesoEnvase          decimal.Decimal `json:"peso_envase"`
	LocalID             *int64          `json:"local_id"`
	MinimoInventarioPct decimal.Decimal `json:"minimo_inventario_pct"`
}

// UpdateProductoRequest entrada para actualizar un producto. No permite mover
// el producto de local ni tocar el contador de botellas.
type UpdateProductoRequest struct {
	Nombre              *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Marca               *string          `json:"marca" validate:"omitempty,max=200"`
	Tipo                *string          `json:"tipo" validate:"omitempty,max=100"`
	Densidad            *decimal.Decimal `json:"densidad"`
	CapacidadMl         *decimal.Decimal `json:"capacidad_ml"`
	PesoEnvase          *decimal.Decimal `json:"peso_envase"`
	MinimoInventarioPct *decimal.Decimal `json:"minimo_inventario_pct"`
	Activo              *bool            `json:"activo"`
}

// ProductoResponse salida de un producto en la superficie de gestión.
type ProductoResponse struct {
	ID                  int64           `json:"id"`
	Nombre              string          `json:"nombre"`
	Marca               string          `json:"marca"`
	Tipo                string          `json:"tipo"`
	Densidad            decimal.Decimal `json:"densidad"`
	CapacidadMl         decimal.Decimal `json:"capacidad_ml"`
	PesoEnvase          decimal.Decimal `json:"peso_envase"`
	LocalID             int64           `json:"local_id"`
	BotellasCompletas   int             `json:"botellas_completas"`
	MinimoInventario    decimal.Decimal `json:"minimo_inventario"`
	MinimoInventarioPct decimal.Decimal `json:"minimo_inventario_pct"`
	Activo              bool            `json:"activo"`
	FechaCreacion       time.Time       `json:"fecha_creacion"`
}

// ProductoDetalleResponse producto con su nivel derivado y presentaciones.
type ProductoDetalleResponse struct {
	ProductoResponse
	NivelMl    decimal.Decimal `json:"nivel_ml"`
	NivelOz    decimal.Decimal `json:"nivel_oz"`
	Porcentaje decimal.Decimal `json:"porcentaje"`
	Estado     string          `json:"estado"`
}

// ProductoPublicoResponse es la fila del listado público, espejo de la
// consulta original: columnas crudas más total_ml (activo viaja como 1/0).
type ProductoPublicoResponse struct {
	ID                int64           `json:"id"`
	Nombre            string          `json:"nombre"`
	Marca             string          `json:"marca"`
	Tipo              string          `json:"tipo"`
	Densidad          decimal.Decimal `json:"densidad"`
	CapacidadMl       decimal.Decimal `json:"capacidad_ml"`
	PesoEnvase        decimal.Decimal `json:"peso_envase"`
	LocalID           int64           `json:"local_id"`
	BotellasCompletas int             `json:"botellas_completas"`
	MinimoInventario  decimal.Decimal `json:"minimo_inventario"`
	Activo            int             `json:"activo"`
	FechaCreacion     time.Time       `json:"fecha_creacion"`
	TotalMl           decimal.Decimal `json:"total_ml"`
}

// DensidadTipicaResponse sugerencia de densidad por tipo de licor.
type DensidadTipicaResponse struct {
	Tipo     string          `json:"tipo"`
	Densidad decimal.Decimal `json:"densidad"`
}
