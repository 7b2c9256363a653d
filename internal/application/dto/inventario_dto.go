package dto

import "github.com/shopspring/decimal"

// PesajeRequest entrada del registro por báscula: el peso total leído y, si
// el volumen sale negativo, la confirmación explícita del ajuste.
type PesajeRequest struct {
	ProductoID int64           `json:"producto_id" validate:"required"`
	PesoTotal  decimal.Decimal `json:"peso_total"`
	Confirmar  bool            `json:"confirmar"`
}

// PesajeResponse resultado de un pesaje registrado.
type PesajeResponse struct {
	ProductoID int64           `json:"producto_id"`
	VolumenMl  decimal.Decimal `json:"volumen_ml"`
	Tipo       string          `json:"tipo"`
	CantidadMl decimal.Decimal `json:"cantidad_ml"`
	NivelMl    decimal.Decimal `json:"nivel_ml"`
	Porcentaje decimal.Decimal `json:"porcentaje"`
	Estado     string          `json:"estado"`
}

// Acciones sobre botellas completas.
const (
	AccionAgregar = "agregar"
	AccionQuitar  = "quitar"
)

// BotellaRequest entrada de las operaciones de botella completa.
type BotellaRequest struct {
	ProductoID int64  `json:"producto_id" validate:"required"`
	Accion     string `json:"accion" validate:"required,oneof=agregar quitar"`
}

// BotellaResponse estado del producto tras la operación.
type BotellaResponse struct {
	ProductoID        int64           `json:"producto_id"`
	BotellasCompletas int             `json:"botellas_completas"`
	Tipo              string          `json:"tipo"`
	CantidadMl        decimal.Decimal `json:"cantidad_ml"`
	NivelMl           decimal.Decimal `json:"nivel_ml"`
}
