package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// FilaInventario es el estado crudo de un producto para el reporte de
// niveles. La DB lo produce; el use case lo convierte en DTO.
type FilaInventario struct {
	ProductoID       int64
	Nombre           string
	Marca            string
	Tipo             string
	CapacidadMl      decimal.Decimal
	MinimoInventario decimal.Decimal
	Nivel            decimal.Decimal
	Botellas         int
}

// PuntoConsumo agrega las entradas y salidas de un día.
type PuntoConsumo struct {
	Dia      time.Time
	Entradas decimal.Decimal
	Salidas  decimal.Decimal
}

// ReporteRepository define las consultas de lectura para reportes.
// Las implementaciones son read-only (no modifican datos).
type ReporteRepository interface {
	// NivelesInventario devuelve el estado de cada producto activo con su
	// nivel agregado. localID nil = todos los locales.
	NivelesInventario(ctx context.Context, localID *int64) ([]FilaInventario, error)

	// ConsumoDiario agrega entradas y salidas por día desde la fecha dada,
	// excluyendo ajustes. localID nil = todos los locales.
	ConsumoDiario(ctx context.Context, localID *int64, desde time.Time) ([]PuntoConsumo, error)
}
