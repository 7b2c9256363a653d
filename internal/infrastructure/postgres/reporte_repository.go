package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/igcalvo/licores-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo implementación read-only de ReporteRepository sobre PostgreSQL.
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador de reportes.
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

const queryNivelesInventario = `
	SELECT p.id,
	       p.nombre,
	       COALESCE(p.marca, '')             AS marca,
	       COALESCE(p.tipo, '')              AS tipo,
	       p.capacidad_ml,
	       p.minimo_inventario,
	       p.botellas_completas,
	       COALESCE((
	           SELECT SUM(CASE
	               WHEN m.tipo = 'entrada' THEN m.cantidad_ml
	               WHEN m.tipo = 'salida' THEN -m.cantidad_ml
	               ELSE m.cantidad_ml
	           END)
	           FROM movimientos m
	           WHERE m.producto_id = p.id
	       ), 0)                             AS nivel
	FROM productos p
	WHERE p.activo = 1
	  AND ($1::bigint IS NULL OR p.local_id = $1)
	ORDER BY p.nombre`

// NivelesInventario devuelve el estado crudo de cada producto activo.
func (r *ReporteRepo) NivelesInventario(ctx context.Context, localID *int64) ([]repository.FilaInventario, error) {
	rows, err := r.q.Query(ctx, queryNivelesInventario, localID)
	if err != nil {
		return nil, fmt.Errorf("reportes.NivelesInventario: %w", err)
	}
	defer rows.Close()

	filas := []repository.FilaInventario{}
	for rows.Next() {
		var f repository.FilaInventario
		if err := rows.Scan(&f.ProductoID, &f.Nombre, &f.Marca, &f.Tipo,
			&f.CapacidadMl, &f.MinimoInventario, &f.Botellas, &f.Nivel); err != nil {
			return nil, fmt.Errorf("reportes.NivelesInventario scan: %w", err)
		}
		filas = append(filas, f)
	}
	return filas, rows.Err()
}

const queryConsumoDiario = `
	SELECT DATE(m.fecha)                                                          AS dia,
	       COALESCE(SUM(CASE WHEN m.tipo = 'entrada' THEN m.cantidad_ml END), 0)  AS entradas,
	       COALESCE(SUM(CASE WHEN m.tipo = 'salida' THEN m.cantidad_ml END), 0)   AS salidas
	FROM movimientos m
	JOIN productos p ON p.id = m.producto_id
	WHERE m.tipo IN ('entrada', 'salida')
	  AND m.fecha >= $1
	  AND ($2::bigint IS NULL OR p.local_id = $2)
	GROUP BY DATE(m.fecha)
	ORDER BY dia`

// ConsumoDiario agrega entradas y salidas por día desde la fecha dada.
// Los ajustes quedan fuera: corrigen el nivel, no describen consumo.
func (r *ReporteRepo) ConsumoDiario(ctx context.Context, localID *int64, desde time.Time) ([]repository.PuntoConsumo, error) {
	rows, err := r.q.Query(ctx, queryConsumoDiario, desde, localID)
	if err != nil {
		return nil, fmt.Errorf("reportes.ConsumoDiario: %w", err)
	}
	defer rows.Close()

	puntos := []repository.PuntoConsumo{}
	for rows.Next() {
		var p repository.PuntoConsumo
		if err := rows.Scan(&p.Dia, &p.Entradas, &p.Salidas); err != nil {
			return nil, fmt.Errorf("reportes.ConsumoDiario scan: %w", err)
		}
		puntos = append(puntos, p)
	}
	return puntos, rows.Err()
}
