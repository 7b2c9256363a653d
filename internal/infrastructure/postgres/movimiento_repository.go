package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/igcalvo/licores-api/internal/domain"
	"github.com/igcalvo/licores-api/internal/domain/entity"
	"github.com/igcalvo/licores-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del puerto MovimientoRepository sobre PostgreSQL.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador del libro. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create agrega una línea al libro y completa ID y fecha.
func (r *MovimientoRepo) Create(movimiento *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (producto_id, user_id, tipo, cantidad_ml, peso_bruto, notas)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, fecha`
	err := r.q.QueryRow(context.Background(), query,
		movimiento.ProductoID, movimiento.UserID, movimiento.Tipo,
		movimiento.CantidadMl, movimiento.PesoBruto, movimiento.Notas,
	).Scan(&movimiento.ID, &movimiento.Fecha)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// List devuelve líneas del libro con nombres resueltos, de la más reciente a
// la más antigua. Los filtros nil no acotan.
func (r *MovimientoRepo) List(f repository.MovimientoFilter) ([]repository.MovimientoConDetalle, error) {
	query := `
		SELECT m.id, m.producto_id, m.user_id, m.tipo, m.cantidad_ml, m.peso_bruto,
		       COALESCE(m.notas, ''), m.fecha,
		       p.nombre AS producto_nombre,
		       COALESCE(u.nombre, '') AS usuario_nombre
		FROM movimientos m
		JOIN productos p ON p.id = m.producto_id
		LEFT JOIN usuarios u ON u.id = m.user_id
		WHERE 1=1`
	args := []any{}
	agregar := func(cond string, val any) {
		args = append(args, val)
		query += fmt.Sprintf(" AND "+cond, len(args))
	}
	if f.ProductoID != nil {
		agregar("m.producto_id = $%d", *f.ProductoID)
	}
	if f.Tipo != nil {
		agregar("m.tipo = $%d", *f.Tipo)
	}
	if f.Desde != nil {
		agregar("m.fecha >= $%d", *f.Desde)
	}
	if f.Hasta != nil {
		agregar("m.fecha < $%d", *f.Hasta)
	}
	if f.LocalID != nil {
		agregar("p.local_id = $%d", *f.LocalID)
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY m.fecha DESC, m.id DESC LIMIT $%d", len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	list := []repository.MovimientoConDetalle{}
	for rows.Next() {
		var m repository.MovimientoConDetalle
		if err := rows.Scan(&m.ID, &m.ProductoID, &m.UserID, &m.Tipo, &m.CantidadMl,
			&m.PesoBruto, &m.Notas, &m.Fecha, &m.ProductoNombre, &m.UsuarioNombre); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// GetNivel devuelve la suma firmada del libro del producto y cuántas líneas
// lo componen, en una sola consulta.
func (r *MovimientoRepo) GetNivel(productoID int64) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(CASE
		           WHEN tipo = 'entrada' THEN cantidad_ml
		           WHEN tipo = 'salida' THEN -cantidad_ml
		           ELSE cantidad_ml
		       END), 0) AS nivel,
		       COUNT(*) AS movimientos
		FROM movimientos
		WHERE producto_id = $1`
	var (
		nivel       decimal.Decimal
		movimientos int
	)
	if err := r.q.QueryRow(context.Background(), query, productoID).Scan(&nivel, &movimientos); err != nil {
		return decimal.Decimal{}, 0, fmt.Errorf("nivel del producto: %w", err)
	}
	return nivel, movimientos, nil
}

// DeleteByProducto borra el libro completo de un producto (cascada de borrado).
func (r *MovimientoRepo) DeleteByProducto(productoID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM movimientos WHERE producto_id = $1`, productoID)
	if err != nil {
		return fmt.Errorf("delete movimientos por producto: %w", err)
	}
	return nil
}

// DeleteByUsuario borra los movimientos registrados por un usuario (cascada
// de borrado de la cuenta).
func (r *MovimientoRepo) DeleteByUsuario(usuarioID int64) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM movimientos WHERE user_id = $1`, usuarioID)
	if err != nil {
		return fmt.Errorf("delete movimientos por usuario: %w", err)
	}
	return nil
}
