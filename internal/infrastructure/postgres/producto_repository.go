package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/igcalvo/licores-api/internal/domain/entity"
	"github.com/igcalvo/licores-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const columnasProducto = `id, nombre, COALESCE(marca, ''), COALESCE(tipo, ''), densidad,
	capacidad_ml, peso_envase, local_id, botellas_completas, minimo_inventario,
	activo, fecha_creacion`

// Create persiste un nuevo producto y completa ID y fecha de creación.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos
			(nombre, marca, tipo, densidad, capacidad_ml, peso_envase, local_id,
			 botellas_completas, minimo_inventario, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, fecha_creacion`
	err := r.q.QueryRow(context.Background(), query,
		producto.Nombre, producto.Marca, producto.Tipo, producto.Densidad,
		producto.CapacidadMl, producto.PesoEnvase, producto.LocalID,
		producto.BotellasCompletas, producto.MinimoInventario, boolToActivo(producto.Activo),
	).Scan(&producto.ID, &producto.FechaCreacion)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + ` FROM productos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get producto by id")
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
// Es el punto de serialización del libro del producto dentro de una tx.
func (r *ProductoRepo) GetForUpdate(id int64) (*entity.Producto, error) {
	query := `SELECT ` + columnasProducto + ` FROM productos WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get producto for update")
}

func (r *ProductoRepo) scanOne(row pgx.Row, op string) (*entity.Producto, error) {
	var (
		p      entity.Producto
		activo int16
	)
	err := row.Scan(&p.ID, &p.Nombre, &p.Marca, &p.Tipo, &p.Densidad,
		&p.CapacidadMl, &p.PesoEnvase, &p.LocalID, &p.BotellasCompletas,
		&p.MinimoInventario, &activo, &p.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.Activo = activoToBool(activo)
	return &p, nil
}

// ListConTotales lista productos con su nivel agregado (suma firmada del
// libro: entradas suman, salidas restan, ajustes van con su propio signo),
// ordenados por nombre. localID nil = todos los locales.
func (r *ProductoRepo) ListConTotales(localID *int64, soloActivos bool) ([]repository.ProductoConTotal, error) {
	query := `
		SELECT p.id, p.nombre, COALESCE(p.marca, ''), COALESCE(p.tipo, ''), p.densidad,
		       p.capacidad_ml, p.peso_envase, p.local_id, p.botellas_completas,
		       p.minimo_inventario, p.activo, p.fecha_creacion,
		       COALESCE((
		           SELECT SUM(CASE
		               WHEN m.tipo = 'entrada' THEN m.cantidad_ml
		               WHEN m.tipo = 'salida' THEN -m.cantidad_ml
		               ELSE m.cantidad_ml
		           END)
		           FROM movimientos m
		           WHERE m.producto_id = p.id
		       ), 0) AS total_ml
		FROM productos p
		WHERE ($1::bigint IS NULL OR p.local_id = $1)
		  AND (NOT $2::boolean OR p.activo = 1)
		ORDER BY p.nombre`
	rows, err := r.q.Query(context.Background(), query, localID, soloActivos)
	if err != nil {
		return nil, fmt.Errorf("list productos con totales: %w", err)
	}
	defer rows.Close()
	list := []repository.ProductoConTotal{}
	for rows.Next() {
		var (
			p      repository.ProductoConTotal
			activo int16
		)
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Marca, &p.Tipo, &p.Densidad,
			&p.CapacidadMl, &p.PesoEnvase, &p.LocalID, &p.BotellasCompletas,
			&p.MinimoInventario, &activo, &p.FechaCreacion, &p.TotalMl); err != nil {
			return nil, fmt.Errorf("scan producto con total: %w", err)
		}
		p.Activo = activoToBool(activo)
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un producto. No toca local_id ni botellas_completas:
// el producto no se muda de local y el contador va por UpdateBotellas.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, marca = $3, tipo = $4, densidad = $5,
			capacidad_ml = $6, peso_envase = $7, minimo_inventario = $8, activo = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Marca, producto.Tipo, producto.Densidad,
		producto.CapacidadMl, producto.PesoEnvase, producto.MinimoInventario,
		boolToActivo(producto.Activo),
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateBotellas fija el contador de botellas completas.
func (r *ProductoRepo) UpdateBotellas(id int64, botellas int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET botellas_completas = $2 WHERE id = $1`, id, botellas)
	if err != nil {
		return fmt.Errorf("update botellas: %w", err)
	}
	return nil
}

// Delete elimina el producto. Su libro se borra antes, en la misma
// transacción, vía MovimientoRepository.DeleteByProducto.
func (r *ProductoRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
