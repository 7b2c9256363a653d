package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/igcalvo/licores-api/internal/domain"
	"github.com/igcalvo/licores-api/internal/domain/entity"
	"github.com/igcalvo/licores-api/internal/domain/repository"
)

var _ repository.LocalRepository = (*LocalRepo)(nil)

// LocalRepo implementación del puerto LocalRepository sobre PostgreSQL.
type LocalRepo struct {
	q Querier
}

// NewLocalRepository construye el adaptador de locales. Pasar pool o tx (Querier).
func NewLocalRepository(q Querier) *LocalRepo {
	return &LocalRepo{q: q}
}

// Create persiste un nuevo local y completa ID y fecha de creación.
func (r *LocalRepo) Create(local *entity.Local) error {
	query := `
		INSERT INTO locales (nombre, direccion, telefono, activo)
		VALUES ($1, $2, $3, $4)
		RETURNING id, fecha_creacion`
	err := r.q.QueryRow(context.Background(), query,
		local.Nombre, local.Direccion, local.Telefono, boolToActivo(local.Activo),
	).Scan(&local.ID, &local.FechaCreacion)
	if err != nil {
		return fmt.Errorf("insert local: %w", err)
	}
	return nil
}

// GetByID obtiene un local por ID.
func (r *LocalRepo) GetByID(id int64) (*entity.Local, error) {
	query := `
		SELECT id, nombre, COALESCE(direccion, ''), COALESCE(telefono, ''), activo, fecha_creacion
		FROM locales WHERE id = $1`
	var (
		l      entity.Local
		activo int16
	)
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Nombre, &l.Direccion, &l.Telefono, &activo, &l.FechaCreacion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get local by id: %w", err)
	}
	l.Activo = activoToBool(activo)
	return &l, nil
}

// List lista todos los locales ordenados por nombre.
func (r *LocalRepo) List() ([]*entity.Local, error) {
	query := `
		SELECT id, nombre, COALESCE(direccion, ''), COALESCE(telefono, ''), activo, fecha_creacion
		FROM locales ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Local
	for rows.Next() {
		var (
			l      entity.Local
			activo int16
		)
		if err := rows.Scan(&l.ID, &l.Nombre, &l.Direccion, &l.Telefono, &activo, &l.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan local: %w", err)
		}
		l.Activo = activoToBool(activo)
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza un local.
func (r *LocalRepo) Update(local *entity.Local) error {
	query := `
		UPDATE locales SET nombre = $2, direccion = $3, telefono = $4, activo = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		local.ID, local.Nombre, local.Direccion, local.Telefono, boolToActivo(local.Activo),
	)
	if err != nil {
		return fmt.Errorf("update local: %w", err)
	}
	return nil
}

// Delete elimina un local por ID. El caso de uso verifica antes que no
// queden dependientes.
func (r *LocalRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM locales WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrLocalConDependencias
		}
		return fmt.Errorf("delete local: %w", err)
	}
	return nil
}

// Dependientes cuenta productos y usuarios que referencian el local.
func (r *LocalRepo) Dependientes(id int64) (productos, usuarios int, err error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM productos WHERE local_id = $1),
			(SELECT COUNT(*) FROM usuarios WHERE local_id = $1)`
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&productos, &usuarios); err != nil {
		return 0, 0, fmt.Errorf("contar dependientes del local: %w", err)
	}
	return productos, usuarios, nil
}
