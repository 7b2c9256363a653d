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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario. La columna password guarda el hash bcrypt.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (username, password, nombre, rol, local_id, activo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, fecha_creacion`
	err := r.q.QueryRow(context.Background(), query,
		usuario.Username, usuario.PasswordHash, usuario.Nombre, usuario.Rol,
		usuario.LocalID, boolToActivo(usuario.Activo),
	).Scan(&usuario.ID, &usuario.FechaCreacion)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	query := `
		SELECT id, username, password, nombre, rol, local_id, activo, fecha_creacion
		FROM usuarios WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get usuario by id")
}

// GetByUsername obtiene un usuario por username (para login).
func (r *UsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	query := `
		SELECT id, username, password, nombre, rol, local_id, activo, fecha_creacion
		FROM usuarios WHERE username = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, username), "get usuario by username")
}

func (r *UsuarioRepo) scanOne(row pgx.Row, op string) (*entity.Usuario, error) {
	var (
		u      entity.Usuario
		activo int16
	)
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Nombre, &u.Rol,
		&u.LocalID, &activo, &u.FechaCreacion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Activo = activoToBool(activo)
	return &u, nil
}

// List lista todos los usuarios ordenados por username.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	query := `
		SELECT id, username, password, nombre, rol, local_id, activo, fecha_creacion
		FROM usuarios ORDER BY username`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var (
			u      entity.Usuario
			activo int16
		)
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Nombre, &u.Rol,
			&u.LocalID, &activo, &u.FechaCreacion); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		u.Activo = activoToBool(activo)
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza un usuario (reemplazo completo de campos editables).
func (r *UsuarioRepo) Update(usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios SET username = $2, password = $3, nombre = $4, rol = $5,
			local_id = $6, activo = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Username, usuario.PasswordHash, usuario.Nombre,
		usuario.Rol, usuario.LocalID, boolToActivo(usuario.Activo),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// Delete elimina la cuenta. Sus movimientos se borran antes, en la misma
// transacción, vía MovimientoRepository.DeleteByUsuario.
func (r *UsuarioRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
