package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/igcalvo/licores-api/internal/domain/entity"
)

// SeedDefaults garantiza los datos mínimos para poder entrar al sistema:
// un local principal y una cuenta admin asignada a él. Es idempotente;
// si las filas ya existen no toca nada.
func SeedDefaults(ctx context.Context, pool *pgxpool.Pool, adminUser, adminPassword string) error {
	var localID int64
	err := pool.QueryRow(ctx,
		`SELECT id FROM locales WHERE nombre = 'Local Principal'`).Scan(&localID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = pool.QueryRow(ctx,
			`INSERT INTO locales (nombre, direccion, telefono)
			 VALUES ('Local Principal', 'Dirección Principal', '')
			 RETURNING id`).Scan(&localID)
	}
	if err != nil {
		return fmt.Errorf("seed local principal: %w", err)
	}

	var existe bool
	if err := pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE username = $1)`, adminUser).Scan(&existe); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if existe {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash de la clave admin: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO usuarios (username, password, nombre, rol, local_id, activo)
		 VALUES ($1, $2, 'Administrador', $3, $4, 1)`,
		adminUser, string(hash), entity.RolAdmin, localID)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
