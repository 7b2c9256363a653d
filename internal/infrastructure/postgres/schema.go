package postgres

import (
	"context"
	"embed"
	"fmt"
	"path"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// EnsureSchema aplica las migraciones embebidas en orden lexicográfico.
// Todas son idempotentes (IF NOT EXISTS), así que correrlas en cada arranque
// es seguro y reproduce el esquema completo en una base vacía.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("leer migraciones embebidas: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		raw, err := migrationsFS.ReadFile(path.Join("migrations", entry.Name()))
		if err != nil {
			return fmt.Errorf("leer migración %s: %w", entry.Name(), err)
		}
		if _, err := pool.Exec(ctx, string(raw)); err != nil {
			return fmt.Errorf("aplicar migración %s: %w", entry.Name(), err)
		}
	}
	return nil
}
