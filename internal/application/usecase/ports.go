package usecase

import (
	"context"

	"github.com/igcalvo/licores-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Los borrados en cascada (producto o usuario junto con sus movimientos)
// pasan por aquí para no dejar el libro huérfano a medias.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
		usuarioRepo repository.UsuarioRepository,
	) error) error
}

// SettingsStore persiste los ajustes editables de la aplicación.
type SettingsStore interface {
	NombreEmpresa() string
	SetNombreEmpresa(nombre string) error
}
