package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/igcalvo/licores-api/internal/domain/entity"
)

// MovimientoFilter acota el listado del libro. Los punteros nil no filtran.
type MovimientoFilter struct {
	ProductoID *int64
	Tipo       *string
	Desde      *time.Time
	Hasta      *time.Time
	LocalID    *int64 // alcance ya resuelto; nil = todos los locales
	Limit      int
}

// MovimientoConDetalle es una línea del libro con los nombres ya resueltos
// por JOIN, lista para presentar.
type MovimientoConDetalle struct {
	entity.Movimiento
	ProductoNombre string
	UsuarioNombre  string // vacío cuando user_id es NULL
}

// MovimientoRepository define el puerto del libro de movimientos (DIP).
// El libro es append-only salvo los borrados en cascada de producto/usuario.
type MovimientoRepository interface {
	Create(movimiento *entity.Movimiento) error
	List(filter MovimientoFilter) ([]MovimientoConDetalle, error)
	// GetNivel devuelve la suma firmada del libro del producto y cuántos
	// movimientos lo componen, en una sola consulta.
	GetNivel(productoID int64) (nivel decimal.Decimal, movimientos int, err error)
	DeleteByProducto(productoID int64) error
	DeleteByUsuario(usuarioID int64) error
}
