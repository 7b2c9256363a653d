package repository

import (
	"github.com/shopspring/decimal"

	"github.com/igcalvo/licores-api/internal/domain/entity"
)

// ProductoConTotal es un producto junto con su nivel agregado, tal como lo
// produce la consulta con subquery de suma firmada.
type ProductoConTotal struct {
	entity.Producto
	TotalMl decimal.Decimal
}

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id int64) (*entity.Producto, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE); es el
	// punto de serialización de su libro dentro de una transacción.
	GetForUpdate(id int64) (*entity.Producto, error)
	// ListConTotales lista productos con su nivel agregado, ordenados por
	// nombre. localID nil = todos los locales.
	ListConTotales(localID *int64, soloActivos bool) ([]ProductoConTotal, error)
	Update(producto *entity.Producto) error
	UpdateBotellas(id int64, botellas int) error
	Delete(id int64) error
}
