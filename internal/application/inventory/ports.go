package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/igcalvo/licores-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// inventario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
		usuarioRepo repository.UsuarioRepository,
	) error) error
}

// SettingsStore acceso de lectura a los ajustes de la aplicación.
type SettingsStore interface {
	NombreEmpresa() string
}

// FilaReportePDF una línea del reporte de inventario ya enriquecida para la
// representación gráfica.
type FilaReportePDF struct {
	Nombre     string
	Marca      string
	Tipo       string
	NivelMl    decimal.Decimal
	NivelOz    decimal.Decimal
	Botellas   int
	Porcentaje decimal.Decimal
	Estado     string
}

// InventarioPDFGenerator genera la representación gráfica (PDF) del reporte
// de niveles.
type InventarioPDFGenerator interface {
	GenerateInventarioPDF(ctx context.Context, nombreEmpresa string, filas []FilaReportePDF) ([]byte, error)
}

// MovimientosExporter produce el archivo XLSX del libro filtrado.
type MovimientosExporter interface {
	ExportMovimientos(filas []repository.MovimientoConDetalle) ([]byte, error)
}
