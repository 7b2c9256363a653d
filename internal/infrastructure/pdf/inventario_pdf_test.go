package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/igcalvo/licores-api/internal/application/inventory"
	"github.com/igcalvo/licores-api/internal/domain/inventory"
	"github.com/igcalvo/licores-api/internal/infrastructure/pdf"
)

func filaDeReporte(nombre, estado string, nivel int64) appinventory.FilaReportePDF {
	return appinventory.FilaReportePDF{
		Nombre:     nombre,
		Marca:      "Casa Vieja",
		Tipo:       "Ron",
		NivelMl:    decimal.NewFromInt(nivel),
		NivelOz:    inventory.MlEnOz(decimal.NewFromInt(nivel)),
		Botellas:   2,
		Porcentaje: decimal.NewFromInt(nivel).Div(decimal.NewFromInt(10)),
		Estado:     estado,
	}
}

// Caso 1: con filas de las tres franjas sale un PDF bien formado.
func TestGenerateInventarioPDF_DevuelveDocumento(t *testing.T) {
	gen := pdf.NewMarotoInventarioGenerator()

	b, err := gen.GenerateInventarioPDF(context.Background(), "Bar La Esquina", []appinventory.FilaReportePDF{
		filaDeReporte("Ñame Spirit", inventory.EstadoOK, 800),
		filaDeReporte("Aguardiente Antioqueño", inventory.EstadoBajo, 120),
		filaDeReporte("Ron Viejo de Caldas", inventory.EstadoMedio, 400),
	})
	require.NoError(t, err)
	require.NotEmpty(t, b)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "los bytes no tienen la firma %%PDF")
}

// Caso 2: sin productos el reporte igual se genera, solo con totales en cero.
func TestGenerateInventarioPDF_SinFilas(t *testing.T) {
	gen := pdf.NewMarotoInventarioGenerator()

	b, err := gen.GenerateInventarioPDF(context.Background(), "Mi Bar", nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}
