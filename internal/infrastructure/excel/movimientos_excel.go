// Package excel serializa el libro de movimientos a un archivo XLSX.
package excel

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	appinventory "github.com/igcalvo/licores-api/internal/application/inventory"
	"github.com/igcalvo/licores-api/internal/domain/repository"
)

const hojaMovimientos = "Movimientos"

// encabezados en el orden de las columnas A..H.
var encabezados = []string{
	"ID", "Fecha", "Producto", "Tipo",
	"Cantidad (ml)", "Peso bruto (g)", "Usuario", "Notas",
}

// ExcelizeMovimientosExporter implementa inventory.MovimientosExporter con
// una hoja única: fila 1 de encabezados en negrita y una fila por movimiento.
type ExcelizeMovimientosExporter struct{}

var _ appinventory.MovimientosExporter = (*ExcelizeMovimientosExporter)(nil)

// NewExcelizeMovimientosExporter construye el exportador.
func NewExcelizeMovimientosExporter() *ExcelizeMovimientosExporter {
	return &ExcelizeMovimientosExporter{}
}

// ExportMovimientos devuelve los bytes del XLSX con las filas recibidas.
func (e *ExcelizeMovimientosExporter) ExportMovimientos(filas []repository.MovimientoConDetalle) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", hojaMovimientos); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	for i, h := range encabezados {
		celda, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de encabezado %d: %w", i+1, err)
		}
		if err := f.SetCellValue(hojaMovimientos, celda, h); err != nil {
			return nil, fmt.Errorf("excel: escribir encabezado %s: %w", celda, err)
		}
	}

	negrita, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de encabezado: %w", err)
	}
	if err := f.SetCellStyle(hojaMovimientos, "A1", "H1", negrita); err != nil {
		return nil, fmt.Errorf("excel: aplicar estilo: %w", err)
	}

	for i, m := range filas {
		valores := []any{
			m.ID,
			m.Fecha.Format("2006-01-02 15:04:05"),
			m.ProductoNombre,
			m.Tipo,
			m.CantidadMl.InexactFloat64(),
			celdaPeso(m.PesoBruto),
			m.UsuarioNombre,
			m.Notas,
		}
		for j, v := range valores {
			celda, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("excel: celda (%d,%d): %w", j+1, i+2, err)
			}
			if err := f.SetCellValue(hojaMovimientos, celda, v); err != nil {
				return nil, fmt.Errorf("excel: escribir celda %s: %w", celda, err)
			}
		}
	}

	// Anchos pensados para que fecha, producto y notas no queden truncados.
	anchos := []struct {
		col   string
		ancho float64
	}{
		{"A", 8}, {"B", 20}, {"C", 30}, {"D", 10},
		{"E", 14}, {"F", 14}, {"G", 18}, {"H", 40},
	}
	for _, a := range anchos {
		if err := f.SetColWidth(hojaMovimientos, a.col, a.col, a.ancho); err != nil {
			return nil, fmt.Errorf("excel: ancho de columna %s: %w", a.col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

// celdaPeso deja la celda vacía cuando el movimiento no vino de la báscula.
func celdaPeso(p *decimal.Decimal) any {
	if p == nil {
		return ""
	}
	return p.InexactFloat64()
}
