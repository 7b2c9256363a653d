// Package pdf implementa la representación gráfica (PDF) del reporte de
// niveles de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre empresa      │  REPORTE DE INVENTARIO+Fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Marca | Tipo | Nivel | Oz | % | B | Est  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: productos / nivel total / botellas / en bajo      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: marca de tiempo + origen de los datos              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	appinventory "github.com/igcalvo/licores-api/internal/application/inventory"
	"github.com/igcalvo/licores-api/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimario = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRojo     = &props.Color{Red: 192, Green: 57, Blue: 43}
	colorAmbar    = &props.Color{Red: 202, Green: 138, Blue: 4}
	colorVerde    = &props.Color{Red: 39, Green: 142, Blue: 74}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoInventarioGenerator implementa inventory.InventarioPDFGenerator
// usando Maroto v2.
type MarotoInventarioGenerator struct{}

var _ appinventory.InventarioPDFGenerator = (*MarotoInventarioGenerator)(nil)

// NewMarotoInventarioGenerator construye el generador.
func NewMarotoInventarioGenerator() *MarotoInventarioGenerator { return &MarotoInventarioGenerator{} }

// GenerateInventarioPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoInventarioGenerator) GenerateInventarioPDF(
	_ context.Context,
	nombreEmpresa string,
	filas []appinventory.FilaReportePDF,
) ([]byte, error) {
	// Orden alfabético español (la Ñ después de la N, acentos ignorados),
	// que el ORDER BY de la base con collation C no garantiza.
	collator := collate.New(language.Spanish)
	sort.SliceStable(filas, func(i, j int) bool {
		return collator.CompareString(filas[i].Nombre, filas[j].Nombre) < 0
	})

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(nombreEmpresa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(nombreEmpresa))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableFilaRows(filas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(totalesRow(filas))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la empresa (izq) y título + fecha (der).
func headerRow(nombreEmpresa string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New(nombreEmpresa, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
			text.New("Control de inventario de licores", props.Text{
				Size: 9, Top: 9, Color: colorGris,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimario, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGris,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de niveles.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimario, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 3, align.Left),
		h("Marca", 2, align.Left),
		h("Tipo", 1, align.Left),
		h("Nivel (ml)", 2, align.Right),
		h("Oz", 1, align.Right),
		h("%", 1, align.Right),
		h("Bot.", 1, align.Center),
		h("Estado", 1, align.Center),
	)
}

// tableFilaRows: una fila por producto, con el estado coloreado por franja.
func tableFilaRows(filas []appinventory.FilaReportePDF) []core.Row {
	result := make([]core.Row, 0, len(filas))
	for _, f := range filas {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				f.Nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(f.Marca, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				nonEmpty(f.Tipo, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				f.NivelMl.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				f.NivelOz.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				f.Porcentaje.StringFixed(1),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprint(f.Botellas),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				f.Estado,
				props.Text{
					Style: fontstyle.Bold, Size: 8, Align: align.Center,
					Top: 1, Color: colorEstado(f.Estado),
				},
			)),
		))
	}
	return result
}

// totalesRow: franja de agregados bajo la tabla.
func totalesRow(filas []appinventory.FilaReportePDF) core.Row {
	totalMl := decimal.Zero
	botellas := 0
	bajos := 0
	for _, f := range filas {
		totalMl = totalMl.Add(f.NivelMl)
		botellas += f.Botellas
		if f.Estado == inventory.EstadoBajo {
			bajos++
		}
	}
	resumen := fmt.Sprintf(
		"Productos: %d   |   Nivel total: %s ml   |   Botellas completas: %d   |   En nivel bajo: %d",
		len(filas), totalMl.StringFixed(2), botellas, bajos,
	)
	return row.New(10).Add(
		col.New(12).Add(
			text.New(resumen, props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimario, Top: 2,
			}),
		),
	)
}

// footerRow: origen de los datos.
func footerRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(
				"Niveles derivados del libro de movimientos a la fecha de generación. "+
					"Las botellas completas no están incluidas en el nivel por ml.",
				props.Text{Size: 6.5, Color: colorGris, Top: 2},
			),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func colorEstado(estado string) *props.Color {
	switch estado {
	case inventory.EstadoBajo:
		return colorRojo
	case inventory.EstadoMedio:
		return colorAmbar
	default:
		return colorVerde
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
