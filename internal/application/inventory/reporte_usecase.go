package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/domain"
	"github.com/igcalvo/licores-api/internal/domain/inventory"
	"github.com/igcalvo/licores-api/internal/domain/repository"
)

// Períodos de consumo aceptados, en días. Cualquier otro valor cae en el
// período por defecto.
var periodosConsumo = map[int]bool{7: true, 15: true, 30: true, 60: true, 90: true}

const periodoConsumoDefecto = 30

// ReporteUseCase arma el resumen de niveles, la serie de consumo diario y la
// representación gráfica (PDF) del inventario.
type ReporteUseCase struct {
	reporteRepo repository.ReporteRepository
	settings    SettingsStore
	pdfGen      InventarioPDFGenerator
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(
	reporteRepo repository.ReporteRepository,
	settings SettingsStore,
	pdfGen InventarioPDFGenerator,
) *ReporteUseCase {
	return &ReporteUseCase{reporteRepo: reporteRepo, settings: settings, pdfGen: pdfGen}
}

// Resumen devuelve el estado de cada producto activo con sus totales.
func (uc *ReporteUseCase) Resumen(ctx context.Context, scope domain.Scope) (*dto.ResumenInventarioResponse, error) {
	filas, err := uc.reporteRepo.NivelesInventario(ctx, localDe(scope))
	if err != nil {
		return nil, err
	}
	resp := &dto.ResumenInventarioResponse{
		Filas: make([]dto.FilaResumenResponse, 0, len(filas)),
	}
	for _, f := range filas {
		pct := inventory.PorcentajeNivel(f.Nivel, f.CapacidadMl)
		estado := inventory.EstadoNivel(pct, f.MinimoInventario)
		resp.Filas = append(resp.Filas, dto.FilaResumenResponse{
			ProductoID: f.ProductoID,
			Nombre:     f.Nombre,
			Marca:      f.Marca,
			Tipo:       f.Tipo,
			NivelMl:    f.Nivel,
			NivelOz:    inventory.MlEnOz(f.Nivel),
			Porcentaje: pct,
			Estado:     estado,
			Botellas:   f.Botellas,
		})
		resp.Totales.TotalMl = resp.Totales.TotalMl.Add(f.Nivel)
		resp.Totales.TotalBotellas += f.Botellas
		if estado == inventory.EstadoBajo {
			resp.Totales.ProductosBajos++
		}
	}
	resp.Totales.Productos = len(filas)
	return resp, nil
}

// Consumo devuelve la serie diaria de entradas y salidas del período. Los
// ajustes no cuentan como consumo y quedan fuera. Los días sin movimientos
// aparecen en cero para que la serie siempre mida el período completo.
func (uc *ReporteUseCase) Consumo(ctx context.Context, scope domain.Scope, dias int) (*dto.ConsumoResponse, error) {
	if !periodosConsumo[dias] {
		dias = periodoConsumoDefecto
	}
	ahora := time.Now()
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	desde := hoy.AddDate(0, 0, -(dias - 1))

	puntos, err := uc.reporteRepo.ConsumoDiario(ctx, localDe(scope), desde)
	if err != nil {
		return nil, err
	}
	porDia := make(map[string]repository.PuntoConsumo, len(puntos))
	for _, p := range puntos {
		porDia[p.Dia.Format("2006-01-02")] = p
	}
	serie := make([]dto.PuntoConsumoResponse, 0, dias)
	for d := 0; d < dias; d++ {
		clave := desde.AddDate(0, 0, d).Format("2006-01-02")
		p := porDia[clave]
		serie = append(serie, dto.PuntoConsumoResponse{
			Fecha:    clave,
			Entradas: p.Entradas,
			Salidas:  p.Salidas.Neg(),
			Neto:     p.Entradas.Sub(p.Salidas),
		})
	}
	return &dto.ConsumoResponse{Dias: dias, Puntos: serie}, nil
}

// InventarioPDF genera el PDF del reporte de niveles.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - el error de la consulta o de la generación en caso contrario.
func (uc *ReporteUseCase) InventarioPDF(ctx context.Context, scope domain.Scope) ([]byte, string, error) {
	filas, err := uc.reporteRepo.NivelesInventario(ctx, localDe(scope))
	if err != nil {
		return nil, "", err
	}
	pdfFilas := make([]FilaReportePDF, 0, len(filas))
	for _, f := range filas {
		pct := inventory.PorcentajeNivel(f.Nivel, f.CapacidadMl)
		pdfFilas = append(pdfFilas, FilaReportePDF{
			Nombre:     f.Nombre,
			Marca:      f.Marca,
			Tipo:       f.Tipo,
			NivelMl:    f.Nivel,
			NivelOz:    inventory.MlEnOz(f.Nivel),
			Botellas:   f.Botellas,
			Porcentaje: pct,
			Estado:     inventory.EstadoNivel(pct, f.MinimoInventario),
		})
	}
	data, err := uc.pdfGen.GenerateInventarioPDF(ctx, uc.settings.NombreEmpresa(), pdfFilas)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("inventario_%s.pdf", time.Now().Format("20060102"))
	return data, filename, nil
}

func localDe(scope domain.Scope) *int64 {
	if id, ok := scope.LocalRestringido(); ok {
		return &id
	}
	return nil
}
