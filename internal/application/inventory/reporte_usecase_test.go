package inventory_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinventory "github.com/igcalvo/licores-api/internal/application/inventory"
	"github.com/igcalvo/licores-api/internal/domain/inventory"
	"github.com/igcalvo/licores-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*fakeReporteRepo)(nil)

type fakeReporteRepo struct {
	filas       []repository.FilaInventario
	consumo     []repository.PuntoConsumo
	ultimoDesde time.Time
	ultimoLocal *int64
}

func (r *fakeReporteRepo) NivelesInventario(_ context.Context, localID *int64) ([]repository.FilaInventario, error) {
	r.ultimoLocal = localID
	return r.filas, nil
}

func (r *fakeReporteRepo) ConsumoDiario(_ context.Context, localID *int64, desde time.Time) ([]repository.PuntoConsumo, error) {
	r.ultimoLocal = localID
	r.ultimoDesde = desde
	return r.consumo, nil
}

var _ appinventory.SettingsStore = (*fakeSettings)(nil)

type fakeSettings struct{ nombre string }

func (s *fakeSettings) NombreEmpresa() string { return s.nombre }

var _ appinventory.InventarioPDFGenerator = (*fakePDFGen)(nil)

type fakePDFGen struct {
	nombre string
	filas  []appinventory.FilaReportePDF
}

func (g *fakePDFGen) GenerateInventarioPDF(_ context.Context, nombreEmpresa string, filas []appinventory.FilaReportePDF) ([]byte, error) {
	g.nombre = nombreEmpresa
	g.filas = filas
	return []byte("%PDF"), nil
}

func filasDeInventario() []repository.FilaInventario {
	return []repository.FilaInventario{
		{
			ProductoID: 1, Nombre: "Aguardiente", Tipo: "Aguardiente",
			CapacidadMl: decimal.NewFromInt(1000), MinimoInventario: decimal.NewFromFloat(0.20),
			Nivel: decimal.NewFromInt(150), Botellas: 1,
		},
		{
			ProductoID: 2, Nombre: "Ron Viejo de Caldas", Tipo: "Ron",
			CapacidadMl: decimal.NewFromInt(1000), MinimoInventario: decimal.NewFromFloat(0.20),
			Nivel: decimal.NewFromInt(300), Botellas: 2,
		},
		{
			ProductoID: 3, Nombre: "Whisky Buchanans", Tipo: "Whisky",
			CapacidadMl: decimal.NewFromInt(1000), MinimoInventario: decimal.NewFromFloat(0.20),
			Nivel: decimal.NewFromInt(600), Botellas: 0,
		},
	}
}

func TestReporteResumen_FranjasYTotales(t *testing.T) {
	repo := &fakeReporteRepo{filas: filasDeInventario()}
	uc := appinventory.NewReporteUseCase(repo, &fakeSettings{nombre: "Mi Bar"}, &fakePDFGen{})

	resp, err := uc.Resumen(context.Background(), scopeAdmin())

	require.NoError(t, err)
	require.Len(t, resp.Filas, 3)
	assert.Equal(t, inventory.EstadoBajo, resp.Filas[0].Estado, "15%% con mínimo 20%% es Bajo")
	assert.Equal(t, inventory.EstadoMedio, resp.Filas[1].Estado)
	assert.Equal(t, inventory.EstadoOK, resp.Filas[2].Estado)

	assert.Equal(t, 3, resp.Totales.Productos)
	assert.True(t, decimal.NewFromInt(1050).Equal(resp.Totales.TotalMl))
	assert.Equal(t, 3, resp.Totales.TotalBotellas)
	assert.Equal(t, 1, resp.Totales.ProductosBajos)
	assert.Nil(t, repo.ultimoLocal, "el admin consulta todos los locales")
}

func TestReporteResumen_EmpleadoRestringidoASuLocal(t *testing.T) {
	repo := &fakeReporteRepo{}
	uc := appinventory.NewReporteUseCase(repo, &fakeSettings{}, &fakePDFGen{})

	_, err := uc.Resumen(context.Background(), scopeEmpleado(6))

	require.NoError(t, err)
	require.NotNil(t, repo.ultimoLocal)
	assert.Equal(t, int64(6), *repo.ultimoLocal)
}

func TestReporteConsumo_SerieCompletaConSalidasNegadas(t *testing.T) {
	ahora := time.Now()
	hoy := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	repo := &fakeReporteRepo{consumo: []repository.PuntoConsumo{
		{Dia: hoy, Entradas: decimal.NewFromInt(100), Salidas: decimal.NewFromInt(40)},
	}}
	uc := appinventory.NewReporteUseCase(repo, &fakeSettings{}, &fakePDFGen{})

	resp, err := uc.Consumo(context.Background(), scopeAdmin(), 7)

	require.NoError(t, err)
	assert.Equal(t, 7, resp.Dias)
	require.Len(t, resp.Puntos, 7, "los días sin movimientos aparecen en cero")

	ultimo := resp.Puntos[6]
	assert.Equal(t, hoy.Format("2006-01-02"), ultimo.Fecha)
	assert.True(t, decimal.NewFromInt(100).Equal(ultimo.Entradas))
	assert.True(t, decimal.NewFromInt(-40).Equal(ultimo.Salidas),
		"las salidas viajan negadas para graficar bajo el eje")
	assert.True(t, decimal.NewFromInt(60).Equal(ultimo.Neto))

	primero := resp.Puntos[0]
	assert.True(t, primero.Entradas.IsZero())
	assert.True(t, primero.Salidas.IsZero())
	assert.Equal(t, hoy.AddDate(0, 0, -6), repo.ultimoDesde,
		"una serie de 7 días arranca hace 6 días e incluye hoy")
}

func TestReporteConsumo_PeriodoInvalidoCaeEnTreinta(t *testing.T) {
	repo := &fakeReporteRepo{}
	uc := appinventory.NewReporteUseCase(repo, &fakeSettings{}, &fakePDFGen{})

	resp, err := uc.Consumo(context.Background(), scopeAdmin(), 42)

	require.NoError(t, err)
	assert.Equal(t, 30, resp.Dias)
	assert.Len(t, resp.Puntos, 30)
}

func TestReporteInventarioPDF_EnriqueceFilasYNombra(t *testing.T) {
	repo := &fakeReporteRepo{filas: filasDeInventario()}
	gen := &fakePDFGen{}
	uc := appinventory.NewReporteUseCase(repo, &fakeSettings{nombre: "Bar La Esquina"}, gen)

	data, filename, err := uc.InventarioPDF(context.Background(), scopeAdmin())

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
	assert.True(t, strings.HasPrefix(filename, "inventario_"), "nombre inesperado: %s", filename)
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.Equal(t, "Bar La Esquina", gen.nombre)
	require.Len(t, gen.filas, 3)
	assert.Equal(t, inventory.EstadoBajo, gen.filas[0].Estado)
	assert.True(t, decimal.NewFromFloat(5.07).Equal(gen.filas[0].NivelOz),
		"150 ml son 5.07 oz, se obtuvo %s", gen.filas[0].NivelOz)
}
