package inventory_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igcalvo/licores-api/internal/application/dto"
	appinventory "github.com/igcalvo/licores-api/internal/application/inventory"
	"github.com/igcalvo/licores-api/internal/domain"
	"github.com/igcalvo/licores-api/internal/domain/entity"
	"github.com/igcalvo/licores-api/internal/domain/repository"
)

var _ appinventory.MovimientosExporter = (*fakeExporter)(nil)

type fakeExporter struct {
	filas []repository.MovimientoConDetalle
}

func (e *fakeExporter) ExportMovimientos(filas []repository.MovimientoConDetalle) ([]byte, error) {
	e.filas = filas
	return []byte("xlsx"), nil
}

func armarMovimientoUseCase(productos ...*entity.Producto) (*appinventory.MovimientoUseCase, *fakeMovimientoRepo, *fakeExporter) {
	prodRepo := newFakeProductoRepo(productos...)
	movRepo := newFakeMovimientoRepo()
	exporter := &fakeExporter{}
	return appinventory.NewMovimientoUseCase(movRepo, prodRepo, exporter), movRepo, exporter
}

func TestMovimientoRegistrar_PublicoSinSesion(t *testing.T) {
	uc, movRepo, _ := armarMovimientoUseCase(botellaDePrueba())

	resp, err := uc.Registrar(nil, dto.CreateMovimientoRequest{
		ProductoID: 1,
		Tipo:       entity.TipoEntrada,
		CantidadMl: decimal.NewFromInt(750),
		Notas:      "Compra semanal",
	})

	require.NoError(t, err)
	assert.Nil(t, resp.UserID, "sin sesión el movimiento queda sin autor")
	assert.Equal(t, "Ginebra de la casa", resp.ProductoNombre)
	require.Len(t, movRepo.movimientos, 1)
	assert.Nil(t, movRepo.movimientos[0].UserID)
}

func TestMovimientoRegistrar_ConSesionFirmaElAutor(t *testing.T) {
	uc, movRepo, _ := armarMovimientoUseCase(botellaDePrueba())
	scope := scopeAdmin()
	otro := int64(42)

	_, err := uc.Registrar(&scope, dto.CreateMovimientoRequest{
		ProductoID: 1,
		UserID:     &otro, // la sesión manda sobre lo que traiga el cuerpo
		Tipo:       entity.TipoSalida,
		CantidadMl: decimal.NewFromInt(50),
	})

	require.NoError(t, err)
	require.NotNil(t, movRepo.movimientos[0].UserID)
	assert.Equal(t, scope.UserID, *movRepo.movimientos[0].UserID)
}

func TestMovimientoRegistrar_CantidadNegativaRechazada(t *testing.T) {
	uc, _, _ := armarMovimientoUseCase(botellaDePrueba())

	_, err := uc.Registrar(nil, dto.CreateMovimientoRequest{
		ProductoID: 1,
		Tipo:       entity.TipoSalida,
		CantidadMl: decimal.NewFromInt(-50),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"las magnitudes de entrada y salida no admiten signo")
}

func TestMovimientoRegistrar_AjusteAdmiteDeltaNegativo(t *testing.T) {
	uc, movRepo, _ := armarMovimientoUseCase(botellaDePrueba())

	_, err := uc.Registrar(nil, dto.CreateMovimientoRequest{
		ProductoID: 1,
		Tipo:       entity.TipoAjuste,
		CantidadMl: decimal.NewFromInt(-120),
		Notas:      "Merma por rotura",
	})

	require.NoError(t, err)
	nivel, _, _ := movRepo.GetNivel(1)
	assert.True(t, decimal.NewFromInt(-120).Equal(nivel),
		"el ajuste aplica su delta firmado tal cual")
}

func TestMovimientoRegistrar_TipoDesconocidoRechazado(t *testing.T) {
	uc, _, _ := armarMovimientoUseCase(botellaDePrueba())

	_, err := uc.Registrar(nil, dto.CreateMovimientoRequest{
		ProductoID: 1,
		Tipo:       "traslado",
		CantidadMl: decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovimientoRegistrar_ProductoInexistente(t *testing.T) {
	uc, _, _ := armarMovimientoUseCase()

	_, err := uc.Registrar(nil, dto.CreateMovimientoRequest{
		ProductoID: 404,
		Tipo:       entity.TipoEntrada,
		CantidadMl: decimal.NewFromInt(10),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovimientoListar_AlcanceYLimitePorDefecto(t *testing.T) {
	uc, movRepo, _ := armarMovimientoUseCase(botellaDePrueba())
	scope := scopeEmpleado(4)

	_, err := uc.Listar(&scope, dto.FiltroMovimientosRequest{})

	require.NoError(t, err)
	require.NotNil(t, movRepo.ultimoFiltro.LocalID,
		"un empleado siempre consulta restringido a su local")
	assert.Equal(t, int64(4), *movRepo.ultimoFiltro.LocalID)
	assert.Equal(t, 50, movRepo.ultimoFiltro.Limit)
}

func TestMovimientoListar_AdminSinRestriccionDeLocal(t *testing.T) {
	uc, movRepo, _ := armarMovimientoUseCase(botellaDePrueba())
	scope := scopeAdmin()

	_, err := uc.Listar(&scope, dto.FiltroMovimientosRequest{Limit: 200})

	require.NoError(t, err)
	assert.Nil(t, movRepo.ultimoFiltro.LocalID)
	assert.Equal(t, 200, movRepo.ultimoFiltro.Limit)
}

func TestMovimientoListar_HastaEsInclusivo(t *testing.T) {
	uc, movRepo, _ := armarMovimientoUseCase(botellaDePrueba())

	_, err := uc.Listar(nil, dto.FiltroMovimientosRequest{
		Desde: "2026-08-01",
		Hasta: "2026-08-10",
	})

	require.NoError(t, err)
	require.NotNil(t, movRepo.ultimoFiltro.Desde)
	require.NotNil(t, movRepo.ultimoFiltro.Hasta)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *movRepo.ultimoFiltro.Desde)
	// Inclusivo: el SQL corta con < 2026-08-11 00:00.
	assert.Equal(t, time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC), *movRepo.ultimoFiltro.Hasta)
}

func TestMovimientoListar_FechaMalFormadaRechazada(t *testing.T) {
	uc, _, _ := armarMovimientoUseCase(botellaDePrueba())

	_, err := uc.Listar(nil, dto.FiltroMovimientosRequest{Desde: "01/08/2026"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovimientoExportar_GeneraXLSXConNombre(t *testing.T) {
	uc, movRepo, exporter := armarMovimientoUseCase(botellaDePrueba())
	_, err := uc.Registrar(nil, dto.CreateMovimientoRequest{
		ProductoID: 1, Tipo: entity.TipoEntrada, CantidadMl: decimal.NewFromInt(750),
	})
	require.NoError(t, err)

	data, filename, err := uc.Exportar(nil, dto.FiltroMovimientosRequest{})

	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.True(t, strings.HasPrefix(filename, "movimientos_"), "nombre inesperado: %s", filename)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))
	assert.Len(t, exporter.filas, 1)
	assert.Equal(t, 10000, movRepo.ultimoFiltro.Limit,
		"el export no se queda en la página por defecto del listado")
}
