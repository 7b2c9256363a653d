package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igcalvo/licores-api/internal/application/dto"
	appinventory "github.com/igcalvo/licores-api/internal/application/inventory"
	"github.com/igcalvo/licores-api/internal/domain"
	"github.com/igcalvo/licores-api/internal/domain/entity"
	"github.com/igcalvo/licores-api/internal/domain/inventory"
	"github.com/igcalvo/licores-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba compartidos por el paquete
// ──────────────────────────────────────────────────────────────────────────────

var _ repository.ProductoRepository = (*fakeProductoRepo)(nil)

type fakeProductoRepo struct {
	porID    map[int64]*entity.Producto
	bloqueos int
}

func newFakeProductoRepo(productos ...*entity.Producto) *fakeProductoRepo {
	r := &fakeProductoRepo{porID: make(map[int64]*entity.Producto)}
	for _, p := range productos {
		clon := *p
		r.porID[p.ID] = &clon
	}
	return r
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	r.porID[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	p, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	clon := *p
	return &clon, nil
}

func (r *fakeProductoRepo) GetForUpdate(id int64) (*entity.Producto, error) {
	r.bloqueos++
	return r.GetByID(id)
}

func (r *fakeProductoRepo) ListConTotales(localID *int64, soloActivos bool) ([]repository.ProductoConTotal, error) {
	return nil, nil
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	clon := *p
	r.porID[p.ID] = &clon
	return nil
}

func (r *fakeProductoRepo) UpdateBotellas(id int64, botellas int) error {
	if p, ok := r.porID[id]; ok {
		p.BotellasCompletas = botellas
	}
	return nil
}

func (r *fakeProductoRepo) Delete(id int64) error {
	delete(r.porID, id)
	return nil
}

var _ repository.MovimientoRepository = (*fakeMovimientoRepo)(nil)

// fakeMovimientoRepo mantiene el nivel como suma firmada, igual que la
// consulta real, para que las pesadas consecutivas converjan como en BD.
type fakeMovimientoRepo struct {
	movimientos      []entity.Movimiento
	nivelPorProducto map[int64]decimal.Decimal
	conteoPorProd    map[int64]int
	ultimoFiltro     repository.MovimientoFilter
	siguiente        int64
}

func newFakeMovimientoRepo() *fakeMovimientoRepo {
	return &fakeMovimientoRepo{
		nivelPorProducto: make(map[int64]decimal.Decimal),
		conteoPorProd:    make(map[int64]int),
	}
}

func (r *fakeMovimientoRepo) Create(m *entity.Movimiento) error {
	r.siguiente++
	m.ID = r.siguiente
	if m.Fecha.IsZero() {
		m.Fecha = time.Now()
	}
	r.movimientos = append(r.movimientos, *m)
	delta := m.CantidadMl
	if m.Tipo == entity.TipoSalida {
		delta = delta.Neg()
	}
	r.nivelPorProducto[m.ProductoID] = r.nivelPorProducto[m.ProductoID].Add(delta)
	r.conteoPorProd[m.ProductoID]++
	return nil
}

func (r *fakeMovimientoRepo) List(f repository.MovimientoFilter) ([]repository.MovimientoConDetalle, error) {
	r.ultimoFiltro = f
	items := make([]repository.MovimientoConDetalle, 0, len(r.movimientos))
	for _, m := range r.movimientos {
		if f.ProductoID != nil && m.ProductoID != *f.ProductoID {
			continue
		}
		if f.Tipo != nil && m.Tipo != *f.Tipo {
			continue
		}
		items = append(items, repository.MovimientoConDetalle{Movimiento: m})
	}
	return items, nil
}

func (r *fakeMovimientoRepo) GetNivel(productoID int64) (decimal.Decimal, int, error) {
	return r.nivelPorProducto[productoID], r.conteoPorProd[productoID], nil
}

func (r *fakeMovimientoRepo) DeleteByProducto(productoID int64) error { return nil }

func (r *fakeMovimientoRepo) DeleteByUsuario(usuarioID int64) error { return nil }

var _ appinventory.TxRunner = (*fakeTxRunner)(nil)

type fakeTxRunner struct {
	mov      *fakeMovimientoRepo
	prod     *fakeProductoRepo
	corridas int
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
	usuarioRepo repository.UsuarioRepository,
) error) error {
	r.corridas++
	return fn(r.mov, r.prod, nil)
}

func scopeAdmin() domain.Scope {
	return domain.Scope{UserID: 1, Rol: entity.RolAdmin}
}

func scopeEmpleado(localID int64) domain.Scope {
	return domain.Scope{UserID: 2, Rol: entity.RolEmpleado, LocalID: &localID}
}

// botellaDePrueba: litro de ginebra con envase de 300 g y densidad 1.0 para
// que el volumen coincida con los gramos y las cuentas se sigan a ojo.
func botellaDePrueba() *entity.Producto {
	return &entity.Producto{
		ID:               1,
		Nombre:           "Ginebra de la casa",
		CapacidadMl:      decimal.NewFromInt(1000),
		PesoEnvase:       decimal.NewFromInt(300),
		Densidad:         decimal.NewFromInt(1),
		MinimoInventario: decimal.NewFromFloat(0.20),
		LocalID:          1,
		Activo:           true,
	}
}

func armarPesajeUseCase(productos ...*entity.Producto) (*appinventory.PesajeUseCase, *fakeProductoRepo, *fakeMovimientoRepo) {
	prodRepo := newFakeProductoRepo(productos...)
	movRepo := newFakeMovimientoRepo()
	tx := &fakeTxRunner{mov: movRepo, prod: prodRepo}
	return appinventory.NewPesajeUseCase(tx, prodRepo), prodRepo, movRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// PesajeUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestPesaje_PrimeraLecturaCreaEntrada(t *testing.T) {
	uc, prodRepo, movRepo := armarPesajeUseCase(botellaDePrueba())

	// (800 - 300) / 1.0 = 500 ml sobre un libro vacío.
	resp, err := uc.RegistrarPesaje(context.Background(), scopeAdmin(), dto.PesajeRequest{
		ProductoID: 1,
		PesoTotal:  decimal.NewFromInt(800),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TipoEntrada, resp.Tipo)
	assert.True(t, decimal.NewFromInt(500).Equal(resp.CantidadMl))
	assert.True(t, decimal.NewFromInt(500).Equal(resp.NivelMl),
		"tras la pesada el nivel queda en el volumen derivado")
	assert.True(t, decimal.NewFromInt(50).Equal(resp.Porcentaje))
	assert.Equal(t, inventory.EstadoOK, resp.Estado, "50%% exacto ya es OK")
	assert.Equal(t, 1, prodRepo.bloqueos, "la fila del producto se bloquea dentro de la tx")

	require.Len(t, movRepo.movimientos, 1)
	mov := movRepo.movimientos[0]
	require.NotNil(t, mov.UserID)
	assert.Equal(t, int64(1), *mov.UserID, "el movimiento queda firmado por la sesión")
	require.NotNil(t, mov.PesoBruto)
	assert.True(t, decimal.NewFromInt(800).Equal(*mov.PesoBruto))
	assert.Equal(t, "Registro manual. Peso total: 800g", mov.Notas)
}

func TestPesaje_LecturaMenorCreaSalida(t *testing.T) {
	uc, _, movRepo := armarPesajeUseCase(botellaDePrueba())
	ctx := context.Background()
	_, err := uc.RegistrarPesaje(ctx, scopeAdmin(), dto.PesajeRequest{
		ProductoID: 1, PesoTotal: decimal.NewFromInt(800),
	})
	require.NoError(t, err)

	// Nivel vigente 500 ml; (600 - 300) / 1.0 = 300 ml → salida de 200 ml.
	resp, err := uc.RegistrarPesaje(ctx, scopeAdmin(), dto.PesajeRequest{
		ProductoID: 1, PesoTotal: decimal.NewFromInt(600),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TipoSalida, resp.Tipo)
	assert.True(t, decimal.NewFromInt(200).Equal(resp.CantidadMl))
	assert.True(t, decimal.NewFromInt(300).Equal(resp.NivelMl))
	assert.Equal(t, inventory.EstadoMedio, resp.Estado)

	nivel, _, err := movRepo.GetNivel(1)
	require.NoError(t, err)
	assert.True(t, resp.NivelMl.Equal(nivel),
		"la suma firmada del libro debe coincidir con el nivel reportado")
}

func TestPesaje_VolumenNegativoSinConfirmarNoEscribe(t *testing.T) {
	uc, _, movRepo := armarPesajeUseCase(botellaDePrueba())
	ctx := context.Background()
	_, err := uc.RegistrarPesaje(ctx, scopeAdmin(), dto.PesajeRequest{
		ProductoID: 1, PesoTotal: decimal.NewFromInt(800),
	})
	require.NoError(t, err)

	// Peso por debajo del envase: (100 - 300) / 1.0 = -200 ml.
	_, err = uc.RegistrarPesaje(ctx, scopeAdmin(), dto.PesajeRequest{
		ProductoID: 1, PesoTotal: decimal.NewFromInt(100),
	})

	assert.ErrorIs(t, err, domain.ErrConfirmacionRequerida)
	assert.Len(t, movRepo.movimientos, 1, "sin confirmación el libro no se toca")
	nivel, _, _ := movRepo.GetNivel(1)
	assert.True(t, decimal.NewFromInt(500).Equal(nivel))
}

func TestPesaje_VolumenNegativoConfirmadoRegistraAjuste(t *testing.T) {
	uc, _, movRepo := armarPesajeUseCase(botellaDePrueba())
	ctx := context.Background()
	_, err := uc.RegistrarPesaje(ctx, scopeAdmin(), dto.PesajeRequest{
		ProductoID: 1, PesoTotal: decimal.NewFromInt(800),
	})
	require.NoError(t, err)

	resp, err := uc.RegistrarPesaje(ctx, scopeAdmin(), dto.PesajeRequest{
		ProductoID: 1, PesoTotal: decimal.NewFromInt(100), Confirmar: true,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.TipoAjuste, resp.Tipo)
	// Delta firmado: -200 - 500 = -700; deja el nivel en el volumen derivado.
	assert.True(t, decimal.NewFromInt(-700).Equal(resp.CantidadMl),
		"delta esperado -700, se obtuvo %s", resp.CantidadMl)
	assert.True(t, decimal.NewFromInt(-200).Equal(resp.NivelMl))

	nivel, _, _ := movRepo.GetNivel(1)
	assert.True(t, resp.NivelMl.Equal(nivel))
}

func TestPesaje_PesoCeroRechazado(t *testing.T) {
	uc, _, _ := armarPesajeUseCase(botellaDePrueba())

	_, err := uc.RegistrarPesaje(context.Background(), scopeAdmin(), dto.PesajeRequest{
		ProductoID: 1, PesoTotal: decimal.Zero,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPesaje_ProductoInexistente(t *testing.T) {
	uc, _, _ := armarPesajeUseCase()

	_, err := uc.RegistrarPesaje(context.Background(), scopeAdmin(), dto.PesajeRequest{
		ProductoID: 77, PesoTotal: decimal.NewFromInt(800),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPesaje_OtroLocalProhibido(t *testing.T) {
	uc, _, movRepo := armarPesajeUseCase(botellaDePrueba())

	_, err := uc.RegistrarPesaje(context.Background(), scopeEmpleado(2), dto.PesajeRequest{
		ProductoID: 1, PesoTotal: decimal.NewFromInt(800),
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, movRepo.movimientos)
}
