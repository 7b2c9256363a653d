package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/domain"
	"github.com/igcalvo/licores-api/internal/domain/entity"
	"github.com/igcalvo/licores-api/internal/domain/inventory"
	"github.com/igcalvo/licores-api/internal/domain/repository"
)

var (
	cien            = decimal.NewFromInt(100)
	dos             = decimal.NewFromInt(2)
	veintePorCiento = decimal.NewFromInt(20)
)

// ProductoUseCase casos de uso CRUD para productos. El nivel nunca se edita
// directo: se deriva del libro de movimientos.
type ProductoUseCase struct {
	repo     repository.ProductoRepository
	movRepo  repository.MovimientoRepository
	txRunner TxRunner
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, movRepo repository.MovimientoRepository, txRunner TxRunner) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, movRepo: movRepo, txRunner: txRunner}
}

// Create crea un producto en el local del alcance (o en el pedido, si el
// alcance puede verlo). El mínimo llega en porcentaje y se guarda /100.
func (uc *ProductoUseCase) Create(scope domain.Scope, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	localID, err := uc.resolverLocal(scope, in.LocalID)
	if err != nil {
		return nil, err
	}
	minimoPct := in.MinimoInventarioPct
	if minimoPct.IsZero() {
		minimoPct = veintePorCiento
	}
	if err := validarRangosProducto(in.Densidad, in.CapacidadMl, in.PesoEnvase, minimoPct); err != nil {
		return nil, err
	}
	producto := &entity.Producto{
		Nombre:           in.Nombre,
		Marca:            in.Marca,
		Tipo:             in.Tipo,
		Densidad:         in.Densidad,
		CapacidadMl:      in.CapacidadMl,
		PesoEnvase:       in.PesoEnvase,
		LocalID:          localID,
		MinimoInventario: minimoPct.Div(cien),
		Activo:           true,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// List lista los productos visibles para el alcance, con nivel, porcentaje y
// el estado binario del listado (Bajo / OK contra su propio mínimo).
func (uc *ProductoUseCase) List(scope domain.Scope, incluirInactivos bool) ([]dto.ProductoDetalleResponse, error) {
	var localID *int64
	if id, ok := scope.LocalRestringido(); ok {
		localID = &id
	}
	list, err := uc.repo.ListConTotales(localID, !incluirInactivos)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoDetalleResponse, 0, len(list))
	for i := range list {
		p := &list[i]
		pct := inventory.PorcentajeNivel(p.TotalMl, p.CapacidadMl)
		items = append(items, dto.ProductoDetalleResponse{
			ProductoResponse: *toProductoResponse(&p.Producto),
			NivelMl:          p.TotalMl,
			NivelOz:          inventory.MlEnOz(p.TotalMl),
			Porcentaje:       pct,
			Estado:           inventory.EstadoListado(pct, p.MinimoInventario),
		})
	}
	return items, nil
}

// ListPublico lista todos los productos con su total acumulado, sin filtros
// de local ni de activo. Es la respuesta de la superficie pública, que emite
// las columnas crudas (activo como 1/0).
func (uc *ProductoUseCase) ListPublico() ([]dto.ProductoPublicoResponse, error) {
	list, err := uc.repo.ListConTotales(nil, false)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoPublicoResponse, 0, len(list))
	for i := range list {
		p := &list[i]
		activo := 0
		if p.Activo {
			activo = 1
		}
		items = append(items, dto.ProductoPublicoResponse{
			ID:                p.ID,
			Nombre:            p.Nombre,
			Marca:             p.Marca,
			Tipo:              p.Tipo,
			Densidad:          p.Densidad,
			CapacidadMl:       p.CapacidadMl,
			PesoEnvase:        p.PesoEnvase,
			LocalID:           p.LocalID,
			BotellasCompletas: p.BotellasCompletas,
			MinimoInventario:  p.MinimoInventario,
			Activo:            activo,
			FechaCreacion:     p.FechaCreacion,
			TotalMl:           p.TotalMl,
		})
	}
	return items, nil
}

// GetDetalle obtiene un producto con su nivel derivado y estado por franjas.
func (uc *ProductoUseCase) GetDetalle(scope domain.Scope, id int64) (*dto.ProductoDetalleResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if !scope.PuedeVerLocal(producto.LocalID) {
		return nil, domain.ErrForbidden
	}
	nivel, _, err := uc.movRepo.GetNivel(id)
	if err != nil {
		return nil, err
	}
	pct := inventory.PorcentajeNivel(nivel, producto.CapacidadMl)
	return &dto.ProductoDetalleResponse{
		ProductoResponse: *toProductoResponse(producto),
		NivelMl:          nivel,
		NivelOz:          inventory.MlEnOz(nivel),
		Porcentaje:       pct,
		Estado:           inventory.EstadoNivel(pct, producto.MinimoInventario),
	}, nil
}

// Update actualiza un producto. No permite moverlo de local ni tocar el
// contador de botellas; los rangos se revalidan sobre los valores finales.
func (uc *ProductoUseCase) Update(scope domain.Scope, id int64, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if !scope.PuedeVerLocal(producto.LocalID) {
		return nil, domain.ErrForbidden
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Marca != nil {
		producto.Marca = *in.Marca
	}
	if in.Tipo != nil {
		producto.Tipo = *in.Tipo
	}
	if in.Densidad != nil {
		producto.Densidad = *in.Densidad
	}
	if in.CapacidadMl != nil {
		producto.CapacidadMl = *in.CapacidadMl
	}
	if in.PesoEnvase != nil {
		producto.PesoEnvase = *in.PesoEnvase
	}
	if in.MinimoInventarioPct != nil {
		producto.MinimoInventario = in.MinimoInventarioPct.Div(cien)
	}
	if in.Activo != nil {
		producto.Activo = *in.Activo
	}
	minimoPct := producto.MinimoInventario.Mul(cien)
	if err := validarRangosProducto(producto.Densidad, producto.CapacidadMl, producto.PesoEnvase, minimoPct); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Delete elimina el producto y su libro completo en una sola transacción.
func (uc *ProductoUseCase) Delete(ctx context.Context, scope domain.Scope, id int64) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	if !scope.PuedeVerLocal(producto.LocalID) {
		return domain.ErrForbidden
	}
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
		_ repository.UsuarioRepository,
	) error {
		if err := movRepo.DeleteByProducto(id); err != nil {
			return err
		}
		return productoRepo.Delete(id)
	})
}

// Densidades devuelve el catálogo de densidades sugeridas por tipo de licor.
func (uc *ProductoUseCase) Densidades() []dto.DensidadTipicaResponse {
	cat := inventory.DensidadesTipicas()
	items := make([]dto.DensidadTipicaResponse, 0, len(cat))
	for _, d := range cat {
		items = append(items, dto.DensidadTipicaResponse{Tipo: d.Tipo, Densidad: d.Densidad})
	}
	return items
}

func (uc *ProductoUseCase) resolverLocal(scope domain.Scope, pedido *int64) (int64, error) {
	if pedido != nil {
		if !scope.PuedeVerLocal(*pedido) {
			return 0, domain.ErrForbidden
		}
		return *pedido, nil
	}
	if local, ok := scope.LocalRestringido(); ok {
		return local, nil
	}
	if scope.LocalID != nil {
		return *scope.LocalID, nil
	}
	return 0, fmt.Errorf("local_id requerido: %w", domain.ErrInvalidInput)
}

// validarRangosProducto aplica las reglas de alta: densidad en (0, 2],
// capacidad y peso de envase positivos, mínimo en (0, 100] por ciento.
func validarRangosProducto(densidad, capacidadMl, pesoEnvase, minimoPct decimal.Decimal) error {
	if densidad.LessThanOrEqual(decimal.Zero) || densidad.GreaterThan(dos) {
		return fmt.Errorf("densidad fuera de rango (0, 2]: %w", domain.ErrInvalidInput)
	}
	if capacidadMl.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("capacidad_ml debe ser positiva: %w", domain.ErrInvalidInput)
	}
	if pesoEnvase.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("peso_envase debe ser positivo: %w", domain.ErrInvalidInput)
	}
	if minimoPct.LessThanOrEqual(decimal.Zero) || minimoPct.GreaterThan(cien) {
		return fmt.Errorf("minimo_inventario_pct fuera de rango (0, 100]: %w", domain.ErrInvalidInput)
	}
	return nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:                  p.ID,
		Nombre:              p.Nombre,
		Marca:               p.Marca,
		Tipo:                p.Tipo,
		Densidad:            p.Densidad,
		CapacidadMl:         p.CapacidadMl,
		PesoEnvase:          p.PesoEnvase,
		LocalID:             p.LocalID,
		BotellasCompletas:   p.BotellasCompletas,
		MinimoInventario:    p.MinimoInventario,
		MinimoInventarioPct: p.MinimoInventario.Mul(cien),
		Activo:              p.Activo,
		FechaCreacion:       p.FechaCreacion,
	}
}
