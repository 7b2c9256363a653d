package inventory

import (
	"fmt"
	"time"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/domain"
	"github.com/igcalvo/licores-api/internal/domain/entity"
	"github.com/igcalvo/licores-api/internal/domain/repository"
)

const limiteListadoDefecto = 50

// MovimientoUseCase registra movimientos directos y sirve el listado
// filtrado del libro, con export a XLSX.
type MovimientoUseCase struct {
	movRepo      repository.MovimientoRepository
	productoRepo repository.ProductoRepository
	exporter     MovimientosExporter
}

// NewMovimientoUseCase construye el caso de uso.
func NewMovimientoUseCase(
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
	exporter MovimientosExporter,
) *MovimientoUseCase {
	return &MovimientoUseCase{movRepo: movRepo, productoRepo: productoRepo, exporter: exporter}
}

// Registrar anota un movimiento manual en el libro. scope nil es la
// superficie pública sin sesión: user_id queda en lo que traiga la petición.
func (uc *MovimientoUseCase) Registrar(scope *domain.Scope, in dto.CreateMovimientoRequest) (*dto.MovimientoResponse, error) {
	if !entity.TipoMovimientoValido(in.Tipo) {
		return nil, fmt.Errorf("tipo %q desconocido: %w", in.Tipo, domain.ErrInvalidInput)
	}
	// entrada y salida llevan magnitudes; solo el ajuste admite delta firmado.
	if in.Tipo != entity.TipoAjuste && in.CantidadMl.IsNegative() {
		return nil, fmt.Errorf("cantidad_ml no puede ser negativa en %s: %w", in.Tipo, domain.ErrInvalidInput)
	}
	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	userID := in.UserID
	if scope != nil {
		if !scope.PuedeVerLocal(producto.LocalID) {
			return nil, domain.ErrForbidden
		}
		id := scope.UserID
		userID = &id
	}
	mov := &entity.Movimiento{
		ProductoID: in.ProductoID,
		UserID:     userID,
		Tipo:       in.Tipo,
		CantidadMl: in.CantidadMl,
		PesoBruto:  in.PesoBruto,
		Notas:      in.Notas,
	}
	if err := uc.movRepo.Create(mov); err != nil {
		return nil, err
	}
	return &dto.MovimientoResponse{
		ID:             mov.ID,
		ProductoID:     mov.ProductoID,
		UserID:         mov.UserID,
		Tipo:           mov.Tipo,
		CantidadMl:     mov.CantidadMl,
		PesoBruto:      mov.PesoBruto,
		Notas:          mov.Notas,
		Fecha:          mov.Fecha,
		ProductoNombre: producto.Nombre,
	}, nil
}

// Listar devuelve el libro filtrado, más reciente primero. scope nil lista
// sin restricción de local.
func (uc *MovimientoUseCase) Listar(scope *domain.Scope, in dto.FiltroMovimientosRequest) ([]dto.MovimientoResponse, error) {
	filter, err := construirFiltro(scope, in)
	if err != nil {
		return nil, err
	}
	list, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovimientoResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toMovimientoResponse(m))
	}
	return items, nil
}

// Exportar genera el XLSX del libro filtrado y un nombre de archivo con
// marca de tiempo. El export ignora el límite de paginación del listado.
func (uc *MovimientoUseCase) Exportar(scope *domain.Scope, in dto.FiltroMovimientosRequest) ([]byte, string, error) {
	filter, err := construirFiltro(scope, in)
	if err != nil {
		return nil, "", err
	}
	if in.Limit <= 0 {
		filter.Limit = 10000
	}
	list, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.exporter.ExportMovimientos(list)
	if err != nil {
		return nil, "", fmt.Errorf("export: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("movimientos_%s.xlsx", time.Now().Format("20060102_150405"))
	return data, filename, nil
}

// construirFiltro traduce la query string al filtro del repositorio. Hasta es
// inclusivo: se corre al día siguiente y el SQL corta con menor estricto.
func construirFiltro(scope *domain.Scope, in dto.FiltroMovimientosRequest) (repository.MovimientoFilter, error) {
	f := repository.MovimientoFilter{ProductoID: in.ProductoID, Limit: in.Limit}
	if f.Limit <= 0 {
		f.Limit = limiteListadoDefecto
	}
	if in.Tipo != "" {
		if !entity.TipoMovimientoValido(in.Tipo) {
			return f, fmt.Errorf("tipo %q desconocido: %w", in.Tipo, domain.ErrInvalidInput)
		}
		tipo := in.Tipo
		f.Tipo = &tipo
	}
	if in.Desde != "" {
		t, err := time.Parse("2006-01-02", in.Desde)
		if err != nil {
			return f, fmt.Errorf("desde inválida: %w", domain.ErrInvalidInput)
		}
		f.Desde = &t
	}
	if in.Hasta != "" {
		t, err := time.Parse("2006-01-02", in.Hasta)
		if err != nil {
			return f, fmt.Errorf("hasta inválida: %w", domain.ErrInvalidInput)
		}
		fin := t.AddDate(0, 0, 1)
		f.Hasta = &fin
	}
	if scope != nil {
		if id, ok := scope.LocalRestringido(); ok {
			f.LocalID = &id
		}
	}
	return f, nil
}

func toMovimientoResponse(m repository.MovimientoConDetalle) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:             m.ID,
		ProductoID:     m.ProductoID,
		UserID:         m.UserID,
		Tipo:           m.Tipo,
		CantidadMl:     m.CantidadMl,
		PesoBruto:      m.PesoBruto,
		Notas:          m.Notas,
		Fecha:          m.Fecha,
		ProductoNombre: m.ProductoNombre,
		UsuarioNombre:  m.UsuarioNombre,
	}
}
