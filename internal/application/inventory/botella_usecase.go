package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/domain"
	"github.com/igcalvo/licores-api/internal/domain/entity"
	"github.com/igcalvo/licores-api/internal/domain/repository"
)

// BotellaUseCase opera botellas completas sin pasar por la báscula: mueve el
// contador y anota el movimiento equivalente a la capacidad de la botella,
// ambos en la misma transacción.
type BotellaUseCase struct {
	txRunner TxRunner
}

// NewBotellaUseCase construye el caso de uso.
func NewBotellaUseCase(txRunner TxRunner) *BotellaUseCase {
	return &BotellaUseCase{txRunner: txRunner}
}

// AjustarBotellas agrega o quita una botella completa. Quitar con el contador
// en cero retorna ErrSinBotellas y no escribe nada.
func (uc *BotellaUseCase) AjustarBotellas(ctx context.Context, scope domain.Scope, in dto.BotellaRequest) (*dto.BotellaResponse, error) {
	if in.Accion != dto.AccionAgregar && in.Accion != dto.AccionQuitar {
		return nil, domain.ErrInvalidInput
	}
	var resp *dto.BotellaResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
		_ repository.UsuarioRepository,
	) error {
		producto, err := productoRepo.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		if !scope.PuedeVerLocal(producto.LocalID) {
			return domain.ErrForbidden
		}
		nivel, _, err := movRepo.GetNivel(in.ProductoID)
		if err != nil {
			return err
		}

		var (
			botellas   int
			tipo       string
			notas      string
			nivelNuevo decimal.Decimal
		)
		switch in.Accion {
		case dto.AccionAgregar:
			botellas = producto.BotellasCompletas + 1
			tipo = entity.TipoEntrada
			notas = "Botella completa agregada"
			nivelNuevo = nivel.Add(producto.CapacidadMl)
		case dto.AccionQuitar:
			if producto.BotellasCompletas <= 0 {
				return domain.ErrSinBotellas
			}
			botellas = producto.BotellasCompletas - 1
			tipo = entity.TipoSalida
			notas = "Botella completa retirada"
			nivelNuevo = nivel.Sub(producto.CapacidadMl)
		}
		if err := productoRepo.UpdateBotellas(in.ProductoID, botellas); err != nil {
			return err
		}
		userID := scope.UserID
		mov := &entity.Movimiento{
			ProductoID: in.ProductoID,
			UserID:     &userID,
			Tipo:       tipo,
			CantidadMl: producto.CapacidadMl,
			Notas:      notas,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		resp = &dto.BotellaResponse{
			ProductoID:        in.ProductoID,
			BotellasCompletas: botellas,
			Tipo:              tipo,
			CantidadMl:        producto.CapacidadMl,
			NivelMl:           nivelNuevo,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
