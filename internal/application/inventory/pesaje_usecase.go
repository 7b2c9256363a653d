package inventory

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

// PesajeUseCase registra lecturas de báscula de forma transaccional: bloquea
// la fila del producto (SELECT FOR UPDATE), deriva el movimiento a partir del
// peso y lo anota en el libro con Commit/Rollback.
type PesajeUseCase struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
}

// NewPesajeUseCase construye el caso de uso.
func NewPesajeUseCase(txRunner TxRunner, productoRepo repository.ProductoRepository) *PesajeUseCase {
	return &PesajeUseCase{txRunner: txRunner, productoRepo: productoRepo}
}

// RegistrarPesaje convierte el peso leído en volumen, clasifica el movimiento
// contra el nivel vigente y lo anota. Un volumen negativo exige Confirmar;
// sin confirmación retorna ErrConfirmacionRequerida y no escribe nada.
func (uc *PesajeUseCase) RegistrarPesaje(ctx context.Context, scope domain.Scope, in dto.PesajeRequest) (*dto.PesajeResponse, error) {
	if !in.PesoTotal.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("peso_total debe ser positivo: %w", domain.ErrInvalidInput)
	}
	// Chequeo de existencia y alcance antes de abrir la transacción.
	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.PuedeVerLocal(producto.LocalID) {
		return nil, domain.ErrForbidden
	}

	var resp *dto.PesajeResponse
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		productoRepo repository.ProductoRepository,
		_ repository.UsuarioRepository,
	) error {
		// Bloquea la fila del producto: su libro queda serializado hasta
		// el Commit y el nivel leído no puede moverse por debajo.
		producto, err := productoRepo.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		nivel, movimientos, err := movRepo.GetNivel(in.ProductoID)
		if err != nil {
			return err
		}
		derivacion, err := inventory.DerivarMovimiento(inventory.Lectura{
			PesoTotal:  in.PesoTotal,
			PesoEnvase: producto.PesoEnvase,
			Densidad:   producto.Densidad,
			Nivel:      nivel,
			HayPrevios: movimientos > 0,
		})
		if err != nil {
			return err
		}
		if derivacion.RequiereConfirmacion && !in.Confirmar {
			return domain.ErrConfirmacionRequerida
		}
		userID := scope.UserID
		mov := &entity.Movimiento{
			ProductoID: in.ProductoID,
			UserID:     &userID,
			Tipo:       derivacion.Tipo,
			CantidadMl: derivacion.CantidadMl,
			PesoBruto:  &in.PesoTotal,
			Notas:      fmt.Sprintf("Registro manual. Peso total: %sg", in.PesoTotal),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		// Tras anotar el movimiento el nivel queda exactamente en el
		// volumen derivado de la lectura.
		pct := inventory.PorcentajeNivel(derivacion.VolumenMl, producto.CapacidadMl)
		resp = &dto.PesajeResponse{
			ProductoID: in.ProductoID,
			VolumenMl:  derivacion.VolumenMl,
			Tipo:       derivacion.Tipo,
			CantidadMl: derivacion.CantidadMl,
			NivelMl:    derivacion.VolumenMl,
			Porcentaje: pct,
			Estado:     inventory.EstadoNivel(pct, producto.MinimoInventario),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
