package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/domain"
	"github.com/igcalvo/licores-api/internal/domain/entity"
	"github.com/igcalvo/licores-api/internal/domain/repository"
)

// UsuarioUseCase casos de uso CRUD para cuentas del sistema.
type UsuarioUseCase struct {
	repo     repository.UsuarioRepository
	txRunner TxRunner
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository, txRunner TxRunner) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un usuario: hashea la clave con bcrypt y persiste. Devuelve
// ErrDuplicate si el username ya existe.
func (uc *UsuarioUseCase) Create(in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	if !entity.RolValido(in.Rol) {
		return nil, domain.ErrInvalidInput
	}
	if in.Rol != entity.RolAdmin && in.LocalID == nil {
		// Sin local asignado una cuenta no-admin no puede iniciar sesión.
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		Username:     in.Username,
		PasswordHash: string(hash),
		Nombre:       in.Nombre,
		Rol:          in.Rol,
		LocalID:      in.LocalID,
		Activo:       true,
	}
	if err := uc.repo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UsuarioUseCase) GetByID(id int64) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, nil
	}
	return toUsuarioResponse(usuario), nil
}

// List lista todos los usuarios.
func (uc *UsuarioUseCase) List() ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUsuarioResponse(u))
	}
	return items, nil
}

// Update actualiza un usuario. Password ausente conserva el hash actual.
func (uc *UsuarioUseCase) Update(id int64, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, nil
	}
	if in.Username != nil {
		usuario.Username = *in.Username
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.PasswordHash = string(hash)
	}
	if in.Nombre != nil {
		usuario.Nombre = *in.Nombre
	}
	if in.Rol != nil {
		if !entity.RolValido(*in.Rol) {
			return nil, domain.ErrInvalidInput
		}
		usuario.Rol = *in.Rol
	}
	if in.LocalID != nil {
		usuario.LocalID = in.LocalID
	}
	if in.Activo != nil {
		usuario.Activo = *in.Activo
	}
	if usuario.Rol != entity.RolAdmin && usuario.LocalID == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Delete elimina la cuenta y sus movimientos en una sola transacción.
// Nadie puede eliminar su propia cuenta.
func (uc *UsuarioUseCase) Delete(ctx context.Context, scope domain.Scope, id int64) error {
	if scope.UserID == id {
		return domain.ErrAutoEliminacion
	}
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUserNotFound
	}
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		_ repository.ProductoRepository,
		usuarioRepo repository.UsuarioRepository,
	) error {
		if err := movRepo.DeleteByUsuario(id); err != nil {
			return err
		}
		return usuarioRepo.Delete(id)
	})
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:            u.ID,
		Username:      u.Username,
		Nombre:        u.Nombre,
		Rol:           u.Rol,
		LocalID:       u.LocalID,
		Activo:        u.Activo,
		FechaCreacion: u.FechaCreacion,
	}
}
