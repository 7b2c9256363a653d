package usecase

import (
	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/domain"
	"github.com/igcalvo/licores-api/internal/domain/entity"
	"github.com/igcalvo/licores-api/internal/domain/repository"
)

// LocalUseCase casos de uso CRUD para locales.
type LocalUseCase struct {
	repo repository.LocalRepository
}

// NewLocalUseCase construye el caso de uso.
func NewLocalUseCase(repo repository.LocalRepository) *LocalUseCase {
	return &LocalUseCase{repo: repo}
}

// Create crea un nuevo local, activo por defecto.
func (uc *LocalUseCase) Create(in dto.CreateLocalRequest) (*dto.LocalResponse, error) {
	local := &entity.Local{
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
		Activo:    true,
	}
	if err := uc.repo.Create(local); err != nil {
		return nil, err
	}
	return toLocalResponse(local), nil
}

// GetByID obtiene un local por ID.
func (uc *LocalUseCase) GetByID(id int64) (*dto.LocalResponse, error) {
	local, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if local == nil {
		return nil, nil
	}
	return toLocalResponse(local), nil
}

// List lista todos los locales.
func (uc *LocalUseCase) List() ([]dto.LocalResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocalResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocalResponse(l))
	}
	return items, nil
}

// Update actualiza un local.
func (uc *LocalUseCase) Update(id int64, in dto.UpdateLocalRequest) (*dto.LocalResponse, error) {
	local, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if local == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		local.Nombre = *in.Nombre
	}
	if in.Direccion != nil {
		local.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		local.Telefono = *in.Telefono
	}
	if in.Activo != nil {
		local.Activo = *in.Activo
	}
	if err := uc.repo.Update(local); err != nil {
		return nil, err
	}
	return toLocalResponse(local), nil
}

// Delete elimina un local. Mientras algún producto o usuario lo referencie
// el borrado queda bloqueado.
func (uc *LocalUseCase) Delete(id int64) error {
	local, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if local == nil {
		return domain.ErrNotFound
	}
	productos, usuarios, err := uc.repo.Dependientes(id)
	if err != nil {
		return err
	}
	if productos > 0 || usuarios > 0 {
		return domain.ErrLocalConDependencias
	}
	return uc.repo.Delete(id)
}

func toLocalResponse(l *entity.Local) *dto.LocalResponse {
	if l == nil {
		return nil
	}
	return &dto.LocalResponse{
		ID:            l.ID,
		Nombre:        l.Nombre,
		Direccion:     l.Direccion,
		Telefono:      l.Telefono,
		Activo:        l.Activo,
		FechaCreacion: l.FechaCreacion,
	}
}
