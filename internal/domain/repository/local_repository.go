package repository

import "github.com/igcalvo/licores-api/internal/domain/entity"

// LocalRepository define el puerto de persistencia para Local (DIP).
type LocalRepository interface {
	Create(local *entity.Local) error
	GetByID(id int64) (*entity.Local, error)
	List() ([]*entity.Local, error)
	Update(local *entity.Local) error
	Delete(id int64) error
	// Dependientes cuenta productos y usuarios que referencian el local.
	// Mientras alguno exista el borrado queda bloqueado.
	Dependientes(id int64) (productos, usuarios int, err error)
}
