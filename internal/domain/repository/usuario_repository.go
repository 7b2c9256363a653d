package repository

import "github.com/igcalvo/licores-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)
	GetByUsername(username string) (*entity.Usuario, error)
	List() ([]*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	// Delete elimina solo la cuenta; el borrado en cascada de sus movimientos
	// se compone en una transacción junto con MovimientoRepository.
	Delete(id int64) error
}
