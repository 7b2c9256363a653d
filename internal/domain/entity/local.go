package entity

import "time"

// Local representa una sede o barra donde se almacena y sirve el licor.
type Local struct {
	ID            int64
	Nombre        string
	Direccion     string
	Telefono      string
	Activo        bool
	FechaCreacion time.Time
}
