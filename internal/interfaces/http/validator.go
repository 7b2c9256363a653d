package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Instancia única del validador; es segura para uso concurrente.
var validate = validator.New()

// erroresDeValidacion aplica las etiquetas validate del DTO y devuelve el
// detalle "Campo (regla)" para el mensaje de error, o "" si todo pasa.
func erroresDeValidacion(in any) string {
	err := validate.Struct(in)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	partes := make([]string, 0, len(verrs))
	for _, ve := range verrs {
		partes = append(partes, fmt.Sprintf("%s (%s)", ve.Field(), ve.Tag()))
	}
	return strings.Join(partes, ", ")
}
