package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/igcalvo/licores-api/internal/domain/entity"
)

// Lectura es una pesada de báscula junto con el contexto necesario para
// clasificarla: el nivel agregado actual del producto y si ya existían
// movimientos en su libro.
type Lectura struct {
	PesoTotal  decimal.Decimal // gramos, botella incluida
	PesoEnvase decimal.Decimal // gramos de la botella vacía
	Densidad   decimal.Decimal // g/ml
	Nivel      decimal.Decimal // nivel agregado vigente (0 si el libro está vacío)
	HayPrevios bool
}

// Derivacion es el movimiento que produce una lectura. CantidadMl guarda el
// delta contra el nivel vigente, de modo que tras registrarlo el nivel
// agregado queda exactamente en VolumenMl.
type Derivacion struct {
	VolumenMl            decimal.Decimal // (peso_total - peso_envase) / densidad
	Tipo                 string
	CantidadMl           decimal.Decimal // con signo propio solo en ajuste
	RequiereConfirmacion bool            // volumen negativo: registrar solo con confirmación explícita
}

// VolumenDesdePeso deriva el volumen líquido de una pesada.
// VolumenMl = (PesoTotal - PesoEnvase) / Densidad, redondeado a 2 decimales.
func VolumenDesdePeso(pesoTotal, pesoEnvase, densidad decimal.Decimal) (decimal.Decimal, error) {
	if densidad.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, fmt.Errorf("densidad debe ser mayor que cero, recibida %s", densidad)
	}
	return pesoTotal.Sub(pesoEnvase).Div(densidad).Round(2), nil
}

// DerivarMovimiento clasifica una lectura contra el nivel vigente:
//   - volumen negativo        → ajuste con delta firmado (pide confirmación)
//   - libro vacío             → entrada por el volumen completo
//   - diferencia positiva     → entrada por la diferencia
//   - diferencia cero o menor → salida por la diferencia absoluta
func DerivarMovimiento(l Lectura) (Derivacion, error) {
	vol, err := VolumenDesdePeso(l.PesoTotal, l.PesoEnvase, l.Densidad)
	if err != nil {
		return Derivacion{}, err
	}
	d := Derivacion{VolumenMl: vol}
	switch {
	case vol.IsNegative():
		d.Tipo = entity.TipoAjuste
		d.CantidadMl = vol.Sub(l.Nivel)
		d.RequiereConfirmacion = true
	case !l.HayPrevios:
		d.Tipo = entity.TipoEntrada
		d.CantidadMl = vol
	default:
		diferencia := vol.Sub(l.Nivel)
		if diferencia.IsPositive() {
			d.Tipo = entity.TipoEntrada
			d.CantidadMl = diferencia
		} else {
			d.Tipo = entity.TipoSalida
			d.CantidadMl = diferencia.Neg()
		}
	}
	return d, nil
}
