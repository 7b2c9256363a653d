package inventory

import "github.com/shopspring/decimal"

// Estados de nivel para listados y reportes.
const (
	EstadoBajo  = "Bajo"
	EstadoMedio = "Medio"
	EstadoOK    = "OK"
)

var (
	cien      = decimal.NewFromInt(100)
	cincuenta = decimal.NewFromInt(50)
)

// PorcentajeNivel expresa el nivel como porcentaje de la capacidad de la
// botella. Capacidad cero o negativa produce 0 en lugar de dividir.
func PorcentajeNivel(nivel, capacidadMl decimal.Decimal) decimal.Decimal {
	if capacidadMl.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return nivel.Div(capacidadMl).Mul(cien).Round(1)
}

// EstadoNivel clasifica el porcentaje en tres franjas: bajo el mínimo del
// producto, bajo el 50%, o suficiente.
func EstadoNivel(porcentaje, minimo decimal.Decimal) string {
	if porcentaje.LessThan(minimo.Mul(cien)) {
		return EstadoBajo
	}
	if porcentaje.LessThan(cincuenta) {
		return EstadoMedio
	}
	return EstadoOK
}

// EstadoListado es la versión binaria que anotan los listados de productos.
func EstadoListado(porcentaje, minimo decimal.Decimal) string {
	if porcentaje.LessThan(minimo.Mul(cien)) {
		return EstadoBajo
	}
	return EstadoOK
}
