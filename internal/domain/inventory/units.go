package inventory

import "github.com/shopspring/decimal"

// Factores de conversión entre mililitros y onzas líquidas.
var (
	MlAOz = decimal.NewFromFloat(0.033814)
	OzAMl = decimal.NewFromFloat(29.5735)
)

// MlEnOz convierte mililitros a onzas líquidas con 2 decimales.
func MlEnOz(ml decimal.Decimal) decimal.Decimal {
	return ml.Mul(MlAOz).Round(2)
}

// OzEnMl convierte onzas líquidas a mililitros con 2 decimales.
func OzEnMl(oz decimal.Decimal) decimal.Decimal {
	return oz.Mul(OzAMl).Round(2)
}
