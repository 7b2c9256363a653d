package inventory

import "github.com/shopspring/decimal"

// DensidadTipica es la densidad aproximada (g/ml) de un tipo de licor,
// usada como sugerencia al dar de alta productos.
type DensidadTipica struct {
	Tipo     string
	Densidad decimal.Decimal
}

// DensidadesTipicas devuelve el catálogo de referencia en orden estable.
func DensidadesTipicas() []DensidadTipica {
	return []DensidadTipica{
		{Tipo: "Whisky", Densidad: decimal.NewFromFloat(0.94)},
		{Tipo: "Vodka", Densidad: decimal.NewFromFloat(0.953)},
		{Tipo: "Ron", Densidad: decimal.NewFromFloat(0.95)},
		{Tipo: "Ginebra", Densidad: decimal.NewFromFloat(0.949)},
		{Tipo: "Tequila", Densidad: decimal.NewFromFloat(0.93)},
		{Tipo: "Brandy", Densidad: decimal.NewFromFloat(0.96)},
		{Tipo: "Coñac", Densidad: decimal.NewFromFloat(0.965)},
		{Tipo: "Pisco", Densidad: decimal.NewFromFloat(0.94)},
		{Tipo: "Vino", Densidad: decimal.NewFromFloat(0.99)},
		{Tipo: "Cerveza", Densidad: decimal.NewFromFloat(1.01)},
		{Tipo: "Licor", Densidad: decimal.NewFromFloat(1.02)},
		{Tipo: "Crema", Densidad: decimal.NewFromFloat(1.03)},
	}
}
