package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/igcalvo/licores-api/internal/domain/inventory"
)

func TestPorcentajeNivel_CapacidadCeroNoDivide(t *testing.T) {
	pct := inventory.PorcentajeNivel(decimal.NewFromInt(100), decimal.Zero)
	assert.True(t, pct.IsZero(), "capacidad cero debe producir 0%% en lugar de dividir")
}

func TestPorcentajeNivel_Redondeo(t *testing.T) {
	pct := inventory.PorcentajeNivel(decimal.NewFromInt(1), decimal.NewFromInt(3))
	assert.True(t, decimal.NewFromFloat(33.3).Equal(pct),
		"1/3 de capacidad debe redondear a 33.3, se obtuvo %s", pct)
}

func TestEstadoNivel_Franjas(t *testing.T) {
	minimo := decimal.NewFromFloat(0.2)

	casos := []struct {
		nombre     string
		porcentaje decimal.Decimal
		esperado   string
	}{
		{"bajo el mínimo", decimal.NewFromInt(15), inventory.EstadoBajo},
		{"justo en el mínimo", decimal.NewFromInt(20), inventory.EstadoMedio},
		{"zona media", decimal.NewFromInt(35), inventory.EstadoMedio},
		{"justo en cincuenta", decimal.NewFromInt(50), inventory.EstadoOK},
		{"suficiente", decimal.NewFromInt(60), inventory.EstadoOK},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, inventory.EstadoNivel(c.porcentaje, minimo))
		})
	}
}

func TestEstadoListado_Binario(t *testing.T) {
	minimo := decimal.NewFromFloat(0.2)

	assert.Equal(t, inventory.EstadoBajo,
		inventory.EstadoListado(decimal.NewFromInt(15), minimo),
		"150 ml de 1000 con mínimo 20%% es Bajo")
	assert.Equal(t, inventory.EstadoOK,
		inventory.EstadoListado(decimal.NewFromInt(60), minimo),
		"600 ml de 1000 es OK")
	assert.Equal(t, inventory.EstadoOK,
		inventory.EstadoListado(decimal.NewFromInt(30), minimo),
		"el listado no distingue la franja media")
}

func TestMlEnOz_FactorConocido(t *testing.T) {
	oz := inventory.MlEnOz(decimal.NewFromInt(750))
	assert.True(t, decimal.NewFromFloat(25.36).Equal(oz),
		"750 ml deben ser 25.36 oz, se obtuvo %s", oz)
}

func TestDensidadesTipicas_CatalogoEstable(t *testing.T) {
	cat := inventory.DensidadesTipicas()

	assert.Len(t, cat, 12)
	assert.Equal(t, "Whisky", cat[0].Tipo)
	assert.True(t, decimal.NewFromFloat(0.94).Equal(cat[0].Densidad))
	for _, d := range cat {
		assert.True(t, d.Densidad.GreaterThan(decimal.Zero), "densidad de %s", d.Tipo)
		assert.True(t, d.Densidad.LessThanOrEqual(decimal.NewFromInt(2)), "densidad de %s", d.Tipo)
	}
}
