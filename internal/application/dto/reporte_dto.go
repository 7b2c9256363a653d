package dto

import "github.com/shopspring/decimal"

// FilaResumenResponse estado de un producto en el resumen de inventario.
type FilaResumenResponse struct {
	ProductoID int64           `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Marca      string          `json:"marca"`
	Tipo       string          `json:"tipo"`
	NivelMl    decimal.Decimal `json:"nivel_ml"`
	NivelOz    decimal.Decimal `json:"nivel_oz"`
	Porcentaje decimal.Decimal `json:"porcentaje"`
	Estado     string          `json:"estado"`
	Botellas   int             `json:"botellas"`
}

// TotalesResumenResponse agregados del resumen.
type TotalesResumenResponse struct {
	Productos      int             `json:"productos"`
	TotalMl        decimal.Decimal `json:"total_ml"`
	TotalBotellas  int             `json:"total_botellas"`
	ProductosBajos int             `json:"productos_bajos"`
}

// ResumenInventarioResponse reporte de niveles por producto.
type ResumenInventarioResponse struct {
	Filas   []FilaResumenResponse  `json:"filas"`
	Totales TotalesResumenResponse `json:"totales"`
}

// PuntoConsumoResponse entradas y salidas de un día. Las salidas viajan
// negadas para graficar consumo bajo el eje.
type PuntoConsumoResponse struct {
	Fecha    string          `json:"fecha"`
	Entradas decimal.Decimal `json:"entradas"`
	Salidas  decimal.Decimal `json:"salidas"`
	Neto     decimal.Decimal `json:"neto"`
}

// ConsumoResponse serie diaria del período consultado.
type ConsumoResponse struct {
	Dias   int                    `json:"dias"`
	Puntos []PuntoConsumoResponse `json:"puntos"`
}
