package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/application/inventory"
)

// ReporteHandler maneja los reportes de inventario y consumo.
type ReporteHandler struct {
	uc *inventory.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *inventory.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Resumen godoc
// @Summary      Resumen de niveles por producto
// @Description  Una fila por producto activo del alcance con nivel, estado
// @Description  por franjas (Bajo/Medio/OK) y totales agregados.
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ResumenInventarioResponse
// @Router       /api/reportes/resumen [get]
func (h *ReporteHandler) Resumen(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no establecida"})
	}
	out, err := h.uc.Resumen(c.Context(), scope)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Consumo godoc
// @Summary      Serie diaria de entradas y salidas
// @Description  Serie completa (días sin actividad en cero) del período
// @Description  pedido. Las salidas viajan negadas para graficar bajo el
// @Description  eje; los ajustes no cuentan como consumo.
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "Período: 7, 15, 30, 60 o 90"  default(30)
// @Success      200  {object}  dto.ConsumoResponse
// @Router       /api/reportes/consumo [get]
func (h *ReporteHandler) Consumo(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no establecida"})
	}
	dias := c.QueryInt("dias", 0)
	out, err := h.uc.Consumo(c.Context(), scope, dias)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// InventarioPDF godoc
// @Summary      Reporte de inventario en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reportes/inventario/pdf [get]
func (h *ReporteHandler) InventarioPDF(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no establecida"})
	}
	archivo, nombre, err := h.uc.InventarioPDF(c.Context(), scope)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, nombre))
	return c.Send(archivo)
}
