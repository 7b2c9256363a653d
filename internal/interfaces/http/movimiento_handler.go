package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/application/inventory"
	"github.com/igcalvo/licores-api/internal/domain"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// MovimientoHandler maneja el libro de movimientos: registro directo,
// listados y exportación.
type MovimientoHandler struct {
	uc *inventory.MovimientoUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *inventory.MovimientoUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar movimiento directo
// @Description  Superficie pública (espejo de la API original). Si la
// @Description  petición trae un Bearer válido, la sesión firma como autor y
// @Description  el movimiento queda confinado a su local.
// @Tags         movimientos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovimientoRequest  true  "producto_id, tipo, cantidad_ml (con signo solo en ajuste)"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovimientoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.CreateMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if detalle := erroresDeValidacion(in); detalle != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: detalle})
	}
	var scope *domain.Scope
	if s, ok := GetScope(c); ok {
		scope = &s
	}
	out, err := h.uc.Registrar(scope, in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarPublico godoc
// @Summary      Listado público de movimientos
// @Tags         movimientos
// @Produce      json
// @Param        producto_id  query  int     false  "Filtrar por producto"
// @Param        tipo         query  string  false  "entrada | salida | ajuste"
// @Param        desde        query  string  false  "Fecha YYYY-MM-DD"
// @Param        hasta        query  string  false  "Fecha YYYY-MM-DD (inclusive)"
// @Param        limit        query  int     false  "Límite"  default(50)
// @Success      200  {array}  dto.MovimientoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) ListarPublico(c *fiber.Ctx) error {
	return h.listar(c, nil)
}

// Filtrar godoc
// @Summary      Listado de movimientos del alcance
// @Description  Igual que el listado público pero confinado al local de la
// @Description  sesión cuando el rol no es admin.
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        producto_id  query  int     false  "Filtrar por producto"
// @Param        tipo         query  string  false  "entrada | salida | ajuste"
// @Param        desde        query  string  false  "Fecha YYYY-MM-DD"
// @Param        hasta        query  string  false  "Fecha YYYY-MM-DD (inclusive)"
// @Param        limit        query  int     false  "Límite"  default(50)
// @Success      200  {array}  dto.MovimientoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimientos/filtrar [get]
func (h *MovimientoHandler) Filtrar(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no establecida"})
	}
	return h.listar(c, &scope)
}

func (h *MovimientoHandler) listar(c *fiber.Ctx, scope *domain.Scope) error {
	var in dto.FiltroMovimientosRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	if detalle := erroresDeValidacion(in); detalle != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: detalle})
	}
	out, err := h.uc.Listar(scope, in)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(out)
}

// Exportar godoc
// @Summary      Exportar movimientos a XLSX
// @Description  Aplica los mismos filtros del listado; sin límite explícito
// @Description  exporta hasta 10000 filas.
// @Tags         movimientos
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        producto_id  query  int     false  "Filtrar por producto"
// @Param        tipo         query  string  false  "entrada | salida | ajuste"
// @Param        desde        query  string  false  "Fecha YYYY-MM-DD"
// @Param        hasta        query  string  false  "Fecha YYYY-MM-DD (inclusive)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimientos/export [get]
func (h *MovimientoHandler) Exportar(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no establecida"})
	}
	var in dto.FiltroMovimientosRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	if detalle := erroresDeValidacion(in); detalle != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: detalle})
	}
	archivo, nombre, err := h.uc.Exportar(&scope, in)
	if err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, nombre))
	return c.Send(archivo)
}

// mapError traduce los errores del caso de uso a estados HTTP.
func (h *MovimientoHandler) mapError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el producto pertenece a otro local"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
