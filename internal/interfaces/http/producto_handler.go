package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/application/usecase"
	"github.com/igcalvo/licores-api/internal/domain"
)

// ProductoHandler maneja las peticiones HTTP de productos: la superficie de
// gestión (protegida, confinada por local) y el listado público.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// ListPublico godoc
// @Summary      Listado público de productos
// @Description  Todos los productos con su total acumulado, sin filtros de
// @Description  local ni de activo (activo viaja como 1/0).
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductoPublicoResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) ListPublico(c *fiber.Ctx) error {
	out, err := h.uc.ListPublico()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductoRequest  true  "Datos del producto; minimo_inventario_pct en porcentaje (defecto 20)"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/inventario/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no establecida"})
	}
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if detalle := erroresDeValidacion(in); detalle != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: detalle})
	}
	out, err := h.uc.Create(scope, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no puede crear productos en ese local"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar productos del alcance
// @Description  Productos visibles para la sesión con nivel, porcentaje y
// @Description  estado Bajo/OK contra su propio mínimo.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        incluir_inactivos  query  bool  false  "Incluir productos desactivados"
// @Success      200  {array}  dto.ProductoDetalleResponse
// @Router       /api/inventario/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no establecida"})
	}
	incluirInactivos := c.QueryBool("incluir_inactivos", false)
	out, err := h.uc.List(scope, incluirInactivos)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetDetalle godoc
// @Summary      Detalle de un producto con su nivel
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoDetalleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/productos/{id} [get]
func (h *ProductoHandler) GetDetalle(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no establecida"})
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetDetalle(scope, int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el producto pertenece a otro local"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Description  No permite mover el producto de local ni tocar el contador
// @Description  de botellas; el nivel solo cambia vía movimientos.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/productos/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no establecida"})
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if detalle := erroresDeValidacion(in); detalle != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: detalle})
	}
	out, err := h.uc.Update(scope, int64(id), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el producto pertenece a otro local"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Borra el producto y todo su libro de movimientos en una sola
// @Description  transacción.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      204  "Sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/productos/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no establecida"})
	}
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Delete(c.Context(), scope, int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el producto pertenece a otro local"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Densidades godoc
// @Summary      Catálogo de densidades típicas por tipo de licor
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DensidadTipicaResponse
// @Router       /api/inventario/densidades [get]
func (h *ProductoHandler) Densidades(c *fiber.Ctx) error {
	return c.JSON(h.uc.Densidades())
}
