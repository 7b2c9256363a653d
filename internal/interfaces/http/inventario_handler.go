package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/application/inventory"
	"github.com/igcalvo/licores-api/internal/domain"
)

// InventarioHandler maneja el motor de inventario: pesajes de báscula y
// botellas completas.
type InventarioHandler struct {
	pesajeUC  *inventory.PesajeUseCase
	botellaUC *inventory.BotellaUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(pesajeUC *inventory.PesajeUseCase, botellaUC *inventory.BotellaUseCase) *InventarioHandler {
	return &InventarioHandler{pesajeUC: pesajeUC, botellaUC: botellaUC}
}

// RegistrarPesaje godoc
// @Summary      Registrar lectura de báscula
// @Description  Deriva el volumen del peso leído y anota el movimiento que
// @Description  deja el nivel del producto en ese volumen. Si el volumen
// @Description  sale negativo responde 409 hasta que llegue confirmar=true.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PesajeRequest  true  "producto_id, peso_total en gramos, confirmar"
// @Success      201   {object}  dto.PesajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/pesajes [post]
func (h *InventarioHandler) RegistrarPesaje(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no establecida"})
	}
	var in dto.PesajeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if detalle := erroresDeValidacion(in); detalle != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: detalle})
	}
	out, err := h.pesajeUC.RegistrarPesaje(c.Context(), scope, in)
	if err != nil {
		if errors.Is(err, domain.ErrConfirmacionRequerida) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFIRMACION_REQUERIDA", Message: "el volumen sale negativo; reenvíe con confirmar=true para registrar el ajuste"})
		}
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
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AjustarBotellas godoc
// @Summary      Agregar o quitar una botella completa
// @Description  Mueve el contador de botellas en uno y anota en el libro el
// @Description  movimiento por la capacidad de la botella, en una sola
// @Description  transacción.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BotellaRequest  true  "producto_id y accion (agregar | quitar)"
// @Success      200   {object}  dto.BotellaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/botellas [post]
func (h *InventarioHandler) AjustarBotellas(c *fiber.Ctx) error {
	scope, ok := GetScope(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no establecida"})
	}
	var in dto.BotellaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if detalle := erroresDeValidacion(in); detalle != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: detalle})
	}
	out, err := h.botellaUC.AjustarBotellas(c.Context(), scope, in)
	if err != nil {
		if errors.Is(err, domain.ErrSinBotellas) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SIN_BOTELLAS", Message: "no hay botellas completas para quitar"})
		}
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
	return c.JSON(out)
}
