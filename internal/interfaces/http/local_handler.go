package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/application/usecase"
	"github.com/igcalvo/licores-api/internal/domain"
)

// LocalHandler maneja las peticiones HTTP para Locales (solo admin).
type LocalHandler struct {
	uc *usecase.LocalUseCase
}

// NewLocalHandler construye el handler.
func NewLocalHandler(uc *usecase.LocalUseCase) *LocalHandler {
	return &LocalHandler{uc: uc}
}

// Create godoc
// @Summary      Crear local
// @Tags         locales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocalRequest  true  "Datos del local"
// @Success      201   {object}  dto.LocalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/locales [post]
func (h *LocalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if detalle := erroresDeValidacion(in); detalle != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: detalle})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar locales
// @Tags         locales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LocalResponse
// @Router       /api/locales [get]
func (h *LocalHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener local por ID
// @Tags         locales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del local"
// @Success      200  {object}  dto.LocalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locales/{id} [get]
func (h *LocalHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "local no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar local
// @Tags         locales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del local"
// @Param        body  body  dto.UpdateLocalRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.LocalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/locales/{id} [put]
func (h *LocalHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateLocalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if detalle := erroresDeValidacion(in); detalle != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: detalle})
	}
	out, err := h.uc.Update(int64(id), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "local no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar local
// @Tags         locales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del local"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/locales/{id} [delete]
func (h *LocalHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Delete(int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "local no encontrado"})
		}
		if errors.Is(err, domain.ErrLocalConDependencias) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOCAL_EN_USO", Message: "el local tiene productos o usuarios asociados"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
