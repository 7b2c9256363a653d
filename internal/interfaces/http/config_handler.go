package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/igcalvo/licores-api/internal/application/dto"
	"github.com/igcalvo/licores-api/internal/application/usecase"
	"github.com/igcalvo/licores-api/internal/domain"
)

// ConfigHandler maneja los ajustes visibles de la aplicación.
type ConfigHandler struct {
	uc *usecase.ConfigUseCase
}

// NewConfigHandler construye el handler.
func NewConfigHandler(uc *usecase.ConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// Get godoc
// @Summary      Ajustes de la aplicación
// @Tags         config
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ConfigResponse
// @Router       /api/config [get]
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get())
}

// Update godoc
// @Summary      Actualizar ajustes
// @Tags         config
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateConfigRequest  true  "nombre_empresa"
// @Success      200   {object}  dto.ConfigResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/config [put]
func (h *ConfigHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if detalle := erroresDeValidacion(in); detalle != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: detalle})
	}
	out, err := h.uc.Update(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre_empresa no puede quedar vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
