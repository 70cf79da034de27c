package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/printworks/stockroom-api/internal/application/dto"
	"github.com/printworks/stockroom-api/internal/application/usecase"
	"github.com/printworks/stockroom-api/internal/domain"
)

// PrinterHandler maneja las peticiones HTTP para Printer (protegido).
type PrinterHandler struct {
	uc *usecase.PrinterUseCase
}

// NewPrinterHandler construye el handler.
func NewPrinterHandler(uc *usecase.PrinterUseCase) *PrinterHandler {
	return &PrinterHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar impresora
// @Tags         printers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePrinterRequest  true  "Datos de la impresora"
// @Success      201   {object}  dto.PrinterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/printers [post]
func (h *PrinterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePrinterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener impresora por ID
// @Tags         printers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la impresora"
// @Success      200  {object}  dto.PrinterResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/printers/{id} [get]
func (h *PrinterHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "impresora no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar impresoras con su estado actual
// @Tags         printers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PrinterListResponse
// @Router       /api/printers [get]
func (h *PrinterHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado operativo de una impresora
// @Tags         printers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la impresora"
// @Param        body  body  dto.UpdatePrinterStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.PrinterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/printers/{id}/status [put]
func (h *PrinterHandler) UpdateStatus(c *fiber.Ctx) error {
	id := paramID(c)
	if id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdatePrinterStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "impresora no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser operational, maintenance u offline"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar impresora
// @Tags         printers
// @Security     Bearer
// @Param        id  path  int  true  "ID de la impresora"
// @Success      204
// @Router       /api/printers/{id} [delete]
func (h *PrinterHandler) Delete(c *fiber.Ctx) error {
	id := paramID(c)
	if id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
