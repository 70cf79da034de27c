package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/printworks/stockroom-api/internal/application/dto"
	"github.com/printworks/stockroom-api/internal/application/maintenance"
	"github.com/printworks/stockroom-api/internal/domain"
)

// MaintenanceHandler maneja las órdenes de mantenimiento (protegido).
type MaintenanceHandler struct {
	uc *maintenance.UseCase
}

// NewMaintenanceHandler construye el handler.
func NewMaintenanceHandler(uc *maintenance.UseCase) *MaintenanceHandler {
	return &MaintenanceHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de mantenimiento
// @Description  Crea la orden, pone la impresora en mantenimiento y avisa por email al contacto configurado.
// @Tags         maintenance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaintenanceOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.MaintenanceOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/maintenance [post]
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaintenanceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "description es requerido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetEmail(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "impresora no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una orden
// @Description  Al cerrar la última orden abierta la impresora vuelve a operativa.
// @Tags         maintenance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la orden"
// @Param        body  body  dto.UpdateMaintenanceStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.MaintenanceOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id}/status [put]
func (h *MaintenanceHandler) UpdateStatus(c *fiber.Ctx) error {
	id := paramID(c)
	if id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateMaintenanceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser open, ordered o closed"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden por ID
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la orden"
// @Success      200  {object}  dto.MaintenanceOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/maintenance/{id} [get]
func (h *MaintenanceHandler) GetByID(c *fiber.Ctx) error {
	id := paramID(c)
	if id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar órdenes de mantenimiento
// @Tags         maintenance
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.MaintenanceOrderListResponse
// @Router       /api/maintenance [get]
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
