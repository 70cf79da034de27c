package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/printworks/stockroom-api/internal/application/dto"
	"github.com/printworks/stockroom-api/internal/application/inventory"
	"github.com/printworks/stockroom-api/internal/domain"
	"github.com/printworks/stockroom-api/internal/domain/entity"
)

// MovementHandler maneja el registro y consulta de entradas y salidas (protegido).
type MovementHandler struct {
	uc *inventory.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *inventory.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// RegisterGoodsIn godoc
// @Summary      Registrar entrada de mercancía
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/in [post]
func (h *MovementHandler) RegisterGoodsIn(c *fiber.Ctx) error {
	return h.register(c, entity.MovementIn)
}

// RegisterGoodsOut godoc
// @Summary      Registrar salida de mercancía
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements/out [post]
func (h *MovementHandler) RegisterGoodsOut(c *fiber.Ctx) error {
	return h.register(c, entity.MovementOut)
}

func (h *MovementHandler) register(c *fiber.Ctx, direction string) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	createdBy := GetEmail(c)

	var out *dto.MovementResponse
	var err error
	if direction == entity.MovementIn {
		out, err = h.uc.RegisterGoodsIn(createdBy, in)
	} else {
		out, err = h.uc.RegisterGoodsOut(createdBy, in)
	}
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "barcode y quantity distinta de cero son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListGoodsIn godoc
// @Summary      Listar entradas
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/movements/in [get]
func (h *MovementHandler) ListGoodsIn(c *fiber.Ctx) error {
	return h.list(c, entity.MovementIn)
}

// ListGoodsOut godoc
// @Summary      Listar salidas
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/movements/out [get]
func (h *MovementHandler) ListGoodsOut(c *fiber.Ctx) error {
	return h.list(c, entity.MovementOut)
}

func (h *MovementHandler) list(c *fiber.Ctx, direction string) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListByDirection(direction, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
