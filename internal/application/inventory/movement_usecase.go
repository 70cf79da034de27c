package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/printworks/stockroom-api/internal/application/dto"
	"github.com/printworks/stockroom-api/internal/domain"
	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/repository"
)

// MovementUseCase registra y consulta los logs de entradas y salidas.
//
// El movimiento guarda el barcode tal cual llega: no se comprueba que exista
// un producto con ese código. El resumen de stock atribuye por igualdad de
// barcode y tolera registros huérfanos.
type MovementUseCase struct {
	repo repository.StockMovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(repo repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// RegisterGoodsIn registra una entrada de mercancía.
func (uc *MovementUseCase) RegisterGoodsIn(createdBy string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	return uc.register(entity.MovementIn, createdBy, in)
}

// RegisterGoodsOut registra una salida de mercancía.
func (uc *MovementUseCase) RegisterGoodsOut(createdBy string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	return uc.register(entity.MovementOut, createdBy, in)
}

func (uc *MovementUseCase) register(direction, createdBy string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.Barcode == "" || in.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}
	reference := in.Reference
	if reference == "" {
		reference = uuid.New().String()
	}
	movement := &entity.StockMovement{
		Direction: direction,
		Barcode:   in.Barcode,
		Quantity:  in.Quantity,
		Reference: reference,
		Notes:     in.Notes,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// ListByDirection devuelve el log paginado de entradas o salidas.
func (uc *MovementUseCase) ListByDirection(direction string, limit, offset int) (*dto.MovementListResponse, error) {
	if direction != entity.MovementIn && direction != entity.MovementOut {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByDirection(direction, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		Direction: m.Direction,
		Barcode:   m.Barcode,
		Quantity:  m.Quantity,
		Reference: m.Reference,
		Notes:     m.Notes,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
