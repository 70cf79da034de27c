package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/printworks/stockroom-api/internal/application/dto"
	"github.com/printworks/stockroom-api/internal/domain"
	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/repository"
)

// ShipmentUseCase gestiona las expectativas de mercancía entrante.
// Receive marca el envío recibido y registra el goods-in en una sola tx.
type ShipmentUseCase struct {
	tx        TxRunner
	shipments repository.ShipmentRepository
	suppliers repository.SupplierRepository
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(tx TxRunner, shipments repository.ShipmentRepository, suppliers repository.SupplierRepository) *ShipmentUseCase {
	return &ShipmentUseCase{tx: tx, shipments: shipments, suppliers: suppliers}
}

// Create registra un envío esperado de un proveedor existente.
func (uc *ShipmentUseCase) Create(in dto.CreateShipmentRequest) (*dto.ShipmentResponse, error) {
	if in.Barcode == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.suppliers.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	reference := in.Reference
	if reference == "" {
		reference = uuid.New().String()
	}
	now := time.Now()
	shipment := &entity.Shipment{
		SupplierID:   in.SupplierID,
		Barcode:      in.Barcode,
		Quantity:     in.Quantity,
		Reference:    reference,
		ExpectedDate: in.ExpectedDate,
		Status:       entity.ShipmentPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.shipments.Create(shipment); err != nil {
		return nil, err
	}
	return toShipmentResponse(shipment), nil
}

// GetByID obtiene un envío por ID.
func (uc *ShipmentUseCase) GetByID(id int64) (*dto.ShipmentResponse, error) {
	shipment, err := uc.shipments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, nil
	}
	return toShipmentResponse(shipment), nil
}

// List lista envíos; status vacío devuelve todos.
func (uc *ShipmentUseCase) List(status string, limit, offset int) (*dto.ShipmentListResponse, error) {
	var list []*entity.Shipment
	var err error
	if status == "" {
		list, err = uc.shipments.List(limit, offset)
	} else {
		list, err = uc.shipments.ListByStatus(status, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShipmentResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShipmentResponse(s))
	}
	return &dto.ShipmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Receive marca el envío como recibido e inserta el movimiento goods-in con la
// misma referencia, todo dentro de una transacción.
func (uc *ShipmentUseCase) Receive(ctx context.Context, id int64, receivedBy string) (*dto.ShipmentResponse, error) {
	shipment, err := uc.shipments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}
	if shipment.Status != entity.ShipmentPending {
		return nil, domain.ErrShipmentClosed
	}

	err = uc.tx.Run(ctx, func(movRepo repository.StockMovementRepository, shipmentRepo repository.ShipmentRepository) error {
		if err := shipmentRepo.UpdateStatus(id, entity.ShipmentReceived); err != nil {
			return err
		}
		return movRepo.Create(&entity.StockMovement{
			Direction: entity.MovementIn,
			Barcode:   shipment.Barcode,
			Quantity:  shipment.Quantity,
			Reference: shipment.Reference,
			Notes:     "recepción de envío",
			CreatedBy: receivedBy,
			CreatedAt: time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	shipment.Status = entity.ShipmentReceived
	shipment.UpdatedAt = time.Now()
	return toShipmentResponse(shipment), nil
}

// Cancel marca un envío pendiente como cancelado.
func (uc *ShipmentUseCase) Cancel(id int64) (*dto.ShipmentResponse, error) {
	shipment, err := uc.shipments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrNotFound
	}
	if shipment.Status != entity.ShipmentPending {
		return nil, domain.ErrShipmentClosed
	}
	if err := uc.shipments.UpdateStatus(id, entity.ShipmentCancelled); err != nil {
		return nil, err
	}
	shipment.Status = entity.ShipmentCancelled
	return toShipmentResponse(shipment), nil
}

func toShipmentResponse(s *entity.Shipment) *dto.ShipmentResponse {
	if s == nil {
		return nil
	}
	return &dto.ShipmentResponse{
		ID:           s.ID,
		SupplierID:   s.SupplierID,
		Barcode:      s.Barcode,
		Quantity:     s.Quantity,
		Reference:    s.Reference,
		ExpectedDate: s.ExpectedDate,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
