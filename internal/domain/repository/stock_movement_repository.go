package repository

import "github.com/printworks/stockroom-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para los logs de
// entradas y salidas (DIP). direction es entity.MovementIn o entity.MovementOut.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id int64) (*entity.StockMovement, error)
	ListByDirection(direction string, limit, offset int) ([]*entity.StockMovement, error)
	ListByBarcode(barcode string, limit, offset int) ([]*entity.StockMovement, error)
}
