package repository

import "github.com/printworks/stockroom-api/internal/domain/entity"

// ShipmentRepository define el puerto de persistencia para envíos entrantes (DIP).
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	GetByID(id int64) (*entity.Shipment, error)
	UpdateStatus(id int64, status string) error
	ListByStatus(status string, limit, offset int) ([]*entity.Shipment, error)
	List(limit, offset int) ([]*entity.Shipment, error)
}
