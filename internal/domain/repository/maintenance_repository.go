package repository

import "github.com/printworks/stockroom-api/internal/domain/entity"

// MaintenanceOrderRepository define el puerto de persistencia para órdenes de mantenimiento (DIP).
type MaintenanceOrderRepository interface {
	Create(order *entity.MaintenanceOrder) error
	GetByID(id int64) (*entity.MaintenanceOrder, error)
	UpdateStatus(id int64, status string) error
	ListByPrinter(printerID int64) ([]*entity.MaintenanceOrder, error)
	List(limit, offset int) ([]*entity.MaintenanceOrder, error)
}
