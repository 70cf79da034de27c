package repository

import "github.com/printworks/stockroom-api/internal/domain/entity"

// PrinterRepository define el puerto de persistencia para Printer (DIP).
type PrinterRepository interface {
	Create(printer *entity.Printer) error
	GetByID(id int64) (*entity.Printer, error)
	Update(printer *entity.Printer) error
	UpdateStatus(id int64, status string) error
	List() ([]*entity.Printer, error)
	Delete(id int64) error
}
