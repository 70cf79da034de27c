package repository

import "github.com/printworks/stockroom-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location (DIP).
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id int64) (*entity.Location, error)
	Update(location *entity.Location) error
	List() ([]*entity.Location, error)
	Delete(id int64) error
}

// ShelfRepository define el puerto de persistencia para Shelf (DIP).
type ShelfRepository interface {
	Create(shelf *entity.Shelf) error
	GetByID(id int64) (*entity.Shelf, error)
	Update(shelf *entity.Shelf) error
	ListByLocation(locationID int64) ([]*entity.Shelf, error)
	Delete(id int64) error
}
