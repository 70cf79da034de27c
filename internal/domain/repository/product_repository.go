package repository

import "github.com/printworks/stockroom-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create y Update persisten también las membresías de categoría (N:M).
type ProductRepository interface {
	Create(product *entity.Product, categoryIDs []int64) error
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product, categoryIDs []int64) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id int64) error
}
