package postgres

import (
	"context"
	"fmt"

	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/repository"
	"github.com/printworks/stockroom-api/internal/domain/stock"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo implementación read-only del puerto SnapshotRepository.
// Todas las lecturas ordenan por id para que el resumen sea determinista.
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository construye el adaptador de lecturas para el resumen de stock.
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

// AllCategories devuelve todas las categorías en orden de inserción.
func (r *SnapshotRepo) AllCategories(ctx context.Context) ([]entity.Category, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, name, created_at, updated_at FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("snapshot categories: %w", err)
	}
	defer rows.Close()
	var list []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoría: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// AllProducts devuelve todos los productos con sus membresías resueltas en dos
// consultas, evitando el N+1 del listado paginado.
func (r *SnapshotRepo) AllProducts(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, barcode, name, description, price, created_at, updated_at
		 FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("snapshot products: %w", err)
	}
	defer rows.Close()
	var list []entity.Product
	byID := make(map[int64]int)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Barcode, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		byID[p.ID] = len(list)
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	memberships, err := r.q.Query(ctx,
		`SELECT pc.product_id, c.id, c.name, c.created_at, c.updated_at
		 FROM product_categories pc
		 JOIN categories c ON c.id = pc.category_id
		 ORDER BY pc.product_id, c.id`)
	if err != nil {
		return nil, fmt.Errorf("snapshot memberships: %w", err)
	}
	defer memberships.Close()
	for memberships.Next() {
		var productID int64
		var c entity.Category
		if err := memberships.Scan(&productID, &c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan membresía: %w", err)
		}
		if idx, ok := byID[productID]; ok {
			list[idx].Categories = append(list[idx].Categories, c)
		}
	}
	return list, memberships.Err()
}

// AllMovements devuelve el log completo de una dirección reducido a barcode y
// cantidad, en orden de inserción.
func (r *SnapshotRepo) AllMovements(ctx context.Context, direction string) ([]stock.MovementRecord, error) {
	rows, err := r.q.Query(ctx,
		`SELECT barcode, quantity FROM stock_movements WHERE direction = $1 ORDER BY id`,
		direction)
	if err != nil {
		return nil, fmt.Errorf("snapshot movements: %w", err)
	}
	defer rows.Close()
	var list []stock.MovementRecord
	for rows.Next() {
		var m stock.MovementRecord
		if err := rows.Scan(&m.Barcode, &m.Quantity); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
