package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y sus membresías de categoría.
func (r *ProductRepo) Create(product *entity.Product, categoryIDs []int64) error {
	ctx := context.Background()
	query := `
		INSERT INTO products (barcode, name, description, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.q.QueryRow(ctx, query,
		product.Barcode, product.Name, product.Description, product.Price,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return r.replaceCategories(ctx, product.ID, categoryIDs)
}

// GetByID obtiene un producto por ID con sus categorías resueltas.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	ctx := context.Background()
	var p entity.Product
	err := r.q.QueryRow(ctx,
		`SELECT id, barcode, name, description, price, created_at, updated_at
		 FROM products WHERE id = $1`, id,
	).Scan(&p.ID, &p.Barcode, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	categories, err := r.categoriesFor(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Categories = categories
	return &p, nil
}

// Update actualiza un producto. categoryIDs nil deja las membresías intactas.
func (r *ProductRepo) Update(product *entity.Product, categoryIDs []int64) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`UPDATE products SET barcode = $2, name = $3, description = $4, price = $5, updated_at = $6
		 WHERE id = $1`,
		product.ID, product.Barcode, product.Name, product.Description, product.Price, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if categoryIDs == nil {
		return nil
	}
	return r.replaceCategories(ctx, product.ID, categoryIDs)
}

// List lista productos con paginación y categorías resueltas, en orden de inserción.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx,
		`SELECT id, barcode, name, description, price, created_at, updated_at
		 FROM products ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Barcode, &p.Name, &p.Description, &p.Price, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		categories, err := r.categoriesFor(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Categories = categories
	}
	return list, nil
}

// Delete elimina un producto por ID (las membresías caen en cascada).
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) replaceCategories(ctx context.Context, productID int64, categoryIDs []int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM product_categories WHERE product_id = $1`, productID); err != nil {
		return fmt.Errorf("clear product categories: %w", err)
	}
	for _, catID := range categoryIDs {
		_, err := r.q.Exec(ctx,
			`INSERT INTO product_categories (product_id, category_id) VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`, productID, catID)
		if err != nil {
			return fmt.Errorf("insert product category: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) categoriesFor(ctx context.Context, productID int64) ([]entity.Category, error) {
	rows, err := r.q.Query(ctx,
		`SELECT c.id, c.name, c.created_at, c.updated_at
		 FROM categories c
		 JOIN product_categories pc ON pc.category_id = c.id
		 WHERE pc.product_id = $1 ORDER BY c.id`, productID)
	if err != nil {
		return nil, fmt.Errorf("product categories: %w", err)
	}
	defer rows.Close()
	var list []entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product category: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
