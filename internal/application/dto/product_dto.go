package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Barcode     string          `json:"barcode" validate:"required,min=1,max=100"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryIDs []int64         `json:"category_ids"`
}

// UpdateProductRequest entrada para actualizar un producto.
// CategoryIDs nil deja las membresías como están; vacío las quita todas.
type UpdateProductRequest struct {
	Barcode     *string          `json:"barcode" validate:"omitempty,min=1,max=100"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryIDs []int64          `json:"category_ids"`
}

// ProductResponse salida de un producto con sus categorías resueltas.
type ProductResponse struct {
	ID          int64              `json:"id"`
	Barcode     string             `json:"barcode"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Price       decimal.Decimal    `json:"price"`
	Categories  []CategoryResponse `json:"categories"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
