// seed puebla la base con datos de demostración: un usuario admin, categorías
// y productos de insumos de impresión, un proveedor, una ubicación con
// estanterías, dos impresoras y movimientos de stock iniciales.
//
// Uso: go run ./cmd/seed
// Idempotencia básica: si ya existe el usuario admin no inserta nada más.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/infrastructure/postgres"
	"github.com/printworks/stockroom-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		fail("migraciones: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	existing, err := users.FindByEmail("admin@printworks.local")
	if err != nil {
		fail("comprobar usuario admin: %v", err)
	}
	if existing != nil {
		fmt.Println("los datos de demostración ya existen, nada que hacer")
		return
	}

	now := time.Now()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)
	if err != nil {
		fail("hash de contraseña: %v", err)
	}
	admin := &entity.User{
		Email:        "admin@printworks.local",
		PasswordHash: string(hash),
		Name:         "Administrador",
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(admin); err != nil {
		fail("crear usuario admin: %v", err)
	}

	categories := postgres.NewCategoryRepository(pool)
	inks := &entity.Category{Name: "Tintas", CreatedAt: now, UpdatedAt: now}
	vinyl := &entity.Category{Name: "Vinilos", CreatedAt: now, UpdatedAt: now}
	spares := &entity.Category{Name: "Repuestos", CreatedAt: now, UpdatedAt: now}
	for _, c := range []*entity.Category{inks, vinyl, spares} {
		if err := categories.Create(c); err != nil {
			fail("crear categoría %s: %v", c.Name, err)
		}
	}

	products := postgres.NewProductRepository(pool)
	demoProducts := []struct {
		p    entity.Product
		cats []int64
	}{
		{entity.Product{Barcode: "7701001", Name: "Tinta cian 1L", Price: decimal.NewFromInt(95)}, []int64{inks.ID}},
		{entity.Product{Barcode: "7701002", Name: "Tinta magenta 1L", Price: decimal.NewFromInt(95)}, []int64{inks.ID}},
		{entity.Product{Barcode: "7702001", Name: "Vinilo blanco 1.37m", Price: decimal.NewFromInt(240)}, []int64{vinyl.ID}},
		{entity.Product{Barcode: "7703001", Name: "Cabezal DX5", Price: decimal.NewFromInt(1800)}, []int64{spares.ID}},
	}
	for i := range demoProducts {
		demoProducts[i].p.CreatedAt = now
		demoProducts[i].p.UpdatedAt = now
		if err := products.Create(&demoProducts[i].p, demoProducts[i].cats); err != nil {
			fail("crear producto %s: %v", demoProducts[i].p.Name, err)
		}
	}

	suppliers := postgres.NewSupplierRepository(pool)
	supplier := &entity.Supplier{
		Name:        "Insumos Gráficos SA",
		ContactName: "Laura Méndez",
		Email:       "ventas@insumosgraficos.test",
		Phone:       "+57 300 000 0000",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := suppliers.Create(supplier); err != nil {
		fail("crear proveedor: %v", err)
	}

	locations := postgres.NewLocationRepository(pool)
	warehouse := &entity.Location{Name: "Bodega principal", Address: "Nave 2", CreatedAt: now, UpdatedAt: now}
	if err := locations.Create(warehouse); err != nil {
		fail("crear ubicación: %v", err)
	}
	shelves := postgres.NewShelfRepository(pool)
	for _, code := range []string{"A1", "A2", "B1"} {
		s := &entity.Shelf{LocationID: warehouse.ID, Code: code, CreatedAt: now, UpdatedAt: now}
		if err := shelves.Create(s); err != nil {
			fail("crear estantería %s: %v", code, err)
		}
	}

	printers := postgres.NewPrinterRepository(pool)
	for _, name := range []string{"Roland XR-640", "Epson SureColor S80600"} {
		p := &entity.Printer{
			Name:       name,
			LocationID: warehouse.ID,
			Status:     entity.PrinterOperational,
			LastSeen:   now,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := printers.Create(p); err != nil {
			fail("crear impresora %s: %v", name, err)
		}
	}

	movements := postgres.NewStockMovementRepository(pool)
	seedMovements := []entity.StockMovement{
		{Direction: entity.MovementIn, Barcode: "7701001", Quantity: 12, Reference: "seed", CreatedBy: admin.Email},
		{Direction: entity.MovementIn, Barcode: "7701002", Quantity: 10, Reference: "seed", CreatedBy: admin.Email},
		{Direction: entity.MovementIn, Barcode: "7702001", Quantity: 6, Reference: "seed", CreatedBy: admin.Email},
		{Direction: entity.MovementOut, Barcode: "7701001", Quantity: 3, Reference: "seed", CreatedBy: admin.Email},
	}
	for i := range seedMovements {
		seedMovements[i].CreatedAt = now
		if err := movements.Create(&seedMovements[i]); err != nil {
			fail("crear movimiento: %v", err)
		}
	}

	fmt.Println("datos de demostración creados (admin@printworks.local / admin12345)")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
