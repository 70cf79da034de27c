package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printworks/stockroom-api/internal/application/dto"
	"github.com/printworks/stockroom-api/internal/application/inventory"
	"github.com/printworks/stockroom-api/internal/domain"
	"github.com/printworks/stockroom-api/internal/domain/entity"
	"github.com/printworks/stockroom-api/internal/domain/repository"
)

// fakeShipmentRepo repositorio de envíos en memoria.
type fakeShipmentRepo struct {
	byID   map[int64]*entity.Shipment
	nextID int64
}

func newFakeShipmentRepo() *fakeShipmentRepo {
	return &fakeShipmentRepo{byID: make(map[int64]*entity.Shipment), nextID: 1}
}

func (f *fakeShipmentRepo) Create(s *entity.Shipment) error {
	s.ID = f.nextID
	f.nextID++
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeShipmentRepo) GetByID(id int64) (*entity.Shipment, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShipmentRepo) UpdateStatus(id int64, status string) error {
	s, ok := f.byID[id]
	if !ok {
		return errors.New("no existe")
	}
	s.Status = status
	return nil
}

func (f *fakeShipmentRepo) ListByStatus(status string, limit, offset int) ([]*entity.Shipment, error) {
	var out []*entity.Shipment
	for _, s := range f.byID {
		if s.Status == status {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeShipmentRepo) List(limit, offset int) ([]*entity.Shipment, error) {
	var out []*entity.Shipment
	for _, s := range f.byID {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

// fakeMovementRepo acumula los movimientos creados.
type fakeMovementRepo struct {
	created []entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	m.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *m)
	return nil
}

func (f *fakeMovementRepo) GetByID(int64) (*entity.StockMovement, error) { return nil, nil }
func (f *fakeMovementRepo) ListByDirection(string, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (f *fakeMovementRepo) ListByBarcode(string, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}

// fakeTxRunner ejecuta el callback directamente con los fakes; si failWith no
// es nil el "commit" falla y nada debe quedar aplicado visiblemente.
type fakeTxRunner struct {
	movements *fakeMovementRepo
	shipments *fakeShipmentRepo
	failWith  error
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.StockMovementRepository, repository.ShipmentRepository) error) error {
	if f.failWith != nil {
		return f.failWith
	}
	return fn(f.movements, f.shipments)
}

// fakeSupplierRepo con un único proveedor con ID 1.
type fakeSupplierRepo struct{}

func (f *fakeSupplierRepo) Create(*entity.Supplier) error { return nil }
func (f *fakeSupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	if id == 1 {
		return &entity.Supplier{ID: 1, Name: "Insumos Gráficos SA"}, nil
	}
	return nil, nil
}
func (f *fakeSupplierRepo) Update(*entity.Supplier) error             { return nil }
func (f *fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }
func (f *fakeSupplierRepo) Delete(int64) error                        { return nil }

func buildShipmentUC() (*inventory.ShipmentUseCase, *fakeShipmentRepo, *fakeMovementRepo) {
	shipments := newFakeShipmentRepo()
	movements := &fakeMovementRepo{}
	tx := &fakeTxRunner{movements: movements, shipments: shipments}
	uc := inventory.NewShipmentUseCase(tx, shipments, &fakeSupplierRepo{})
	return uc, shipments, movements
}

func TestShipment_Create_ProveedorInexistente(t *testing.T) {
	uc, _, _ := buildShipmentUC()
	_, err := uc.Create(dto.CreateShipmentRequest{SupplierID: 99, Barcode: "1111", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestShipment_Create_CantidadInvalida(t *testing.T) {
	uc, _, _ := buildShipmentUC()
	_, err := uc.Create(dto.CreateShipmentRequest{SupplierID: 1, Barcode: "1111", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShipment_Receive_RegistraEntradaConMismaReferencia(t *testing.T) {
	uc, _, movements := buildShipmentUC()

	created, err := uc.Create(dto.CreateShipmentRequest{
		SupplierID:   1,
		Barcode:      "7701001",
		Quantity:     12,
		Reference:    "REM-042",
		ExpectedDate: time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, entity.ShipmentPending, created.Status)

	received, err := uc.Receive(context.Background(), created.ID, "bodega@printworks.test")
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentReceived, received.Status)

	require.Len(t, movements.created, 1, "recibir debe registrar exactamente un goods-in")
	mov := movements.created[0]
	assert.Equal(t, entity.MovementIn, mov.Direction)
	assert.Equal(t, "7701001", mov.Barcode)
	assert.Equal(t, 12, mov.Quantity)
	assert.Equal(t, "REM-042", mov.Reference, "el movimiento hereda la referencia del envío")
	assert.Equal(t, "bodega@printworks.test", mov.CreatedBy)
}

func TestShipment_Receive_DosVecesFalla(t *testing.T) {
	uc, _, movements := buildShipmentUC()

	created, err := uc.Create(dto.CreateShipmentRequest{SupplierID: 1, Barcode: "1111", Quantity: 5})
	require.NoError(t, err)

	_, err = uc.Receive(context.Background(), created.ID, "bodega@printworks.test")
	require.NoError(t, err)

	_, err = uc.Receive(context.Background(), created.ID, "bodega@printworks.test")
	assert.ErrorIs(t, err, domain.ErrShipmentClosed, "un envío recibido no puede recibirse otra vez")
	assert.Len(t, movements.created, 1, "el segundo intento no debe duplicar el movimiento")
}

func TestShipment_Receive_TxFallidaNoCambiaEstado(t *testing.T) {
	shipments := newFakeShipmentRepo()
	movements := &fakeMovementRepo{}
	boom := errors.New("deadlock")
	tx := &fakeTxRunner{movements: movements, shipments: shipments, failWith: boom}
	uc := inventory.NewShipmentUseCase(tx, shipments, &fakeSupplierRepo{})

	created, err := uc.Create(dto.CreateShipmentRequest{SupplierID: 1, Barcode: "1111", Quantity: 5})
	require.NoError(t, err)

	_, err = uc.Receive(context.Background(), created.ID, "bodega@printworks.test")
	assert.ErrorIs(t, err, boom)

	after, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentPending, after.Status, "si la tx falla el envío sigue pendiente")
	assert.Empty(t, movements.created)
}

func TestShipment_Cancel_SoloPendientes(t *testing.T) {
	uc, _, _ := buildShipmentUC()

	created, err := uc.Create(dto.CreateShipmentRequest{SupplierID: 1, Barcode: "1111", Quantity: 5})
	require.NoError(t, err)

	cancelled, err := uc.Cancel(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ShipmentCancelled, cancelled.Status)

	_, err = uc.Receive(context.Background(), created.ID, "bodega@printworks.test")
	assert.ErrorIs(t, err, domain.ErrShipmentClosed, "un envío cancelado no puede recibirse")
}
