package maintenance_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printworks/stockroom-api/internal/application/dto"
	"github.com/printworks/stockroom-api/internal/application/maintenance"
	"github.com/printworks/stockroom-api/internal/domain"
	"github.com/printworks/stockroom-api/internal/domain/entity"
)

// fakeOrderRepo repositorio de órdenes en memoria.
type fakeOrderRepo struct {
	byID   map[int64]*entity.MaintenanceOrder
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byID: make(map[int64]*entity.MaintenanceOrder), nextID: 1}
}

func (f *fakeOrderRepo) Create(o *entity.MaintenanceOrder) error {
	o.ID = f.nextID
	f.nextID++
	cp := *o
	f.byID[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(id int64) (*entity.MaintenanceOrder, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) UpdateStatus(id int64, status string) error {
	o, ok := f.byID[id]
	if !ok {
		return errors.New("no existe")
	}
	o.Status = status
	return nil
}

func (f *fakeOrderRepo) ListByPrinter(printerID int64) ([]*entity.MaintenanceOrder, error) {
	var out []*entity.MaintenanceOrder
	for _, o := range f.byID {
		if o.PrinterID == printerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) List(limit, offset int) ([]*entity.MaintenanceOrder, error) {
	var out []*entity.MaintenanceOrder
	for _, o := range f.byID {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

// fakePrinterRepo una sola impresora con ID 1 cuyo estado se rastrea.
type fakePrinterRepo struct {
	status string
}

func (f *fakePrinterRepo) Create(*entity.Printer) error { return nil }
func (f *fakePrinterRepo) GetByID(id int64) (*entity.Printer, error) {
	if id != 1 {
		return nil, nil
	}
	return &entity.Printer{ID: 1, Name: "Roland XR-640", Model: "XR-640", Status: f.status}, nil
}
func (f *fakePrinterRepo) Update(*entity.Printer) error { return nil }
func (f *fakePrinterRepo) UpdateStatus(_ int64, status string) error {
	f.status = status
	return nil
}
func (f *fakePrinterRepo) List() ([]*entity.Printer, error) { return nil, nil }
func (f *fakePrinterRepo) Delete(int64) error               { return nil }

// fakeNotifier captura el último aviso; con err simula un fallo de envío.
type fakeNotifier struct {
	subject string
	body    string
	err     error
}

func (f *fakeNotifier) Notify(_ context.Context, subject, body string) error {
	f.subject = subject
	f.body = body
	return f.err
}

func buildMaintenanceUC(notifier *fakeNotifier, onErr func(error)) (*maintenance.UseCase, *fakePrinterRepo) {
	printers := &fakePrinterRepo{status: entity.PrinterOperational}
	uc := maintenance.NewUseCase(newFakeOrderRepo(), printers, notifier, onErr)
	return uc, printers
}

func TestMaintenance_Create_PoneImpresoraEnMantenimientoYNotifica(t *testing.T) {
	notifier := &fakeNotifier{}
	uc, printers := buildMaintenanceUC(notifier, nil)

	order, err := uc.Create(context.Background(), "bodega@printworks.test", dto.CreateMaintenanceOrderRequest{
		PrinterID:   1,
		Description: "cabezal obstruido",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MaintenanceOpen, order.Status)
	assert.Equal(t, "bodega@printworks.test", order.ReportedBy)

	assert.Equal(t, entity.PrinterMaintenance, printers.status,
		"crear la orden debe pasar la impresora a mantenimiento")
	assert.Contains(t, notifier.subject, "Roland XR-640")
	assert.Contains(t, notifier.body, "cabezal obstruido")
	assert.Contains(t, notifier.body, "bodega@printworks.test")
}

func TestMaintenance_Create_ImpresoraInexistente(t *testing.T) {
	uc, _ := buildMaintenanceUC(&fakeNotifier{}, nil)
	_, err := uc.Create(context.Background(), "x@y.test", dto.CreateMaintenanceOrderRequest{
		PrinterID:   99,
		Description: "lo que sea",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMaintenance_Create_FalloDeNotificacionNoRevierte(t *testing.T) {
	var captured error
	notifier := &fakeNotifier{err: errors.New("smtp caído")}
	uc, printers := buildMaintenanceUC(notifier, func(err error) { captured = err })

	order, err := uc.Create(context.Background(), "x@y.test", dto.CreateMaintenanceOrderRequest{
		PrinterID:   1,
		Description: "correa desgastada",
	})
	require.NoError(t, err, "el fallo de email no debe impedir crear la orden")
	assert.NotNil(t, order)
	assert.Equal(t, entity.PrinterMaintenance, printers.status)
	assert.EqualError(t, captured, "smtp caído", "el hook debe recibir el error de envío")
}

func TestMaintenance_CerrarUltimaOrdenReactivaImpresora(t *testing.T) {
	uc, printers := buildMaintenanceUC(&fakeNotifier{}, nil)

	order, err := uc.Create(context.Background(), "x@y.test", dto.CreateMaintenanceOrderRequest{
		PrinterID:   1,
		Description: "cabezal obstruido",
	})
	require.NoError(t, err)
	require.Equal(t, entity.PrinterMaintenance, printers.status)

	updated, err := uc.UpdateStatus(order.ID, dto.UpdateMaintenanceStatusRequest{Status: entity.MaintenanceClosed})
	require.NoError(t, err)
	assert.Equal(t, entity.MaintenanceClosed, updated.Status)
	assert.Equal(t, entity.PrinterOperational, printers.status,
		"sin órdenes abiertas la impresora vuelve a operativa")
}

func TestMaintenance_CerrarConOtraOrdenAbiertaNoReactiva(t *testing.T) {
	uc, printers := buildMaintenanceUC(&fakeNotifier{}, nil)

	first, err := uc.Create(context.Background(), "x@y.test", dto.CreateMaintenanceOrderRequest{
		PrinterID:   1,
		Description: "cabezal obstruido",
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "x@y.test", dto.CreateMaintenanceOrderRequest{
		PrinterID:   1,
		Description: "rodillo dañado",
	})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(first.ID, dto.UpdateMaintenanceStatusRequest{Status: entity.MaintenanceClosed})
	require.NoError(t, err)
	assert.Equal(t, entity.PrinterMaintenance, printers.status,
		"queda otra orden abierta, la impresora sigue en mantenimiento")
}

func TestMaintenance_UpdateStatus_EstadoInvalido(t *testing.T) {
	uc, _ := buildMaintenanceUC(&fakeNotifier{}, nil)
	_, err := uc.UpdateStatus(1, dto.UpdateMaintenanceStatusRequest{Status: "scrapped"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
