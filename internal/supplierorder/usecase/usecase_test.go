package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/supplierorder/dto"
	"github.com/fekuna/comics-store-service/internal/testutil"
	"github.com/fekuna/comics-store-service/pkg/broker"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memRepo resolves supplier names from a fixed table, standing in for the join.
type memRepo struct {
	nextID    int64
	rows      map[int64]model.SupplierOrder
	suppliers map[int64]string
}

func newMemRepo(suppliers map[int64]string) *memRepo {
	return &memRepo{rows: map[int64]model.SupplierOrder{}, suppliers: suppliers}
}

func (r *memRepo) Create(_ context.Context, o *model.SupplierOrder) error {
	if _, ok := r.suppliers[o.SupplierID]; !ok {
		return model.ErrInvalidReference
	}
	r.nextID++
	o.ID = r.nextID
	r.rows[o.ID] = *o
	return nil
}

func (r *memRepo) FindByID(_ context.Context, id int64) (*model.SupplierOrder, error) {
	o, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *memRepo) FindAll(_ context.Context) ([]model.SupplierOrder, error) {
	out := []model.SupplierOrder{}
	for i := int64(1); i <= r.nextID; i++ {
		if o, ok := r.rows[i]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memRepo) Update(_ context.Context, o *model.SupplierOrder) error {
	if _, ok := r.rows[o.ID]; !ok {
		return model.ErrNotFound
	}
	r.rows[o.ID] = *o
	return nil
}

func (r *memRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.rows[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *memRepo) FindBySupplierName(_ context.Context, name string) ([]model.SupplierOrderWithSupplier, error) {
	out := []model.SupplierOrderWithSupplier{}
	for i := int64(1); i <= r.nextID; i++ {
		o, ok := r.rows[i]
		if ok && r.suppliers[o.SupplierID] == name {
			out = append(out, model.SupplierOrderWithSupplier{SupplierOrder: o, SupplierName: name})
		}
	}
	return out, nil
}

func newTestUseCase(repo *memRepo, pub broker.Publisher) *supplierOrderUseCase {
	uc := NewSupplierOrderUseCase(repo, pub, logger.NewNop()).(*supplierOrderUseCase)
	uc.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	return uc
}

func TestOrdersBySupplierName(t *testing.T) {
	repo := newMemRepo(map[int64]string{1: "Panini", 2: "Ivrea"})
	uc := newTestUseCase(repo, nil)
	ctx := context.Background()

	created, err := uc.CreateOrder(ctx, &dto.OrderInput{SupplierID: 1, Status: model.OrderStatusPending})
	require.NoError(t, err)
	_, err = uc.CreateOrder(ctx, &dto.OrderInput{SupplierID: 2})
	require.NoError(t, err)

	orders, err := uc.ListOrdersBySupplierName(ctx, "Panini")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, created.ID, orders[0].ID)
	assert.Equal(t, "Panini", orders[0].SupplierName)

	_, err = uc.ListOrdersBySupplierName(ctx, "Norma")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCreateOrderDefaults(t *testing.T) {
	uc := newTestUseCase(newMemRepo(map[int64]string{1: "Panini"}), nil)

	o, err := uc.CreateOrder(context.Background(), &dto.OrderInput{SupplierID: 1})

	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, o.Status)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), o.PurchaseDate)
}

func TestOrderStatusValidation(t *testing.T) {
	repo := newMemRepo(map[int64]string{1: "Panini"})
	uc := newTestUseCase(repo, nil)

	_, err := uc.CreateOrder(context.Background(), &dto.OrderInput{SupplierID: 1, Status: "enviado"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = uc.UpdateOrder(context.Background(), 1, &dto.OrderInput{SupplierID: 1, Status: "PENDIENTE"})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	assert.Empty(t, repo.rows)
}

func TestUpdateOrderOverwrites(t *testing.T) {
	repo := newMemRepo(map[int64]string{1: "Panini", 2: "Ivrea"})
	uc := newTestUseCase(repo, nil)
	ctx := context.Background()
	date := time.Date(2023, 12, 24, 0, 0, 0, 0, time.UTC)

	o, err := uc.CreateOrder(ctx, &dto.OrderInput{SupplierID: 1, PurchaseDate: &date, Status: model.OrderStatusReceived})
	require.NoError(t, err)

	_, err = uc.UpdateOrder(ctx, o.ID, &dto.OrderInput{SupplierID: 2})
	require.NoError(t, err)

	got, err := uc.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.SupplierID)
	assert.Equal(t, model.OrderStatusPending, got.Status)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), got.PurchaseDate)

	_, err = uc.UpdateOrder(ctx, 99, &dto.OrderInput{SupplierID: 2})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestOrderEventsPublished(t *testing.T) {
	pub := &testutil.RecordingPublisher{}
	uc := newTestUseCase(newMemRepo(map[int64]string{7: "Panini"}), pub)
	ctx := context.Background()

	o, err := uc.CreateOrder(ctx, &dto.OrderInput{SupplierID: 7})
	require.NoError(t, err)
	_, err = uc.UpdateOrder(ctx, o.ID, &dto.OrderInput{SupplierID: 7, Status: model.OrderStatusCancelled})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteOrder(ctx, o.ID))

	assert.Equal(t, []string{EventOrderCreated, EventOrderUpdated}, pub.Types())
	assert.Equal(t, "7", pub.Events[0].Key)

	payload, err := json.Marshal(pub.Events[1].Payload)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"status":"cancelado"`)
}

func TestPublishFailureKeepsOrder(t *testing.T) {
	pub := &testutil.RecordingPublisher{Err: errors.New("broker down")}
	repo := newMemRepo(map[int64]string{1: "Panini"})
	uc := newTestUseCase(repo, pub)

	_, err := uc.CreateOrder(context.Background(), &dto.OrderInput{SupplierID: 1})

	require.NoError(t, err)
	assert.Len(t, repo.rows, 1)
}

func TestCreateOrderUnknownSupplier(t *testing.T) {
	pub := &testutil.RecordingPublisher{}
	uc := newTestUseCase(newMemRepo(map[int64]string{}), pub)

	_, err := uc.CreateOrder(context.Background(), &dto.OrderInput{SupplierID: 3})

	assert.ErrorIs(t, err, model.ErrInvalidReference)
	assert.Empty(t, pub.Events)
}
