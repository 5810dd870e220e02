package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm-service/internal/cache"
	"crm-service/internal/models"
	"crm-service/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestQuery_MalformedIDIsNotFound(t *testing.T) {
	svc := service.NewQueryService(newMockStore(), nil, time.Minute, zap.NewNop())
	ctx := context.Background()

	c, err := svc.Customer(ctx, "not-a-uuid")
	if err != nil || c != nil {
		t.Fatalf("customer: %+v %v", c, err)
	}
	p, err := svc.Product(ctx, "42")
	if err != nil || p != nil {
		t.Fatalf("product: %+v %v", p, err)
	}
	o, err := svc.Order(ctx, "")
	if err != nil || o != nil {
		t.Fatalf("order: %+v %v", o, err)
	}
}

func TestQuery_CustomerReadThroughCache(t *testing.T) {
	st := newMockStore()
	id := uuid.New()
	calls := 0
	st.Cust.GetByIDFunc = func(ctx context.Context, got uuid.UUID) (*models.Customer, error) {
		calls++
		return &models.Customer{ID: got, Name: "Alice", Email: "alice@example.com"}, nil
	}
	c := newMockCache()
	svc := service.NewQueryService(st, c, time.Minute, zap.NewNop())
	ctx := context.Background()

	first, err := svc.Customer(ctx, id.String())
	if err != nil || first == nil {
		t.Fatalf("first: %+v %v", first, err)
	}
	second, err := svc.Customer(ctx, id.String())
	if err != nil || second == nil || second.Email != "alice@example.com" {
		t.Fatalf("second: %+v %v", second, err)
	}
	if calls != 1 {
		t.Fatalf("store must be hit once, got %d", calls)
	}
	if _, ok := c.data[cache.CustomerKey(id)]; !ok {
		t.Fatalf("value not cached")
	}
}

func TestQuery_MissIsNotCached(t *testing.T) {
	c := newMockCache()
	svc := service.NewQueryService(newMockStore(), c, time.Minute, zap.NewNop())

	p, err := svc.Product(context.Background(), uuid.New().String())
	if err != nil || p != nil {
		t.Fatalf("product: %+v %v", p, err)
	}
	if len(c.data) != 0 {
		t.Fatalf("miss must not be cached")
	}
}

func TestQuery_StoreFailureIsPersistence(t *testing.T) {
	st := newMockStore()
	st.Ord.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
		return nil, errors.New("connection reset")
	}
	svc := service.NewQueryService(st, nil, time.Minute, zap.NewNop())

	_, err := svc.Order(context.Background(), uuid.New().String())
	if !errors.Is(err, service.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}
