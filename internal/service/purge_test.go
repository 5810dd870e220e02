package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm-service/internal/cache"
	"crm-service/internal/models"
	"crm-service/internal/repository"
	"crm-service/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func TestPurge_DeletedEntitiesNotServedFromCache(t *testing.T) {
	st := newMockStore()
	c := newMockCache()
	q := service.NewQueryService(st, c, time.Minute, zap.NewNop())
	ctx := context.Background()

	alice := models.Customer{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"}
	laptop := models.Product{ID: uuid.New(), Name: "Laptop", Price: decimal.RequireFromString("999.99"), Stock: 10}

	deleted := false
	st.Cust.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
		if deleted {
			return nil, nil
		}
		return &alice, nil
	}
	st.Prod.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.Product, error) {
		if deleted {
			return nil, nil
		}
		return &laptop, nil
	}
	st.Cust.ListFunc = func(ctx context.Context, f repository.CustomerFilter) ([]models.Customer, error) {
		return []models.Customer{alice}, nil
	}
	st.Prod.ListFunc = func(ctx context.Context, f repository.ProductFilter) ([]models.Product, error) {
		return []models.Product{laptop}, nil
	}

	if got, err := q.Customer(ctx, alice.ID.String()); err != nil || got == nil {
		t.Fatalf("warm customer: %+v %v", got, err)
	}
	if got, err := q.Product(ctx, laptop.ID.String()); err != nil || got == nil {
		t.Fatalf("warm product: %+v %v", got, err)
	}

	if err := service.Purge(ctx, st, c, zap.NewNop()); err != nil {
		t.Fatalf("purge: %v", err)
	}
	deleted = true

	if got, err := q.Customer(ctx, alice.ID.String()); err != nil || got != nil {
		t.Fatalf("deleted customer still returned: %+v %v", got, err)
	}
	if got, err := q.Product(ctx, laptop.ID.String()); err != nil || got != nil {
		t.Fatalf("deleted product still returned: %+v %v", got, err)
	}
	if _, ok := c.data[cache.CustomerKey(alice.ID)]; ok {
		t.Fatalf("customer key must be dropped")
	}
}

func TestPurge_StoreFailureKeepsCache(t *testing.T) {
	st := newMockStore()
	st.WithTxErr = errors.New("commit failed")
	c := newMockCache()
	key := cache.CustomerKey(uuid.New())
	c.data[key] = []byte(`{}`)

	err := service.Purge(context.Background(), st, c, zap.NewNop())
	if !errors.Is(err, service.ErrPersistence) {
		t.Fatalf("want persistence error, got %v", err)
	}
	if len(c.deleted) != 0 {
		t.Fatalf("cache must stay untouched on failed purge: %v", c.deleted)
	}
}
