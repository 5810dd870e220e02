package service_test

import (
	"context"
	"time"

	"crm-service/internal/cache"
	"crm-service/internal/models"
	"crm-service/internal/repository"
	"crm-service/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MockCustomerRepo
type MockCustomerRepo struct {
	CreateFunc        func(ctx context.Context, c *models.Customer) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListFunc          func(ctx context.Context, f repository.CustomerFilter) ([]models.Customer, error)
	CountFunc         func(ctx context.Context) (int64, error)
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *models.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	c.ID = uuid.New()
	return nil
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCustomerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockCustomerRepo) List(ctx context.Context, f repository.CustomerFilter) ([]models.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, nil
}

func (m *MockCustomerRepo) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockCustomerRepo) DeleteAll(ctx context.Context) (int64, error) { return 0, nil }

// MockProductRepo
type MockProductRepo struct {
	CreateFunc       func(ctx context.Context, p *models.Product) error
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetByIDsFunc     func(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	ListFunc         func(ctx context.Context, f repository.ProductFilter) ([]models.Product, error)
	RestockBelowFunc func(ctx context.Context, threshold, amount int) ([]models.Product, error)
}

func (m *MockProductRepo) Create(ctx context.Context, p *models.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	p.ID = uuid.New()
	return nil
}

func (m *MockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]models.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, nil
}

func (m *MockProductRepo) RestockBelow(ctx context.Context, threshold, amount int) ([]models.Product, error) {
	if m.RestockBelowFunc != nil {
		return m.RestockBelowFunc(ctx, threshold, amount)
	}
	return nil, nil
}

func (m *MockProductRepo) DeleteAll(ctx context.Context) (int64, error) { return 0, nil }

// MockOrderRepo
type MockOrderRepo struct {
	CreateFunc  func(ctx context.Context, o *models.Order, productIDs []uuid.UUID) error
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListFunc    func(ctx context.Context, f repository.OrderFilter) ([]models.Order, error)
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order, productIDs []uuid.UUID) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o, productIDs)
	}
	o.ID = uuid.New()
	return nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]models.Order, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, nil
}

func (m *MockOrderRepo) Since(ctx context.Context, from time.Time) ([]models.Order, error) {
	return nil, nil
}

func (m *MockOrderRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (m *MockOrderRepo) Revenue(ctx context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (m *MockOrderRepo) DeleteAll(ctx context.Context) (int64, error) { return 0, nil }

// MockStore: WithTx и Savepoint просто вызывают fn на себе.
type MockStore struct {
	Cust *MockCustomerRepo
	Prod *MockProductRepo
	Ord  *MockOrderRepo

	WithTxErr error
	PingFunc  func(ctx context.Context) error
}

func newMockStore() *MockStore {
	return &MockStore{Cust: &MockCustomerRepo{}, Prod: &MockProductRepo{}, Ord: &MockOrderRepo{}}
}

func (m *MockStore) Customers() service.CustomerRepo { return m.Cust }
func (m *MockStore) Products() service.ProductRepo   { return m.Prod }
func (m *MockStore) Orders() service.OrderRepo       { return m.Ord }

func (m *MockStore) WithTx(ctx context.Context, fn func(tx service.Store) error) error {
	if err := fn(m); err != nil {
		return err
	}
	return m.WithTxErr
}

func (m *MockStore) Savepoint(ctx context.Context, fn func(tx service.Store) error) error {
	return fn(m)
}

func (m *MockStore) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// MockCache — кэш в памяти.
type MockCache struct {
	data    map[string][]byte
	deleted []string
}

func newMockCache() *MockCache { return &MockCache{data: map[string][]byte{}} }

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return v, nil
}

func (m *MockCache) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}
