package service

import (
	"context"
	"time"

	"crm-service/internal/models"
	"crm-service/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CustomerRepo interface {
	Create(ctx context.Context, c *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, f repository.CustomerFilter) ([]models.Customer, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	List(ctx context.Context, f repository.ProductFilter) ([]models.Product, error)
	RestockBelow(ctx context.Context, threshold, amount int) ([]models.Product, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order, productIDs []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, f repository.OrderFilter) ([]models.Order, error)
	Since(ctx context.Context, from time.Time) ([]models.Order, error)
	Count(ctx context.Context) (int64, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// Store — хранилище сущностей с атомарной единицей работы.
type Store interface {
	Customers() CustomerRepo
	Products() ProductRepo
	Orders() OrderRepo

	WithTx(ctx context.Context, fn func(tx Store) error) error
	// Savepoint внутри WithTx откатывает только изменения fn.
	Savepoint(ctx context.Context, fn func(tx Store) error) error
	Ping(ctx context.Context) error
}

type CacheClient interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Del(ctx context.Context, keys ...string) error
}
