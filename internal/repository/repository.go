package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repository struct {
	DB        *gorm.DB
	Customers CustomerRepo
	Products  ProductRepo
	Orders    OrderRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:        db,
		Customers: NewCustomerRepo(db),
		Products:  NewProductRepo(db),
		Orders:    NewOrderRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }

// WithTx выполняет fn в одной транзакции; репозитории внутри fn привязаны к ней.
// Ошибка из fn откатывает всё.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(buildRepository(tx))
	})
}

// Savepoint — вложенная транзакция. Внутри WithTx gorm превращает её в SAVEPOINT,
// и ошибка fn откатывает только изменения fn.
func (r *Repository) Savepoint(ctx context.Context, fn func(tx *Repository) error) error {
	return r.WithTx(ctx, fn)
}

func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
