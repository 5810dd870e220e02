package repository

import (
	"context"
	"errors"
	"time"

	"crm-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepo interface {
	// Create пишет заказ и строки order_products; атомарность обеспечивает вызывающий через WithTx.
	Create(ctx context.Context, o *models.Order, productIDs []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, f OrderFilter) ([]models.Order, error)
	// Since — заказы с order_date >= from, вместе с клиентом.
	Since(ctx context.Context, from time.Time) ([]models.Order, error)
	Count(ctx context.Context) (int64, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *models.Order, productIDs []uuid.UUID) error {
	if err := r.db.WithContext(ctx).Omit("Customer", "Products").Create(o).Error; err != nil {
		return err
	}
	if len(productIDs) == 0 {
		return nil
	}
	links := make([]models.OrderProduct, 0, len(productIDs))
	for _, pid := range productIDs {
		links = append(links, models.OrderProduct{OrderID: o.ID, ProductID: pid})
	}
	return r.db.WithContext(ctx).Create(&links).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Products", orderedProducts).
		First(&ord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ord, nil
}

func (r *orderRepo) List(ctx context.Context, f OrderFilter) ([]models.Order, error) {
	var list []models.Order
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Scopes(f.Scopes()...).
		Preload("Customer").
		Preload("Products", orderedProducts).
		Order("orders.order_date DESC").
		Find(&list).Error
	return list, err
}

func (r *orderRepo) Since(ctx context.Context, from time.Time) ([]models.Order, error) {
	var list []models.Order
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("order_date >= ?", from).
		Order("order_date DESC").
		Find(&list).Error
	return list, err
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&cnt).Error
	return cnt, err
}

func (r *orderRepo) Revenue(ctx context.Context) (decimal.Decimal, error) {
	var res struct{ Total decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Scan(&res).Error
	return res.Total, err
}

// DeleteAll удаляет заказы; строки order_products уходят каскадом.
func (r *orderRepo) DeleteAll(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Order{})
	return tx.RowsAffected, tx.Error
}

func orderedProducts(db *gorm.DB) *gorm.DB {
	return db.Order("products.created_at DESC")
}
