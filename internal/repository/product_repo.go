package repository

import (
	"context"
	"errors"

	"crm-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	List(ctx context.Context, f ProductFilter) ([]models.Product, error)
	// RestockBelow: stock += amount для всех товаров с stock < threshold, возвращает обновлённые.
	RestockBelow(ctx context.Context, threshold, amount int) ([]models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var list []models.Product
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error
	return list, err
}

func (r *productRepo) List(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	var list []models.Product
	err := r.db.WithContext(ctx).Model(&models.Product{}).
		Scopes(f.Scopes()...).
		Order("products.created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *productRepo) RestockBelow(ctx context.Context, threshold, amount int) ([]models.Product, error) {
	// одним UPDATE, без чтения-изменения-записи
	var updated []models.Product
	err := r.db.WithContext(ctx).Raw(`
UPDATE products
SET stock = stock + @amount
WHERE stock < @threshold
RETURNING id, name, price, stock, created_at
`, map[string]any{
		"amount":    amount,
		"threshold": threshold,
	}).Scan(&updated).Error
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (r *productRepo) DeleteAll(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{})
	return tx.RowsAffected, tx.Error
}
