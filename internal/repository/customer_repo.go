package repository

import (
	"context"
	"errors"

	"crm-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepo interface {
	Create(ctx context.Context, c *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	GetByEmail(ctx context.Context, email string) (*models.Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, f CustomerFilter) ([]models.Customer, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) CustomerRepo { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, c *models.Customer) error {
	return mapErr(r.db.WithContext(ctx).Create(c).Error)
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var c models.Customer
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var c models.Customer
	err := r.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Where("lower(email) = lower(?)", email).Count(&cnt).Error
	return cnt > 0, err
}

func (r *customerRepo) List(ctx context.Context, f CustomerFilter) ([]models.Customer, error) {
	var list []models.Customer
	err := r.db.WithContext(ctx).Model(&models.Customer{}).
		Scopes(f.Scopes()...).
		Order("customers.created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *customerRepo) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&cnt).Error
	return cnt, err
}

// Delete удаляет клиента; его заказы удаляет FK ON DELETE CASCADE.
func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (r *customerRepo) DeleteAll(ctx context.Context) (int64, error) {
	tx := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Customer{})
	return tx.RowsAffected, tx.Error
}
