package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Порог «мало на складе» и шаг пополнения для фоновой задачи.
const (
	LowStockThreshold = 10
	RestockAmount     = 10
)

type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(254);not null;uniqueIndex:ux_customers_email"`
	Phone     *string   `gorm:"type:varchar(20)"`
	CreatedAt time.Time `gorm:"not null;default:now();index"`
}

func (Customer) TableName() string { return "customers" }

type Product struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Stock     int             `gorm:"not null;default:0"`
	CreatedAt time.Time       `gorm:"not null;default:now();index"`
}

func (Product) TableName() string { return "products" }

func (p Product) IsLowStock() bool { return p.Stock < LowStockThreshold }

type Order struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	OrderDate   time.Time       `gorm:"not null;default:now();index"`

	Customer Customer  `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"` // каскад при удалении клиента
	Products []Product `gorm:"many2many:order_products;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }

// OrderProduct — связующая таблица many-to-many.
type OrderProduct struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

func (OrderProduct) TableName() string { return "order_products" }
