package service

import (
	"context"
	"time"

	"crm-service/internal/models"
	"crm-service/internal/repository"

	"github.com/shopspring/decimal"
)

type CustomerInput struct {
	Name  string
	Email string
	Phone *string
}

type ProductInput struct {
	Name  string
	Price *decimal.Decimal
	Stock *int // по умолчанию 0
}

// OrderInput хранит идентификаторы как пришли от клиента: некорректный uuid
// ведёт себя как несуществующий и попадает в сообщение об ошибке без изменений.
type OrderInput struct {
	CustomerID string
	ProductIDs []string
	OrderDate  *time.Time
}

type CustomerPayload struct {
	Customer *models.Customer
	Message  string
	Success  bool
}

type BulkCustomersPayload struct {
	Customers []models.Customer
	Errors    []string
	Success   bool
}

type ProductPayload struct {
	Product *models.Product
	Message string
	Success bool
}

type OrderPayload struct {
	Order   *models.Order
	Message string
	Success bool
}

type RestockPayload struct {
	Products []models.Product
	Message  string
	Success  bool
}

// Мутации не возвращают error: любой отказ отражается в payload.
type MutationService interface {
	CreateCustomer(ctx context.Context, in CustomerInput) CustomerPayload
	BulkCreateCustomers(ctx context.Context, in []CustomerInput) BulkCustomersPayload
	CreateProduct(ctx context.Context, in ProductInput) ProductPayload
	CreateOrder(ctx context.Context, in OrderInput) OrderPayload
	RestockLowStock(ctx context.Context) RestockPayload
}

type QueryService interface {
	AllCustomers(ctx context.Context, f repository.CustomerFilter) ([]models.Customer, error)
	AllProducts(ctx context.Context, f repository.ProductFilter) ([]models.Product, error)
	AllOrders(ctx context.Context, f repository.OrderFilter) ([]models.Order, error)
	// Customer/Product/Order возвращают nil, nil если сущность не найдена.
	Customer(ctx context.Context, id string) (*models.Customer, error)
	Product(ctx context.Context, id string) (*models.Product, error)
	Order(ctx context.Context, id string) (*models.Order, error)
	Ping(ctx context.Context) error
}
