package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	Name  string  `json:"name" example:"Alice Johnson"`
	Email string  `json:"email" example:"alice@example.com"`
	Phone *string `json:"phone,omitempty" example:"+1234567890"`
}

type BulkCreateCustomersRequest struct {
	Customers []CreateCustomerRequest `json:"customers" binding:"required"`
}

type CreateProductRequest struct {
	Name  string           `json:"name" example:"Laptop"`
	Price *decimal.Decimal `json:"price" swaggertype:"string" example:"999.99"`
	Stock *int             `json:"stock,omitempty" example:"10"`
}

type CreateOrderRequest struct {
	CustomerID string     `json:"customerId"`
	ProductIDs []string   `json:"productIds"`
	OrderDate  *time.Time `json:"orderDate,omitempty"`
}

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// Денежные поля — строка с двумя знаками, как в numeric(10,2).
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     string    `json:"price" example:"999.99"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"createdAt"`
}

type OrderResponse struct {
	ID          string            `json:"id"`
	CustomerID  string            `json:"customerId"`
	Customer    *CustomerResponse `json:"customer"`
	Products    []ProductResponse `json:"products"`
	TotalAmount string            `json:"totalAmount" example:"15.50"`
	OrderDate   time.Time         `json:"orderDate"`
}

type CustomerEnvelope struct {
	Customer *CustomerResponse `json:"customer"`
}

type ProductEnvelope struct {
	Product *ProductResponse `json:"product"`
}

type OrderEnvelope struct {
	Order *OrderResponse `json:"order"`
}

type CustomerList struct {
	Customers []CustomerResponse `json:"customers"`
}

type ProductList struct {
	Products []ProductResponse `json:"products"`
}

type OrderList struct {
	Orders []OrderResponse `json:"orders"`
}

type CustomerPayload struct {
	Customer *CustomerResponse `json:"customer"`
	Message  string            `json:"message"`
	Success  bool              `json:"success"`
}

type BulkCustomersPayload struct {
	Customers []CustomerResponse `json:"customers"`
	Errors    []string           `json:"errors"`
	Success   bool               `json:"success"`
}

type ProductPayload struct {
	Product *ProductResponse `json:"product"`
	Message string           `json:"message"`
	Success bool             `json:"success"`
}

type OrderPayload struct {
	Order   *OrderResponse `json:"order"`
	Message string         `json:"message"`
	Success bool           `json:"success"`
}

type RestockPayload struct {
	Products []ProductResponse `json:"products"`
	Message  string            `json:"message"`
	Success  bool              `json:"success"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
