package dto

import (
	"crm-service/internal/models"
	"crm-service/internal/service"
)

func FromCustomer(c *models.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

func FromProduct(p *models.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Price:     p.Price.StringFixed(2),
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
	}
}

func FromOrder(o *models.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	res := &OrderResponse{
		ID:          o.ID.String(),
		CustomerID:  o.CustomerID.String(),
		Products:    FromProducts(o.Products),
		TotalAmount: o.TotalAmount.StringFixed(2),
		OrderDate:   o.OrderDate,
	}
	if o.Customer.ID == o.CustomerID {
		res.Customer = FromCustomer(&o.Customer)
	}
	return res
}

func FromCustomers(list []models.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromCustomer(&list[i]))
	}
	return out
}

func FromProducts(list []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromProduct(&list[i]))
	}
	return out
}

func FromOrders(list []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromOrder(&list[i]))
	}
	return out
}

func (r CreateCustomerRequest) ToInput() service.CustomerInput {
	return service.CustomerInput{Name: r.Name, Email: r.Email, Phone: r.Phone}
}

func (r CreateProductRequest) ToInput() service.ProductInput {
	return service.ProductInput{Name: r.Name, Price: r.Price, Stock: r.Stock}
}

func (r CreateOrderRequest) ToInput() service.OrderInput {
	return service.OrderInput{CustomerID: r.CustomerID, ProductIDs: r.ProductIDs, OrderDate: r.OrderDate}
}

func NewCustomerPayload(p service.CustomerPayload) CustomerPayload {
	return CustomerPayload{Customer: FromCustomer(p.Customer), Message: p.Message, Success: p.Success}
}

func NewBulkCustomersPayload(p service.BulkCustomersPayload) BulkCustomersPayload {
	return BulkCustomersPayload{Customers: FromCustomers(p.Customers), Errors: p.Errors, Success: p.Success}
}

func NewProductPayload(p service.ProductPayload) ProductPayload {
	return ProductPayload{Product: FromProduct(p.Product), Message: p.Message, Success: p.Success}
}

func NewOrderPayload(p service.OrderPayload) OrderPayload {
	return OrderPayload{Order: FromOrder(p.Order), Message: p.Message, Success: p.Success}
}

func NewRestockPayload(p service.RestockPayload) RestockPayload {
	return RestockPayload{Products: FromProducts(p.Products), Message: p.Message, Success: p.Success}
}
