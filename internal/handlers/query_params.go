package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"crm-service/internal/dto"
	"crm-service/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// paramParser собирает ошибки разбора query-параметров, чтобы вернуть их все сразу.
type paramParser struct {
	c      *gin.Context
	fields []dto.FieldError
}

func (p *paramParser) fail(field, msg string) {
	p.fields = append(p.fields, dto.FieldError{Field: field, Message: msg})
}

func (p *paramParser) text(name string) string {
	return strings.TrimSpace(p.c.Query(name))
}

// optDate принимает RFC3339 или YYYY-MM-DD (полночь UTC).
func (p *paramParser) optDate(name string) *time.Time {
	raw := p.text(name)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.ParseInLocation(time.DateOnly, raw, time.UTC); err == nil {
		return &t
	}
	p.fail(name, "expected RFC3339 or YYYY-MM-DD date")
	return nil
}

func (p *paramParser) optDecimal(name string) *decimal.Decimal {
	raw := p.text(name)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		p.fail(name, "expected decimal number")
		return nil
	}
	return &d
}

func (p *paramParser) optInt(name string) *int {
	raw := p.text(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(name, "expected integer")
		return nil
	}
	return &n
}

func (p *paramParser) flag(name string) bool {
	raw := p.text(name)
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(name, "expected boolean")
		return false
	}
	return b
}

func (p *paramParser) optUUID(name string) *uuid.UUID {
	raw := p.text(name)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		p.fail(name, fmt.Sprintf("invalid id %q", raw))
		return nil
	}
	return &id
}

func (p *paramParser) err() *dto.ValidationErrorResponse {
	if len(p.fields) == 0 {
		return nil
	}
	verr := dto.NewValidationError("invalid query parameters", p.fields)
	return &verr
}

func parseCustomerFilter(c *gin.Context) (repository.CustomerFilter, *dto.ValidationErrorResponse) {
	p := &paramParser{c: c}
	f := repository.CustomerFilter{
		Name:           p.text("name"),
		NameIcontains:  p.text("name_icontains"),
		NameExact:      p.text("name_exact"),
		Email:          p.text("email"),
		EmailIcontains: p.text("email_icontains"),
		EmailExact:     p.text("email_exact"),
		Phone:          p.text("phone"),
		PhoneIcontains: p.text("phone_icontains"),
		PhoneExact:     p.text("phone_exact"),
		PhonePattern:   p.text("phone_pattern"),
		CreatedAt:      p.optDate("created_at"),
		CreatedAtGte:   p.optDate("created_at_gte"),
		CreatedAtLte:   p.optDate("created_at_lte"),
	}
	return f, p.err()
}

func parseProductFilter(c *gin.Context) (repository.ProductFilter, *dto.ValidationErrorResponse) {
	p := &paramParser{c: c}
	f := repository.ProductFilter{
		Name:          p.text("name"),
		NameIcontains: p.text("name_icontains"),
		NameExact:     p.text("name_exact"),
		Price:         p.optDecimal("price"),
		PriceGte:      p.optDecimal("price_gte"),
		PriceLte:      p.optDecimal("price_lte"),
		Stock:         p.optInt("stock"),
		StockGte:      p.optInt("stock_gte"),
		StockLte:      p.optInt("stock_lte"),
		LowStock:      p.flag("low_stock"),
		CreatedAt:     p.optDate("created_at"),
		CreatedAtGte:  p.optDate("created_at_gte"),
		CreatedAtLte:  p.optDate("created_at_lte"),
	}
	return f, p.err()
}

func parseOrderFilter(c *gin.Context) (repository.OrderFilter, *dto.ValidationErrorResponse) {
	p := &paramParser{c: c}
	f := repository.OrderFilter{
		TotalAmount:           p.optDecimal("total_amount"),
		TotalAmountGte:        p.optDecimal("total_amount_gte"),
		TotalAmountLte:        p.optDecimal("total_amount_lte"),
		OrderDate:             p.optDate("order_date"),
		OrderDateGte:          p.optDate("order_date_gte"),
		OrderDateLte:          p.optDate("order_date_lte"),
		CustomerID:            p.optUUID("customer_id"),
		CustomerName:          p.text("customer_name"),
		CustomerNameIcontains: p.text("customer_name_icontains"),
		ProductID:             p.optUUID("product_id"),
		ProductName:           p.text("product_name"),
		ProductNameIcontains:  p.text("product_name_icontains"),
	}
	return f, p.err()
}
