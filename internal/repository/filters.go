package repository

import (
	"strings"
	"time"

	"crm-service/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Каждое заданное поле фильтра превращается в отдельный предикат,
// предикаты объединяются через AND. nil / пустая строка — фильтр не задан.

type CustomerFilter struct {
	Name          string
	NameIcontains string
	NameExact     string

	Email          string
	EmailIcontains string
	EmailExact     string

	Phone          string
	PhoneIcontains string
	PhoneExact     string
	PhonePattern   string // префикс, без учёта регистра

	CreatedAt    *time.Time
	CreatedAtGte *time.Time
	CreatedAtLte *time.Time
}

type ProductFilter struct {
	Name          string
	NameIcontains string
	NameExact     string

	Price    *decimal.Decimal
	PriceGte *decimal.Decimal
	PriceLte *decimal.Decimal

	Stock    *int
	StockGte *int
	StockLte *int

	LowStock bool

	CreatedAt    *time.Time
	CreatedAtGte *time.Time
	CreatedAtLte *time.Time
}

type OrderFilter struct {
	TotalAmount    *decimal.Decimal
	TotalAmountGte *decimal.Decimal
	TotalAmountLte *decimal.Decimal

	OrderDate    *time.Time
	OrderDateGte *time.Time
	OrderDateLte *time.Time

	CustomerID            *uuid.UUID
	CustomerName          string
	CustomerNameIcontains string

	ProductID            *uuid.UUID
	ProductName          string
	ProductNameIcontains string
}

type scope = func(*gorm.DB) *gorm.DB

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + strings.ToLower(likeEscaper.Replace(s)) + "%"
}

func prefixPattern(s string) string {
	return strings.ToLower(likeEscaper.Replace(s)) + "%"
}

func icontains(col, v string) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("lower("+col+") LIKE ?", containsPattern(v))
	}
}

func istartswith(col, v string) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("lower("+col+") LIKE ?", prefixPattern(v))
	}
}

func cmp(col, op string, v any) scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(col+" "+op+" ?", v)
	}
}

func addText(scopes []scope, col, contains, alias, exact string) []scope {
	if contains != "" {
		scopes = append(scopes, icontains(col, contains))
	}
	if alias != "" {
		scopes = append(scopes, icontains(col, alias))
	}
	if exact != "" {
		scopes = append(scopes, cmp(col, "=", exact))
	}
	return scopes
}

func addTimeRange(scopes []scope, col string, eq, gte, lte *time.Time) []scope {
	if eq != nil {
		scopes = append(scopes, cmp(col, "=", *eq))
	}
	if gte != nil {
		scopes = append(scopes, cmp(col, ">=", *gte))
	}
	if lte != nil {
		scopes = append(scopes, cmp(col, "<=", *lte))
	}
	return scopes
}

func addDecimalRange(scopes []scope, col string, eq, gte, lte *decimal.Decimal) []scope {
	if eq != nil {
		scopes = append(scopes, cmp(col, "=", *eq))
	}
	if gte != nil {
		scopes = append(scopes, cmp(col, ">=", *gte))
	}
	if lte != nil {
		scopes = append(scopes, cmp(col, "<=", *lte))
	}
	return scopes
}

func addIntRange(scopes []scope, col string, eq, gte, lte *int) []scope {
	if eq != nil {
		scopes = append(scopes, cmp(col, "=", *eq))
	}
	if gte != nil {
		scopes = append(scopes, cmp(col, ">=", *gte))
	}
	if lte != nil {
		scopes = append(scopes, cmp(col, "<=", *lte))
	}
	return scopes
}

func (f CustomerFilter) Scopes() []scope {
	var s []scope
	s = addText(s, "customers.name", f.Name, f.NameIcontains, f.NameExact)
	s = addText(s, "customers.email", f.Email, f.EmailIcontains, f.EmailExact)
	s = addText(s, "customers.phone", f.Phone, f.PhoneIcontains, f.PhoneExact)
	if f.PhonePattern != "" {
		s = append(s, istartswith("customers.phone", f.PhonePattern))
	}
	s = addTimeRange(s, "customers.created_at", f.CreatedAt, f.CreatedAtGte, f.CreatedAtLte)
	return s
}

func (f ProductFilter) Scopes() []scope {
	var s []scope
	s = addText(s, "products.name", f.Name, f.NameIcontains, f.NameExact)
	s = addDecimalRange(s, "products.price", f.Price, f.PriceGte, f.PriceLte)
	s = addIntRange(s, "products.stock", f.Stock, f.StockGte, f.StockLte)
	if f.LowStock {
		s = append(s, cmp("products.stock", "<", models.LowStockThreshold))
	}
	s = addTimeRange(s, "products.created_at", f.CreatedAt, f.CreatedAtGte, f.CreatedAtLte)
	return s
}

func (f OrderFilter) Scopes() []scope {
	var s []scope
	s = addDecimalRange(s, "orders.total_amount", f.TotalAmount, f.TotalAmountGte, f.TotalAmountLte)
	s = addTimeRange(s, "orders.order_date", f.OrderDate, f.OrderDateGte, f.OrderDateLte)

	if f.CustomerID != nil {
		s = append(s, cmp("orders.customer_id", "=", *f.CustomerID))
	}
	for _, name := range []string{f.CustomerName, f.CustomerNameIcontains} {
		if name == "" {
			continue
		}
		s = append(s, func(db *gorm.DB) *gorm.DB {
			return db.Where("orders.customer_id IN (SELECT id FROM customers WHERE lower(name) LIKE ?)", containsPattern(name))
		})
	}

	// через связующую таблицу — подзапрос, чтобы не плодить дубли заказов
	if f.ProductID != nil {
		pid := *f.ProductID
		s = append(s, func(db *gorm.DB) *gorm.DB {
			return db.Where("orders.id IN (SELECT order_id FROM order_products WHERE product_id = ?)", pid)
		})
	}
	for _, name := range []string{f.ProductName, f.ProductNameIcontains} {
		if name == "" {
			continue
		}
		s = append(s, func(db *gorm.DB) *gorm.DB {
			return db.Where(`orders.id IN (
SELECT op.order_id FROM order_products op
JOIN products p ON p.id = op.product_id
WHERE lower(p.name) LIKE ?)`, containsPattern(name))
		})
	}
	return s
}
