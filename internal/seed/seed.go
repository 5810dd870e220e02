package seed

import (
	"context"
	"fmt"

	"crm-service/internal/models"
	"crm-service/internal/repository"
	"crm-service/internal/service"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Summary struct {
	Customers int64
	Products  int
	Orders    int64
}

var customers = []service.CustomerInput{
	{Name: "Alice Johnson", Email: "alice@example.com", Phone: ptr("+1234567890")},
	{Name: "Bob Smith", Email: "bob@example.com", Phone: ptr("123-456-7890")},
	{Name: "Carol Williams", Email: "carol@example.com", Phone: ptr("+9876543210")},
	{Name: "David Brown", Email: "david@example.com", Phone: ptr("987-654-3210")},
	{Name: "Eve Davis", Email: "eve@example.com", Phone: ptr("+1122334455")},
}

var products = []struct {
	name  string
	price string
	stock int
}{
	{"Laptop", "999.99", 10},
	{"Mouse", "29.99", 50},
	{"Keyboard", "79.99", 30},
	{"Monitor", "299.99", 15},
	{"Headphones", "149.99", 25},
	{"Webcam", "89.99", 20},
	{"USB Cable", "9.99", 100},
}

// orders: индекс клиента -> индексы товаров
var orders = []struct {
	customer int
	products []int
}{
	{0, []int{0, 1}},
	{1, []int{2, 3, 4}},
	{2, []int{5, 6}},
	{3, []int{1, 6}},
	{4, []int{0, 3, 4}},
}

// Run очищает все таблицы и заполняет их демонстрационными данными через сервис мутаций.
// cache может быть nil, если redis не используется.
func Run(ctx context.Context, store service.Store, mutation service.MutationService, cache service.CacheClient, log *zap.Logger) (Summary, error) {
	if err := service.Purge(ctx, store, cache, log); err != nil {
		return Summary{}, fmt.Errorf("clear data: %w", err)
	}
	log.Info("Данные очищены")

	var custs []*models.Customer
	for _, in := range customers {
		res := mutation.CreateCustomer(ctx, in)
		if !res.Success {
			return Summary{}, fmt.Errorf("customer %s: %s", in.Email, res.Message)
		}
		custs = append(custs, res.Customer)
		log.Info("Создан клиент", zap.String("name", res.Customer.Name))
	}

	var prods []*models.Product
	for _, p := range products {
		price := decimal.RequireFromString(p.price)
		stock := p.stock
		res := mutation.CreateProduct(ctx, service.ProductInput{Name: p.name, Price: &price, Stock: &stock})
		if !res.Success {
			return Summary{}, fmt.Errorf("product %s: %s", p.name, res.Message)
		}
		prods = append(prods, res.Product)
		log.Info("Создан товар", zap.String("name", p.name), zap.String("price", res.Product.Price.StringFixed(2)))
	}

	for _, o := range orders {
		ids := make([]string, 0, len(o.products))
		for _, i := range o.products {
			ids = append(ids, prods[i].ID.String())
		}
		res := mutation.CreateOrder(ctx, service.OrderInput{CustomerID: custs[o.customer].ID.String(), ProductIDs: ids})
		if !res.Success {
			return Summary{}, fmt.Errorf("order for %s: %s", custs[o.customer].Email, res.Message)
		}
		log.Info("Создан заказ",
			zap.String("customer", custs[o.customer].Name),
			zap.String("total", res.Order.TotalAmount.StringFixed(2)))
	}

	return summarize(ctx, store)
}

func summarize(ctx context.Context, store service.Store) (Summary, error) {
	var s Summary
	var err error
	if s.Customers, err = store.Customers().Count(ctx); err != nil {
		return s, err
	}
	if s.Orders, err = store.Orders().Count(ctx); err != nil {
		return s, err
	}
	list, err := store.Products().List(ctx, repository.ProductFilter{})
	if err != nil {
		return s, err
	}
	s.Products = len(list)
	return s, nil
}

func ptr(s string) *string { return &s }
