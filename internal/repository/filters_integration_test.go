package repository_test

import (
	"context"
	"testing"
	"time"

	"crm-service/internal/models"
	"crm-service/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func day(d int) time.Time { return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC) }

func strp(s string) *string { return &s }

func decp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intp(n int) *int { return &n }

func timep(t time.Time) *time.Time { return &t }

func assertIDs(t *testing.T, got []uuid.UUID, want ...uuid.UUID) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d rows %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %s, want %s (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestCustomerRepo_ListFilters(t *testing.T) {
	db := setupDB(t)
	repo := repository.New(db)
	ctx := context.Background()

	mk := func(name, email string, phone *string, created time.Time) uuid.UUID {
		c := &models.Customer{Name: name, Email: email, Phone: phone, CreatedAt: created}
		if err := repo.Customers.Create(ctx, c); err != nil {
			t.Fatalf("create %s: %v", email, err)
		}
		return c.ID
	}
	alice := mk("Alice Johnson", "alice@example.com", strp("+1234567890"), day(1))
	bob := mk("Bob Smith", "bob@example.com", strp("123-456-7890"), day(2))
	shop := mk("50%_off Shop", "shop@example.com", nil, day(3))
	offers := mk("500 offers", "offers@example.com", strp("+1999"), day(5))

	cases := []struct {
		name   string
		filter repository.CustomerFilter
		want   []uuid.UUID
	}{
		{"no filter newest first", repository.CustomerFilter{}, []uuid.UUID{offers, shop, bob, alice}},
		{"name exact", repository.CustomerFilter{NameExact: "Bob Smith"}, []uuid.UUID{bob}},
		{"name exact is case sensitive", repository.CustomerFilter{NameExact: "bob smith"}, nil},
		{"email contains any case", repository.CustomerFilter{EmailIcontains: "EXAMPLE"}, []uuid.UUID{offers, shop, bob, alice}},
		{"email exact", repository.CustomerFilter{EmailExact: "alice@example.com"}, []uuid.UUID{alice}},
		{"phone prefix", repository.CustomerFilter{PhonePattern: "+1"}, []uuid.UUID{offers, alice}},
		{"phone exact", repository.CustomerFilter{PhoneExact: "123-456-7890"}, []uuid.UUID{bob}},
		{"phone contains", repository.CustomerFilter{Phone: "-456-"}, []uuid.UUID{bob}},
		{"wildcards are literal", repository.CustomerFilter{NameIcontains: "50%_"}, []uuid.UUID{shop}},
		{"created exact", repository.CustomerFilter{CreatedAt: timep(day(1))}, []uuid.UUID{alice}},
		{"created range", repository.CustomerFilter{CreatedAtGte: timep(day(2)), CreatedAtLte: timep(day(3))}, []uuid.UUID{shop, bob}},
		{"conjunction", repository.CustomerFilter{Name: "smith", Email: "bob"}, []uuid.UUID{bob}},
		{"conjunction no match", repository.CustomerFilter{Name: "smith", Email: "alice"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := repo.Customers.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			got := make([]uuid.UUID, 0, len(list))
			for _, c := range list {
				got = append(got, c.ID)
			}
			assertIDs(t, got, tc.want...)
		})
	}
}

func TestProductRepo_ListFilters(t *testing.T) {
	db := setupDB(t)
	repo := repository.New(db)
	ctx := context.Background()

	mk := func(name, price string, stock int, created time.Time) uuid.UUID {
		p := &models.Product{Name: name, Price: decimal.RequireFromString(price), Stock: stock, CreatedAt: created}
		if err := repo.Products.Create(ctx, p); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		return p.ID
	}
	laptop := mk("Laptop", "999.99", 10, day(1))
	mouse := mk("Mouse", "29.99", 3, day(2))
	cable := mk("Cable", "9.99", 100, day(3))
	bag := mk("100%_Cotton Bag", "15.00", 0, day(4))

	cases := []struct {
		name   string
		filter repository.ProductFilter
		want   []uuid.UUID
	}{
		{"no filter newest first", repository.ProductFilter{}, []uuid.UUID{bag, cable, mouse, laptop}},
		{"name exact", repository.ProductFilter{NameExact: "Mouse"}, []uuid.UUID{mouse}},
		{"name contains", repository.ProductFilter{Name: "LAP"}, []uuid.UUID{laptop}},
		{"wildcards are literal", repository.ProductFilter{NameIcontains: "0%_c"}, []uuid.UUID{bag}},
		{"price exact", repository.ProductFilter{Price: decp("9.99")}, []uuid.UUID{cable}},
		{"price gte", repository.ProductFilter{PriceGte: decp("20")}, []uuid.UUID{mouse, laptop}},
		{"price lte", repository.ProductFilter{PriceLte: decp("15.00")}, []uuid.UUID{bag, cable}},
		{"price range", repository.ProductFilter{PriceGte: decp("10"), PriceLte: decp("30")}, []uuid.UUID{bag, mouse}},
		{"stock exact", repository.ProductFilter{Stock: intp(0)}, []uuid.UUID{bag}},
		{"stock gte", repository.ProductFilter{StockGte: intp(10)}, []uuid.UUID{cable, laptop}},
		{"stock lte", repository.ProductFilter{StockLte: intp(3)}, []uuid.UUID{bag, mouse}},
		{"low stock", repository.ProductFilter{LowStock: true}, []uuid.UUID{bag, mouse}},
		{"created gte", repository.ProductFilter{CreatedAtGte: timep(day(3))}, []uuid.UUID{bag, cable}},
		{"created lte", repository.ProductFilter{CreatedAtLte: timep(day(1))}, []uuid.UUID{laptop}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := repo.Products.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			got := make([]uuid.UUID, 0, len(list))
			for _, p := range list {
				got = append(got, p.ID)
			}
			assertIDs(t, got, tc.want...)
		})
	}
}

func TestOrderRepo_ListFilters(t *testing.T) {
	db := setupDB(t)
	repo := repository.New(db)
	ctx := context.Background()

	ann := mustCustomer(t, repo, "Ann Lee", "ann@example.com")
	bob := mustCustomer(t, repo, "Bob Smith", "bob@example.com")
	laptop := mustProduct(t, repo, "Laptop", "999.99", 10)
	mouse := mustProduct(t, repo, "Mouse", "29.99", 50)
	cable := mustProduct(t, repo, "Cable", "9.99", 100)

	mk := func(c *models.Customer, total string, date time.Time, products ...*models.Product) uuid.UUID {
		ids := make([]uuid.UUID, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		o := &models.Order{CustomerID: c.ID, TotalAmount: decimal.RequireFromString(total), OrderDate: date}
		if err := repo.Orders.Create(ctx, o, ids); err != nil {
			t.Fatalf("create order: %v", err)
		}
		return o.ID
	}
	may := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }
	o1 := mk(ann, "1029.98", may(1), laptop, mouse)
	o2 := mk(bob, "39.98", may(10), mouse, cable)
	o3 := mk(ann, "9.99", may(20), cable)

	cases := []struct {
		name   string
		filter repository.OrderFilter
		want   []uuid.UUID
	}{
		{"no filter newest first", repository.OrderFilter{}, []uuid.UUID{o3, o2, o1}},
		{"total exact", repository.OrderFilter{TotalAmount: decp("9.99")}, []uuid.UUID{o3}},
		{"total gte", repository.OrderFilter{TotalAmountGte: decp("30")}, []uuid.UUID{o2, o1}},
		{"total lte", repository.OrderFilter{TotalAmountLte: decp("39.98")}, []uuid.UUID{o3, o2}},
		{"date exact", repository.OrderFilter{OrderDate: timep(may(1))}, []uuid.UUID{o1}},
		{"date gte", repository.OrderFilter{OrderDateGte: timep(may(10))}, []uuid.UUID{o3, o2}},
		{"date lte", repository.OrderFilter{OrderDateLte: timep(may(10))}, []uuid.UUID{o2, o1}},
		{"customer id", repository.OrderFilter{CustomerID: &ann.ID}, []uuid.UUID{o3, o1}},
		{"customer name", repository.OrderFilter{CustomerNameIcontains: "BOB"}, []uuid.UUID{o2}},
		{"product id", repository.OrderFilter{ProductID: &mouse.ID}, []uuid.UUID{o2, o1}},
		{"product name matching two lines of one order", repository.OrderFilter{ProductName: "o"}, []uuid.UUID{o2, o1}},
		{"product and customer", repository.OrderFilter{ProductID: &cable.ID, CustomerID: &ann.ID}, []uuid.UUID{o3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := repo.Orders.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			got := make([]uuid.UUID, 0, len(list))
			for _, o := range list {
				got = append(got, o.ID)
			}
			assertIDs(t, got, tc.want...)
		})
	}
}
