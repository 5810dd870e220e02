package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm-service/internal/migrate"
	"crm-service/internal/models"
	"crm-service/internal/repository"
	"crm-service/internal/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.SetupTestPostgres(t)
	if err := migrate.MigrateCRMDB(context.Background(), db, zap.NewNop(), migrate.DefaultMigrateOptions()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCustomer(t *testing.T, repo *repository.Repository, name, email string) *models.Customer {
	t.Helper()
	c := &models.Customer{Name: name, Email: email}
	if err := repo.Customers.Create(context.Background(), c); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return c
}

func mustProduct(t *testing.T, repo *repository.Repository, name, price string, stock int) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Price: decimal.RequireFromString(price), Stock: stock}
	if err := repo.Products.Create(context.Background(), p); err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func TestCustomerRepo_CreateGetList(t *testing.T) {
	db := setupDB(t)
	repo := repository.New(db)
	ctx := context.Background()

	c := mustCustomer(t, repo, "Alice Johnson", "alice@example.com")
	if c.ID == uuid.Nil {
		t.Fatalf("id not assigned")
	}
	if c.CreatedAt.IsZero() {
		t.Fatalf("created_at not assigned")
	}

	got, err := repo.Customers.GetByID(ctx, c.ID)
	if err != nil || got == nil || got.Email != "alice@example.com" {
		t.Fatalf("GetByID: %+v %v", got, err)
	}

	miss, err := repo.Customers.GetByID(ctx, uuid.New())
	if err != nil || miss != nil {
		t.Fatalf("GetByID miss: %+v %v", miss, err)
	}

	ok, err := repo.Customers.ExistsByEmail(ctx, "ALICE@example.com")
	if err != nil || !ok {
		t.Fatalf("ExistsByEmail: %v %v", ok, err)
	}

	mustCustomer(t, repo, "Bob Smith", "bob@example.com")
	list, err := repo.Customers.List(ctx, repository.CustomerFilter{NameIcontains: "ali"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != c.ID {
		t.Fatalf("List filter mismatch: %+v", list)
	}

	all, _ := repo.Customers.List(ctx, repository.CustomerFilter{})
	if len(all) != 2 || all[0].Name != "Bob Smith" {
		t.Fatalf("expected newest first, got %+v", all)
	}
}

func TestCustomerRepo_DuplicateEmail(t *testing.T) {
	db := setupDB(t)
	repo := repository.New(db)

	mustCustomer(t, repo, "Alice", "dup@example.com")
	err := repo.Customers.Create(context.Background(), &models.Customer{Name: "Other", Email: "dup@example.com"})
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestProductRepo_RestockBelow(t *testing.T) {
	db := setupDB(t)
	repo := repository.New(db)
	ctx := context.Background()

	low := mustProduct(t, repo, "Mouse", "25.99", 3)
	high := mustProduct(t, repo, "Laptop", "999.99", 20)

	updated, err := repo.Products.RestockBelow(ctx, models.LowStockThreshold, models.RestockAmount)
	if err != nil {
		t.Fatalf("RestockBelow: %v", err)
	}
	if len(updated) != 1 || updated[0].ID != low.ID || updated[0].Stock != 13 {
		t.Fatalf("unexpected restock result: %+v", updated)
	}
	if updated[0].Name != "Mouse" {
		t.Fatalf("returning must carry name, got %q", updated[0].Name)
	}

	h, _ := repo.Products.GetByID(ctx, high.ID)
	if h.Stock != 20 {
		t.Fatalf("high stock product touched: %d", h.Stock)
	}

	lowList, err := repo.Products.List(ctx, repository.ProductFilter{LowStock: true})
	if err != nil || len(lowList) != 0 {
		t.Fatalf("low stock list after restock: %+v %v", lowList, err)
	}
}

func TestProductRepo_CheckConstraints(t *testing.T) {
	db := setupDB(t)
	repo := repository.New(db)
	ctx := context.Background()

	if err := repo.Products.Create(ctx, &models.Product{Name: "Free", Price: decimal.Zero}); err == nil {
		t.Fatalf("expected price check violation")
	}
	if err := repo.Products.Create(ctx, &models.Product{Name: "Neg", Price: decimal.NewFromInt(1), Stock: -1}); err == nil {
		t.Fatalf("expected stock check violation")
	}
}

func TestOrderRepo_CreateWithProducts_AndFilters(t *testing.T) {
	db := setupDB(t)
	repo := repository.New(db)
	ctx := context.Background()

	c := mustCustomer(t, repo, "Carol", "carol@example.com")
	p1 := mustProduct(t, repo, "Keyboard", "10.00", 5)
	p2 := mustProduct(t, repo, "Cable", "5.50", 50)

	ord := &models.Order{CustomerID: c.ID, TotalAmount: decimal.RequireFromString("15.50"), OrderDate: time.Now().UTC()}
	err := repo.WithTx(ctx, func(tx *repository.Repository) error {
		return tx.Orders.Create(ctx, ord, []uuid.UUID{p1.ID, p2.ID})
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	got, err := repo.Orders.GetByID(ctx, ord.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: %+v %v", got, err)
	}
	if len(got.Products) != 2 || got.Customer.Email != "carol@example.com" {
		t.Fatalf("associations not loaded: %+v", got)
	}
	if !got.TotalAmount.Equal(decimal.RequireFromString("15.50")) {
		t.Fatalf("total mismatch: %s", got.TotalAmount)
	}

	byProduct, err := repo.Orders.List(ctx, repository.OrderFilter{ProductNameIcontains: "keyb"})
	if err != nil || len(byProduct) != 1 {
		t.Fatalf("product name filter: %d %v", len(byProduct), err)
	}
	byCustomer, err := repo.Orders.List(ctx, repository.OrderFilter{CustomerName: "nobody"})
	if err != nil || len(byCustomer) != 0 {
		t.Fatalf("customer name filter: %d %v", len(byCustomer), err)
	}

	rev, err := repo.Orders.Revenue(ctx)
	if err != nil || !rev.Equal(decimal.RequireFromString("15.50")) {
		t.Fatalf("revenue: %s %v", rev, err)
	}
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db := setupDB(t)
	repo := repository.New(db)
	ctx := context.Background()

	c := mustCustomer(t, repo, "Dan", "dan@example.com")
	boom := errors.New("boom")
	err := repo.WithTx(ctx, func(tx *repository.Repository) error {
		o := &models.Order{CustomerID: c.ID, TotalAmount: decimal.NewFromInt(1), OrderDate: time.Now().UTC()}
		if err := tx.Orders.Create(ctx, o, []uuid.UUID{uuid.New()}); err != nil {
			return err
		}
		return boom
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	cnt, _ := repo.Orders.Count(ctx)
	if cnt != 0 {
		t.Fatalf("order must not be persisted, count=%d", cnt)
	}
}

func TestSavepoint_IsolatesRowFailure(t *testing.T) {
	db := setupDB(t)
	repo := repository.New(db)
	ctx := context.Background()

	err := repo.WithTx(ctx, func(tx *repository.Repository) error {
		if err := tx.Savepoint(ctx, func(sp *repository.Repository) error {
			return sp.Customers.Create(ctx, &models.Customer{Name: "A", Email: "a@example.com"})
		}); err != nil {
			return err
		}
		dupErr := tx.Savepoint(ctx, func(sp *repository.Repository) error {
			return sp.Customers.Create(ctx, &models.Customer{Name: "B", Email: "a@example.com"})
		})
		if !errors.Is(dupErr, repository.ErrDuplicate) {
			t.Errorf("expected duplicate, got %v", dupErr)
		}
		return tx.Savepoint(ctx, func(sp *repository.Repository) error {
			return sp.Customers.Create(ctx, &models.Customer{Name: "C", Email: "c@example.com"})
		})
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}
	cnt, _ := repo.Customers.Count(ctx)
	if cnt != 2 {
		t.Fatalf("expected 2 customers, got %d", cnt)
	}
}

func TestDeleteCustomer_CascadesOrders(t *testing.T) {
	db := setupDB(t)
	repo := repository.New(db)
	ctx := context.Background()

	c := mustCustomer(t, repo, "Eve", "eve@example.com")
	p := mustProduct(t, repo, "Pen", "1.00", 100)
	ord := &models.Order{CustomerID: c.ID, TotalAmount: decimal.RequireFromString("1.00"), OrderDate: time.Now().UTC()}
	if err := repo.Orders.Create(ctx, ord, []uuid.UUID{p.ID}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	ok, err := repo.Customers.Delete(ctx, c.ID)
	if err != nil || !ok {
		t.Fatalf("Delete: %v %v", ok, err)
	}
	got, err := repo.Orders.GetByID(ctx, ord.ID)
	if err != nil || got != nil {
		t.Fatalf("order must be cascaded: %+v %v", got, err)
	}
	var links int64
	db.Model(&models.OrderProduct{}).Count(&links)
	if links != 0 {
		t.Fatalf("order_products rows left: %d", links)
	}
}
