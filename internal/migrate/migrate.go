package migrate

import (
	"context"

	"crm-service/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions bool // pgcrypto для gen_random_uuid()
	CreateChecks     bool // CHECK-constraint для целостности
	CreateIndexes    bool // индексы и UNIQUE
	CreateFKsViaSQL  bool // FK через SQL (поверх GORM-constraint)
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions: true,
		CreateChecks:     true,
		CreateIndexes:    true,
		CreateFKsViaSQL:  true,
	}
}

type step struct {
	name string
	sql  string
}

func exec(ctx context.Context, db *gorm.DB, log *zap.Logger, steps []step) error {
	for _, s := range steps {
		if err := db.WithContext(ctx).Exec(s.sql).Error; err != nil {
			log.Error("Не удалось выполнить шаг миграции", zap.String("step", s.name), zap.Error(err))
			return err
		}
	}
	return nil
}

// SetupJoinTables регистрирует модель связующей таблицы order_products.
// Нужно вызывать на каждом *gorm.DB до работы с ассоциацией Products.
func SetupJoinTables(db *gorm.DB) error {
	return db.SetupJoinTable(&models.Order{}, "Products", &models.OrderProduct{})
}

func MigrateCRMDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("Начало миграции базы данных CRM")

	if opt.CreateExtensions {
		log.Info("Создание расширений PostgreSQL")
		if err := exec(ctx, db, log, []step{
			{"pgcrypto", `CREATE EXTENSION IF NOT EXISTS pgcrypto`},
		}); err != nil {
			return err
		}
		log.Info("Расширения PostgreSQL успешно созданы")
	}

	if err := SetupJoinTables(db); err != nil {
		log.Error("Не удалось настроить связующую таблицу order_products", zap.Error(err))
		return err
	}

	log.Info("Создание таблиц customers, products, orders, order_products")
	if err := db.WithContext(ctx).AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}, &models.OrderProduct{}); err != nil {
		log.Error("Не удалось создать таблицы", zap.Error(err))
		return err
	}
	log.Info("Таблицы успешно созданы")

	if opt.CreateChecks {
		log.Info("Создание CHECK-ограничений")
		if err := exec(ctx, db, log, []step{
			{"chk_products_price_positive", `
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS chk_products_price_positive;
ALTER TABLE products
  ADD CONSTRAINT chk_products_price_positive
  CHECK (price > 0);
`},
			{"chk_products_stock_non_negative", `
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS chk_products_stock_non_negative;
ALTER TABLE products
  ADD CONSTRAINT chk_products_stock_non_negative
  CHECK (stock >= 0);
`},
			{"chk_orders_total_non_negative", `
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_total_non_negative;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_total_non_negative
  CHECK (total_amount >= 0);
`},
			{"chk_customers_name_not_blank", `
ALTER TABLE customers
  DROP CONSTRAINT IF EXISTS chk_customers_name_not_blank;
ALTER TABLE customers
  ADD CONSTRAINT chk_customers_name_not_blank
  CHECK (char_length(btrim(name)) > 0);
`},
		}); err != nil {
			return err
		}
		log.Info("CHECK-ограничения успешно созданы")
	}

	if opt.CreateIndexes {
		log.Info("Создание индексов")
		if err := exec(ctx, db, log, []step{
			// email уникален без учёта регистра
			{"ux_customers_email_lower", `
CREATE UNIQUE INDEX IF NOT EXISTS ux_customers_email_lower
ON customers (lower(email));
`},
			{"ix_customers_created", `
CREATE INDEX IF NOT EXISTS ix_customers_created
ON customers (created_at DESC);
`},
			{"ix_products_created", `
CREATE INDEX IF NOT EXISTS ix_products_created
ON products (created_at DESC);
`},
			// частичный индекс под выборку low stock
			{"ix_products_low_stock", `
CREATE INDEX IF NOT EXISTS ix_products_low_stock
ON products (stock) WHERE stock < 10;
`},
			{"ix_orders_customer_date", `
CREATE INDEX IF NOT EXISTS ix_orders_customer_date
ON orders (customer_id, order_date DESC);
`},
		}); err != nil {
			return err
		}
		log.Info("Индексы успешно созданы")
	}

	if opt.CreateFKsViaSQL {
		log.Info("Создание внешних ключей")
		if err := exec(ctx, db, log, []step{
			{"fk_orders_customer", `
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS fk_orders_customer,
  ADD CONSTRAINT fk_orders_customer
    FOREIGN KEY (customer_id) REFERENCES customers(id) ON DELETE CASCADE;
`},
			{"fk_order_products_order", `
ALTER TABLE order_products
  DROP CONSTRAINT IF EXISTS fk_order_products_order,
  ADD CONSTRAINT fk_order_products_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;
`},
			{"fk_order_products_product", `
ALTER TABLE order_products
  DROP CONSTRAINT IF EXISTS fk_order_products_product,
  ADD CONSTRAINT fk_order_products_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE;
`},
		}); err != nil {
			return err
		}
		log.Info("Внешние ключи успешно созданы")
	}

	log.Info("Миграция базы данных CRM успешно завершена")
	return nil
}
