package service

import (
	"context"

	"crm-service/internal/cache"
	"crm-service/internal/repository"

	"go.uber.org/zap"
)

// Purge удаляет все заказы, клиентов и товары одной транзакцией и сбрасывает
// их записи get-by-id в кэше. Ключи собираются до удаления.
func Purge(ctx context.Context, st Store, c CacheClient, log *zap.Logger) error {
	var keys []string
	err := st.WithTx(ctx, func(tx Store) error {
		customers, err := tx.Customers().List(ctx, repository.CustomerFilter{})
		if err != nil {
			return err
		}
		products, err := tx.Products().List(ctx, repository.ProductFilter{})
		if err != nil {
			return err
		}
		keys = make([]string, 0, len(customers)+len(products))
		for _, cu := range customers {
			keys = append(keys, cache.CustomerKey(cu.ID))
		}
		for _, p := range products {
			keys = append(keys, cache.ProductKey(p.ID))
		}

		if _, err := tx.Orders().DeleteAll(ctx); err != nil {
			return err
		}
		if _, err := tx.Customers().DeleteAll(ctx); err != nil {
			return err
		}
		_, err = tx.Products().DeleteAll(ctx)
		return err
	})
	if err != nil {
		return persistence(err)
	}

	if c != nil && len(keys) > 0 {
		if err := c.Del(ctx, keys...); err != nil {
			log.Warn("Не удалось сбросить кэш после очистки", zap.Int("keys", len(keys)), zap.Error(err))
		}
	}
	return nil
}
