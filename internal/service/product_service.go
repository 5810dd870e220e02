package service

import (
	"context"
	"fmt"
	"strings"

	"crm-service/internal/cache"
	"crm-service/internal/models"

	"go.uber.org/zap"
)

func (s *mutationService) CreateProduct(ctx context.Context, in ProductInput) ProductPayload {
	if err := ValidateProduct(in); err != nil {
		s.logFailure("createProduct", err)
		return ProductPayload{Message: err.Error()}
	}

	p := &models.Product{
		Name:      strings.TrimSpace(in.Name),
		Price:     in.Price.Round(pricePlaces),
		CreatedAt: s.now().UTC(),
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}

	if err := s.store.Products().Create(ctx, p); err != nil {
		err = persistence(err)
		s.logFailure("createProduct", err)
		return ProductPayload{Message: err.Error()}
	}
	return ProductPayload{Product: p, Message: MsgProductCreated, Success: true}
}

// RestockLowStock пополняет все товары с остатком ниже порога.
func (s *mutationService) RestockLowStock(ctx context.Context) RestockPayload {
	updated, err := s.store.Products().RestockBelow(ctx, models.LowStockThreshold, models.RestockAmount)
	if err != nil {
		s.log.Error("Не удалось пополнить остатки", zap.Error(err))
		return RestockPayload{Message: fmt.Sprintf("Failed to restock products: %v", err)}
	}

	if s.cache != nil && len(updated) > 0 {
		keys := make([]string, 0, len(updated))
		for _, p := range updated {
			keys = append(keys, cache.ProductKey(p.ID))
		}
		if err := s.cache.Del(ctx, keys...); err != nil {
			s.log.Warn("Не удалось сбросить кэш товаров", zap.Error(err))
		}
	}

	s.log.Info("Остатки пополнены", zap.Int("count", len(updated)))
	return RestockPayload{
		Products: updated,
		Message:  fmt.Sprintf("Restocked %d low-stock products", len(updated)),
		Success:  true,
	}
}
