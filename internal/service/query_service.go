package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"crm-service/internal/cache"
	"crm-service/internal/models"
	"crm-service/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type queryService struct {
	store Store
	cache CacheClient // может быть nil
	ttl   time.Duration
	log   *zap.Logger
}

func NewQueryService(store Store, cache CacheClient, ttl time.Duration, log *zap.Logger) QueryService {
	return &queryService{store: store, cache: cache, ttl: ttl, log: log}
}

func (s *queryService) AllCustomers(ctx context.Context, f repository.CustomerFilter) ([]models.Customer, error) {
	list, err := s.store.Customers().List(ctx, f)
	if err != nil {
		return nil, persistence(err)
	}
	return list, nil
}

func (s *queryService) AllProducts(ctx context.Context, f repository.ProductFilter) ([]models.Product, error) {
	list, err := s.store.Products().List(ctx, f)
	if err != nil {
		return nil, persistence(err)
	}
	return list, nil
}

func (s *queryService) AllOrders(ctx context.Context, f repository.OrderFilter) ([]models.Order, error) {
	list, err := s.store.Orders().List(ctx, f)
	if err != nil {
		return nil, persistence(err)
	}
	return list, nil
}

func (s *queryService) Customer(ctx context.Context, id string) (*models.Customer, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return cached(ctx, s, cache.CustomerKey(uid), func() (*models.Customer, error) {
		return s.store.Customers().GetByID(ctx, uid)
	})
}

func (s *queryService) Product(ctx context.Context, id string) (*models.Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return cached(ctx, s, cache.ProductKey(uid), func() (*models.Product, error) {
		return s.store.Products().GetByID(ctx, uid)
	})
}

func (s *queryService) Order(ctx context.Context, id string) (*models.Order, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	o, err := s.store.Orders().GetByID(ctx, uid)
	if err != nil {
		return nil, persistence(err)
	}
	return o, nil
}

func (s *queryService) Ping(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return persistence(err)
	}
	return nil
}

// cached читает через кэш; промахи хранилища не кэшируются, сбои кэша только логируются.
func cached[T any](ctx context.Context, s *queryService, key string, load func() (*T, error)) (*T, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var v T
			if jerr := json.Unmarshal(raw, &v); jerr == nil {
				return &v, nil
			}
		case !errors.Is(err, cache.ErrMiss):
			s.log.Warn("Ошибка чтения кэша", zap.String("key", key), zap.Error(err))
		}
	}

	v, err := load()
	if err != nil {
		return nil, persistence(err)
	}
	if v == nil || s.cache == nil {
		return v, nil
	}

	if raw, err := json.Marshal(v); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.log.Warn("Ошибка записи в кэш", zap.String("key", key), zap.Error(err))
		}
	}
	return v, nil
}
