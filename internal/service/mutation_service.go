package service

import (
	"time"

	"go.uber.org/zap"
)

type mutationService struct {
	store Store
	cache CacheClient // может быть nil
	log   *zap.Logger
	now   func() time.Time
}

func NewMutationService(store Store, cache CacheClient, log *zap.Logger) MutationService {
	return &mutationService{
		store: store,
		cache: cache,
		log:   log,
		now:   time.Now,
	}
}
