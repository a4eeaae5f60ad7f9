package service

import (
	"context"
	"encoding/json"
	"time"

	"kainan/internal/cache"
	"kainan/internal/model"
	"kainan/internal/repository"
)

const catalogCacheKey = "catalog:ulams"

// CatalogService exposes the menu item collection, unfiltered.
type CatalogService interface {
	List(ctx context.Context) ([]model.Ulam, error)
}

type catalogService struct {
	ulamRepo repository.UlamRepository
	cache    *cache.Client
	cacheTTL time.Duration
}

// NewCatalogService creates a catalog service with an optional read-through
// cache. A nil cache client disables caching entirely.
func NewCatalogService(ulamRepo repository.UlamRepository, cacheClient *cache.Client, cacheTTL time.Duration) CatalogService {
	return &catalogService{ulamRepo: ulamRepo, cache: cacheClient, cacheTTL: cacheTTL}
}

// List returns the full menu. The cache is best-effort: any miss, decode
// failure or redis outage falls through to the file store.
func (s *catalogService) List(ctx context.Context) ([]model.Ulam, error) {
	if data, _ := s.cache.Get(ctx, catalogCacheKey); data != nil {
		var cached []model.Ulam
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	ulams, err := s.ulamRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(ulams); err == nil {
		_ = s.cache.Set(ctx, catalogCacheKey, data, s.cacheTTL)
	}
	return ulams, nil
}
