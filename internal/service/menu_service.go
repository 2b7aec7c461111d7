package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/pizza-store/internal/domain"
	"github.com/spec-kit/pizza-store/internal/repository"
	"github.com/spec-kit/pizza-store/pkg/util"
)

// CatalogCache is a read-through cache for catalog queries. The
// catalog is read-only in this client, so entries expire by TTL only.
// Implementations must treat any internal failure as a miss.
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]domain.Item, bool)
	Set(ctx context.Context, key string, items []domain.Item)
}

// MenuService implements the catalog filter engine.
type MenuService struct {
	items  repository.ItemRepository
	cache  CatalogCache
	logger *zap.Logger
}

// NewMenuService builds the service. cache may be nil, in which case
// every listing hits storage.
func NewMenuService(items repository.ItemRepository, cache CatalogCache, logger *zap.Logger) *MenuService {
	return &MenuService{items: items, cache: cache, logger: logger}
}

// ListItems returns the catalog entries matching the filter, from
// cache when possible. An empty catalog slice is a normal outcome and
// distinct from a storage failure.
func (s *MenuService) ListItems(ctx context.Context, filter repository.ItemFilter) ([]domain.Item, error) {
	key := filter.CacheKey()
	if s.cache != nil {
		if items, ok := s.cache.Get(ctx, key); ok {
			return items, nil
		}
	}

	items, err := s.items.List(ctx, filter)
	if err != nil {
		s.logger.Error("catalog query failed", zap.String("filter", key), zap.Error(err))
		return nil, util.NewStorageFailure(err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, items)
	}
	return items, nil
}

// UpdateMenu is a declared manager capability with no behavior yet.
func (s *MenuService) UpdateMenu(ctx context.Context) error {
	return util.NewNotImplemented("menu administration")
}
