// BYH Music Store | 2026
// service.go

package settings

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKey = "settings:all"
	cacheTTL = 5 * time.Minute
)

// Service serves the flat settings map, caching reads in Redis. A nil
// cache client degrades to straight database reads.
type Service struct {
	repo  Repository
	cache *redis.Client
}

func NewService(repo Repository, cache *redis.Client) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) GetAll(ctx context.Context) (map[string]string, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	values, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.storeCache(ctx, values)

	return values, nil
}

// Upsert merges the submitted pairs into the stored settings and returns
// the full map after the write.
func (s *Service) Upsert(
	ctx context.Context,
	values map[string]string,
) (map[string]string, error) {
	if err := s.repo.Upsert(ctx, values); err != nil {
		return nil, err
	}

	s.dropCache(ctx)

	merged, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	s.storeCache(ctx, merged)

	return merged, nil
}

func (s *Service) fromCache(ctx context.Context) (map[string]string, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var values map[string]string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, false
	}

	return values, true
}

func (s *Service) storeCache(ctx context.Context, values map[string]string) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(values)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
		slog.Warn("settings cache write failed", "error", err)
	}
}

func (s *Service) dropCache(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Del(ctx, cacheKey).Err(); err != nil {
		slog.Warn("settings cache invalidation failed", "error", err)
	}
}
