package service

import (
	"context"
	"time"

	"studyhub/internal/cache"
	apperrors "studyhub/internal/errors"
	"studyhub/internal/model"
	"studyhub/internal/repository"
)

// CategoryCacheKey holds the cached global category list.
const CategoryCacheKey = "categories:all"

// CategoryService lists the global categories through the cache.
type CategoryService interface {
	List(ctx context.Context) ([]model.Category, error)
	Invalidate(ctx context.Context) error
}

type categoryService struct {
	repo  repository.CategoryRepository
	cache cache.Store
	ttl   time.Duration
}

// NewCategoryService builds a CategoryService with repository and cache.
func NewCategoryService(repo repository.CategoryRepository, store cache.Store, ttl time.Duration) CategoryService {
	return &categoryService{repo: repo, cache: store, ttl: ttl}
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	var cached []model.Category
	if cache.GetJSON(ctx, s.cache, CategoryCacheKey, &cached) {
		return cached, nil
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Store("list categories", err)
	}
	cache.SetJSON(ctx, s.cache, CategoryCacheKey, categories, s.ttl)
	return categories, nil
}

func (s *categoryService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, CategoryCacheKey)
}
