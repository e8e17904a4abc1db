package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/comics-store-service/internal/category"
	"github.com/fekuna/comics-store-service/internal/category/dto"
	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/pkg/cache"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"go.uber.org/zap"
)

const (
	CacheKeyList = "catalog:categories:list"

	categoryCachePrefix = "catalog:categories:"
	productCachePrefix  = "catalog:products:"
)

type categoryUseCase struct {
	repo     category.Repository
	cache    cache.Cache
	cacheTTL time.Duration
	products category.ProductIndex
	logger   logger.ZapLogger
}

// NewCategoryUseCase builds the usecase. cache and products may be nil.
func NewCategoryUseCase(repo category.Repository, cache cache.Cache, cacheTTL time.Duration, products category.ProductIndex, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		products: products,
		logger:   log,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	cat := &model.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, categoryCachePrefix)
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("category %d: %w", id, model.ErrNotFound)
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	if uc.cache != nil {
		var cached []model.Category
		hit, err := uc.cache.GetJSON(ctx, CacheKeyList, &cached)
		if err != nil {
			uc.logger.Warn("category cache read failed", zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	categories, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, CacheKeyList, categories, uc.cacheTTL); err != nil {
			uc.logger.Warn("category cache write failed", zap.Error(err))
		}
	}
	return categories, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	cat := &model.Category{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, categoryCachePrefix)
	return cat, nil
}

// DeleteCategory also drops cached product listings and refreshes the search
// documents of the category's products, which lose their category_id.
func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidate(ctx, categoryCachePrefix, productCachePrefix)
	if uc.products != nil {
		if err := uc.products.ReindexCategory(ctx, id); err != nil {
			uc.logger.Error("failed to reindex products of deleted category", zap.Int64("category_id", id), zap.Error(err))
		}
	}
	return nil
}

func (uc *categoryUseCase) invalidate(ctx context.Context, prefixes ...string) {
	if uc.cache == nil {
		return
	}
	for _, p := range prefixes {
		if err := uc.cache.DeletePrefix(ctx, p); err != nil {
			uc.logger.Warn("cache invalidation failed", zap.String("prefix", p), zap.Error(err))
		}
	}
}
