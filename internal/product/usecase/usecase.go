package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/product"
	"github.com/fekuna/comics-store-service/internal/product/dto"
	"github.com/fekuna/comics-store-service/pkg/cache"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/fekuna/comics-store-service/pkg/search"
	"go.uber.org/zap"
)

const (
	IndexName = "products"

	CacheKeyList = "catalog:products:list"

	cachePrefix         = "catalog:products:"
	categoryCachePrefix = "catalog:products:category:"

	// SearchLimit caps name search results from either backend.
	SearchLimit = 100

	// ES max_result_window default.
	reindexBatch = 10000
)

const indexMapping = `{
	"mappings": {
		"properties": {
			"id": { "type": "long" },
			"name": {
				"type": "text",
				"fields": { "keyword": { "type": "keyword" } }
			},
			"description": { "type": "text" },
			"price": { "type": "scaled_float", "scaling_factor": 100 },
			"category_id": { "type": "long" }
		}
	}
}`

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

type productUseCase struct {
	repo     product.Repository
	cache    cache.Cache
	cacheTTL time.Duration
	es       search.Engine
	logger   logger.ZapLogger
}

// NewProductUseCase builds the usecase. cache and es may be nil.
func NewProductUseCase(repo product.Repository, cache cache.Cache, cacheTTL time.Duration, es search.Engine, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		es:       es,
		logger:   log,
	}
}

// EnsureSearchIndex creates the products index with its mapping.
func EnsureSearchIndex(ctx context.Context, es search.Engine) error {
	return es.CreateIndex(ctx, IndexName, indexMapping)
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("price %s: %w", input.Price, model.ErrInvalidInput)
	}

	p := &model.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.invalidateCache(ctx)
	uc.syncToElastic(ctx, p)
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("product %d: %w", id, model.ErrNotFound)
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return uc.cached(ctx, CacheKeyList, func() ([]model.Product, error) {
		return uc.repo.FindAll(ctx)
	})
}

func (uc *productUseCase) ListByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	key := categoryCachePrefix + strconv.FormatInt(categoryID, 10)
	return uc.cached(ctx, key, func() ([]model.Product, error) {
		return uc.repo.FindByCategory(ctx, categoryID)
	})
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("price %s: %w", input.Price, model.ErrInvalidInput)
	}

	p := &model.Product{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.invalidateCache(ctx)
	uc.syncToElastic(ctx, p)
	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateCache(ctx)
	if uc.es != nil {
		if err := uc.es.Delete(ctx, IndexName, strconv.FormatInt(id, 10)); err != nil {
			uc.logger.Error("failed to delete product from ES", zap.Int64("product_id", id), zap.Error(err))
		}
	}
	return nil
}

// SearchProducts matches name case-insensitively as a substring. Elasticsearch
// supplies the matching ids and the rows are read from the database; any
// failure there falls back to a database search.
func (uc *productUseCase) SearchProducts(ctx context.Context, name string) ([]model.Product, error) {
	if uc.es != nil {
		ids, err := uc.searchElastic(ctx, name)
		if err == nil {
			return uc.repo.FindByIDs(ctx, ids)
		}
		uc.logger.Warn("ES search failed, falling back to DB", zap.String("name", name), zap.Error(err))
	}
	return uc.repo.SearchByName(ctx, name, SearchLimit)
}

func (uc *productUseCase) searchElastic(ctx context.Context, name string) ([]int64, error) {
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"wildcard": map[string]interface{}{
				"name.keyword": map[string]interface{}{
					"value":            "*" + wildcardEscaper.Replace(name) + "*",
					"case_insensitive": true,
				},
			},
		},
		"sort": []map[string]interface{}{
			{"id": "asc"},
		},
		"size":    SearchLimit,
		"_source": false,
	}
	return uc.searchIDs(ctx, q)
}

func (uc *productUseCase) searchIDs(ctx context.Context, q map[string]interface{}) ([]int64, error) {
	res, err := uc.es.Search(ctx, IndexName, q)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		id, err := strconv.ParseInt(hit.ID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("product document id %q: %w", hit.ID, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ReindexProducts backfills the index from the database, covering rows
// written while the index was unavailable.
func (uc *productUseCase) ReindexProducts(ctx context.Context) error {
	if uc.es == nil {
		return nil
	}
	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if err := uc.es.Index(ctx, IndexName, strconv.FormatInt(products[i].ID, 10), &products[i]); err != nil {
			return fmt.Errorf("index product %d: %w", products[i].ID, err)
		}
	}
	uc.logger.Info("products reindexed", zap.Int("count", len(products)))
	return nil
}

// ReindexCategory rewrites every document indexed under categoryID from its
// current row, dropping documents whose row is gone. Called after a category
// delete has detached its products.
func (uc *productUseCase) ReindexCategory(ctx context.Context, categoryID int64) error {
	if uc.es == nil {
		return nil
	}
	ids, err := uc.searchIDs(ctx, map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{"category_id": categoryID},
		},
		"size":    reindexBatch,
		"_source": false,
	})
	if err != nil {
		return err
	}

	products, err := uc.repo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	found := make(map[int64]bool, len(products))
	for i := range products {
		found[products[i].ID] = true
		if err := uc.es.Index(ctx, IndexName, strconv.FormatInt(products[i].ID, 10), &products[i]); err != nil {
			return fmt.Errorf("index product %d: %w", products[i].ID, err)
		}
	}
	for _, id := range ids {
		if found[id] {
			continue
		}
		if err := uc.es.Delete(ctx, IndexName, strconv.FormatInt(id, 10)); err != nil {
			return fmt.Errorf("delete product %d from index: %w", id, err)
		}
	}
	return nil
}

func (uc *productUseCase) cached(ctx context.Context, key string, load func() ([]model.Product, error)) ([]model.Product, error) {
	if uc.cache != nil {
		var products []model.Product
		hit, err := uc.cache.GetJSON(ctx, key, &products)
		if err != nil {
			uc.logger.Warn("product cache read failed", zap.String("key", key), zap.Error(err))
		} else if hit {
			return products, nil
		}
	}

	products, err := load()
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, key, products, uc.cacheTTL); err != nil {
			uc.logger.Warn("product cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return products, nil
}

func (uc *productUseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePrefix(ctx, cachePrefix); err != nil {
		uc.logger.Warn("product cache invalidation failed", zap.Error(err))
	}
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}
	if err := uc.es.Index(ctx, IndexName, strconv.FormatInt(p.ID, 10), p); err != nil {
		uc.logger.Error("failed to index product", zap.Int64("product_id", p.ID), zap.Error(err))
	}
}
