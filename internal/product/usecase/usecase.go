package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal-service/internal/model"
	"github.com/fekuna/omnipos-terminal-service/internal/product"
	"github.com/fekuna/omnipos-terminal-service/internal/product/dto"
	"github.com/fekuna/omnipos-terminal-service/pkg/apperrors"
	"github.com/fekuna/omnipos-terminal-service/pkg/cache"
	"github.com/fekuna/omnipos-terminal-service/pkg/logger"
	"github.com/fekuna/omnipos-terminal-service/pkg/search"
)

const productIndex = "products"

type productUseCase struct {
	repo   product.Repository
	cache  *cache.RedisClient
	es     *search.Client
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, cache *cache.RedisClient, es *search.Client, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  cache,
		es:     es,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	sku := strings.TrimSpace(input.SKU)
	if sku == "" || strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.Validation("sku and name are required")
	}

	unique, err := uc.repo.IsSKUUnique(ctx, sku, "")
	if err != nil {
		return nil, apperrors.Transport(err, "failed to check SKU")
	}
	if !unique {
		return nil, apperrors.Conflict("SKU already exists")
	}

	now := time.Now()
	var description *string
	if input.Description != "" {
		d := input.Description
		description = &d
	}
	var imageURL *string
	if input.ImageURL != "" {
		u := input.ImageURL
		imageURL = &u
	}

	p := &model.Product{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		SKU:         sku,
		Name:        input.Name,
		Description: description,
		Sizes:       model.StringList(input.Sizes),
		ImageURL:    imageURL,
		IsActive:    true,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, apperrors.Transport(err, "failed to create product")
	}

	go uc.invalidateProductCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}

	mapping := `{
		"mappings": {
			"properties": {
				"name": { "type": "text" },
				"description": { "type": "text" },
				"sku": { "type": "keyword" },
				"created_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, productIndex, mapping)

	if err := uc.es.Index(ctx, productIndex, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.Error(err))
	}
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *productUseCase) GetBySKU(ctx context.Context, sku string) (*model.Product, error) {
	return uc.repo.FindBySKU(ctx, strings.TrimSpace(sku))
}

func (uc *productUseCase) ListForTerminal(ctx context.Context, locationID string) ([]model.Product, error) {
	if locationID == "" {
		return nil, apperrors.Validation("location is required")
	}
	items, err := uc.repo.FindAllWithInventory(ctx, locationID)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to load product grid")
	}
	return items, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	cacheKey, err := uc.generateCacheKey(filters)
	if err == nil && uc.cache != nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var result struct {
				Products []model.Product
				Count    int
			}
			if err := json.Unmarshal([]byte(val), &result); err == nil {
				return result.Products, result.Count, nil
			}
		}
	}

	// Search via Elastic when a query is present, DB as fallback.
	if filters.SearchQuery != "" && uc.es != nil {
		q := map[string]interface{}{
			"query": map[string]interface{}{
				"query_string": map[string]interface{}{
					"query":  fmt.Sprintf("*%s*", filters.SearchQuery),
					"fields": []string{"name^3", "sku", "description"},
				},
			},
			"from": (filters.Page - 1) * filters.PageSize,
		}
		if filters.PageSize > 0 {
			q["size"] = filters.PageSize
		}

		res, err := uc.es.Search(ctx, productIndex, q)
		if err == nil {
			var esProducts []model.Product
			for _, hit := range res.Hits.Hits {
				var p model.Product
				if err := json.Unmarshal(hit.Source, &p); err == nil {
					esProducts = append(esProducts, p)
				}
			}
			return esProducts, res.Hits.Total.Value, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	products, count, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, 0, apperrors.Transport(err, "failed to list products")
	}

	if cacheKey != "" && uc.cache != nil {
		cacheData := struct {
			Products []model.Product
			Count    int
		}{
			Products: products,
			Count:    count,
		}
		if data, err := json.Marshal(cacheData); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, 5*time.Minute)
		}
	}

	return products, count, nil
}

func (uc *productUseCase) generateCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("products:list:%x", md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateProductCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Client.Keys(ctx, "products:list:*").Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, apperrors.Transport(err, "failed to load product")
	}
	if p == nil {
		return nil, apperrors.Validation("product not found")
	}

	if p.SKU != input.SKU {
		unique, err := uc.repo.IsSKUUnique(ctx, input.SKU, p.ID)
		if err != nil {
			return nil, apperrors.Transport(err, "failed to check SKU")
		}
		if !unique {
			return nil, apperrors.Conflict("SKU already exists")
		}
	}

	p.SKU = input.SKU
	p.Name = input.Name
	p.Sizes = model.StringList(input.Sizes)
	p.IsActive = input.IsActive
	if input.Description != "" {
		d := input.Description
		p.Description = &d
	} else {
		p.Description = nil
	}
	if input.ImageURL != "" {
		u := input.ImageURL
		p.ImageURL = &u
	} else {
		p.ImageURL = nil
	}
	p.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, apperrors.Transport(err, "failed to update product")
	}

	go uc.invalidateProductCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return apperrors.Transport(err, "failed to load product")
	}
	if p == nil {
		return nil // Already deleted
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperrors.Transport(err, "failed to delete product")
	}

	go uc.invalidateProductCache(context.Background())
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), productIndex, id); err != nil {
				uc.logger.Error("failed to delete product from ES", zap.Error(err))
			}
		}()
	}

	return nil
}
