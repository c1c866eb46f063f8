package service

import (
	"context"
	"time"

	"github.com/tacgear-next/internal/cache"
	"github.com/tacgear-next/internal/logger"
	"github.com/tacgear-next/internal/models"
	"github.com/tacgear-next/internal/repository"
)

// 商品详情缓存 TTL，目录为只读表面，短 TTL 换可接受的陈旧窗口
const productDetailCacheTTL = 5 * time.Minute

// CatalogService 目录查询服务（只读）
type CatalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService 创建目录服务
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *CatalogService {
	return &CatalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// ListProducts 获取商品列表
func (s *CatalogService) ListProducts(filter repository.ProductListFilter) ([]models.Product, error) {
	return s.productRepo.List(filter)
}

// GetProductBySlug 获取商品详情（含图片与规格）。
// Redis 启用时按 slug 缓存详情，缓存故障降级为直查。
func (s *CatalogService) GetProductBySlug(slug string) (*models.Product, error) {
	ctx := context.Background()
	cacheKey := "product:slug:" + slug
	if cache.Enabled() {
		var cached models.Product
		hit, err := cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			logger.SW("slug", slug).Warnw("product_cache_read_failed", "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	if cache.Enabled() {
		if err := cache.SetJSON(ctx, cacheKey, product, productDetailCacheTTL); err != nil {
			logger.SW("slug", slug).Warnw("product_cache_write_failed", "error", err)
		}
	}
	return product, nil
}

// ListCategories 获取分类列表
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// GetCategoryBySlug 按 slug 获取分类
func (s *CatalogService) GetCategoryBySlug(slug string) (*models.Category, error) {
	category, err := s.categoryRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}
