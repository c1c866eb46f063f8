package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tacgear-next/internal/http/response"
	"github.com/tacgear-next/internal/repository"
	"github.com/tacgear-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCategories 获取分类列表；携带 slug 参数时返回单个分类
func (h *Handler) GetCategories(c *gin.Context) {
	if slug := strings.TrimSpace(c.Query("slug")); slug != "" {
		category, err := h.CatalogService.GetCategoryBySlug(slug)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				response.NotFound(c, "category not found")
				return
			}
			respondError(c, response.CodeInternal, "category fetch failed", err)
			return
		}
		response.Success(c, category)
		return
	}

	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "category fetch failed", err)
		return
	}
	response.Success(c, categories)
}

// GetProducts 获取商品列表（支持精选/新品/热销/分类/搜索/条数筛选）
func (h *Handler) GetProducts(c *gin.Context) {
	filter := repository.ProductListFilter{
		CategoryID: strings.TrimSpace(c.Query("categoryId")),
		Search:     strings.TrimSpace(c.Query("search")),
		Featured:   parseBoolQuery(c, "featured"),
		NewArrival: parseBoolQuery(c, "newArrival"),
		BestSeller: parseBoolQuery(c, "bestSeller"),
		InStock:    parseBoolQuery(c, "inStock"),
	}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			respondError(c, response.CodeBadRequest, "invalid limit", nil)
			return
		}
		filter.Limit = limit
	}

	products, err := h.CatalogService.ListProducts(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}
	response.Success(c, products)
}

// GetProductBySlug 获取商品详情（含图片与规格）
func (h *Handler) GetProductBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "slug is required", nil)
		return
	}

	product, err := h.CatalogService.GetProductBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}
	response.Success(c, product)
}
