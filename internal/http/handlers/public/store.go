package public

import (
	"errors"
	"strings"

	"github.com/tacgear-next/internal/http/response"
	"github.com/tacgear-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetStores 获取门店列表（仅返回营业中的门店）
func (h *Handler) GetStores(c *gin.Context) {
	stores, err := h.StoreService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "store fetch failed", err)
		return
	}
	response.Success(c, stores)
}

// GetStoreBySlug 获取门店详情
func (h *Handler) GetStoreBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "slug is required", nil)
		return
	}

	store, err := h.StoreService.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "store not found")
			return
		}
		respondError(c, response.CodeInternal, "store fetch failed", err)
		return
	}
	response.Success(c, store)
}
