package public

import (
	"github.com/tacgear-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddWishlistItemRequest 心愿单添加请求
type AddWishlistItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GetWishlist 获取心愿单
func (h *Handler) GetWishlist(c *gin.Context) {
	owner, ok := resolveOwner(c)
	if !ok {
		return
	}

	items, err := h.WishlistService.List(owner)
	if err != nil {
		respondWishlistMutationError(c, err)
		return
	}
	response.Success(c, gin.H{"items": items})
}

// AddWishlistItem 添加心愿单项（重复添加返回已有项）
func (h *Handler) AddWishlistItem(c *gin.Context) {
	owner, ok := resolveOwner(c)
	if !ok {
		return
	}

	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	item, err := h.WishlistService.Add(owner, req.ProductID)
	if err != nil {
		respondWishlistMutationError(c, err)
		return
	}
	response.Created(c, item)
}

// RemoveWishlistItem 删除心愿单项（幂等）
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	removed, err := h.WishlistService.Remove(id)
	if err != nil {
		respondWishlistMutationError(c, err)
		return
	}
	if !removed {
		response.NotFound(c, "wishlist item not found")
		return
	}
	response.NoContent(c)
}
