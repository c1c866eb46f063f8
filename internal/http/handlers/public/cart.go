package public

import (
	"github.com/tacgear-next/internal/http/response"
	"github.com/tacgear-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	ProductID    uint   `json:"product_id" binding:"required"`
	Quantity     int    `json:"quantity"`
	ColorVariant string `json:"color_variant"`
	SizeVariant  string `json:"size_variant"`
	StoreID      *uint  `json:"store_id"`
}

// UpdateCartItemRequest 购物车项改量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart 获取购物车（含商品与实时价格）
func (h *Handler) GetCart(c *gin.Context) {
	owner, ok := resolveOwner(c)
	if !ok {
		return
	}

	items, orphaned, err := h.CartService.List(owner)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Success(c, gin.H{
		"items":             items,
		"orphaned_item_ids": orphaned,
	})
}

// AddCartItem 添加购物车项
func (h *Handler) AddCartItem(c *gin.Context) {
	owner, ok := resolveOwner(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.CartService.Add(owner, service.AddCartItemInput{
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		ColorVariant: req.ColorVariant,
		SizeVariant:  req.SizeVariant,
		StoreID:      req.StoreID,
	})
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateCartItem 更新购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	item, err := h.CartService.UpdateQuantity(id, req.Quantity)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.Success(c, item)
}

// RemoveCartItem 删除购物车项（幂等）
func (h *Handler) RemoveCartItem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	removed, err := h.CartService.Remove(id)
	if err != nil {
		respondCartMutationError(c, err)
		return
	}
	if !removed {
		response.NotFound(c, "cart item not found")
		return
	}
	response.NoContent(c)
}

// ClearCart 清空归属方购物车
func (h *Handler) ClearCart(c *gin.Context) {
	owner, ok := resolveOwner(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(owner); err != nil {
		respondCartMutationError(c, err)
		return
	}
	response.NoContent(c)
}
