package public

import (
	"errors"

	"github.com/tacgear-next/internal/http/response"
	"github.com/tacgear-next/internal/repository"
	"github.com/tacgear-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateInventoryRecordRequest 新建台账记录请求
type CreateInventoryRecordRequest struct {
	StoreID           uint   `json:"store_id" binding:"required"`
	ProductID         uint   `json:"product_id" binding:"required"`
	VariantID         *uint  `json:"variant_id"`
	Quantity          int    `json:"quantity"`
	LowStockThreshold *int   `json:"low_stock_threshold"`
	SKU               string `json:"sku"`
	Notes             string `json:"notes"`
}

// ApplyTransactionRequest 库存流水请求
type ApplyTransactionRequest struct {
	TransactionType     string `json:"transaction_type" binding:"required"`
	Quantity            int    `json:"quantity"`
	UserID              *uint  `json:"user_id"`
	Notes               string `json:"notes"`
	ReferenceNumber     string `json:"reference_number"`
	SourceLocation      string `json:"source_location"`
	DestinationLocation string `json:"destination_location"`
}

// QueryInventory 按条件查询台账记录
func (h *Handler) QueryInventory(c *gin.Context) {
	filter := repository.InventoryFilter{}

	storeID, ok := parseUintQuery(c, "storeId")
	if !ok {
		return
	}
	filter.StoreID = storeID

	productID, ok := parseUintQuery(c, "productId")
	if !ok {
		return
	}
	filter.ProductID = productID

	variantID, ok := parseUintQuery(c, "variantId")
	if !ok {
		return
	}
	filter.VariantID = variantID

	if lowStock := parseBoolQuery(c, "lowStock"); lowStock != nil {
		filter.LowStock = *lowStock
	}

	records, err := h.InventoryService.Query(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "inventory fetch failed", err)
		return
	}
	response.Success(c, records)
}

// GetInventoryRecord 获取单条台账记录
func (h *Handler) GetInventoryRecord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.InventoryService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "inventory record not found")
			return
		}
		respondError(c, response.CodeInternal, "inventory fetch failed", err)
		return
	}
	response.Success(c, record)
}

// GetProductInventory 获取商品的分店库存视图。
// 路由与商品详情共用 :slug 通配段，此处按数字 ID 解析。
func (h *Handler) GetProductInventory(c *gin.Context) {
	productID, ok := parseIDParam(c, "slug")
	if !ok {
		return
	}

	rows, err := h.InventoryService.GetProductInventory(productID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		respondError(c, response.CodeInternal, "inventory fetch failed", err)
		return
	}
	response.Success(c, rows)
}

// CreateInventoryRecord 新建台账记录
func (h *Handler) CreateInventoryRecord(c *gin.Context) {
	var req CreateInventoryRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	record, err := h.InventoryService.CreateRecord(service.CreateInventoryRecordInput{
		StoreID:           req.StoreID,
		ProductID:         req.ProductID,
		VariantID:         req.VariantID,
		Quantity:          req.Quantity,
		LowStockThreshold: req.LowStockThreshold,
		SKU:               req.SKU,
		Notes:             req.Notes,
	})
	if err != nil {
		respondInventoryCreateError(c, err)
		return
	}
	response.Created(c, record)
}

// GetInventoryTransactions 获取台账流水（新到旧）
func (h *Handler) GetInventoryTransactions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	transactions, err := h.InventoryService.History(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "inventory record not found")
			return
		}
		respondError(c, response.CodeInternal, "inventory transaction fetch failed", err)
		return
	}
	response.Success(c, transactions)
}

// CreateInventoryTransaction 应用库存流水
func (h *Handler) CreateInventoryTransaction(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ApplyTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	transaction, err := h.InventoryService.ApplyTransaction(service.ApplyTransactionInput{
		InventoryID:         id,
		TransactionType:     req.TransactionType,
		Quantity:            req.Quantity,
		UserID:              req.UserID,
		Notes:               req.Notes,
		ReferenceNumber:     req.ReferenceNumber,
		SourceLocation:      req.SourceLocation,
		DestinationLocation: req.DestinationLocation,
	})
	if err != nil {
		respondInventoryTransactionError(c, err)
		return
	}
	response.Created(c, transaction)
}
