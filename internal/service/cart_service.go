package service

import (
	"strings"
	"time"

	"github.com/tacgear-next/internal/logger"
	"github.com/tacgear-next/internal/models"
	"github.com/tacgear-next/internal/repository"
)

// CartItemDetail 购物车项详情（用于响应）
// 单价与小计永远按商品实时价格计算，购物车不落价格。
type CartItemDetail struct {
	ID           uint            `json:"id"`
	ProductID    uint            `json:"product_id"`
	Quantity     int             `json:"quantity"`
	ColorVariant string          `json:"color_variant,omitempty"`
	SizeVariant  string          `json:"size_variant,omitempty"`
	StoreID      *uint           `json:"store_id,omitempty"`
	UnitPrice    models.Money    `json:"unit_price"`
	OriginalPrice models.Money   `json:"original_price"`
	LineTotal    models.Money    `json:"line_total"`
	Product      *models.Product `json:"product"`
}

// AddCartItemInput 加购输入
type AddCartItemInput struct {
	ProductID    uint
	Quantity     int
	ColorVariant string
	SizeVariant  string
	StoreID      *uint
}

// CartService 购物车服务
type CartService struct {
	cartRepo      repository.CartRepository
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
	checkStock    bool
}

// NewCartService 创建购物车服务。
// checkStock 开启时加购/改量前会核对库存总量（可用性校验为可选协作方，默认关闭）。
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
	checkStock bool,
) *CartService {
	return &CartService{
		cartRepo:      cartRepo,
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
		checkStock:    checkStock,
	}
}

// List 获取归属方购物车（按商品实时价格物化）。
// 商品已下架或缺失的购物车项为孤儿数据：不参与物化，
// 其 ID 作为第二个返回值上报给调用方，同时记录日志。
func (s *CartService) List(owner repository.CartOwner) ([]CartItemDetail, []uint, error) {
	if !owner.Valid() {
		return nil, nil, ErrCartOwnerRequired
	}
	items, err := s.cartRepo.ListByOwner(owner)
	if err != nil {
		return nil, nil, err
	}
	details := make([]CartItemDetail, 0, len(items))
	orphaned := make([]uint, 0)
	for _, item := range items {
		if item.Product == nil || item.Product.ID == 0 {
			logger.Warnw("cart_item_orphaned_product",
				"cart_item_id", item.ID,
				"product_id", item.ProductID,
			)
			orphaned = append(orphaned, item.ID)
			continue
		}
		details = append(details, buildCartItemDetail(item))
	}
	return details, orphaned, nil
}

// GetItemWithProduct 获取购物车项及其商品，任一缺失报 ErrNotFound
func (s *CartService) GetItemWithProduct(id uint) (*CartItemDetail, error) {
	item, err := s.cartRepo.GetByIDWithProduct(id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.Product == nil || item.Product.ID == 0 {
		return nil, ErrNotFound
	}
	detail := buildCartItemDetail(*item)
	return &detail, nil
}

// Add 新增购物车项
func (s *CartService) Add(owner repository.CartOwner, input AddCartItemInput) (*CartItemDetail, error) {
	if !owner.Valid() {
		return nil, ErrCartOwnerRequired
	}
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotAvailable
	}
	if err := s.ensureStock(input.ProductID, input.StoreID, input.Quantity); err != nil {
		return nil, err
	}

	now := time.Now()
	item := &models.CartItem{
		UserID:       owner.UserID,
		SessionID:    owner.SessionID,
		ProductID:    input.ProductID,
		Quantity:     input.Quantity,
		ColorVariant: strings.TrimSpace(input.ColorVariant),
		SizeVariant:  strings.TrimSpace(input.SizeVariant),
		StoreID:      input.StoreID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	item.Product = product
	detail := buildCartItemDetail(*item)
	return &detail, nil
}

// UpdateQuantity 更新购物车项数量（quantity ≥ 1）
func (s *CartService) UpdateQuantity(id uint, quantity int) (*CartItemDetail, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	item, err := s.cartRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	if err := s.ensureStock(item.ProductID, item.StoreID, quantity); err != nil {
		return nil, err
	}
	affected, err := s.cartRepo.UpdateQuantity(id, quantity)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.GetItemWithProduct(id)
}

// Remove 删除购物车项（幂等）
func (s *CartService) Remove(id uint) (bool, error) {
	affected, err := s.cartRepo.Delete(id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Clear 清空归属方购物车
func (s *CartService) Clear(owner repository.CartOwner) error {
	if !owner.Valid() {
		return ErrCartOwnerRequired
	}
	return s.cartRepo.ClearByOwner(owner)
}

// ensureStock 可选库存可用性校验。
// 默认关闭，关闭时加购不关心库存，购物车与台账完全解耦。
func (s *CartService) ensureStock(productID uint, storeID *uint, quantity int) error {
	if !s.checkStock || s.inventoryRepo == nil {
		return nil
	}
	total, err := s.inventoryRepo.SumQuantityByProduct(productID, storeID)
	if err != nil {
		return err
	}
	if total < int64(quantity) {
		return ErrStockInsufficient
	}
	return nil
}

func buildCartItemDetail(item models.CartItem) CartItemDetail {
	unitPrice := item.Product.EffectivePrice()
	lineTotal := unitPrice.MulInt(item.Quantity)
	return CartItemDetail{
		ID:            item.ID,
		ProductID:     item.ProductID,
		Quantity:      item.Quantity,
		ColorVariant:  item.ColorVariant,
		SizeVariant:   item.SizeVariant,
		StoreID:       item.StoreID,
		UnitPrice:     unitPrice,
		OriginalPrice: item.Product.PriceAmount,
		LineTotal:     lineTotal,
		Product:       item.Product,
	}
}
