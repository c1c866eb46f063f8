package service

import (
	"time"

	"github.com/tacgear-next/internal/logger"
	"github.com/tacgear-next/internal/models"
	"github.com/tacgear-next/internal/repository"
)

// WishlistService 心愿单服务
type WishlistService struct {
	repo        repository.WishlistRepository
	productRepo repository.ProductRepository
}

// NewWishlistService 创建心愿单服务
func NewWishlistService(repo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistService {
	return &WishlistService{repo: repo, productRepo: productRepo}
}

// List 获取归属方心愿单，商品按 ID 集合批量物化。
// 商品已缺失的心愿单项记日志后跳过。
func (s *WishlistService) List(owner repository.CartOwner) ([]models.WishlistItem, error) {
	if !owner.Valid() {
		return nil, ErrCartOwnerRequired
	}
	items, err := s.repo.ListByOwner(owner)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	result := make([]models.WishlistItem, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			logger.Warnw("wishlist_item_orphaned_product",
				"wishlist_item_id", item.ID,
				"product_id", item.ProductID,
			)
			continue
		}
		item.Product = product
		result = append(result, item)
	}
	return result, nil
}

// Add 添加心愿单项（同一商品重复添加返回已有项）
func (s *WishlistService) Add(owner repository.CartOwner, productID uint) (*models.WishlistItem, error) {
	if !owner.Valid() {
		return nil, ErrCartOwnerRequired
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotAvailable
	}

	existing, err := s.repo.GetByOwnerAndProduct(owner, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	item := &models.WishlistItem{
		UserID:    owner.UserID,
		SessionID: owner.SessionID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Remove 删除心愿单项（幂等）
func (s *WishlistService) Remove(id uint) (bool, error) {
	affected, err := s.repo.Delete(id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
