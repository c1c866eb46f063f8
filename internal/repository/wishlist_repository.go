package repository

import (
	"errors"

	"github.com/tacgear-next/internal/models"

	"gorm.io/gorm"
)

// WishlistRepository 心愿单数据访问接口
type WishlistRepository interface {
	ListByOwner(owner CartOwner) ([]models.WishlistItem, error)
	GetByOwnerAndProduct(owner CartOwner, productID uint) (*models.WishlistItem, error)
	Create(item *models.WishlistItem) error
	Delete(id uint) (int64, error)
}

// GormWishlistRepository GORM 实现
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository 创建心愿单仓库
func NewWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// ListByOwner 获取归属方的心愿单（商品由服务层批量物化）
func (r *GormWishlistRepository) ListByOwner(owner CartOwner) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.Scopes(ownerScope(owner)).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByOwnerAndProduct 查找归属方对某商品的心愿单项
func (r *GormWishlistRepository) GetByOwnerAndProduct(owner CartOwner, productID uint) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := r.db.Scopes(ownerScope(owner)).
		Where("product_id = ?", productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create 新增心愿单项
func (r *GormWishlistRepository) Create(item *models.WishlistItem) error {
	return r.db.Create(item).Error
}

// Delete 删除心愿单项（幂等），返回受影响行数
func (r *GormWishlistRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.WishlistItem{}, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
