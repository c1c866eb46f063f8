package repository

import (
	"errors"

	"github.com/tacgear-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByOwner(owner CartOwner) ([]models.CartItem, error)
	GetByID(id uint) (*models.CartItem, error)
	GetByIDWithProduct(id uint) (*models.CartItem, error)
	Create(item *models.CartItem) error
	UpdateQuantity(id uint, quantity int) (int64, error)
	Delete(id uint) (int64, error)
	ClearByOwner(owner CartOwner) error
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// ownerScope 归属条件（userID 或 sessionID 任一匹配即视为同一购物车）
func ownerScope(owner CartOwner) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case owner.UserID != nil && owner.SessionID != nil:
			return db.Where("user_id = ? OR session_id = ?", *owner.UserID, *owner.SessionID)
		case owner.UserID != nil:
			return db.Where("user_id = ?", *owner.UserID)
		case owner.SessionID != nil:
			return db.Where("session_id = ?", *owner.SessionID)
		default:
			// 无归属标识时不返回任何行
			return db.Where("1 = 0")
		}
	}
}

// ListByOwner 获取归属方的购物车项
func (r *GormCartRepository) ListByOwner(owner CartOwner) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Preload("Product").
		Scopes(ownerScope(owner)).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 按ID获取购物车项
func (r *GormCartRepository) GetByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByIDWithProduct 按ID获取购物车项（预载商品）
func (r *GormCartRepository) GetByIDWithProduct(id uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Preload("Product").First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create 新增购物车项
func (r *GormCartRepository) Create(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateQuantity 更新数量，返回受影响行数
func (r *GormCartRepository) UpdateQuantity(id uint, quantity int) (int64, error) {
	result := r.db.Model(&models.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete 删除购物车项（幂等），返回受影响行数
func (r *GormCartRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.CartItem{}, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ClearByOwner 清空归属方购物车
func (r *GormCartRepository) ClearByOwner(owner CartOwner) error {
	return r.db.Scopes(ownerScope(owner)).Delete(&models.CartItem{}).Error
}
