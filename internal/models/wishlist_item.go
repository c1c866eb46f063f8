package models

import (
	"time"

	"gorm.io/gorm"
)

// WishlistItem 心愿单项
// 归属标识与购物车一致：userID 与 sessionID 二选一。
type WishlistItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                     // 主键
	UserID    *uint          `gorm:"index" json:"user_id"`                     // 用户ID（可空）
	SessionID *string        `gorm:"type:varchar(64);index" json:"session_id"` // 游客会话ID（可空）
	ProductID uint           `gorm:"not null;index" json:"product_id"`         // 商品ID
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                  // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                           // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (WishlistItem) TableName() string {
	return "wishlist_items"
}
