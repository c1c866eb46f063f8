package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem 购物车项
// userID 与 sessionID 二选一标识购物车归属（登录用户 / 游客会话）。
type CartItem struct {
	ID           uint           `gorm:"primarykey" json:"id"`                 // 主键
	UserID       *uint          `gorm:"index" json:"user_id"`                 // 用户ID（可空）
	SessionID    *string        `gorm:"type:varchar(64);index" json:"session_id"` // 游客会话ID（可空）
	ProductID    uint           `gorm:"not null;index" json:"product_id"`     // 商品ID
	Quantity     int            `gorm:"not null" json:"quantity"`             // 数量（≥1）
	ColorVariant string         `gorm:"type:varchar(100)" json:"color_variant"` // 颜色规格（冗余字符串）
	SizeVariant  string         `gorm:"type:varchar(100)" json:"size_variant"`  // 尺码规格（冗余字符串）
	StoreID      *uint          `json:"store_id"`                             // 门店自提时的门店ID（可空）
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`              // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`              // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                       // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
