package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
// 目录数据由种子脚本写入，线上只读。
type Product struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                      // 主键
	CategoryID      uint           `gorm:"not null;index" json:"category_id"`                         // 分类ID（弱引用）
	Slug            string         `gorm:"uniqueIndex;not null" json:"slug"`                          // 唯一标识
	Name            string         `gorm:"type:varchar(200);not null" json:"name"`                    // 商品名称
	Description     string         `gorm:"type:text" json:"description"`                              // 商品描述
	PriceAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // 价格
	SalePriceAmount *Money         `gorm:"type:decimal(20,2)" json:"sale_price_amount"`               // 促销价（可空）
	InStock         bool           `gorm:"default:true;index" json:"in_stock"`                        // 是否有货
	Rating          float64        `gorm:"type:decimal(3,2);default:0" json:"rating"`                 // 评分（派生值，非事务维护）
	ReviewCount     int            `gorm:"default:0" json:"review_count"`                             // 评价数（派生值）
	Featured        bool           `gorm:"default:false;index" json:"featured"`                       // 精选
	NewArrival      bool           `gorm:"default:false;index" json:"new_arrival"`                    // 新品
	BestSeller      bool           `gorm:"default:false;index" json:"best_seller"`                    // 热销
	SortOrder       int            `gorm:"default:0;index" json:"sort_order"`                         // 排序权重
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt       time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	// 关联
	Category *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
	Images   []ProductImage   `gorm:"foreignKey:ProductID" json:"images,omitempty"`    // 图片列表
	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`  // 规格列表
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// EffectivePrice 返回生效单价（有促销价取促销价）
func (p *Product) EffectivePrice() Money {
	if p.SalePriceAmount != nil {
		return *p.SalePriceAmount
	}
	return p.PriceAmount
}
