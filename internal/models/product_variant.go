package models

import "time"

// ProductVariant 商品规格表（颜色/尺码维度）
type ProductVariant struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                                        // 主键
	ProductID   uint      `gorm:"not null;index;uniqueIndex:idx_variant_product_type_value" json:"product_id"` // 商品ID
	VariantType string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_variant_product_type_value" json:"variant_type"` // 规格类型（color/size）
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`                                      // 展示名称
	Value       string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_variant_product_type_value" json:"value"` // 规格值
	InStock     bool      `gorm:"default:true" json:"in_stock"`                                                // 是否有货
	SortOrder   int       `gorm:"default:0;index" json:"sort_order"`                                           // 排序权重
	CreatedAt   time.Time `json:"created_at"`                                                                  // 创建时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (ProductVariant) TableName() string {
	return "product_variants"
}
