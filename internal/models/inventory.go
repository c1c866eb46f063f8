package models

import "time"

// InventoryRecord 库存台账表
// 每条记录对应一个 (门店, 商品, 规格) 组合的实时库存，
// quantity 必须等于该记录全部流水的净效果（由 ApplyTransaction 维护）。
type InventoryRecord struct {
	ID                uint      `gorm:"primarykey" json:"id"`                                                            // 主键
	StoreID           uint      `gorm:"not null;index;uniqueIndex:idx_inventory_store_product_variant" json:"store_id"`  // 门店ID
	ProductID         uint      `gorm:"not null;index;uniqueIndex:idx_inventory_store_product_variant" json:"product_id"` // 商品ID
	VariantID         *uint     `gorm:"uniqueIndex:idx_inventory_store_product_variant" json:"variant_id"`               // 规格ID（可空）
	Quantity          int       `gorm:"not null;default:0" json:"quantity"`                                              // 当前数量
	LowStockThreshold *int      `json:"low_stock_threshold"`                                                             // 低库存阈值（可空）
	SKU               string    `gorm:"type:varchar(64)" json:"sku"`                                                     // SKU 编码
	Notes             string    `gorm:"type:varchar(500)" json:"notes"`                                                  // 备注
	LastUpdated       time.Time `json:"last_updated"`                                                                    // 最后变更时间
	CreatedAt         time.Time `json:"created_at"`                                                                      // 创建时间

	// 关联
	Store   *StoreLocation  `gorm:"foreignKey:StoreID" json:"store,omitempty"`     // 所在门店
	Product *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
	Variant *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"` // 关联规格
}

// TableName 指定表名
func (InventoryRecord) TableName() string {
	return "inventory_records"
}

// IsLowStock 判断是否处于低库存（阈值为空时恒为 false）
func (r *InventoryRecord) IsLowStock() bool {
	if r == nil || r.LowStockThreshold == nil {
		return false
	}
	return r.Quantity <= *r.LowStockThreshold
}

// InventoryTransaction 库存流水表（只追加，不修改不删除）
// previousQuantity/newQuantity 为写入时的快照，不做派生计算。
type InventoryTransaction struct {
	ID                  uint      `gorm:"primarykey" json:"id"`                               // 主键
	InventoryID         uint      `gorm:"not null;index" json:"inventory_id"`                 // 台账记录ID
	TransactionType     string    `gorm:"type:varchar(20);not null" json:"transaction_type"`  // 流水类型
	Quantity            int       `gorm:"not null" json:"quantity"`                           // 数量（adjust 为绝对值，其余为增减量）
	PreviousQuantity    int       `gorm:"not null" json:"previous_quantity"`                  // 变更前数量快照
	NewQuantity         int       `gorm:"not null" json:"new_quantity"`                       // 变更后数量快照
	UserID              *uint     `json:"user_id"`                                            // 操作人（可空）
	Notes               string    `gorm:"type:varchar(500)" json:"notes"`                     // 备注
	ReferenceNumber     string    `gorm:"type:varchar(100)" json:"reference_number"`          // 关联单号
	SourceLocation      string    `gorm:"type:varchar(200)" json:"source_location"`           // 来源位置（调拨用）
	DestinationLocation string    `gorm:"type:varchar(200)" json:"destination_location"`      // 目标位置（调拨用）
	CreatedAt           time.Time `gorm:"index" json:"created_at"`                            // 流水时间
}

// TableName 指定表名
func (InventoryTransaction) TableName() string {
	return "inventory_transactions"
}
