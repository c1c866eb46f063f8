package repository

import (
	"errors"
	"time"

	"github.com/tacgear-next/internal/models"

	"gorm.io/gorm"
)

// InventoryRepository 库存台账数据访问接口
type InventoryRepository interface {
	Query(filter InventoryFilter) ([]models.InventoryRecord, error)
	GetByID(id uint) (*models.InventoryRecord, error)
	ListByProductWithStore(productID uint) ([]models.InventoryRecord, error)
	SumQuantityByProduct(productID uint, storeID *uint) (int64, error)
	Create(record *models.InventoryRecord) error
	CompareAndSetQuantity(id uint, previousQuantity, newQuantity int, updatedAt time.Time) (int64, error)
	CreateTransaction(txn *models.InventoryTransaction) error
	ListTransactions(inventoryID uint) ([]models.InventoryTransaction, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) InventoryRepository
}

// GormInventoryRepository GORM 实现
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository 创建库存仓库
func NewInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// WithTx 绑定事务
func (r *GormInventoryRepository) WithTx(tx *gorm.DB) InventoryRepository {
	if tx == nil {
		return r
	}
	return &GormInventoryRepository{db: tx}
}

// Transaction 执行事务
func (r *GormInventoryRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// Query 按条件查询台账记录
func (r *GormInventoryRepository) Query(filter InventoryFilter) ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	query := r.db.Model(&models.InventoryRecord{})
	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.VariantID != nil {
		query = query.Where("variant_id = ?", *filter.VariantID)
	}
	if filter.LowStock {
		// 阈值为空的记录不参与低库存判定
		query = query.Where("low_stock_threshold IS NOT NULL AND quantity <= low_stock_threshold")
	}
	if err := query.Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID 按ID获取台账记录
func (r *GormInventoryRepository) GetByID(id uint) (*models.InventoryRecord, error) {
	var record models.InventoryRecord
	err := r.db.First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByProductWithStore 获取商品在各门店的台账（预载门店信息）
func (r *GormInventoryRepository) ListByProductWithStore(productID uint) ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	err := r.db.Preload("Store").
		Where("product_id = ?", productID).
		Order("store_id ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// SumQuantityByProduct 统计商品可用库存总量（storeID 非空时仅统计单店）
func (r *GormInventoryRepository) SumQuantityByProduct(productID uint, storeID *uint) (int64, error) {
	var total int64
	query := r.db.Model(&models.InventoryRecord{}).Where("product_id = ?", productID)
	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}
	if err := query.Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Create 创建台账记录
// (store, product, variant) 组合唯一性由数据库唯一索引兜底。
func (r *GormInventoryRepository) Create(record *models.InventoryRecord) error {
	return r.db.Create(record).Error
}

// CompareAndSetQuantity 条件更新数量（带前值比较，防止丢失更新）
func (r *GormInventoryRepository) CompareAndSetQuantity(id uint, previousQuantity, newQuantity int, updatedAt time.Time) (int64, error) {
	result := r.db.Model(&models.InventoryRecord{}).
		Where("id = ? AND quantity = ?", id, previousQuantity).
		Updates(map[string]interface{}{
			"quantity":     newQuantity,
			"last_updated": updatedAt,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CreateTransaction 追加库存流水
func (r *GormInventoryRepository) CreateTransaction(txn *models.InventoryTransaction) error {
	return r.db.Create(txn).Error
}

// ListTransactions 获取台账的全部流水（新→旧）
func (r *GormInventoryRepository) ListTransactions(inventoryID uint) ([]models.InventoryTransaction, error) {
	var txns []models.InventoryTransaction
	err := r.db.Where("inventory_id = ?", inventoryID).
		Order("created_at DESC, id DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}
