package repository

import (
	"errors"

	"github.com/tacgear-next/internal/models"

	"gorm.io/gorm"
)

// StoreLocationRepository 门店数据访问接口
type StoreLocationRepository interface {
	List(onlyActive bool) ([]models.StoreLocation, error)
	GetBySlug(slug string) (*models.StoreLocation, error)
	GetByID(id uint) (*models.StoreLocation, error)
	Create(store *models.StoreLocation) error
}

// GormStoreLocationRepository GORM 实现
type GormStoreLocationRepository struct {
	db *gorm.DB
}

// NewStoreLocationRepository 创建门店仓库
func NewStoreLocationRepository(db *gorm.DB) *GormStoreLocationRepository {
	return &GormStoreLocationRepository{db: db}
}

// List 获取门店列表
func (r *GormStoreLocationRepository) List(onlyActive bool) ([]models.StoreLocation, error) {
	var stores []models.StoreLocation
	query := r.db.Model(&models.StoreLocation{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("id ASC").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// GetBySlug 按 slug 获取门店
func (r *GormStoreLocationRepository) GetBySlug(slug string) (*models.StoreLocation, error) {
	var store models.StoreLocation
	err := r.db.Where("slug = ?", slug).First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// GetByID 按ID获取门店
func (r *GormStoreLocationRepository) GetByID(id uint) (*models.StoreLocation, error) {
	var store models.StoreLocation
	err := r.db.First(&store, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// Create 创建门店（种子脚本使用）
func (r *GormStoreLocationRepository) Create(store *models.StoreLocation) error {
	return r.db.Create(store).Error
}
