package service

import (
	"github.com/tacgear-next/internal/models"
	"github.com/tacgear-next/internal/repository"
)

// StoreService 门店查询服务（只读）
type StoreService struct {
	repo repository.StoreLocationRepository
}

// NewStoreService 创建门店服务
func NewStoreService(repo repository.StoreLocationRepository) *StoreService {
	return &StoreService{repo: repo}
}

// List 获取营业中门店列表
func (s *StoreService) List() ([]models.StoreLocation, error) {
	return s.repo.List(true)
}

// GetBySlug 按 slug 获取门店
func (s *StoreService) GetBySlug(slug string) (*models.StoreLocation, error) {
	store, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrNotFound
	}
	return store, nil
}
