package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tacgear-next/internal/constants"
	"github.com/tacgear-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductVariant{},
	); err != nil {
		t.Fatalf("migrate product models failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createTestProduct(t *testing.T, db *gorm.DB, product models.Product) *models.Product {
	t.Helper()
	if product.CategoryID == 0 {
		product.CategoryID = 1
	}
	if product.PriceAmount.IsZero() {
		product.PriceAmount = models.NewMoneyFromDecimal(decimal.NewFromInt(100))
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product %s failed: %v", product.Slug, err)
	}
	return &product
}

func TestProductListFlagFilters(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)

	createTestProduct(t, db, models.Product{Slug: "featured-item", Name: "Featured Carrier", Featured: true, InStock: true})
	createTestProduct(t, db, models.Product{Slug: "new-item", Name: "New Helmet", NewArrival: true, InStock: true})
	createTestProduct(t, db, models.Product{Slug: "plain-item", Name: "Plain Shirt", InStock: true})

	flag := true
	featured, err := repo.List(ProductListFilter{Featured: &flag})
	if err != nil {
		t.Fatalf("list featured failed: %v", err)
	}
	if len(featured) != 1 || featured[0].Slug != "featured-item" {
		t.Fatalf("expected only featured-item, got %+v", featured)
	}

	newArrivals, err := repo.List(ProductListFilter{NewArrival: &flag})
	if err != nil {
		t.Fatalf("list new arrivals failed: %v", err)
	}
	if len(newArrivals) != 1 || newArrivals[0].Slug != "new-item" {
		t.Fatalf("expected only new-item, got %+v", newArrivals)
	}

	all, err := repo.List(ProductListFilter{})
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}

	limited, err := repo.List(ProductListFilter{Limit: 2})
	if err != nil {
		t.Fatalf("list with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 products with limit, got %d", len(limited))
	}
}

func TestProductListCategoryAndSearch(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)

	carriers := &models.Category{Slug: "carriers", Name: "Plate Carriers"}
	optics := &models.Category{Slug: "optics", Name: "Optics"}
	if err := db.Create(carriers).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if err := db.Create(optics).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	createTestProduct(t, db, models.Product{
		CategoryID: carriers.ID, Slug: "raptor", Name: "Raptor Carrier",
		Description: "Laser-cut MOLLE carrier",
	})
	createTestProduct(t, db, models.Product{
		CategoryID: optics.ID, Slug: "red-dot", Name: "Red Dot",
		Description: "2 MOA red dot sight",
	})

	byCategory, err := repo.List(ProductListFilter{CategoryID: fmt.Sprint(carriers.ID)})
	if err != nil {
		t.Fatalf("list by category failed: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Slug != "raptor" {
		t.Fatalf("expected only raptor in carriers, got %+v", byCategory)
	}

	bySearch, err := repo.List(ProductListFilter{Search: "MOLLE"})
	if err != nil {
		t.Fatalf("list by search failed: %v", err)
	}
	if len(bySearch) != 1 || bySearch[0].Slug != "raptor" {
		t.Fatalf("expected search to match raptor, got %+v", bySearch)
	}
}

func TestProductGetBySlugPreloadsDetail(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)

	product := createTestProduct(t, db, models.Product{Slug: "detail-carrier", Name: "Detail Carrier"})
	images := []models.ProductImage{
		{ProductID: product.ID, URL: "https://example.com/b.jpg", SortOrder: 2},
		{ProductID: product.ID, URL: "https://example.com/a.jpg", SortOrder: 1},
	}
	for i := range images {
		if err := db.Create(&images[i]).Error; err != nil {
			t.Fatalf("create image failed: %v", err)
		}
	}
	variant := models.ProductVariant{
		ProductID:   product.ID,
		VariantType: constants.VariantTypeColor,
		Name:        "Ranger Green",
		Value:       "ranger-green",
		InStock:     true,
	}
	if err := db.Create(&variant).Error; err != nil {
		t.Fatalf("create variant failed: %v", err)
	}

	loaded, err := repo.GetBySlug("detail-carrier")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if loaded == nil {
		t.Fatalf("expected product, got nil")
	}
	if len(loaded.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(loaded.Images))
	}
	// 图片按 sort_order 升序返回
	if loaded.Images[0].SortOrder != 1 {
		t.Fatalf("expected first image sort_order=1, got %d", loaded.Images[0].SortOrder)
	}
	if len(loaded.Variants) != 1 || loaded.Variants[0].Value != "ranger-green" {
		t.Fatalf("expected ranger-green variant, got %+v", loaded.Variants)
	}

	missing, err := repo.GetBySlug("does-not-exist")
	if err != nil {
		t.Fatalf("get missing slug failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing slug, got %+v", missing)
	}
}

func TestProductCreatePersistsAssociations(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)

	product := &models.Product{
		CategoryID:  1,
		Slug:        "create-carrier",
		Name:        "Create Carrier",
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(199)),
		InStock:     true,
		Images: []models.ProductImage{
			{URL: "https://example.test/front.jpg", Alt: "front", SortOrder: 1},
		},
		Variants: []models.ProductVariant{
			{VariantType: constants.VariantTypeColor, Name: "Black", Value: "black", InStock: true, SortOrder: 1},
		},
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	loaded, err := repo.GetBySlug("create-carrier")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if loaded == nil {
		t.Fatalf("expected created product to be found")
	}
	if len(loaded.Images) != 1 || loaded.Images[0].ProductID != product.ID {
		t.Fatalf("expected image persisted with product, got %+v", loaded.Images)
	}
	if len(loaded.Variants) != 1 || loaded.Variants[0].Value != "black" {
		t.Fatalf("expected variant persisted with product, got %+v", loaded.Variants)
	}
}
