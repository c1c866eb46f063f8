package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tacgear-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCategoryRepositoryTest(t *testing.T) *GormCategoryRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}); err != nil {
		t.Fatalf("migrate category models failed: %v", err)
	}
	return NewCategoryRepository(db)
}

func TestCategoryCreateAndList(t *testing.T) {
	repo := setupCategoryRepositoryTest(t)

	if err := repo.Create(&models.Category{Slug: "optics", Name: "Optics", SortOrder: 1}); err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if err := repo.Create(&models.Category{Slug: "helmets", Name: "Helmets", SortOrder: 5}); err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	categories, err := repo.List()
	if err != nil {
		t.Fatalf("list categories failed: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	// 排序权重高的在前
	if categories[0].Slug != "helmets" {
		t.Fatalf("expected helmets first by sort order, got %s", categories[0].Slug)
	}

	loaded, err := repo.GetBySlug("optics")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if loaded == nil || loaded.Name != "Optics" {
		t.Fatalf("expected optics category, got %+v", loaded)
	}

	missing, err := repo.GetBySlug("no-such")
	if err != nil {
		t.Fatalf("get missing failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing slug, got %+v", missing)
	}
}
