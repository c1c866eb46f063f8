package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tacgear-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupStoreRepositoryTest(t *testing.T) *GormStoreLocationRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.StoreLocation{}); err != nil {
		t.Fatalf("migrate store models failed: %v", err)
	}
	return NewStoreLocationRepository(db)
}

func TestStoreCreateAndActiveFilter(t *testing.T) {
	repo := setupStoreRepositoryTest(t)

	open := &models.StoreLocation{Slug: "open-store", Name: "Open Store", IsActive: true}
	closed := &models.StoreLocation{Slug: "closed-store", Name: "Closed Store", IsActive: false}
	if err := repo.Create(open); err != nil {
		t.Fatalf("create open store failed: %v", err)
	}
	if err := repo.Create(closed); err != nil {
		t.Fatalf("create closed store failed: %v", err)
	}

	active, err := repo.List(true)
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if len(active) != 1 || active[0].Slug != "open-store" {
		t.Fatalf("expected only the active store, got %+v", active)
	}

	all, err := repo.List(false)
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(all))
	}

	loaded, err := repo.GetBySlug("closed-store")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if loaded == nil || loaded.ID != closed.ID {
		t.Fatalf("expected closed store by slug, got %+v", loaded)
	}
}
