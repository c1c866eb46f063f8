package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tacgear-next/internal/models"
	"github.com/tacgear-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newWishlistTestService(t *testing.T) (*WishlistService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.WishlistItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	svc := NewWishlistService(
		repository.NewWishlistRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	svc, db := newWishlistTestService(t)
	product := &models.Product{
		CategoryID:  1,
		Slug:        "wishlist-helmet",
		Name:        "Wishlist Helmet",
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(589)),
		InStock:     true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	owner := sessionOwner("wishlist-session")
	first, err := svc.Add(owner, product.ID)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	second, err := svc.Add(owner, product.ID)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected repeat add to return existing item id=%d, got id=%d", first.ID, second.ID)
	}

	items, err := svc.List(owner)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 wishlist item, got %d", len(items))
	}
	if items[0].Product == nil || items[0].Product.ID != product.ID {
		t.Fatalf("expected product materialized on wishlist item, got %+v", items[0].Product)
	}

	if _, err := svc.Add(owner, 99999); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}

	// 商品缺失的心愿单项不纳入结果
	sid := "wishlist-session"
	if err := db.Create(&models.WishlistItem{SessionID: &sid, ProductID: 99999}).Error; err != nil {
		t.Fatalf("create orphan wishlist item failed: %v", err)
	}
	items, err = svc.List(owner)
	if err != nil {
		t.Fatalf("list after orphan failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected orphaned wishlist item skipped, got %d items", len(items))
	}
}

func TestWishlistRemove(t *testing.T) {
	svc, db := newWishlistTestService(t)
	product := &models.Product{
		CategoryID:  1,
		Slug:        "wishlist-optic",
		Name:        "Wishlist Optic",
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(199)),
		InStock:     true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	owner := userOwner(9)
	item, err := svc.Add(owner, product.ID)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	removed, err := svc.Remove(item.ID)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if !removed {
		t.Fatalf("expected remove to report success")
	}

	removed, err = svc.Remove(item.ID)
	if err != nil {
		t.Fatalf("second remove failed: %v", err)
	}
	if removed {
		t.Fatalf("expected second remove to report no-op")
	}

	items, err := svc.List(owner)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty wishlist, got %d items", len(items))
	}
}
