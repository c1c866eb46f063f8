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

func newCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.StoreLocation{},
		&models.InventoryRecord{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newCartTestService(t *testing.T, db *gorm.DB, checkStock bool) *CartService {
	t.Helper()
	return NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewInventoryRepository(db),
		checkStock,
	)
}

func seedCartProduct(t *testing.T, db *gorm.DB, slug string, price, salePrice string) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:  1,
		Slug:        slug,
		Name:        "Product " + slug,
		PriceAmount: mustMoney(t, price),
		InStock:     true,
	}
	if salePrice != "" {
		sale := mustMoney(t, salePrice)
		product.SalePriceAmount = &sale
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func mustMoney(t *testing.T, s string) models.Money {
	t.Helper()
	m, err := models.NewMoneyFromString(s)
	if err != nil {
		t.Fatalf("parse money %q failed: %v", s, err)
	}
	return m
}

func sessionOwner(sessionID string) repository.CartOwner {
	return repository.CartOwner{SessionID: &sessionID}
}

func userOwner(userID uint) repository.CartOwner {
	return repository.CartOwner{UserID: &userID}
}

func TestCartAddListRoundTrip(t *testing.T) {
	db := newCartTestDB(t)
	svc := newCartTestService(t, db, false)
	product := seedCartProduct(t, db, "roundtrip-carrier", "249.99", "219.99")
	owner := sessionOwner("session-roundtrip")

	added, err := svc.Add(owner, AddCartItemInput{
		ProductID:    product.ID,
		Quantity:     2,
		ColorVariant: "ranger-green",
		SizeVariant:  "l",
	})
	if err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}

	items, _, err := svc.List(owner)
	if err != nil {
		t.Fatalf("list cart failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 cart item, got %d", len(items))
	}
	item := items[0]
	if item.ID != added.ID {
		t.Fatalf("expected item id=%d, got id=%d", added.ID, item.ID)
	}
	if item.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", item.Quantity)
	}
	if item.ColorVariant != "ranger-green" || item.SizeVariant != "l" {
		t.Fatalf("expected variants preserved, got color=%q size=%q", item.ColorVariant, item.SizeVariant)
	}
	// 单价取促销价，行合计按实时价格物化
	if !item.UnitPrice.Equal(decimal.RequireFromString("219.99")) {
		t.Fatalf("expected unit price 219.99, got %s", item.UnitPrice.String())
	}
	if !item.OriginalPrice.Equal(decimal.RequireFromString("249.99")) {
		t.Fatalf("expected original price 249.99, got %s", item.OriginalPrice.String())
	}
	if !item.LineTotal.Equal(decimal.RequireFromString("439.98")) {
		t.Fatalf("expected line total 439.98, got %s", item.LineTotal.String())
	}
}

func TestCartListIsolatesOwners(t *testing.T) {
	db := newCartTestDB(t)
	svc := newCartTestService(t, db, false)
	product := seedCartProduct(t, db, "owner-split", "89.99", "")

	if _, err := svc.Add(sessionOwner("guest-a"), AddCartItemInput{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add for guest failed: %v", err)
	}
	if _, err := svc.Add(userOwner(42), AddCartItemInput{ProductID: product.ID, Quantity: 3}); err != nil {
		t.Fatalf("add for user failed: %v", err)
	}

	guestItems, _, err := svc.List(sessionOwner("guest-a"))
	if err != nil {
		t.Fatalf("list guest cart failed: %v", err)
	}
	if len(guestItems) != 1 || guestItems[0].Quantity != 1 {
		t.Fatalf("expected guest cart with single qty=1 item, got %+v", guestItems)
	}

	userItems, _, err := svc.List(userOwner(42))
	if err != nil {
		t.Fatalf("list user cart failed: %v", err)
	}
	if len(userItems) != 1 || userItems[0].Quantity != 3 {
		t.Fatalf("expected user cart with single qty=3 item, got %+v", userItems)
	}
}

func TestCartOwnerValidation(t *testing.T) {
	db := newCartTestDB(t)
	svc := newCartTestService(t, db, false)

	if _, _, err := svc.List(repository.CartOwner{}); !errors.Is(err, ErrCartOwnerRequired) {
		t.Fatalf("expected ErrCartOwnerRequired for empty owner, got %v", err)
	}

	uid := uint(7)
	sid := "both-set"
	both := repository.CartOwner{UserID: &uid, SessionID: &sid}
	if _, _, err := svc.List(both); !errors.Is(err, ErrCartOwnerRequired) {
		t.Fatalf("expected ErrCartOwnerRequired when both ids set, got %v", err)
	}
	if err := svc.Clear(repository.CartOwner{}); !errors.Is(err, ErrCartOwnerRequired) {
		t.Fatalf("expected ErrCartOwnerRequired on clear, got %v", err)
	}
}

func TestCartUpdateQuantityScenario(t *testing.T) {
	db := newCartTestDB(t)
	svc := newCartTestService(t, db, false)
	product := seedCartProduct(t, db, "update-scenario", "59.99", "")
	owner := sessionOwner("abc")

	added, err := svc.Add(owner, AddCartItemInput{ProductID: product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}

	updated, err := svc.UpdateQuantity(added.ID, 3)
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if updated.Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", updated.Quantity)
	}

	detail, err := svc.GetItemWithProduct(added.ID)
	if err != nil {
		t.Fatalf("get item with product failed: %v", err)
	}
	if detail.Quantity != 3 {
		t.Fatalf("expected quantity 3 after re-read, got %d", detail.Quantity)
	}
	if detail.Product == nil || detail.Product.ID != product.ID {
		t.Fatalf("expected joined product id=%d, got %+v", product.ID, detail.Product)
	}

	if _, err := svc.UpdateQuantity(added.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for quantity 0, got %v", err)
	}
	if _, err := svc.UpdateQuantity(99999, 2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing item, got %v", err)
	}
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	db := newCartTestDB(t)
	svc := newCartTestService(t, db, false)
	product := seedCartProduct(t, db, "remove-item", "19.99", "")
	owner := sessionOwner("remove-session")

	added, err := svc.Add(owner, AddCartItemInput{ProductID: product.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}

	removed, err := svc.Remove(added.ID)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if !removed {
		t.Fatalf("expected first remove to report success")
	}

	removed, err = svc.Remove(added.ID)
	if err != nil {
		t.Fatalf("second remove failed: %v", err)
	}
	if removed {
		t.Fatalf("expected second remove to report no-op")
	}
}

func TestCartClearEmptiesOwner(t *testing.T) {
	db := newCartTestDB(t)
	svc := newCartTestService(t, db, false)
	product := seedCartProduct(t, db, "clear-cart", "39.99", "")
	owner := sessionOwner("clear-session")

	for i := 0; i < 3; i++ {
		if _, err := svc.Add(owner, AddCartItemInput{ProductID: product.ID, Quantity: i + 1}); err != nil {
			t.Fatalf("add cart item %d failed: %v", i, err)
		}
	}
	// 其他归属方的购物车不受影响
	if _, err := svc.Add(sessionOwner("other-session"), AddCartItemInput{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add for other owner failed: %v", err)
	}

	if err := svc.Clear(owner); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	items, _, err := svc.List(owner)
	if err != nil {
		t.Fatalf("list after clear failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart after clear, got %d items", len(items))
	}

	otherItems, _, err := svc.List(sessionOwner("other-session"))
	if err != nil {
		t.Fatalf("list other owner failed: %v", err)
	}
	if len(otherItems) != 1 {
		t.Fatalf("expected other owner cart untouched, got %d items", len(otherItems))
	}
}

func TestCartOrphanedProductSurfaced(t *testing.T) {
	db := newCartTestDB(t)
	svc := newCartTestService(t, db, false)
	owner := sessionOwner("orphan-session")
	product := seedCartProduct(t, db, "orphan-survivor", "39.99", "")

	if _, err := svc.Add(owner, AddCartItemInput{ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}

	// 直接写入指向不存在商品的购物车项
	sid := "orphan-session"
	orphan := &models.CartItem{
		SessionID: &sid,
		ProductID: 99999,
		Quantity:  1,
	}
	if err := db.Create(orphan).Error; err != nil {
		t.Fatalf("create orphan item failed: %v", err)
	}

	items, orphaned, err := svc.List(owner)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	// 孤儿项不参与物化，但其 ID 必须上报
	if len(items) != 1 || items[0].ProductID != product.ID {
		t.Fatalf("expected only the live item materialized, got %+v", items)
	}
	if len(orphaned) != 1 || orphaned[0] != orphan.ID {
		t.Fatalf("expected orphaned ids [%d], got %v", orphan.ID, orphaned)
	}
}

func TestCartStockCheckWhenEnabled(t *testing.T) {
	db := newCartTestDB(t)
	svc := newCartTestService(t, db, true)
	product := seedCartProduct(t, db, "stock-check", "129.99", "")
	store := &models.StoreLocation{Slug: "stock-check-store", Name: "Stock Check", IsActive: true}
	if err := db.Create(store).Error; err != nil {
		t.Fatalf("create store failed: %v", err)
	}
	if err := db.Create(&models.InventoryRecord{
		StoreID:   store.ID,
		ProductID: product.ID,
		Quantity:  2,
	}).Error; err != nil {
		t.Fatalf("create inventory failed: %v", err)
	}

	owner := sessionOwner("stock-session")
	if _, err := svc.Add(owner, AddCartItemInput{ProductID: product.ID, Quantity: 5}); !errors.Is(err, ErrStockInsufficient) {
		t.Fatalf("expected ErrStockInsufficient, got %v", err)
	}

	added, err := svc.Add(owner, AddCartItemInput{ProductID: product.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("add within stock failed: %v", err)
	}
	if _, err := svc.UpdateQuantity(added.ID, 4); !errors.Is(err, ErrStockInsufficient) {
		t.Fatalf("expected ErrStockInsufficient on update, got %v", err)
	}
}
