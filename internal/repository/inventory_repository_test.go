package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/tacgear-next/internal/constants"
	"github.com/tacgear-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupInventoryRepositoryTest(t *testing.T) (*GormInventoryRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.StoreLocation{},
		&models.InventoryRecord{},
		&models.InventoryTransaction{},
	); err != nil {
		t.Fatalf("migrate inventory models failed: %v", err)
	}
	return NewInventoryRepository(db), db
}

func TestCompareAndSetQuantityGuardsPreviousValue(t *testing.T) {
	repo, _ := setupInventoryRepositoryTest(t)

	record := &models.InventoryRecord{
		StoreID:   1,
		ProductID: 1,
		Quantity:  10,
	}
	if err := repo.Create(record); err != nil {
		t.Fatalf("create record failed: %v", err)
	}

	affected, err := repo.CompareAndSetQuantity(record.ID, 10, 7, time.Now())
	if err != nil {
		t.Fatalf("compare and set failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}

	// 前值不匹配时不更新，模拟并发丢失更新的防护
	affected, err = repo.CompareAndSetQuantity(record.ID, 10, 5, time.Now())
	if err != nil {
		t.Fatalf("second compare and set failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 affected rows on stale previous value, got %d", affected)
	}

	current, err := repo.GetByID(record.ID)
	if err != nil {
		t.Fatalf("get record failed: %v", err)
	}
	if current.Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", current.Quantity)
	}
}

func TestListTransactionsNewestFirst(t *testing.T) {
	repo, _ := setupInventoryRepositoryTest(t)

	record := &models.InventoryRecord{StoreID: 1, ProductID: 1, Quantity: 0}
	if err := repo.Create(record); err != nil {
		t.Fatalf("create record failed: %v", err)
	}

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		txn := &models.InventoryTransaction{
			InventoryID:      record.ID,
			TransactionType:  constants.TransactionTypeReceive,
			Quantity:         i + 1,
			PreviousQuantity: i,
			NewQuantity:      i + 1,
			CreatedAt:        base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.CreateTransaction(txn); err != nil {
			t.Fatalf("create transaction %d failed: %v", i, err)
		}
	}

	transactions, err := repo.ListTransactions(record.ID)
	if err != nil {
		t.Fatalf("list transactions failed: %v", err)
	}
	if len(transactions) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(transactions))
	}
	for i := 1; i < len(transactions); i++ {
		if transactions[i].CreatedAt.After(transactions[i-1].CreatedAt) {
			t.Fatalf("expected newest-first ordering, got %v before %v",
				transactions[i-1].CreatedAt, transactions[i].CreatedAt)
		}
	}
}

func TestSumQuantityByProduct(t *testing.T) {
	repo, _ := setupInventoryRepositoryTest(t)

	records := []models.InventoryRecord{
		{StoreID: 1, ProductID: 1, Quantity: 7},
		{StoreID: 2, ProductID: 1, Quantity: 5},
		{StoreID: 1, ProductID: 2, Quantity: 99},
	}
	for i := range records {
		if err := repo.Create(&records[i]); err != nil {
			t.Fatalf("create record %d failed: %v", i, err)
		}
	}

	total, err := repo.SumQuantityByProduct(1, nil)
	if err != nil {
		t.Fatalf("sum all stores failed: %v", err)
	}
	if total != 12 {
		t.Fatalf("expected total 12 across stores, got %d", total)
	}

	storeID := uint(2)
	total, err = repo.SumQuantityByProduct(1, &storeID)
	if err != nil {
		t.Fatalf("sum single store failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5 for store 2, got %d", total)
	}

	total, err = repo.SumQuantityByProduct(99999, nil)
	if err != nil {
		t.Fatalf("sum missing product failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected total 0 for missing product, got %d", total)
	}
}
