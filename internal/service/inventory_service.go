package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/tacgear-next/internal/constants"
	"github.com/tacgear-next/internal/logger"
	"github.com/tacgear-next/internal/models"
	"github.com/tacgear-next/internal/queue"
	"github.com/tacgear-next/internal/repository"

	"gorm.io/gorm"
)

// recordLocks 台账记录级别的互斥锁集合。
// ApplyTransaction 的读-改-写必须对同一记录串行化，
// 进程内用互斥锁，跨进程由 CompareAndSetQuantity 的前值比较兜底。
// 锁按记录 ID 惰性创建且不回收，数量上限为台账表行数。
type recordLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newRecordLocks() *recordLocks {
	return &recordLocks{locks: make(map[uint]*sync.Mutex)}
}

func (l *recordLocks) get(id uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[id] = lock
	}
	return lock
}

// CreateInventoryRecordInput 创建台账记录输入
type CreateInventoryRecordInput struct {
	StoreID           uint
	ProductID         uint
	VariantID         *uint
	Quantity          int
	LowStockThreshold *int
	SKU               string
	Notes             string
}

// ApplyTransactionInput 库存流水输入
type ApplyTransactionInput struct {
	InventoryID         uint
	TransactionType     string
	Quantity            int
	UserID              *uint
	Notes               string
	ReferenceNumber     string
	SourceLocation      string
	DestinationLocation string
}

// ProductStoreInventory 商品在某门店的库存视图
type ProductStoreInventory struct {
	Record models.InventoryRecord `json:"record"`
	Store  models.StoreLocation   `json:"store"`
}

// LowStockEnqueuer 低库存告警任务的入队方（生产环境为 queue.Client）
type LowStockEnqueuer interface {
	EnqueueLowStockAlert(payload queue.LowStockAlertPayload) error
}

// InventoryService 库存台账服务
type InventoryService struct {
	repo                repository.InventoryRepository
	storeRepo           repository.StoreLocationRepository
	productRepo         repository.ProductRepository
	queueClient         LowStockEnqueuer
	negativeStockPolicy string
	defaultThreshold    int
	locks               *recordLocks
}

// NewInventoryService 创建库存服务
func NewInventoryService(
	repo repository.InventoryRepository,
	storeRepo repository.StoreLocationRepository,
	productRepo repository.ProductRepository,
	queueClient LowStockEnqueuer,
	negativeStockPolicy string,
	defaultThreshold int,
) *InventoryService {
	if defaultThreshold <= 0 {
		defaultThreshold = constants.DefaultLowStockThreshold
	}
	return &InventoryService{
		repo:                repo,
		storeRepo:           storeRepo,
		productRepo:         productRepo,
		queueClient:         queueClient,
		negativeStockPolicy: negativeStockPolicy,
		defaultThreshold:    defaultThreshold,
		locks:               newRecordLocks(),
	}
}

// Query 按条件查询台账记录（不分页，返回全部匹配集）
func (s *InventoryService) Query(filter repository.InventoryFilter) ([]models.InventoryRecord, error) {
	return s.repo.Query(filter)
}

// Get 获取单条台账记录
func (s *InventoryService) Get(id uint) (*models.InventoryRecord, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return record, nil
}

// GetProductInventory 获取商品在各门店的库存分布。
// 台账引用的门店缺失视为数据损坏，直接报 ErrInventoryIntegrity，不做静默跳过。
func (s *InventoryService) GetProductInventory(productID uint) ([]ProductStoreInventory, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	records, err := s.repo.ListByProductWithStore(productID)
	if err != nil {
		return nil, err
	}

	result := make([]ProductStoreInventory, 0, len(records))
	for _, record := range records {
		if record.Store == nil || record.Store.ID == 0 {
			logger.Errorw("inventory_record_missing_store",
				"inventory_id", record.ID,
				"store_id", record.StoreID,
			)
			return nil, ErrInventoryIntegrity
		}
		store := *record.Store
		record.Store = nil
		result = append(result, ProductStoreInventory{Record: record, Store: store})
	}
	return result, nil
}

// CreateRecord 创建台账记录。
// (store, product, variant) 组合唯一性由数据库唯一索引保障，
// 冲突时报 ErrInventoryRecordExists。
func (s *InventoryService) CreateRecord(input CreateInventoryRecordInput) (*models.InventoryRecord, error) {
	if input.StoreID == 0 || input.ProductID == 0 {
		return nil, ErrNotFound
	}
	store, err := s.storeRepo.GetByID(input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotAvailable
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotAvailable
	}

	threshold := input.LowStockThreshold
	if threshold == nil {
		v := s.defaultThreshold
		threshold = &v
	}

	now := time.Now()
	record := &models.InventoryRecord{
		StoreID:           input.StoreID,
		ProductID:         input.ProductID,
		VariantID:         input.VariantID,
		Quantity:          input.Quantity,
		LowStockThreshold: threshold,
		SKU:               strings.TrimSpace(input.SKU),
		Notes:             strings.TrimSpace(input.Notes),
		LastUpdated:       now,
		CreatedAt:         now,
	}
	if err := s.repo.Create(record); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrInventoryRecordExists
		}
		return nil, err
	}
	return record, nil
}

// ApplyTransaction 应用一笔库存流水。
// 读取当前数量作为 previousQuantity，按类型规则计算 newQuantity，
// 在同一数据库事务内追加流水并条件更新台账数量，保证历史与实时值不会分叉。
func (s *InventoryService) ApplyTransaction(input ApplyTransactionInput) (*models.InventoryTransaction, error) {
	if !validTransactionType(input.TransactionType) {
		return nil, ErrTransactionTypeInvalid
	}
	if input.TransactionType == constants.TransactionTypeAdjust {
		if input.Quantity < 0 {
			return nil, ErrTransactionQtyInvalid
		}
	} else if input.Quantity <= 0 {
		return nil, ErrTransactionQtyInvalid
	}

	lock := s.locks.get(input.InventoryID)
	lock.Lock()
	defer lock.Unlock()

	record, err := s.repo.GetByID(input.InventoryID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}

	previousQuantity := record.Quantity
	newQuantity, err := computeNewQuantity(input.TransactionType, previousQuantity, input.Quantity)
	if err != nil {
		return nil, err
	}
	newQuantity, err = applyNegativeStockPolicy(s.negativeStockPolicy, newQuantity)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := &models.InventoryTransaction{
		InventoryID:         record.ID,
		TransactionType:     input.TransactionType,
		Quantity:            input.Quantity,
		PreviousQuantity:    previousQuantity,
		NewQuantity:         newQuantity,
		UserID:              input.UserID,
		Notes:               strings.TrimSpace(input.Notes),
		ReferenceNumber:     strings.TrimSpace(input.ReferenceNumber),
		SourceLocation:      strings.TrimSpace(input.SourceLocation),
		DestinationLocation: strings.TrimSpace(input.DestinationLocation),
		CreatedAt:           now,
	}

	err = s.repo.Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		affected, err := repo.CompareAndSetQuantity(record.ID, previousQuantity, newQuantity, now)
		if err != nil {
			return err
		}
		if affected == 0 {
			// 前值比较失败说明有并发写入绕过了进程内锁（如多实例部署）
			return ErrStockConflict
		}
		return repo.CreateTransaction(txn)
	})
	if err != nil {
		return nil, err
	}

	s.notifyLowStock(record, newQuantity)
	return txn, nil
}

// History 获取台账的全部流水（新→旧）
func (s *InventoryService) History(inventoryID uint) ([]models.InventoryTransaction, error) {
	record, err := s.repo.GetByID(inventoryID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrNotFound
	}
	return s.repo.ListTransactions(inventoryID)
}

// notifyLowStock 数量落到阈值及以下时推送低库存告警任务。
// 队列不可用不影响流水结果，只记日志。
func (s *InventoryService) notifyLowStock(record *models.InventoryRecord, newQuantity int) {
	if s.queueClient == nil || record == nil || record.LowStockThreshold == nil {
		return
	}
	if newQuantity > *record.LowStockThreshold {
		return
	}
	err := s.queueClient.EnqueueLowStockAlert(queue.LowStockAlertPayload{
		InventoryID: record.ID,
		StoreID:     record.StoreID,
		ProductID:   record.ProductID,
		Quantity:    newQuantity,
		Threshold:   *record.LowStockThreshold,
	})
	if err != nil {
		logger.Warnw("inventory_low_stock_enqueue_failed",
			"inventory_id", record.ID,
			"error", err,
		)
	}
}

// isDuplicateKeyError 判断是否为唯一索引冲突
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
