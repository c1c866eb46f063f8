package worker

import (
	"context"
	"encoding/json"

	"github.com/tacgear-next/internal/logger"
	"github.com/tacgear-next/internal/provider"
	"github.com/tacgear-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskInventoryLowStock, c.handleLowStockAlert)
}

// handleLowStockAlert 处理低库存告警任务。
// 记录结构化告警日志；台账/门店/商品已不存在时任务静默完成。
func (c *Consumer) handleLowStockAlert(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		return nil
	}
	var payload queue.LowStockAlertPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_low_stock_unmarshal_failed", "error", err)
		return err
	}
	if payload.InventoryID == 0 {
		logger.Debugw("worker_low_stock_skip_invalid_payload", "inventory_id", payload.InventoryID)
		return nil
	}

	record, err := c.InventoryRepo.GetByID(payload.InventoryID)
	if err != nil {
		logger.Warnw("worker_low_stock_fetch_record_failed", "inventory_id", payload.InventoryID, "error", err)
		return err
	}
	if record == nil {
		logger.Debugw("worker_low_stock_skip_record_not_found", "inventory_id", payload.InventoryID)
		return nil
	}

	storeName := ""
	if store, err := c.StoreRepo.GetByID(record.StoreID); err == nil && store != nil {
		storeName = store.Name
	}
	productName := ""
	if product, err := c.ProductRepo.GetByID(record.ProductID); err == nil && product != nil {
		productName = product.Name
	}

	logger.Warnw("inventory_low_stock_alert",
		"inventory_id", record.ID,
		"store_id", record.StoreID,
		"store_name", storeName,
		"product_id", record.ProductID,
		"product_name", productName,
		"quantity", payload.Quantity,
		"threshold", payload.Threshold,
	)
	return nil
}
