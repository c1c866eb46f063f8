package queue

import (
	"encoding/json"

	"github.com/tacgear-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskInventoryLowStock 低库存告警任务
	TaskInventoryLowStock = constants.TaskInventoryLowStock
)

// LowStockAlertPayload 低库存告警任务载荷
type LowStockAlertPayload struct {
	InventoryID uint `json:"inventory_id"` // 台账记录ID
	StoreID     uint `json:"store_id"`     // 门店ID
	ProductID   uint `json:"product_id"`   // 商品ID
	Quantity    int  `json:"quantity"`     // 触发时数量
	Threshold   int  `json:"threshold"`    // 低库存阈值
}

// NewLowStockAlertTask 构造低库存告警任务
func NewLowStockAlertTask(payload LowStockAlertPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskInventoryLowStock, data), nil
}
