package constants

// 库存流水类型常量
const (
	TransactionTypeReceive     = "receive"      // 采购入库
	TransactionTypeSale        = "sale"         // 销售出库
	TransactionTypeAdjust      = "adjust"       // 盘点调整（quantity 为绝对值而非增量）
	TransactionTypeTransferIn  = "transfer_in"  // 调拨入库
	TransactionTypeTransferOut = "transfer_out" // 调拨出库
	TransactionTypeReturn      = "return"       // 退货入库
)

// 负库存策略常量
const (
	NegativeStockAllow  = "allow"  // 允许负库存（默认策略，欠货量以负数记账）
	NegativeStockReject = "reject" // 拒绝导致负库存的流水
	NegativeStockClamp  = "clamp"  // 截断到 0
)

// 商品规格类型常量
const (
	VariantTypeColor = "color"
	VariantTypeSize  = "size"
)

// DefaultLowStockThreshold 默认低库存阈值
const DefaultLowStockThreshold = 5

// 队列名称常量
const (
	QueueDefault = "default"
)

// 队列任务类型常量
const (
	TaskInventoryLowStock = "inventory:low_stock"
)
