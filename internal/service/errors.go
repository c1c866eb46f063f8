package service

import "errors"

// 业务级哨兵错误，由 handler 层映射为接口错误响应。
var (
	ErrNotFound                = errors.New("resource not found")
	ErrCartOwnerRequired       = errors.New("cart owner reference required")
	ErrInvalidQuantity         = errors.New("quantity must be at least 1")
	ErrProductNotAvailable     = errors.New("product not available")
	ErrStoreNotAvailable       = errors.New("store location not available")
	ErrVariantInvalid          = errors.New("variant does not belong to product")
	ErrTransactionTypeInvalid  = errors.New("invalid inventory transaction type")
	ErrTransactionQtyInvalid   = errors.New("invalid inventory transaction quantity")
	ErrStockInsufficient       = errors.New("insufficient stock")
	ErrStockConflict           = errors.New("concurrent stock update conflict")
	ErrInventoryRecordExists   = errors.New("inventory record already exists for store/product/variant")
	ErrInventoryIntegrity      = errors.New("inventory record references a missing store")
)
