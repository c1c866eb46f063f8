package service

import (
	"strings"

	"github.com/tacgear-next/internal/constants"
)

// computeNewQuantity 按流水类型计算变更后数量。
// adjust 的 quantity 为绝对目标值，其余类型为增减量；
// 历史流水需要按同一规则可重放。
func computeNewQuantity(transactionType string, previousQuantity, quantity int) (int, error) {
	switch transactionType {
	case constants.TransactionTypeReceive,
		constants.TransactionTypeTransferIn,
		constants.TransactionTypeReturn:
		return previousQuantity + quantity, nil
	case constants.TransactionTypeSale,
		constants.TransactionTypeTransferOut:
		return previousQuantity - quantity, nil
	case constants.TransactionTypeAdjust:
		return quantity, nil
	default:
		return 0, ErrTransactionTypeInvalid
	}
}

// applyNegativeStockPolicy 应用负库存策略。
// allow 保持原值；reject 返回 ErrStockInsufficient；clamp 截断到 0
// （流水快照记录截断后的值）。
func applyNegativeStockPolicy(policy string, newQuantity int) (int, error) {
	if newQuantity >= 0 {
		return newQuantity, nil
	}
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", constants.NegativeStockAllow:
		return newQuantity, nil
	case constants.NegativeStockReject:
		return 0, ErrStockInsufficient
	case constants.NegativeStockClamp:
		return 0, nil
	default:
		return newQuantity, nil
	}
}

// validTransactionType 校验流水类型
func validTransactionType(transactionType string) bool {
	switch transactionType {
	case constants.TransactionTypeReceive,
		constants.TransactionTypeSale,
		constants.TransactionTypeAdjust,
		constants.TransactionTypeTransferIn,
		constants.TransactionTypeTransferOut,
		constants.TransactionTypeReturn:
		return true
	default:
		return false
	}
}
