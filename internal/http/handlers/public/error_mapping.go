package public

import (
	"errors"

	"github.com/tacgear-next/internal/http/response"
	"github.com/tacgear-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var cartMutationErrorRules = []mappedHandlerError{
	{target: service.ErrCartOwnerRequired, code: response.CodeBadRequest, msg: "exactly one of userId or sessionId is required"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, msg: "quantity must be at least 1"},
	{target: service.ErrProductNotAvailable, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrStockInsufficient, code: response.CodeBadRequest, msg: "insufficient stock"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "cart item not found"},
}

var inventoryTransactionErrorRules = []mappedHandlerError{
	{target: service.ErrTransactionTypeInvalid, code: response.CodeBadRequest, msg: "invalid transaction type"},
	{target: service.ErrTransactionQtyInvalid, code: response.CodeBadRequest, msg: "invalid transaction quantity"},
	{target: service.ErrStockInsufficient, code: response.CodeBadRequest, msg: "insufficient stock"},
	{target: service.ErrStockConflict, code: response.CodeBadRequest, msg: "concurrent stock update, please retry"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "inventory record not found"},
}

var inventoryCreateErrorRules = []mappedHandlerError{
	{target: service.ErrStoreNotAvailable, code: response.CodeNotFound, msg: "store not found"},
	{target: service.ErrProductNotAvailable, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrInventoryRecordExists, code: response.CodeBadRequest, msg: "inventory record already exists for this store/product/variant"},
	{target: service.ErrTransactionQtyInvalid, code: response.CodeBadRequest, msg: "invalid quantity"},
}

var wishlistMutationErrorRules = []mappedHandlerError{
	{target: service.ErrCartOwnerRequired, code: response.CodeBadRequest, msg: "exactly one of userId or sessionId is required"},
	{target: service.ErrProductNotAvailable, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "wishlist item not found"},
}

func respondCartMutationError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartMutationErrorRules, response.CodeInternal, "cart operation failed")
}

func respondInventoryTransactionError(c *gin.Context, err error) {
	respondWithMappedError(c, err, inventoryTransactionErrorRules, response.CodeInternal, "inventory transaction failed")
}

func respondInventoryCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, inventoryCreateErrorRules, response.CodeInternal, "inventory record create failed")
}

func respondWishlistMutationError(c *gin.Context, err error) {
	respondWithMappedError(c, err, wishlistMutationErrorRules, response.CodeInternal, "wishlist operation failed")
}
