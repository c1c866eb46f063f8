package public

import (
	"strconv"
	"strings"

	"github.com/tacgear-next/internal/http/response"
	"github.com/tacgear-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// resolveOwner 从查询参数解析购物车/心愿单归属标识。
// userId 与 sessionId 必须恰好提供一个，否则返回 400。
func resolveOwner(c *gin.Context) (repository.CartOwner, bool) {
	owner := repository.CartOwner{}

	rawUserID := strings.TrimSpace(c.Query("userId"))
	rawSessionID := strings.TrimSpace(c.Query("sessionId"))

	if rawUserID != "" {
		userID, err := strconv.ParseUint(rawUserID, 10, 64)
		if err != nil || userID == 0 {
			respondError(c, response.CodeBadRequest, "invalid userId", nil)
			return owner, false
		}
		uid := uint(userID)
		owner.UserID = &uid
	}
	if rawSessionID != "" {
		owner.SessionID = &rawSessionID
	}

	if !owner.Valid() {
		respondError(c, response.CodeBadRequest, "exactly one of userId or sessionId is required", nil)
		return owner, false
	}
	return owner, true
}

// parseIDParam 解析路径中的数字 ID。
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid id", nil)
		return 0, false
	}
	return uint(id), true
}

// parseUintQuery 解析可选的数字查询参数，未提供时返回 nil。
func parseUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid "+name, nil)
		return nil, false
	}
	id := uint(value)
	return &id, true
}

// parseBoolQuery 解析可选的布尔查询参数，未提供时返回 nil。
// 兼容 ?featured 与 ?featured=true 两种写法。
func parseBoolQuery(c *gin.Context, name string) *bool {
	raw, exists := c.GetQuery(name)
	if !exists {
		return nil
	}
	value := raw == "" || raw == "true" || raw == "1"
	return &value
}
