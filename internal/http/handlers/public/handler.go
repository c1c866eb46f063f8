package public

import "github.com/tacgear-next/internal/provider"

// Handler 前台/公开接口处理器入口
// 说明：本系统所有面向客户端的 API 均为公开接口，不做鉴权。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
