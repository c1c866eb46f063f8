package response

// 业务码与 HTTP 状态一一对应（见 httpStatus），0 表示成功
const (
	CodeOK              = 0
	CodeBadRequest      = 400
	CodeNotFound        = 404
	CodeTooManyRequests = 429
	CodeInternal        = 500
)
