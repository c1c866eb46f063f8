package response

// AppError 业务错误，携带响应码与对外消息。
// Err 保留底层原因，仅进日志不出接口。
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus 对应的 HTTP 状态码
func (e *AppError) HTTPStatus() int {
	return httpStatus(e.Code)
}

// WrapError 包装错误
func WrapError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
