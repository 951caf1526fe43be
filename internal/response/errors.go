package response

import "net/http"

// BusinessError 返回给客户端的错误：HTTP 状态码 + 提示信息 + 原始错误
type BusinessError struct {
	Status int
	Msg    string
	Err    error
}

type ErrorOption func(*BusinessError)

func WithStatus(status int) ErrorOption {
	return func(be *BusinessError) {
		be.Status = status
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

// NewBusinessError 默认 500
func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Status: http.StatusInternalServerError,
		Msg:    "internal server error",
		Err:    nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}
