package response

// ErrorBody 查询类接口的错误响应
type ErrorBody struct {
	Error string `json:"error"`
}

// GenerateBody 数据生成接口的响应
type GenerateBody struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
	Inserted *int   `json:"inserted,omitempty"`
	Skipped  *int   `json:"skipped,omitempty"`
}

type GenerateOption func(*GenerateBody)

func WithInserted(n int) GenerateOption {
	return func(b *GenerateBody) {
		b.Inserted = &n
	}
}

func WithSkipped(n int) GenerateOption {
	return func(b *GenerateBody) {
		b.Skipped = &n
	}
}

func GenerateSuccess(message string, opts ...GenerateOption) GenerateBody {
	body := GenerateBody{Success: true, Message: message}
	for _, opt := range opts {
		opt(&body)
	}
	return body
}

func GenerateFailure(err error) GenerateBody {
	return GenerateBody{Success: false, Error: err.Error()}
}
