package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	res "terminal-terrace/catalog-service/internal/response"
)

// SuccessResponse 200，直接输出数据本身
func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// ErrorResponse 按业务错误的状态码输出 {"error": msg}
func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	if err.Err != nil {
		c.Error(err.Err)
	}
	c.JSON(err.Status, res.ErrorBody{Error: err.Msg})
}

// GenerateSuccessResponse 200 {"success": true, "message": ...}
func GenerateSuccessResponse(c *gin.Context, message string, opts ...res.GenerateOption) {
	c.JSON(http.StatusOK, res.GenerateSuccess(message, opts...))
}

// GenerateErrorResponse 500 {"success": false, "error": ...}
func GenerateErrorResponse(c *gin.Context, err error) {
	c.Error(err)
	c.JSON(http.StatusInternalServerError, res.GenerateFailure(err))
}
