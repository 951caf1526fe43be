package user

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"terminal-terrace/catalog-service/internal/dto"
	res "terminal-terrace/catalog-service/internal/response"
)

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GenerateUsers 生成随机用户
// @Summary 生成随机用户
// @Description 并发请求 randomuser.me 获取一批身份并写入 users 表，用户名已存在的会被跳过。
// @Tags User
// @Produce json
// @Success 200 {object} response.GenerateBody
// @Failure 500 {object} response.GenerateBody "上游或数据库错误"
// @Router /generate-users [get]
func (h *UserHandler) GenerateUsers(c *gin.Context) {
	result, err := h.service.GenerateUsers(c.Request.Context())
	if err != nil {
		dto.GenerateErrorResponse(c, err)
		return
	}

	dto.GenerateSuccessResponse(c,
		fmt.Sprintf("Generated %d random users", result.Requested),
		res.WithInserted(result.Inserted),
		res.WithSkipped(result.Skipped),
	)
}
