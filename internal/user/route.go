package user

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册用户相关路由
func RegisterRoutes(r gin.IRouter, handler *UserHandler) {
	r.GET("/generate-users", handler.GenerateUsers)
}
