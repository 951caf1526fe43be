package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"terminal-terrace/catalog-service/config"
	"terminal-terrace/catalog-service/internal/database"
	"terminal-terrace/catalog-service/internal/logger"
	"terminal-terrace/catalog-service/internal/model"
	"terminal-terrace/catalog-service/internal/route"
)

// @title Catalog Service API
// @version 1.0
// @description 商品与用户数据服务：从第三方 API 导入数据并提供查询与搜索。
// @BasePath /
func main() {
	// 1. 加载配置
	conf := config.MustLoad("config.yaml")

	// 2. 初始化日志
	appLog, err := logger.New(conf.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// 3. 初始化数据库连接
	db, err := database.Open(conf.Database, appLog)
	if err != nil {
		appLog.Fatalf("Failed to initialize database: %v", err)
	}

	// 4. 自动迁移数据库表
	if err := model.InitTable(db); err != nil {
		closeDatabase(appLog, db)
		appLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 5. 初始化路由（传入数据库连接）
	router := route.SetupRouter(conf, db, appLog)

	srv := &http.Server{
		Addr:         conf.Server.Addr(),
		Handler:      router,
		ReadTimeout:  conf.Server.ReadTimeout,
		WriteTimeout: conf.Server.WriteTimeout,
	}

	// 6. 启动服务器
	go func() {
		appLog.Infof("Server running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Errorf("Server forced to shutdown: %v", err)
	}

	closeDatabase(appLog, db)
}

// closeDatabase 关闭连接池，失败只记录日志
func closeDatabase(log *logrus.Logger, db *gorm.DB) {
	if err := database.Close(db); err != nil {
		log.WithError(err).Error("Failed to close database")
	}
}
