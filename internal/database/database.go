package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"terminal-terrace/catalog-service/config"
)

// Open 根据配置打开数据库连接
// 连接由调用方持有，启动时打开一次并注入到各个 repository
func Open(conf config.DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	setDefaults(&conf)

	dialector, err := buildDialector(conf)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: getLogger(log, conf.LogLevel),
	})
	if err != nil {
		return nil, errors.Wrap(err, "连接数据库失败")
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "获取数据库实例失败")
	}

	sqlDB.SetMaxIdleConns(conf.MaxIdleConns)
	sqlDB.SetMaxOpenConns(conf.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(conf.MaxLifetime) * time.Second)

	log.WithField("driver", conf.Driver).Info("数据库连接成功")
	return db, nil
}

// Close 关闭底层连接池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func buildDialector(c config.DatabaseConfig) (gorm.Dialector, error) {
	switch c.Driver {
	case "sqlite":
		if dir := filepath.Dir(c.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, errors.Wrap(err, "创建数据库目录失败")
			}
		}
		// 外键与忙等待；写操作由 SQLite 串行化
		return sqlite.Open(c.Path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"), nil
	case "postgres":
		sslmode := "disable"
		if c.SSLMode {
			sslmode = "require"
		}
		return postgres.Open(fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			c.Host, c.Username, c.Password, c.Database, c.Port, sslmode)), nil
	case "mysql":
		return mysql.Open(fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.Username, c.Password, c.Host, c.Port, c.Database)), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %q", c.Driver)
	}
}

// setDefaults 设置默认值
func setDefaults(c *config.DatabaseConfig) {
	if c.Driver == "" {
		c.Driver = "sqlite"
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		switch c.Driver {
		case "postgres":
			c.Port = 5432
		case "mysql":
			c.Port = 3306
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.Driver == "sqlite" {
		// 单个文件数据库，多连接只会带来 SQLITE_BUSY
		c.MaxOpenConns = 1
		c.MaxIdleConns = 1
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 10
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 100
	}
	if c.MaxLifetime == 0 {
		c.MaxLifetime = 3600
	}
}

// getLogger 获取日志配置，SQL 日志写入 logrus
func getLogger(log *logrus.Logger, level string) logger.Interface {
	var mode logger.LogLevel
	switch level {
	case "silent":
		mode = logger.Silent
	case "error":
		mode = logger.Error
	case "warn":
		mode = logger.Warn
	case "info":
		mode = logger.Info
	default:
		mode = logger.Warn
	}

	return logger.New(log, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  mode,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
