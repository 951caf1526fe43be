// config/config.go - 配置管理文件
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// defaults 内置默认值，配置文件缺失时直接使用
var defaults = map[string]any{
	"server.host":             "",
	"server.port":             8000,
	"server.mode":             "debug",
	"server.read_timeout":     "15s",
	"server.write_timeout":    "60s",
	"server.shutdown_timeout": "10s",
	"server.banner":           "Hello Ipssi v2!",

	"database.driver":         "sqlite",
	"database.path":           "./database.db",
	"database.log_level":      "warn",
	"database.max_idle_conns": 1,
	"database.max_open_conns": 1,
	"database.max_lifetime":   3600,

	"upstream.random_user_url": "https://randomuser.me/api/",
	"upstream.products_url":    "https://fakestoreapi.com/products",
	"upstream.timeout":         "10s",
	"upstream.user_batch":      5,

	"log.level":  "info",
	"log.format": "text",
	"log.output": "stdout",
}

// minDuration 时长类配置的下限
const minDuration = time.Millisecond

// Load 加载配置文件
// 优先级: 默认值 < 配置文件 < APP_ 环境变量 < 简化环境变量
func Load(configPath string) (*AppConfig, error) {
	// 首先加载 .env 文件到环境变量
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("警告: 无法加载 .env 文件: %v", err)
	}

	k := koanf.New(".")

	// 1. 默认值
	for key, v := range defaults {
		if err := k.Set(key, v); err != nil {
			return nil, fmt.Errorf("设置默认配置失败: %w", err)
		}
	}

	// 2. 加载配置文件（不存在时跳过）
	if configPath != "" {
		if _, statErr := os.Stat(configPath); statErr == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("加载配置文件失败: %w", err)
			}
		} else {
			log.Printf("配置文件 %s 不存在，使用默认配置", configPath)
		}
	}

	// 3. 加载标准环境变量（APP_ 前缀）
	// 例如：APP_DATABASE_PATH -> database.path
	if err := k.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "APP_")), "_", ".", 1)
	}), nil); err != nil {
		log.Printf("加载环境变量失败: %v", err)
	}

	// 4. 加载简化的环境变量名
	loadCustomEnvVars(k)

	// 5. 解析到结构体
	conf := &AppConfig{}
	if err := k.Unmarshal("", conf); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// 6. 验证配置
	if err := validateConfig(conf); err != nil {
		return nil, err
	}

	return conf, nil
}

// loadCustomEnvVars 加载自定义环境变量名（简化命名）
func loadCustomEnvVars(k *koanf.Koanf) {
	aliases := map[string]string{
		"PORT":        "server.port",
		"DB_DRIVER":   "database.driver",
		"DB_PATH":     "database.path",
		"DB_HOST":     "database.host",
		"DB_PORT":     "database.port",
		"DB_USERNAME": "database.username",
		"DB_PASSWORD": "database.password",
		"DB_NAME":     "database.database",
		"LOG_LEVEL":   "log.level",
	}
	for name, key := range aliases {
		if v := os.Getenv(name); v != "" {
			k.Set(key, v)
		}
	}

	if v := os.Getenv("DB_SSLMODE"); v != "" {
		k.Set("database.sslmode", v == "true")
	}

	// 前端 URL（用于 CORS）
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		k.Set("cors.allow_origins", []string{v})
	}
}

// validateConfig 验证配置的有效性
func validateConfig(conf *AppConfig) error {
	switch conf.Database.Driver {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("不支持的数据库驱动: %q", conf.Database.Driver)
	}

	if conf.Database.Driver == "sqlite" && conf.Database.Path == "" {
		return errors.New("database.path 不能为空")
	}

	if conf.Server.Port <= 0 || conf.Server.Port > 65535 {
		return fmt.Errorf("server.port 无效: %d", conf.Server.Port)
	}

	if conf.Upstream.UserBatch <= 0 {
		return fmt.Errorf("upstream.user_batch 必须为正数: %d", conf.Upstream.UserBatch)
	}

	durations := map[string]time.Duration{
		"server.read_timeout":     conf.Server.ReadTimeout,
		"server.write_timeout":    conf.Server.WriteTimeout,
		"server.shutdown_timeout": conf.Server.ShutdownTimeout,
		"upstream.timeout":        conf.Upstream.Timeout,
	}
	for key, d := range durations {
		// 不带单位的数字会被解析为纳秒
		if d < minDuration {
			return fmt.Errorf("%s 无效: %v，需要带单位的时长，例如 10s", key, d)
		}
	}

	if conf.Database.Driver != "sqlite" && conf.Database.Password == "" {
		log.Println("⚠️  Warning: database.password is empty, please set DB_PASSWORD environment variable")
	}

	return nil
}

// MustLoad 加载配置，失败则退出
func MustLoad(configPath string) *AppConfig {
	conf, err := Load(configPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	return conf
}
