package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"terminal-terrace/catalog-service/config"
)

// New 根据日志配置创建 logrus 实例
func New(conf config.LogConfig) (*logrus.Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(conf.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	switch conf.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	out, err := openOutput(conf)
	if err != nil {
		return nil, err
	}
	log.SetOutput(out)

	return log, nil
}

func openOutput(conf config.LogConfig) (io.Writer, error) {
	if conf.Output != "file" {
		return os.Stdout, nil
	}
	if conf.Path == "" {
		return nil, errors.New("log.path is required when log.output is file")
	}
	if err := os.MkdirAll(filepath.Dir(conf.Path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}
	f, err := os.OpenFile(conf.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", conf.Path)
	}
	return f, nil
}

// Discard 测试用，丢弃所有输出
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
