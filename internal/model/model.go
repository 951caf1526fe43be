package model

import (
	"gorm.io/gorm"

	"terminal-terrace/catalog-service/internal/model/product"
	"terminal-terrace/catalog-service/internal/model/user"
)

// InitTable 自动迁移数据库表结构，表已存在时不做破坏性修改
func InitTable(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&product.Product{},
	)
}
