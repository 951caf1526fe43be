package user

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	userModel "terminal-terrace/catalog-service/internal/model/user"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	// Create 用户名已存在时不写入，返回 created=false 且 err=nil
	Create(ctx context.Context, u *userModel.User) (created bool, err error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建 Repository 实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *userModel.User) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoNothing: true,
		}).
		Create(u)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to create user")
	}
	return result.RowsAffected > 0, nil
}
