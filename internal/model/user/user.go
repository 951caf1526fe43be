package user

import "time"

// User 用户模型，仅由 /generate-users 批量写入，之后不再修改
type User struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"column:username;size:255;not null;uniqueIndex" json:"username"`
	Email    string `gorm:"column:email;type:text;not null" json:"email"`
	// 明文存储，仅为兼容旧数据；不对外输出
	Password  string    `gorm:"column:password;type:text;not null" json:"-"`
	IsAdmin   int       `gorm:"column:is_admin;not null;default:0" json:"is_admin"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
