package gorm

import "time"

// User mirrors an identity-provider account. The id is the token subject.
type User struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      *string   `gorm:"column:name"`
	Email     *string   `gorm:"column:email"`
	Image     *string   `gorm:"column:image"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
