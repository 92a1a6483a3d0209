package gorm

import "time"

// VehicleLike is unique per (vehicle, user).
type VehicleLike struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	VehicleID uint      `gorm:"column:vehicle_id;uniqueIndex:idx_vehicle_likes_vehicle_user;not null"`
	UserID    string    `gorm:"column:user_id;uniqueIndex:idx_vehicle_likes_vehicle_user;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (VehicleLike) TableName() string {
	return "vehicle_likes"
}

type VehicleComment struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	VehicleID uint      `gorm:"column:vehicle_id;index;not null"`
	UserID    string    `gorm:"column:user_id;not null"`
	Body      string    `gorm:"column:body;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	User User `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (VehicleComment) TableName() string {
	return "vehicle_comments"
}

// Notification tells a vehicle owner about someone else's like or comment.
type Notification struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	UserID    string    `gorm:"column:user_id;index;not null"`
	ActorID   string    `gorm:"column:actor_id;not null"`
	Type      string    `gorm:"column:type;not null"`
	VehicleID uint      `gorm:"column:vehicle_id;not null"`
	CommentID *uint     `gorm:"column:comment_id"`
	IsRead    bool      `gorm:"column:is_read;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index"`

	Actor   User    `gorm:"foreignKey:ActorID"`
	Vehicle Vehicle `gorm:"foreignKey:VehicleID"`
}

// TableName specifies the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

// AllModels lists every table in dependency order for AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Vehicle{},
		&VehiclePhoto{},
		&MaintenanceScheduleItem{},
		&ServiceRecord{},
		&ServiceRecordStep{},
		&StepPhoto{},
		&ServiceDocument{},
		&VehicleLike{},
		&VehicleComment{},
		&Notification{},
	}
}
