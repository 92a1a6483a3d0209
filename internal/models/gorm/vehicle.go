package gorm

import (
	"strconv"
	"time"
)

type Vehicle struct {
	ID                uint      `gorm:"column:id;primaryKey"`
	Year              int       `gorm:"column:year;not null"`
	Make              string    `gorm:"column:make;not null"`
	Model             string    `gorm:"column:model;not null"`
	CurrentMileage    int       `gorm:"column:current_mileage;not null"`
	LastMileageUpdate time.Time `gorm:"column:last_mileage_update"`
	OwnerID           string    `gorm:"column:owner_id;index;not null"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Owner  User           `gorm:"foreignKey:OwnerID"`
	Photos []VehiclePhoto `gorm:"foreignKey:VehicleID"`
}

// TableName specifies the table name for GORM
func (Vehicle) TableName() string {
	return "vehicles"
}

// DisplayName is "<year> <make> <model>".
func (v Vehicle) DisplayName() string {
	return strconv.Itoa(v.Year) + " " + v.Make + " " + v.Model
}

type VehiclePhoto struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	VehicleID   uint      `gorm:"column:vehicle_id;index;not null"`
	FileURL     string    `gorm:"column:file_url;not null"`
	FileKey     string    `gorm:"column:file_key;not null"`
	Description *string   `gorm:"column:description"`
	IsPrimary   bool      `gorm:"column:is_primary"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (VehiclePhoto) TableName() string {
	return "vehicle_photos"
}
