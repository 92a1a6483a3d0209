package gorm

import (
	"time"

	"gorm.io/datatypes"
)

type ServiceRecord struct {
	ID             uint           `gorm:"column:id;primaryKey"`
	VehicleID      uint           `gorm:"column:vehicle_id;index;not null"`
	Title          string         `gorm:"column:title;not null"`
	Category       string         `gorm:"column:category;not null"`
	ServiceDate    datatypes.Date `gorm:"column:service_date;index;not null"`
	Mileage        int            `gorm:"column:mileage;not null"`
	Location       *string        `gorm:"column:location"`
	Description    *string        `gorm:"column:description"`
	PartsBrand     *string        `gorm:"column:parts_brand"`
	PartNumber     *string        `gorm:"column:part_number"`
	LaborCost      *float64       `gorm:"column:labor_cost"`
	PartsCost      *float64       `gorm:"column:parts_cost"`
	TotalCost      *float64       `gorm:"column:total_cost"`
	Notes          *string        `gorm:"column:notes"`
	ScheduleItemID *uint          `gorm:"column:schedule_item_id"`
	CreatedByID    string         `gorm:"column:created_by_id"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Vehicle   *Vehicle            `gorm:"foreignKey:VehicleID"`
	Steps     []ServiceRecordStep `gorm:"foreignKey:ServiceRecordID"`
	Documents []ServiceDocument   `gorm:"foreignKey:ServiceRecordID"`
}

// TableName specifies the table name for GORM
func (ServiceRecord) TableName() string {
	return "service_records"
}

type ServiceRecordStep struct {
	ID              uint    `gorm:"column:id;primaryKey"`
	ServiceRecordID uint    `gorm:"column:service_record_id;index;not null"`
	StepNumber      int     `gorm:"column:step_number;not null"`
	Title           string  `gorm:"column:title;not null"`
	Description     *string `gorm:"column:description"`

	Photos []StepPhoto `gorm:"foreignKey:StepID"`
}

// TableName specifies the table name for GORM
func (ServiceRecordStep) TableName() string {
	return "service_record_steps"
}

type StepPhoto struct {
	ID      uint   `gorm:"column:id;primaryKey"`
	StepID  uint   `gorm:"column:step_id;index;not null"`
	FileURL string `gorm:"column:file_url;not null"`
	FileKey string `gorm:"column:file_key;not null"`
}

// TableName specifies the table name for GORM
func (StepPhoto) TableName() string {
	return "service_step_photos"
}

type ServiceDocument struct {
	ID              uint    `gorm:"column:id;primaryKey"`
	ServiceRecordID uint    `gorm:"column:service_record_id;index;not null"`
	FileURL         string  `gorm:"column:file_url;not null"`
	FileKey         string  `gorm:"column:file_key;not null"`
	FileType        *string `gorm:"column:file_type"`
}

// TableName specifies the table name for GORM
func (ServiceDocument) TableName() string {
	return "service_documents"
}
