package gorm

import (
	"time"

	"gorm.io/datatypes"

	"redline-garage/pitwall/internal/maintenance"
)

// MaintenanceScheduleItem is one recurring task on a vehicle's schedule.
// LastServiceRecordID is a plain reference; deleting the record only nulls it.
type MaintenanceScheduleItem struct {
	ID                  uint            `gorm:"column:id;primaryKey"`
	VehicleID           uint            `gorm:"column:vehicle_id;index;not null"`
	Title               string          `gorm:"column:title;not null"`
	Category            string          `gorm:"column:category;not null"`
	Description         *string         `gorm:"column:description"`
	IntervalMiles       *int            `gorm:"column:interval_miles"`
	IntervalMonths      *int            `gorm:"column:interval_months"`
	LastServicedMileage *int            `gorm:"column:last_serviced_mileage"`
	LastServicedDate    *datatypes.Date `gorm:"column:last_serviced_date"`
	LastServiceRecordID *uint           `gorm:"column:last_service_record_id;index"`
	NextDueMileage      *int            `gorm:"column:next_due_mileage"`
	NextDueDate         *datatypes.Date `gorm:"column:next_due_date"`
	IsActive            bool            `gorm:"column:is_active;not null"`
	CreatedByID         string          `gorm:"column:created_by_id"`
	CreatedAt           time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (MaintenanceScheduleItem) TableName() string {
	return "maintenance_schedule_items"
}

func (m *MaintenanceScheduleItem) Interval() maintenance.Interval {
	return maintenance.Interval{Miles: m.IntervalMiles, Months: m.IntervalMonths}
}

func (m *MaintenanceScheduleItem) Due() maintenance.Due {
	return maintenance.Due{
		NextDueMileage: m.NextDueMileage,
		NextDueDate:    DateTimePtr(m.NextDueDate),
	}
}

// SetDue overwrites both next-due columns.
func (m *MaintenanceScheduleItem) SetDue(due maintenance.Due) {
	m.NextDueMileage = due.NextDueMileage
	m.NextDueDate = NewDatePtr(due.NextDueDate)
}

// Baseline is the checkpoint interval edits count from.
func (m *MaintenanceScheduleItem) Baseline(currentMileage int, today time.Time) maintenance.Baseline {
	return maintenance.ResolveBaseline(m.LastServicedMileage, DateTimePtr(m.LastServicedDate), currentMileage, today)
}
