package gorm

import (
	"time"

	"gorm.io/datatypes"
)

// NewDate truncates t to a date-only column value.
func NewDate(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// NewDatePtr is NewDate for nullable columns.
func NewDatePtr(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}

// DateTime converts a date column back to midnight UTC.
func DateTime(d datatypes.Date) time.Time {
	t := time.Time(d)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateTimePtr is DateTime for nullable columns.
func DateTimePtr(d *datatypes.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := DateTime(*d)
	return &t
}
