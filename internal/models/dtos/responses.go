package dtos

import (
	"time"

	"redline-garage/pitwall/internal/maintenance"
)

// DateLayout is the wire format of date-only fields.
const DateLayout = "2006-01-02"

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

type UserSummary struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

type PhotoResponse struct {
	ID          uint    `json:"id"`
	FileURL     string  `json:"file_url"`
	FileKey     string  `json:"file_key"`
	Description *string `json:"description"`
	IsPrimary   bool    `json:"is_primary"`
}

type VehicleSummary struct {
	ID    uint   `json:"id"`
	Year  int    `json:"year"`
	Make  string `json:"make"`
	Model string `json:"model"`
}

type VehicleResponse struct {
	VehicleSummary
	CurrentMileage    int             `json:"current_mileage"`
	LastMileageUpdate time.Time       `json:"last_mileage_update"`
	OwnerID           string          `json:"owner_id"`
	Photos            []PhotoResponse `json:"photos"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ScheduleItemResponse is a schedule item together with its computed status.
type ScheduleItemResponse struct {
	ID                  uint    `json:"id"`
	VehicleID           uint    `json:"vehicle_id"`
	Title               string  `json:"title"`
	Category            string  `json:"category"`
	Description         *string `json:"description"`
	IntervalMiles       *int    `json:"interval_miles"`
	IntervalMonths      *int    `json:"interval_months"`
	LastServicedMileage *int    `json:"last_serviced_mileage"`
	LastServicedDate    *string `json:"last_serviced_date"`
	LastServiceRecordID *uint   `json:"last_service_record_id"`
	NextDueMileage      *int    `json:"next_due_mileage"`
	NextDueDate         *string `json:"next_due_date"`
	IsActive            bool    `json:"is_active"`
	maintenance.Status
}

func (s ScheduleItemResponse) SortKey() maintenance.SortKey {
	return maintenance.SortKey{Title: s.Title, IsActive: s.IsActive, Status: s.Status}
}

type StepResponse struct {
	ID          uint           `json:"id"`
	StepNumber  int            `json:"step_number"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Photos      []FileResponse `json:"photos"`
}

type FileResponse struct {
	ID      uint   `json:"id"`
	FileURL string `json:"file_url"`
	FileKey string `json:"file_key"`
}

type DocumentResponse struct {
	ID       uint    `json:"id"`
	FileURL  string  `json:"file_url"`
	FileKey  string  `json:"file_key"`
	FileType *string `json:"file_type"`
}

type ServiceRecordResponse struct {
	ID             uint               `json:"id"`
	VehicleID      uint               `json:"vehicle_id"`
	Title          string             `json:"title"`
	Category       string             `json:"category"`
	ServiceDate    string             `json:"service_date"`
	Mileage        int                `json:"mileage"`
	Location       *string            `json:"location"`
	Description    *string            `json:"description"`
	PartsBrand     *string            `json:"parts_brand"`
	PartNumber     *string            `json:"part_number"`
	LaborCost      *float64           `json:"labor_cost"`
	PartsCost      *float64           `json:"parts_cost"`
	TotalCost      *float64           `json:"total_cost"`
	Notes          *string            `json:"notes"`
	ScheduleItemID *uint              `json:"schedule_item_id"`
	Steps          []StepResponse     `json:"steps"`
	Documents      []DocumentResponse `json:"documents"`
	CreatedAt      time.Time          `json:"created_at"`
}

// ServiceRecordResult is returned by add and update so the client can refresh
// the schedule item the record was applied to.
type ServiceRecordResult struct {
	Record      ServiceRecordResponse `json:"record"`
	AppliedItem *ScheduleItemResponse `json:"applied_item"`
}

type GarageStatsResponse struct {
	VehicleCount         int     `json:"vehicle_count"`
	TotalSpend           float64 `json:"total_spend"`
	TotalServiceRecords  int64   `json:"total_service_records"`
	OpenMaintenanceCount int     `json:"open_maintenance_count"`
}

type FleetAlert struct {
	Vehicle VehicleSummary         `json:"vehicle"`
	Alerts  []ScheduleItemResponse `json:"alerts"`
}

type ActivityEntry struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	ServiceDate string         `json:"service_date"`
	Mileage     int            `json:"mileage"`
	TotalCost   *float64       `json:"total_cost"`
	Vehicle     VehicleSummary `json:"vehicle"`
}

type LikeToggleResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

type CommentResponse struct {
	ID        uint        `json:"id"`
	VehicleID uint        `json:"vehicle_id"`
	Body      string      `json:"body"`
	CreatedAt time.Time   `json:"created_at"`
	User      UserSummary `json:"user"`
}

type VehicleInteractionsResponse struct {
	LikeCount int64             `json:"like_count"`
	HasLiked  bool              `json:"has_liked"`
	Comments  []CommentResponse `json:"comments"`
}

type NotificationResponse struct {
	ID        uint           `json:"id"`
	Type      string         `json:"type"`
	IsRead    bool           `json:"is_read"`
	CommentID *uint          `json:"comment_id"`
	CreatedAt time.Time      `json:"created_at"`
	Actor     UserSummary    `json:"actor"`
	Vehicle   VehicleSummary `json:"vehicle"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type CategoryOption struct {
	Value  string   `json:"value"`
	Label  string   `json:"label"`
	Titles []string `json:"titles"`
	Brands []string `json:"brands"`
}

type OptionsResponse struct {
	Categories []CategoryOption `json:"categories"`
	Locations  []string         `json:"locations"`
}

type ComponentStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type HealthCheckResponse struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentStatus `json:"components"`
	UpSince    time.Time                  `json:"up_since"`
	Uptime     string                     `json:"uptime"`
}
