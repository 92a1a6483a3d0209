package dtos

type PhotoInput struct {
	FileURL     string  `json:"file_url" validate:"required"`
	FileKey     string  `json:"file_key" validate:"required"`
	Description *string `json:"description"`
	IsPrimary   bool    `json:"is_primary"`
}

type CreateVehicleRequest struct {
	Year           int          `json:"year" validate:"required,min=1886,max=2100"`
	Make           string       `json:"make" validate:"required,max=64"`
	Model          string       `json:"model" validate:"required,max=64"`
	CurrentMileage int          `json:"current_mileage" validate:"min=0"`
	Photos         []PhotoInput `json:"photos" validate:"dive"`
}

type UpdateVehicleRequest struct {
	Year           *int    `json:"year" validate:"omitempty,min=1886,max=2100"`
	Make           *string `json:"make" validate:"omitempty,min=1,max=64"`
	Model          *string `json:"model" validate:"omitempty,min=1,max=64"`
	CurrentMileage *int    `json:"current_mileage" validate:"omitempty,min=0"`
}

type AddPhotosRequest struct {
	Photos            []PhotoInput `json:"photos" validate:"required,min=1,dive"`
	SetFirstAsPrimary bool         `json:"set_first_as_primary"`
}

type AddScheduleItemRequest struct {
	Title          string  `json:"title" validate:"required,max=128"`
	Category       string  `json:"category" validate:"required,oneof=fluid engine_drivetrain consumable inspection other"`
	Description    *string `json:"description"`
	IntervalMiles  *int    `json:"interval_miles" validate:"omitempty,gt=0"`
	IntervalMonths *int    `json:"interval_months" validate:"omitempty,gt=0"`
}

// SaveScheduleRequest is a complete customized schedule chosen at setup.
type SaveScheduleRequest struct {
	Items []AddScheduleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// EditIntervalRequest replaces both intervals. A null axis clears it; a null
// description keeps the current one.
type EditIntervalRequest struct {
	IntervalMiles  *int    `json:"interval_miles" validate:"omitempty,gt=0"`
	IntervalMonths *int    `json:"interval_months" validate:"omitempty,gt=0"`
	Description    *string `json:"description" validate:"omitempty,max=1000"`
}

type ScheduleItemEdit struct {
	ID uint `json:"id" validate:"required"`
	EditIntervalRequest
}

type UpdateScheduleRequest struct {
	Items []ScheduleItemEdit `json:"items" validate:"required,min=1,dive"`
}

type FileInput struct {
	FileURL string `json:"file_url" validate:"required"`
	FileKey string `json:"file_key" validate:"required"`
}

type StepInput struct {
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	Photos      []FileInput `json:"photos" validate:"dive"`
}

type DocumentInput struct {
	FileURL  string  `json:"file_url" validate:"required"`
	FileKey  string  `json:"file_key" validate:"required"`
	FileType *string `json:"file_type"`
}

type ServiceRecordRequest struct {
	Title          string          `json:"title" validate:"required,max=128"`
	Category       string          `json:"category" validate:"required,oneof=fluid engine_drivetrain consumable inspection other"`
	ServiceDate    string          `json:"service_date" validate:"required,datetime=2006-01-02"`
	Mileage        int             `json:"mileage" validate:"min=0"`
	Location       *string         `json:"location"`
	Description    *string         `json:"description"`
	PartsBrand     *string         `json:"parts_brand"`
	PartNumber     *string         `json:"part_number"`
	LaborCost      *float64        `json:"labor_cost" validate:"omitempty,min=0"`
	PartsCost      *float64        `json:"parts_cost" validate:"omitempty,min=0"`
	Notes          *string         `json:"notes"`
	ScheduleItemID *uint           `json:"schedule_item_id"`
	Steps          []StepInput     `json:"steps" validate:"dive"`
	Documents      []DocumentInput `json:"documents" validate:"dive"`
}

type CommentRequest struct {
	Body string `json:"body" validate:"required,max=2000"`
}

type MarkNotificationsReadRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1"`
}
