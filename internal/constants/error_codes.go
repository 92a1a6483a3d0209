package constants

// Service error codes
const (
	ErrCodeUnauthenticated       = "UNAUTHENTICATED"
	ErrCodeForbidden             = "FORBIDDEN"
	ErrCodeVehicleNotFound       = "VEHICLE_NOT_FOUND"
	ErrCodeScheduleItemNotFound  = "SCHEDULE_ITEM_NOT_FOUND"
	ErrCodeServiceRecordNotFound = "SERVICE_RECORD_NOT_FOUND"
	ErrCodeCommentNotFound       = "COMMENT_NOT_FOUND"
	ErrCodePhotoNotFound         = "PHOTO_NOT_FOUND"
	ErrCodeValidationFailed      = "VALIDATION_FAILED"
	ErrCodeInternal              = "INTERNAL"
)

var ErrorMessages = map[string]string{
	ErrCodeUnauthenticated:       "Sign in to continue",
	ErrCodeForbidden:             "You do not own this vehicle",
	ErrCodeVehicleNotFound:       "Vehicle not found",
	ErrCodeScheduleItemNotFound:  "Maintenance item not found",
	ErrCodeServiceRecordNotFound: "Service record not found",
	ErrCodeCommentNotFound:       "Comment not found",
	ErrCodePhotoNotFound:         "Photo not found",
	ErrCodeValidationFailed:      "Request failed validation",
	ErrCodeInternal:              "An unexpected error occurred",
}

func GetErrorMessage(code string) string {
	if msg, exists := ErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
