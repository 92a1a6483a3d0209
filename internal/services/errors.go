package services

import (
	"errors"
	"fmt"

	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/logging"
)

// Sentinels matched with errors.Is against any *ServiceError.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
)

// ServiceError carries one of the constants.ErrCode* codes.
type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Is maps codes onto the sentinel families.
func (e *ServiceError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Code == constants.ErrCodeUnauthenticated || e.Code == constants.ErrCodeForbidden
	case ErrNotFound:
		switch e.Code {
		case constants.ErrCodeVehicleNotFound,
			constants.ErrCodeScheduleItemNotFound,
			constants.ErrCodeServiceRecordNotFound,
			constants.ErrCodeCommentNotFound,
			constants.ErrCodePhotoNotFound:
			return true
		}
	case ErrValidation:
		return e.Code == constants.ErrCodeValidationFailed
	}
	return false
}

func newServiceError(code string) *ServiceError {
	return &ServiceError{Code: code, Message: constants.GetErrorMessage(code)}
}

func validationError(message string) *ServiceError {
	return &ServiceError{Code: constants.ErrCodeValidationFailed, Message: message}
}

// internalError logs the repository failure and hides it behind INTERNAL.
func internalError(op string, err error) *ServiceError {
	logging.Error("Service operation failed", "operation", op, "error", err.Error())
	return &ServiceError{
		Code:    constants.ErrCodeInternal,
		Message: constants.GetErrorMessage(constants.ErrCodeInternal),
		Err:     err,
	}
}
