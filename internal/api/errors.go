package api

import (
	"errors"
	"net/http"
	"time"

	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/logging"
	"redline-garage/pitwall/internal/services"
)

// respondServiceError maps service errors to appropriate HTTP responses.
// Only the public message is sent; wrapped causes stay in the logs.
func respondServiceError(w http.ResponseWriter, initTime time.Time, err error) {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		common.RespondError(w, initTime, nil, svcErr.Message, mapErrorCodeToHTTPStatus(svcErr.Code))
		return
	}

	logging.Error("Unhandled handler error", "error", err)
	common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeInternal), http.StatusInternalServerError)
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(errorCode string) int {
	switch errorCode {
	case constants.ErrCodeValidationFailed:
		return http.StatusBadRequest

	case constants.ErrCodeUnauthenticated:
		return http.StatusUnauthorized

	case constants.ErrCodeForbidden:
		return http.StatusForbidden

	case constants.ErrCodeVehicleNotFound,
		constants.ErrCodeScheduleItemNotFound,
		constants.ErrCodeServiceRecordNotFound,
		constants.ErrCodeCommentNotFound,
		constants.ErrCodePhotoNotFound:
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
