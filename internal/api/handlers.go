package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/services"
)

const maxBodyBytes = 1 << 20

// decodeAndValidate reads the JSON body into dst and runs the struct tags.
// The returned error is always a VALIDATION_FAILED *services.ServiceError.
func decodeAndValidate(deps *Dependencies, r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return &services.ServiceError{
			Code:    constants.ErrCodeValidationFailed,
			Message: "Invalid request body",
			Err:     err,
		}
	}

	if err := deps.Validate.Struct(dst); err != nil {
		message := constants.GetErrorMessage(constants.ErrCodeValidationFailed)
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			message = "Invalid value for " + fieldErrs[0].Field()
		}
		return &services.ServiceError{Code: constants.ErrCodeValidationFailed, Message: message, Err: err}
	}
	return nil
}

// pathID parses a positive numeric URL parameter. A malformed id reads as
// notFoundCode so guessing ids behaves like a missing row.
func pathID(r *http.Request, name, notFoundCode string) (uint, error) {
	id, err := common.ParseID(chi.URLParam(r, name))
	if err != nil {
		return 0, &services.ServiceError{Code: notFoundCode, Message: constants.GetErrorMessage(notFoundCode), Err: err}
	}
	return id, nil
}

// queryInt returns the integer query parameter, or 0 when it is absent or
// malformed.
func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return n
}
