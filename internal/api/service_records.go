package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"redline-garage/pitwall/internal/auth"
	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/logging"
	"redline-garage/pitwall/internal/models/dtos"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ListServiceRecordsHandler handles GET /api/v1/vehicles/{vehicleID}/service-records?category=
func ListServiceRecordsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		records, err := deps.Services.ServiceRecord.ListServiceRecords(r.Context(), vehicleID, r.URL.Query().Get("category"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Service records fetched", records)
	}
}

// GetServiceRecordHandler handles GET /api/v1/service-records/{recordID}
func GetServiceRecordHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		recordID, err := pathID(r, "recordID", constants.ErrCodeServiceRecordNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		record, err := deps.Services.ServiceRecord.GetServiceRecord(r.Context(), recordID)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Service record fetched", record)
	}
}

// ExportServiceRecordsHandler handles GET /api/v1/vehicles/{vehicleID}/service-records/export
func ExportServiceRecordsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		export, err := deps.Services.ServiceRecord.ExportServiceRecords(r.Context(), vehicleID)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(export.Content); err != nil {
			logging.Warn("Failed to write export", "vehicle_id", vehicleID, "error", err)
		}
	}
}

// AddServiceRecordHandler handles POST /api/v1/vehicles/{vehicleID}/service-records
func AddServiceRecordHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		var req dtos.ServiceRecordRequest
		if err := decodeAndValidate(deps, r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		result, err := deps.Services.ServiceRecord.AddServiceRecord(r.Context(), auth.UserIDFrom(r.Context()), vehicleID, req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Service record logged", result, http.StatusCreated)
	}
}

// UpdateServiceRecordHandler handles PUT /api/v1/service-records/{recordID}
func UpdateServiceRecordHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		recordID, err := pathID(r, "recordID", constants.ErrCodeServiceRecordNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		var req dtos.ServiceRecordRequest
		if err := decodeAndValidate(deps, r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		result, err := deps.Services.ServiceRecord.UpdateServiceRecord(r.Context(), auth.UserIDFrom(r.Context()), recordID, req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Service record updated", result)
	}
}

// DeleteServiceRecordHandler handles DELETE /api/v1/service-records/{recordID}
func DeleteServiceRecordHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		recordID, err := pathID(r, "recordID", constants.ErrCodeServiceRecordNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		if err := deps.Services.ServiceRecord.DeleteServiceRecord(r.Context(), auth.UserIDFrom(r.Context()), recordID); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Service record deleted", nil)
	}
}
