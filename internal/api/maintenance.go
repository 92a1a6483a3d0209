package api

import (
	"context"
	"net/http"
	"time"

	"redline-garage/pitwall/internal/auth"
	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/models/dtos"
)

// GetMaintenanceHandler handles GET /api/v1/vehicles/{vehicleID}/maintenance.
// Without ?all=true only overdue and due-soon items are returned.
func GetMaintenanceHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		var items []dtos.ScheduleItemResponse
		if r.URL.Query().Get("all") == "true" {
			items, err = deps.Services.Schedule.ComputeFullSchedule(r.Context(), vehicleID)
		} else {
			items, err = deps.Services.Schedule.ComputeUpcomingMaintenance(r.Context(), vehicleID)
		}
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Maintenance schedule fetched", items)
	}
}

// SeedScheduleHandler handles POST /api/v1/vehicles/{vehicleID}/maintenance/seed
func SeedScheduleHandler(deps *Dependencies) http.HandlerFunc {
	return vehicleScheduleAction("Factory schedule seeded", deps.Services.Schedule.SeedSchedule)
}

// ConservativePresetHandler handles POST /api/v1/vehicles/{vehicleID}/maintenance/conservative
func ConservativePresetHandler(deps *Dependencies) http.HandlerFunc {
	return vehicleScheduleAction("Conservative intervals applied", deps.Services.Schedule.ApplyConservativePreset)
}

// ResetScheduleHandler handles POST /api/v1/vehicles/{vehicleID}/maintenance/reset
func ResetScheduleHandler(deps *Dependencies) http.HandlerFunc {
	return vehicleScheduleAction("Schedule reset to factory", deps.Services.Schedule.ResetToFactory)
}

func vehicleScheduleAction(
	message string,
	action func(ctx context.Context, userID string, vehicleID uint) ([]dtos.ScheduleItemResponse, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		items, err := action(r.Context(), auth.UserIDFrom(r.Context()), vehicleID)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, message, items)
	}
}

// AddScheduleItemHandler handles POST /api/v1/vehicles/{vehicleID}/maintenance/items
func AddScheduleItemHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		var req dtos.AddScheduleItemRequest
		if err := decodeAndValidate(deps, r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		item, err := deps.Services.Schedule.AddItem(r.Context(), auth.UserIDFrom(r.Context()), vehicleID, req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Maintenance item added", item, http.StatusCreated)
	}
}

// SetupScheduleHandler handles POST /api/v1/vehicles/{vehicleID}/maintenance/setup
func SetupScheduleHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		var req dtos.SaveScheduleRequest
		if err := decodeAndValidate(deps, r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		items, err := deps.Services.Schedule.SaveCustomSchedule(r.Context(), auth.UserIDFrom(r.Context()), vehicleID, req.Items)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Custom schedule saved", items, http.StatusCreated)
	}
}

// UpdateScheduleHandler handles PATCH /api/v1/vehicles/{vehicleID}/maintenance
func UpdateScheduleHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		var req dtos.UpdateScheduleRequest
		if err := decodeAndValidate(deps, r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		items, err := deps.Services.Schedule.UpdateSchedule(r.Context(), auth.UserIDFrom(r.Context()), vehicleID, req.Items)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Schedule updated", items)
	}
}

// EditIntervalHandler handles PATCH /api/v1/maintenance/{itemID}
func EditIntervalHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		itemID, err := pathID(r, "itemID", constants.ErrCodeScheduleItemNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		var req dtos.EditIntervalRequest
		if err := decodeAndValidate(deps, r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		item, err := deps.Services.Schedule.EditInterval(r.Context(), auth.UserIDFrom(r.Context()), itemID, req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Interval updated", item)
	}
}

// ToggleScheduleItemHandler handles POST /api/v1/maintenance/{itemID}/toggle
func ToggleScheduleItemHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		itemID, err := pathID(r, "itemID", constants.ErrCodeScheduleItemNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		item, err := deps.Services.Schedule.ToggleActive(r.Context(), auth.UserIDFrom(r.Context()), itemID)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Maintenance item toggled", item)
	}
}

// DeleteScheduleItemHandler handles DELETE /api/v1/maintenance/{itemID}
func DeleteScheduleItemHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		itemID, err := pathID(r, "itemID", constants.ErrCodeScheduleItemNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		if err := deps.Services.Schedule.DeleteItem(r.Context(), auth.UserIDFrom(r.Context()), itemID); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Maintenance item deleted", nil)
	}
}
