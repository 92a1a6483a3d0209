package api

import (
	"net/http"
	"time"

	"redline-garage/pitwall/internal/auth"
	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/models/dtos"
	"redline-garage/pitwall/internal/services"
)

// GetOptionsHandler handles GET /api/v1/options
func GetOptionsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		common.RespondSuccess(w, initTime, "Options fetched", services.ServiceOptions())
	}
}

// GetMeHandler handles GET /api/v1/me
func GetMeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeUnauthenticated), http.StatusUnauthorized)
			return
		}

		user, err := deps.Services.User.GetUser(r.Context(), claims.UserID())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		if user == nil {
			name := claims.Name()
			user = &dtos.UserSummary{ID: claims.UserID(), Name: &name}
		}

		common.RespondSuccess(w, initTime, "User fetched", user)
	}
}

// ListPublicVehiclesHandler handles GET /api/v1/vehicles?limit=
func ListPublicVehiclesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicles, err := deps.Services.Vehicle.ListPublicVehicles(r.Context(), queryInt(r, "limit"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Vehicles fetched", vehicles)
	}
}

// ListMyVehiclesHandler handles GET /api/v1/me/vehicles
func ListMyVehiclesHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicles, err := deps.Services.Vehicle.ListVehicles(r.Context(), auth.UserIDFrom(r.Context()))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Vehicles fetched", vehicles)
	}
}

// GetVehicleHandler handles GET /api/v1/vehicles/{vehicleID}
func GetVehicleHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		vehicle, err := deps.Services.Vehicle.GetVehicle(r.Context(), vehicleID)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Vehicle fetched", vehicle)
	}
}

// CreateVehicleHandler handles POST /api/v1/vehicles
func CreateVehicleHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateVehicleRequest
		if err := decodeAndValidate(deps, r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		vehicle, err := deps.Services.Vehicle.CreateVehicle(r.Context(), auth.UserIDFrom(r.Context()), req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Vehicle created", vehicle, http.StatusCreated)
	}
}

// UpdateVehicleHandler handles PUT /api/v1/vehicles/{vehicleID}
func UpdateVehicleHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		var req dtos.UpdateVehicleRequest
		if err := decodeAndValidate(deps, r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		vehicle, err := deps.Services.Vehicle.UpdateVehicle(r.Context(), auth.UserIDFrom(r.Context()), vehicleID, req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Vehicle updated", vehicle)
	}
}

// DeleteVehicleHandler handles DELETE /api/v1/vehicles/{vehicleID}
func DeleteVehicleHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		if err := deps.Services.Vehicle.DeleteVehicle(r.Context(), auth.UserIDFrom(r.Context()), vehicleID); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Vehicle deleted", nil)
	}
}

// AddPhotosHandler handles POST /api/v1/vehicles/{vehicleID}/photos
func AddPhotosHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		var req dtos.AddPhotosRequest
		if err := decodeAndValidate(deps, r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		vehicle, err := deps.Services.Vehicle.AddPhotos(r.Context(), auth.UserIDFrom(r.Context()), vehicleID, req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Photos added", vehicle, http.StatusCreated)
	}
}

// DeletePhotoHandler handles DELETE /api/v1/photos/{photoID}
func DeletePhotoHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		photoID, err := pathID(r, "photoID", constants.ErrCodePhotoNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		if err := deps.Services.Vehicle.DeletePhoto(r.Context(), auth.UserIDFrom(r.Context()), photoID); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Photo deleted", nil)
	}
}
