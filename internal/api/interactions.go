package api

import (
	"net/http"
	"time"

	"redline-garage/pitwall/internal/auth"
	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/models/dtos"
)

// GetInteractionsHandler handles GET /api/v1/vehicles/{vehicleID}/interactions.
// hasLiked is only meaningful for a signed-in viewer.
func GetInteractionsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		resp, err := deps.Services.Interaction.GetVehicleInteractions(r.Context(), vehicleID, auth.UserIDFrom(r.Context()))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Interactions fetched", resp)
	}
}

// ToggleLikeHandler handles POST /api/v1/vehicles/{vehicleID}/like
func ToggleLikeHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		resp, err := deps.Services.Interaction.ToggleLike(r.Context(), auth.UserIDFrom(r.Context()), vehicleID)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Like toggled", resp)
	}
}

// AddCommentHandler handles POST /api/v1/vehicles/{vehicleID}/comments
func AddCommentHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		vehicleID, err := pathID(r, "vehicleID", constants.ErrCodeVehicleNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		var req dtos.CommentRequest
		if err := decodeAndValidate(deps, r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		comment, err := deps.Services.Interaction.AddComment(r.Context(), auth.UserIDFrom(r.Context()), vehicleID, req.Body)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Comment added", comment, http.StatusCreated)
	}
}

// DeleteCommentHandler handles DELETE /api/v1/comments/{commentID}
func DeleteCommentHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		commentID, err := pathID(r, "commentID", constants.ErrCodeCommentNotFound)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		if err := deps.Services.Interaction.DeleteComment(r.Context(), auth.UserIDFrom(r.Context()), commentID); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Comment deleted", nil)
	}
}
