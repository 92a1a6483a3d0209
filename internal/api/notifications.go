package api

import (
	"net/http"
	"time"

	"redline-garage/pitwall/internal/auth"
	"redline-garage/pitwall/internal/common"
	"redline-garage/pitwall/internal/models/dtos"
)

// ListNotificationsHandler handles GET /api/v1/me/notifications. Listing
// marks the returned notifications read.
func ListNotificationsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		notifications, err := deps.Services.Notification.ListNotifications(r.Context(), auth.UserIDFrom(r.Context()))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Notifications fetched", notifications)
	}
}

// UnreadCountHandler handles GET /api/v1/me/notifications/unread-count
func UnreadCountHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		count, err := deps.Services.Notification.UnreadCount(r.Context(), auth.UserIDFrom(r.Context()))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Unread count fetched", count)
	}
}

// MarkNotificationsReadHandler handles POST /api/v1/me/notifications/read
func MarkNotificationsReadHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.MarkNotificationsReadRequest
		if err := decodeAndValidate(deps, r, &req); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		updated, err := deps.Services.Notification.MarkNotificationsRead(r.Context(), auth.UserIDFrom(r.Context()), req.IDs)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Notifications marked read", map[string]int64{"updated": updated})
	}
}
