package services

import (
	"context"

	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/db/repositories"
	"redline-garage/pitwall/internal/models/dtos"
)

type NotificationService struct {
	notifications *repositories.NotificationRepository
}

func NewNotificationService(notifications *repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// ListNotifications returns the newest notifications and then marks the
// unread ones read. The response shows each one as it was before the read.
func (s *NotificationService) ListNotifications(ctx context.Context, userID string) ([]dtos.NotificationResponse, error) {
	if userID == "" {
		return nil, newServiceError(constants.ErrCodeUnauthenticated)
	}

	notifications, err := s.notifications.ListRecent(ctx, userID, constants.NotificationPageSize)
	if err != nil {
		return nil, internalError("list_notifications", err)
	}

	out := make([]dtos.NotificationResponse, len(notifications))
	var unread []uint
	for i := range notifications {
		out[i] = toNotificationResponse(&notifications[i])
		if !notifications[i].IsRead {
			unread = append(unread, notifications[i].ID)
		}
	}

	if _, err := s.notifications.MarkRead(ctx, userID, unread); err != nil {
		return nil, internalError("mark_notifications_read", err)
	}
	return out, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (*dtos.UnreadCountResponse, error) {
	if userID == "" {
		return nil, newServiceError(constants.ErrCodeUnauthenticated)
	}

	count, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, internalError("count_unread", err)
	}
	return &dtos.UnreadCountResponse{Count: count}, nil
}

// MarkNotificationsRead flags the given ids read and returns how many changed.
// Ids belonging to other users are skipped.
func (s *NotificationService) MarkNotificationsRead(ctx context.Context, userID string, ids []uint) (int64, error) {
	if userID == "" {
		return 0, newServiceError(constants.ErrCodeUnauthenticated)
	}

	updated, err := s.notifications.MarkRead(ctx, userID, ids)
	if err != nil {
		return 0, internalError("mark_notifications_read", err)
	}
	return updated, nil
}
