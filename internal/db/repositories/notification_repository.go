package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"redline-garage/pitwall/internal/constants"
	gormModels "redline-garage/pitwall/internal/models/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *NotificationRepository) WithTx(tx *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: tx}
}

func (r *NotificationRepository) Create(ctx context.Context, n *gormModels.Notification) error {
	if err := r.db.WithContext(ctx).Omit("Actor", "Vehicle").Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// DeleteLikeNotifications removes like notifications from actor to owner about vehicle.
func (r *NotificationRepository) DeleteLikeNotifications(ctx context.Context, ownerID, actorID string, vehicleID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND actor_id = ? AND vehicle_id = ? AND type = ?",
			ownerID, actorID, vehicleID, constants.NotificationTypeLike).
		Delete(&gormModels.Notification{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete like notifications: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// DetachComment nulls comment_id on notifications that reference commentID.
func (r *NotificationRepository) DetachComment(ctx context.Context, commentID uint) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.Notification{}).
		Where("comment_id = ?", commentID).
		Update("comment_id", nil).Error
	if err != nil {
		return fmt.Errorf("failed to detach comment from notifications: %w", err)
	}
	return nil
}

// ListRecent returns the newest notifications for userID with actor and vehicle.
func (r *NotificationRepository) ListRecent(ctx context.Context, userID string, limit int) ([]gormModels.Notification, error) {
	var notifications []gormModels.Notification

	err := r.db.WithContext(ctx).
		Preload("Actor").
		Preload("Vehicle").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flags the given notifications read. Ids that belong to another
// user are ignored.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID string, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).
		Model(&gormModels.Notification{}).
		Where("user_id = ? AND id IN ? AND is_read = ?", userID, ids, false).
		Update("is_read", true)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (r *NotificationRepository) DeleteByVehicle(ctx context.Context, vehicleID uint) error {
	if err := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Delete(&gormModels.Notification{}).Error; err != nil {
		return fmt.Errorf("failed to delete vehicle notifications: %w", err)
	}
	return nil
}
