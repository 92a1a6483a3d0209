package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	gormModels "redline-garage/pitwall/internal/models/gorm"
)

// InteractionRepository stores likes and comments.
type InteractionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *InteractionRepository) WithTx(tx *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: tx}
}

func (r *InteractionRepository) HasLiked(ctx context.Context, vehicleID uint, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.VehicleLike{}).
		Where("vehicle_id = ? AND user_id = ?", vehicleID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

func (r *InteractionRepository) CreateLike(ctx context.Context, vehicleID uint, userID string) error {
	like := gormModels.VehicleLike{VehicleID: vehicleID, UserID: userID}
	if err := r.db.WithContext(ctx).Create(&like).Error; err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

func (r *InteractionRepository) DeleteLike(ctx context.Context, vehicleID uint, userID string) error {
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND user_id = ?", vehicleID, userID).
		Delete(&gormModels.VehicleLike{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (r *InteractionRepository) CountLikes(ctx context.Context, vehicleID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.VehicleLike{}).
		Where("vehicle_id = ?", vehicleID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

func (r *InteractionRepository) CreateComment(ctx context.Context, comment *gormModels.VehicleComment) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// GetComment returns nil when the comment does not exist.
func (r *InteractionRepository) GetComment(ctx context.Context, id uint) (*gormModels.VehicleComment, error) {
	var comment gormModels.VehicleComment

	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch comment: %w", err)
	}
	return &comment, nil
}

func (r *InteractionRepository) DeleteComment(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&gormModels.VehicleComment{}).Error; err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// ListComments returns the vehicle's comments newest first with their authors.
func (r *InteractionRepository) ListComments(ctx context.Context, vehicleID uint) ([]gormModels.VehicleComment, error) {
	var comments []gormModels.VehicleComment

	err := r.db.WithContext(ctx).
		Preload("User").
		Where("vehicle_id = ?", vehicleID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (r *InteractionRepository) DeleteByVehicle(ctx context.Context, vehicleID uint) error {
	if err := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Delete(&gormModels.VehicleLike{}).Error; err != nil {
		return fmt.Errorf("failed to delete vehicle likes: %w", err)
	}
	if err := r.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).Delete(&gormModels.VehicleComment{}).Error; err != nil {
		return fmt.Errorf("failed to delete vehicle comments: %w", err)
	}
	return nil
}
