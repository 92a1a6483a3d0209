package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/db/repositories"
	"redline-garage/pitwall/internal/logging"
	"redline-garage/pitwall/internal/metrics"
	"redline-garage/pitwall/internal/models/dtos"
	gormModels "redline-garage/pitwall/internal/models/gorm"
)

// InteractionService handles likes and comments and the notifications they
// send to the vehicle owner.
type InteractionService struct {
	db            *gorm.DB
	vehicles      *repositories.VehicleRepository
	interactions  *repositories.InteractionRepository
	notifications *repositories.NotificationRepository
	metrics       *metrics.MetricsRegistry
}

func NewInteractionService(
	db *gorm.DB,
	vehicles *repositories.VehicleRepository,
	interactions *repositories.InteractionRepository,
	notifications *repositories.NotificationRepository,
	metricsReg *metrics.MetricsRegistry,
) *InteractionService {
	return &InteractionService{
		db:            db,
		vehicles:      vehicles,
		interactions:  interactions,
		notifications: notifications,
		metrics:       metricsReg,
	}
}

// ToggleLike flips the user's like. Liking someone else's vehicle notifies
// the owner; unliking withdraws that notification.
func (s *InteractionService) ToggleLike(ctx context.Context, userID string, vehicleID uint) (*dtos.LikeToggleResponse, error) {
	if userID == "" {
		return nil, newServiceError(constants.ErrCodeUnauthenticated)
	}

	vehicle, err := requireVehicle(ctx, s.vehicles, vehicleID)
	if err != nil {
		return nil, err
	}
	notifyOwner := vehicle.OwnerID != userID

	var liked bool
	var retracted int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		interactions := s.interactions.WithTx(tx)
		notifications := s.notifications.WithTx(tx)

		has, err := interactions.HasLiked(ctx, vehicle.ID, userID)
		if err != nil {
			return internalError("check_like", err)
		}

		if has {
			if err := interactions.DeleteLike(ctx, vehicle.ID, userID); err != nil {
				return internalError("unlike", err)
			}
			if notifyOwner {
				if retracted, err = notifications.DeleteLikeNotifications(ctx, vehicle.OwnerID, userID, vehicle.ID); err != nil {
					return internalError("retract_like_notification", err)
				}
			}
			return nil
		}

		if err := interactions.CreateLike(ctx, vehicle.ID, userID); err != nil {
			return internalError("like", err)
		}
		liked = true

		if notifyOwner {
			n := &gormModels.Notification{
				UserID:    vehicle.OwnerID,
				ActorID:   userID,
				Type:      constants.NotificationTypeLike,
				VehicleID: vehicle.ID,
			}
			if err := notifications.Create(ctx, n); err != nil {
				return internalError("notify_like", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	switch {
	case liked && notifyOwner:
		s.metrics.NotificationsCreated.WithLabelValues(constants.NotificationTypeLike).Inc()
	case retracted > 0:
		s.metrics.NotificationsRetracted.Add(float64(retracted))
	}

	count, err := s.interactions.CountLikes(ctx, vehicle.ID)
	if err != nil {
		return nil, internalError("count_likes", err)
	}

	logging.Debug("Like toggled", "vehicle_id", vehicle.ID, "user_id", userID, "liked", liked)
	return &dtos.LikeToggleResponse{Liked: liked, LikeCount: count}, nil
}

// AddComment stores a trimmed comment. A comment from anyone but the owner
// notifies the owner.
func (s *InteractionService) AddComment(ctx context.Context, userID string, vehicleID uint, body string) (*dtos.CommentResponse, error) {
	if userID == "" {
		return nil, newServiceError(constants.ErrCodeUnauthenticated)
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, validationError("comment body is required")
	}

	vehicle, err := requireVehicle(ctx, s.vehicles, vehicleID)
	if err != nil {
		return nil, err
	}
	notifyOwner := vehicle.OwnerID != userID

	comment := &gormModels.VehicleComment{VehicleID: vehicle.ID, UserID: userID, Body: body}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.interactions.WithTx(tx).CreateComment(ctx, comment); err != nil {
			return internalError("create_comment", err)
		}
		if !notifyOwner {
			return nil
		}

		commentID := comment.ID
		n := &gormModels.Notification{
			UserID:    vehicle.OwnerID,
			ActorID:   userID,
			Type:      constants.NotificationTypeComment,
			VehicleID: vehicle.ID,
			CommentID: &commentID,
		}
		if err := s.notifications.WithTx(tx).Create(ctx, n); err != nil {
			return internalError("notify_comment", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if notifyOwner {
		s.metrics.NotificationsCreated.WithLabelValues(constants.NotificationTypeComment).Inc()
	}

	stored, err := s.interactions.GetComment(ctx, comment.ID)
	if err != nil {
		return nil, internalError("get_comment", err)
	}
	if stored == nil {
		return nil, newServiceError(constants.ErrCodeCommentNotFound)
	}

	resp := toCommentResponse(stored)
	return &resp, nil
}

// DeleteComment lets the author or the vehicle owner remove a comment. The
// notification it triggered stays, without its comment reference.
func (s *InteractionService) DeleteComment(ctx context.Context, userID string, commentID uint) error {
	if userID == "" {
		return newServiceError(constants.ErrCodeUnauthenticated)
	}

	comment, err := s.interactions.GetComment(ctx, commentID)
	if err != nil {
		return internalError("get_comment", err)
	}
	if comment == nil {
		return newServiceError(constants.ErrCodeCommentNotFound)
	}

	if comment.UserID != userID {
		vehicle, err := requireVehicle(ctx, s.vehicles, comment.VehicleID)
		if err != nil {
			return err
		}
		if vehicle.OwnerID != userID {
			return newServiceError(constants.ErrCodeForbidden)
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.notifications.WithTx(tx).DetachComment(ctx, comment.ID); err != nil {
			return internalError("detach_comment", err)
		}
		if err := s.interactions.WithTx(tx).DeleteComment(ctx, comment.ID); err != nil {
			return internalError("delete_comment", err)
		}
		return nil
	})
}

// GetVehicleInteractions is public. hasLiked is false for anonymous viewers.
func (s *InteractionService) GetVehicleInteractions(ctx context.Context, vehicleID uint, viewerID string) (*dtos.VehicleInteractionsResponse, error) {
	vehicle, err := requireVehicle(ctx, s.vehicles, vehicleID)
	if err != nil {
		return nil, err
	}

	count, err := s.interactions.CountLikes(ctx, vehicle.ID)
	if err != nil {
		return nil, internalError("count_likes", err)
	}

	var hasLiked bool
	if viewerID != "" {
		if hasLiked, err = s.interactions.HasLiked(ctx, vehicle.ID, viewerID); err != nil {
			return nil, internalError("check_like", err)
		}
	}

	comments, err := s.interactions.ListComments(ctx, vehicle.ID)
	if err != nil {
		return nil, internalError("list_comments", err)
	}

	out := make([]dtos.CommentResponse, len(comments))
	for i := range comments {
		out[i] = toCommentResponse(&comments[i])
	}

	return &dtos.VehicleInteractionsResponse{LikeCount: count, HasLiked: hasLiked, Comments: out}, nil
}
