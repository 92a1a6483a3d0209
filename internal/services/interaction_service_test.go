package services

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"

	"redline-garage/pitwall/internal/constants"
	gormModels "redline-garage/pitwall/internal/models/gorm"
)

func countNotifications(t *testing.T, f *fixture, userID, kind string) int64 {
	t.Helper()

	var n int64
	require.NoError(t, f.db.Model(&gormModels.Notification{}).
		Where("user_id = ? AND type = ?", userID, kind).
		Count(&n).Error)
	return n
}

func TestInteractionService_ToggleLike(t *testing.T) {
	f := newFixture(t, clockz.NewFakeClock())
	ctx := context.Background()
	owner := f.user(t, "owner-1")
	fan := f.user(t, "fan-1")
	vehicleID := f.bareVehicle(t, owner, 1000)

	liked, err := f.interactions.ToggleLike(ctx, fan, vehicleID)
	require.NoError(t, err)
	assert.True(t, liked.Liked)
	assert.Equal(t, int64(1), liked.LikeCount)
	assert.Equal(t, int64(1), countNotifications(t, f, owner, constants.NotificationTypeLike))

	unliked, err := f.interactions.ToggleLike(ctx, fan, vehicleID)
	require.NoError(t, err)
	assert.False(t, unliked.Liked)
	assert.Zero(t, unliked.LikeCount)
	assert.Zero(t, countNotifications(t, f, owner, constants.NotificationTypeLike))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.NotificationsRetracted))

	own, err := f.interactions.ToggleLike(ctx, owner, vehicleID)
	require.NoError(t, err)
	assert.True(t, own.Liked)
	assert.Zero(t, countNotifications(t, f, owner, constants.NotificationTypeLike))

	_, err = f.interactions.ToggleLike(ctx, "", vehicleID)
	assert.Equal(t, constants.ErrCodeUnauthenticated, errorCode(err))

	_, err = f.interactions.ToggleLike(ctx, fan, 999)
	assert.Equal(t, constants.ErrCodeVehicleNotFound, errorCode(err))
}

func TestInteractionService_AddComment(t *testing.T) {
	f := newFixture(t, clockz.NewFakeClock())
	ctx := context.Background()
	owner := f.user(t, "owner-1")
	fan := f.user(t, "fan-1")
	vehicleID := f.bareVehicle(t, owner, 1000)

	_, err := f.interactions.AddComment(ctx, fan, vehicleID, "   \n\t")
	assert.True(t, errors.Is(err, ErrValidation))

	comment, err := f.interactions.AddComment(ctx, fan, vehicleID, "  clean build!  ")
	require.NoError(t, err)
	assert.Equal(t, "clean build!", comment.Body)
	assert.Equal(t, fan, comment.User.ID)

	var n gormModels.Notification
	require.NoError(t, f.db.Where("user_id = ? AND type = ?", owner, constants.NotificationTypeComment).First(&n).Error)
	assert.Equal(t, fan, n.ActorID)
	require.NotNil(t, n.CommentID)
	assert.Equal(t, comment.ID, *n.CommentID)

	_, err = f.interactions.AddComment(ctx, owner, vehicleID, "thanks")
	require.NoError(t, err)
	assert.Equal(t, int64(1), countNotifications(t, f, owner, constants.NotificationTypeComment))
}

func TestInteractionService_DeleteComment(t *testing.T) {
	f := newFixture(t, clockz.NewFakeClock())
	ctx := context.Background()
	owner := f.user(t, "owner-1")
	fan := f.user(t, "fan-1")
	stranger := f.user(t, "stranger-1")
	vehicleID := f.bareVehicle(t, owner, 1000)

	first, err := f.interactions.AddComment(ctx, fan, vehicleID, "first")
	require.NoError(t, err)
	second, err := f.interactions.AddComment(ctx, fan, vehicleID, "second")
	require.NoError(t, err)

	err = f.interactions.DeleteComment(ctx, stranger, first.ID)
	assert.Equal(t, constants.ErrCodeForbidden, errorCode(err))

	require.NoError(t, f.interactions.DeleteComment(ctx, fan, first.ID))
	require.NoError(t, f.interactions.DeleteComment(ctx, owner, second.ID))

	err = f.interactions.DeleteComment(ctx, fan, first.ID)
	assert.Equal(t, constants.ErrCodeCommentNotFound, errorCode(err))

	// notifications survive without a comment reference
	var notifications []gormModels.Notification
	require.NoError(t, f.db.Where("user_id = ?", owner).Find(&notifications).Error)
	require.Len(t, notifications, 2)
	for _, n := range notifications {
		assert.Nil(t, n.CommentID)
	}
}

func TestInteractionService_GetVehicleInteractions(t *testing.T) {
	f := newFixture(t, clockz.NewFakeClock())
	ctx := context.Background()
	owner := f.user(t, "owner-1")
	fan := f.user(t, "fan-1")
	vehicleID := f.bareVehicle(t, owner, 1000)

	_, err := f.interactions.ToggleLike(ctx, fan, vehicleID)
	require.NoError(t, err)
	_, err = f.interactions.AddComment(ctx, fan, vehicleID, "older")
	require.NoError(t, err)
	_, err = f.interactions.AddComment(ctx, owner, vehicleID, "newer")
	require.NoError(t, err)

	asFan, err := f.interactions.GetVehicleInteractions(ctx, vehicleID, fan)
	require.NoError(t, err)
	assert.Equal(t, int64(1), asFan.LikeCount)
	assert.True(t, asFan.HasLiked)
	require.Len(t, asFan.Comments, 2)
	assert.Equal(t, "newer", asFan.Comments[0].Body)

	anonymous, err := f.interactions.GetVehicleInteractions(ctx, vehicleID, "")
	require.NoError(t, err)
	assert.False(t, anonymous.HasLiked)
	assert.Equal(t, int64(1), anonymous.LikeCount)
}
