package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redline-garage/pitwall/internal/constants"
	"redline-garage/pitwall/internal/db/testdb"
	gormModels "redline-garage/pitwall/internal/models/gorm"
)

func TestInteractionRepository_LikeIsUniquePerUser(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	owner := testdb.SeedUser(t, db, "owner-1")
	fan := testdb.SeedUser(t, db, "fan-1")
	vehicle := testdb.SeedVehicle(t, db, owner, 1000)
	repo := NewInteractionRepository(db)

	require.NoError(t, repo.CreateLike(ctx, vehicle.ID, fan))
	assert.Error(t, repo.CreateLike(ctx, vehicle.ID, fan))

	liked, err := repo.HasLiked(ctx, vehicle.ID, fan)
	require.NoError(t, err)
	assert.True(t, liked)

	require.NoError(t, repo.DeleteLike(ctx, vehicle.ID, fan))
	count, err := repo.CountLikes(ctx, vehicle.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestInteractionRepository_ListCommentsNewestFirst(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	owner := testdb.SeedUser(t, db, "owner-1")
	vehicle := testdb.SeedVehicle(t, db, owner, 1000)
	repo := NewInteractionRepository(db)

	first := &gormModels.VehicleComment{VehicleID: vehicle.ID, UserID: owner, Body: "first"}
	second := &gormModels.VehicleComment{VehicleID: vehicle.ID, UserID: owner, Body: "second"}
	require.NoError(t, repo.CreateComment(ctx, first))
	require.NoError(t, repo.CreateComment(ctx, second))
	// identical timestamps fall back to id order
	require.NoError(t, db.Model(second).Update("created_at", first.CreatedAt).Error)

	comments, err := repo.ListComments(ctx, vehicle.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Body)
	assert.Equal(t, owner, comments[0].User.ID)
}

func TestNotificationRepository_MarkReadIgnoresOtherUsers(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	owner := testdb.SeedUser(t, db, "owner-1")
	other := testdb.SeedUser(t, db, "owner-2")
	fan := testdb.SeedUser(t, db, "fan-1")
	vehicle := testdb.SeedVehicle(t, db, owner, 1000)
	repo := NewNotificationRepository(db)

	mine := &gormModels.Notification{UserID: owner, ActorID: fan, Type: constants.NotificationTypeLike, VehicleID: vehicle.ID}
	theirs := &gormModels.Notification{UserID: other, ActorID: fan, Type: constants.NotificationTypeLike, VehicleID: vehicle.ID}
	require.NoError(t, repo.Create(ctx, mine))
	require.NoError(t, repo.Create(ctx, theirs))

	updated, err := repo.MarkRead(ctx, owner, []uint{mine.ID, theirs.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	unread, err := repo.CountUnread(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	list, err := repo.ListRecent(ctx, owner, 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsRead)
	assert.Equal(t, fan, list[0].Actor.ID)
	assert.Equal(t, vehicle.ID, list[0].Vehicle.ID)
}

func TestNotificationRepository_DeleteLikeNotifications(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	owner := testdb.SeedUser(t, db, "owner-1")
	fan := testdb.SeedUser(t, db, "fan-1")
	vehicle := testdb.SeedVehicle(t, db, owner, 1000)
	repo := NewNotificationRepository(db)

	commentID := uint(5)
	require.NoError(t, repo.Create(ctx, &gormModels.Notification{UserID: owner, ActorID: fan, Type: constants.NotificationTypeLike, VehicleID: vehicle.ID}))
	require.NoError(t, repo.Create(ctx, &gormModels.Notification{UserID: owner, ActorID: fan, Type: constants.NotificationTypeComment, VehicleID: vehicle.ID, CommentID: &commentID}))

	removed, err := repo.DeleteLikeNotifications(ctx, owner, fan, vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	require.NoError(t, repo.DetachComment(ctx, commentID))
	list, err := repo.ListRecent(ctx, owner, 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, constants.NotificationTypeComment, list[0].Type)
	assert.Nil(t, list[0].CommentID)
}
