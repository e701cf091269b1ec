package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cleaning-booking/internal/domain/notification"
	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/infra/repository"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
	"github.com/BruksfildServices01/cleaning-booking/internal/testutil"
)

func TestNotificationRepository_Inbox(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewNotificationGormRepository(db)
	ctx := context.Background()

	owner := testutil.CreateUser(t, db, user.RoleClient)
	other := testutil.CreateUser(t, db, user.RoleClient)

	for i := 0; i < 22; i++ {
		require.NoError(t, repo.Create(ctx, &models.Notification{
			UserID:  owner.ID,
			Title:   fmt.Sprintf("n%d", i),
			Message: "m",
			TypeID:  notification.TypeSystem,
		}))
	}

	latest, err := repo.ListLatest(ctx, owner.ID, 20)
	require.NoError(t, err)
	require.Len(t, latest, 20)
	assert.Equal(t, "n21", latest[0].Title)

	ok, err := repo.MarkRead(ctx, latest[0].ID, other.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.MarkRead(ctx, latest[0].ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	unread, err := repo.CountUnread(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(21), unread)

	n, err := repo.MarkAllRead(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(21), n)

	unread, err = repo.CountUnread(ctx, owner.ID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestUserRepository_Directory(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUserGormRepository(db)
	ctx := context.Background()

	a1 := testutil.CreateUser(t, db, user.RoleAdmin)
	testutil.CreateUser(t, db, user.RoleClient)
	a2 := testutil.CreateUser(t, db, user.RoleAdmin)

	ids, err := repo.ListUserIDsByRole(ctx, user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, []uint{a1.ID, a2.ID}, ids)

	_, err = repo.GetUser(ctx, 9999)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
