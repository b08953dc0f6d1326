package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*Service, *time.Time) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	service := NewService(NewMemoryRepository(), WithClock(func() time.Time { return now }))
	return service, &now
}

func TestAddTrimsTitle(t *testing.T) {
	service, _ := newTestService()

	task, err := service.Add(context.Background(), "  write report \n")

	require.NoError(t, err)
	assert.Equal(t, "write report", task.Title)
	assert.NotEmpty(t, task.ID)
	assert.False(t, task.Completed)
	assert.Nil(t, task.CompletedAt)
}

func TestAddRejectsBlankTitle(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Add(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestToggleSetsAndClearsCompletedAt(t *testing.T) {
	service, now := newTestService()
	ctx := context.Background()
	task, err := service.Add(ctx, "read")
	require.NoError(t, err)

	*now = now.Add(time.Hour)
	done, err := service.Toggle(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)
	assert.Equal(t, *now, *done.CompletedAt)

	reopened, err := service.Toggle(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, reopened.Completed)
	assert.Nil(t, reopened.CompletedAt)
}

func TestUnknownTask(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	_, err := service.Toggle(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, service.Delete(ctx, "missing"), ErrNotFound)
}

func TestListNewestFirstAndPending(t *testing.T) {
	service, now := newTestService()
	ctx := context.Background()
	first, err := service.Add(ctx, "first")
	require.NoError(t, err)
	*now = now.Add(time.Minute)
	second, err := service.Add(ctx, "second")
	require.NoError(t, err)
	_, err = service.Toggle(ctx, first.ID)
	require.NoError(t, err)

	list, err := service.List(ctx)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, 1, Pending(list))
}

func TestRenameAndDelete(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()
	task, err := service.Add(ctx, "draft")
	require.NoError(t, err)

	renamed, err := service.Rename(ctx, task.ID, " final ")
	require.NoError(t, err)
	assert.Equal(t, "final", renamed.Title)

	_, err = service.Rename(ctx, task.ID, "")
	assert.ErrorIs(t, err, ErrEmptyTitle)

	require.NoError(t, service.Delete(ctx, task.ID))
	list, err := service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
