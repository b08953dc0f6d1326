package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomotask/internal/tasks"
)

func openTestStore(t *testing.T) *TaskStore {
	t.Helper()
	store, err := OpenTaskStore(TasksPath(filepath.Join(t.TempDir(), "pomotask")))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestTaskStoreCRUD(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	created := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	task := tasks.Task{ID: "a", Title: "plan week", CreatedAt: created}

	require.NoError(t, store.Insert(ctx, task))

	got, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, task, got)

	done := created.Add(time.Hour)
	task.Completed = true
	task.CompletedAt = &done
	require.NoError(t, store.Update(ctx, task))

	got, err = store.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, got.Completed)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, done.Equal(*got.CompletedAt))

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, tasks.ErrNotFound)
}

func TestTaskStoreMissingRows(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.Update(ctx, tasks.Task{ID: "nope", Title: "x"}), tasks.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "nope"), tasks.ErrNotFound)
}

func TestTaskStoreListNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, store.Insert(ctx, tasks.Task{ID: id, Title: id, CreatedAt: base.Add(time.Duration(i) * time.Minute)}))
	}

	list, err := store.List(ctx)

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "mid", list[1].ID)
	assert.Equal(t, "old", list[2].ID)
}

func TestTaskStoreWithService(t *testing.T) {
	service := tasks.NewService(openTestStore(t))
	ctx := context.Background()

	task, err := service.Add(ctx, " stretch ")
	require.NoError(t, err)
	_, err = service.Toggle(ctx, task.ID)
	require.NoError(t, err)

	list, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "stretch", list[0].Title)
	assert.True(t, list[0].Completed)
}

func TestTaskStorePersistsAcrossOpen(t *testing.T) {
	path := TasksPath(t.TempDir())
	store, err := OpenTaskStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Insert(context.Background(), tasks.Task{ID: "keep", Title: "keep", CreatedAt: time.Now()}))
	require.NoError(t, store.Close())

	reopened, err := OpenTaskStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	list, err := reopened.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
