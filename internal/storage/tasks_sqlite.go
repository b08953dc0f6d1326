package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"pomotask/internal/tasks"
)

const tasksFileName = "tasks.db"

// TasksPath returns the task database location inside appDir.
func TasksPath(appDir string) string {
	return filepath.Join(appDir, tasksFileName)
}

// TaskStore is a SQLite-backed tasks.Repository.
type TaskStore struct {
	db *sql.DB
}

var _ tasks.Repository = (*TaskStore)(nil)

// OpenTaskStore opens or creates the task database at path.
func OpenTaskStore(path string) (*TaskStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open task database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping task database: %w", err)
	}

	store := &TaskStore{db: db}
	if err := store.initTables(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (store *TaskStore) initTables() error {
	_, err := store.db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			completed_at TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (store *TaskStore) Close() error {
	return store.db.Close()
}

func (store *TaskStore) Insert(ctx context.Context, task tasks.Task) error {
	_, err := store.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, completed, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Completed, formatTime(task.CreatedAt), formatOptionalTime(task.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (store *TaskStore) Update(ctx context.Context, task tasks.Task) error {
	result, err := store.db.ExecContext(ctx, `
		UPDATE tasks SET title = ?, completed = ?, completed_at = ?
		WHERE id = ?`,
		task.Title, task.Completed, formatOptionalTime(task.CompletedAt), task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return expectOneRow(result)
}

func (store *TaskStore) Get(ctx context.Context, id string) (tasks.Task, error) {
	row := store.db.QueryRowContext(ctx, `
		SELECT id, title, completed, created_at, completed_at
		FROM tasks WHERE id = ?`, id)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return tasks.Task{}, tasks.ErrNotFound
	}
	if err != nil {
		return tasks.Task{}, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

func (store *TaskStore) Delete(ctx context.Context, id string) error {
	result, err := store.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return expectOneRow(result)
}

func (store *TaskStore) List(ctx context.Context) ([]tasks.Task, error) {
	rows, err := store.db.QueryContext(ctx, `
		SELECT id, title, completed, created_at, completed_at
		FROM tasks ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var list []tasks.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return list, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (tasks.Task, error) {
	var (
		task        tasks.Task
		createdAt   string
		completedAt sql.NullString
	)
	if err := row.Scan(&task.ID, &task.Title, &task.Completed, &createdAt, &completedAt); err != nil {
		return tasks.Task{}, err
	}

	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return tasks.Task{}, fmt.Errorf("parse created_at: %w", err)
	}
	task.CreatedAt = created

	if completedAt.Valid {
		completed, err := time.Parse(time.RFC3339Nano, completedAt.String)
		if err != nil {
			return tasks.Task{}, fmt.Errorf("parse completed_at: %w", err)
		}
		task.CompletedAt = &completed
	}
	return task, nil
}

func expectOneRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return tasks.ErrNotFound
	}
	return nil
}

func formatTime(value time.Time) string {
	return value.UTC().Format(time.RFC3339Nano)
}

func formatOptionalTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return formatTime(*value)
}
