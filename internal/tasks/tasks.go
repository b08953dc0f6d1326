package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle = errors.New("task title is empty")
	ErrNotFound   = errors.New("task not found")
)

// Task is a single to-do entry shown next to the timer.
type Task struct {
	ID          string
	Title       string
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Repository persists tasks. Get, Update and Delete return ErrNotFound for an
// unknown id. List returns newest first.
type Repository interface {
	Insert(ctx context.Context, task Task) error
	Update(ctx context.Context, task Task) error
	Get(ctx context.Context, id string) (Task, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Task, error)
}

// Service validates task edits before they reach the repository.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(service *Service) {
		service.now = now
	}
}

// NewService creates a task service on top of repo.
func NewService(repo Repository, opts ...Option) *Service {
	service := &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Add creates an open task with a trimmed title.
func (service *Service) Add(ctx context.Context, title string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}

	task := Task{
		ID:        service.newID(),
		Title:     title,
		CreatedAt: service.now().UTC(),
	}
	if err := service.repo.Insert(ctx, task); err != nil {
		return Task{}, fmt.Errorf("add task: %w", err)
	}
	return task, nil
}

// Toggle flips the completion flag of task id.
func (service *Service) Toggle(ctx context.Context, id string) (Task, error) {
	task, err := service.repo.Get(ctx, id)
	if err != nil {
		return Task{}, fmt.Errorf("toggle task %s: %w", id, err)
	}

	task.Completed = !task.Completed
	if task.Completed {
		completedAt := service.now().UTC()
		task.CompletedAt = &completedAt
	} else {
		task.CompletedAt = nil
	}

	if err := service.repo.Update(ctx, task); err != nil {
		return Task{}, fmt.Errorf("toggle task %s: %w", id, err)
	}
	return task, nil
}

// Rename replaces the title of task id.
func (service *Service) Rename(ctx context.Context, id, title string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}

	task, err := service.repo.Get(ctx, id)
	if err != nil {
		return Task{}, fmt.Errorf("rename task %s: %w", id, err)
	}
	task.Title = title
	if err := service.repo.Update(ctx, task); err != nil {
		return Task{}, fmt.Errorf("rename task %s: %w", id, err)
	}
	return task, nil
}

// Delete removes task id.
func (service *Service) Delete(ctx context.Context, id string) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}

// List returns every task, newest first.
func (service *Service) List(ctx context.Context) ([]Task, error) {
	list, err := service.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return list, nil
}

// Pending counts open tasks in list.
func Pending(list []Task) int {
	count := 0
	for _, task := range list {
		if !task.Completed {
			count++
		}
	}
	return count
}
