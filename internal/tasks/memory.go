package tasks

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository keeps tasks in process memory. The terminal host and tests
// use it when no database is wanted.
type MemoryRepository struct {
	mu    sync.Mutex
	tasks map[string]Task
	order []string
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tasks: make(map[string]Task)}
}

func (repo *MemoryRepository) Insert(_ context.Context, task Task) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.tasks[task.ID] = task
	repo.order = append(repo.order, task.ID)
	return nil
}

func (repo *MemoryRepository) Update(_ context.Context, task Task) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.tasks[task.ID]; !ok {
		return ErrNotFound
	}
	repo.tasks[task.ID] = task
	return nil
}

func (repo *MemoryRepository) Get(_ context.Context, id string) (Task, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	task, ok := repo.tasks[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	return task, nil
}

func (repo *MemoryRepository) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(repo.tasks, id)
	for i, existing := range repo.order {
		if existing == id {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)
			break
		}
	}
	return nil
}

func (repo *MemoryRepository) List(_ context.Context) ([]Task, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	list := make([]Task, 0, len(repo.order))
	for i := len(repo.order) - 1; i >= 0; i-- {
		list = append(list, repo.tasks[repo.order[i]])
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}
