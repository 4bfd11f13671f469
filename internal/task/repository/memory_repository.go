package repository

import (
	"sync"
	"time"

	"greenur-backend/internal/task/domain"

	"github.com/google/uuid"
)

// MemoryTaskRepository is an in-memory TaskRepository used in tests. Tasks
// keep their insertion order, which stands in for storage order.
type MemoryTaskRepository struct {
	mu    sync.Mutex
	tasks []*domain.Task
}

func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{}
}

func (r *MemoryTaskRepository) Create(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	cp := *task
	r.tasks = append(r.tasks, &cp)
	return nil
}

func (r *MemoryTaskRepository) FindByTaskID(taskID string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tasks {
		if t.TaskID == taskID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryTaskRepository) FindByUserID(userID string, filter TaskFilter) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*domain.Task{}
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		if filter.PlantID != "" && t.PlantID != filter.PlantID {
			continue
		}
		if filter.AnalysisID != "" && t.AnalysisID != filter.AnalysisID {
			continue
		}
		if filter.Status != "" && string(t.Status) != filter.Status {
			continue
		}
		cp := *t
		result = append(result, &cp)
	}
	return result, nil
}

func (r *MemoryTaskRepository) FindByTaskIDs(userID string, taskIDs []string) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[string]bool, len(taskIDs))
	for _, id := range taskIDs {
		wanted[id] = true
	}
	result := []*domain.Task{}
	for _, t := range r.tasks {
		if t.UserID == userID && wanted[t.TaskID] {
			cp := *t
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *MemoryTaskRepository) Update(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task.UpdatedAt = time.Now()
	for i, t := range r.tasks {
		if t.TaskID == task.TaskID {
			cp := *task
			r.tasks[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *MemoryTaskRepository) Delete(taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.tasks {
		if t.TaskID == taskID {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return nil
}
