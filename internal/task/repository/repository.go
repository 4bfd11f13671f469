package repository

import (
	"greenur-backend/internal/task/domain"
)

// TaskFilter narrows a user-scoped task listing. Zero values mean "no
// constraint"; all set fields are intersected.
type TaskFilter struct {
	PlantID    string
	AnalysisID string
	Status     string
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create persists a new task record
	Create(task *domain.Task) error

	// FindByTaskID finds a task by its application-generated identifier
	FindByTaskID(taskID string) (*domain.Task, error)

	// FindByUserID finds all tasks for a user matching the filter
	FindByUserID(userID string, filter TaskFilter) ([]*domain.Task, error)

	// FindByTaskIDs finds the subset of the given identifiers that exist for
	// the user. Missing identifiers are silently absent from the result.
	FindByTaskIDs(userID string, taskIDs []string) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// Delete hard-deletes a task by its application-generated identifier
	Delete(taskID string) error
}
