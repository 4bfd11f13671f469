package usecase

import (
	"greenur-backend/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// ListTasks retrieves the caller's tasks matching the filter, in display
	// order. Filter scope targets (plant, analysis) are ownership-checked; an
	// empty filter lists everything the user owns.
	ListTasks(userID string, filter ListFilter) ([]*domain.Task, error)

	// CreateTasks creates a batch of pending tasks against an owned plant and
	// returns the count created.
	CreateTasks(userID, plantID string, drafts []domain.TaskDraft) (int, error)

	// UpdateTaskStatus sets the task's status, stamps the completion date
	// when the status becomes terminal and overwrites the stored comment when
	// one is supplied. Transitions are not validated; reopening a completed
	// task is allowed.
	UpdateTaskStatus(userID, taskID, status string, comment *string) (*domain.Task, error)

	// DeleteTask hard-deletes the task. The parent analysis record's
	// action-item list is intentionally left untouched.
	DeleteTask(userID, taskID string) error

	// SetAnalysisGuard wires the analysis ownership check. Set after
	// construction because the analysis usecase itself depends on the task
	// repository.
	SetAnalysisGuard(guard AnalysisGuard)
}

// ListFilter narrows ListTasks. All set fields are intersected.
type ListFilter struct {
	PlantID    string
	AnalysisID string
	Status     string
}

// PlantGuard confirms a tracked plant belongs to a user before any record
// scoped to it is created or read. Implemented by the plant usecase.
type PlantGuard interface {
	VerifyOwnership(userID, plantID string) (plantTypeID string, err error)
}

// AnalysisGuard confirms an analysis record belongs to a user. Implemented by
// the analysis usecase.
type AnalysisGuard interface {
	VerifyOwnership(userID, analysisID string) error
}
