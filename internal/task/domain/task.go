package domain

import (
	"errors"
	"time"
)

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Category classifies what kind of care a task asks for
type Category string

const (
	CategoryWatering    Category = "watering"
	CategoryFertilizing Category = "fertilizing"
	CategoryPruning     Category = "pruning"
	CategoryMonitoring  Category = "monitoring"
	CategoryPestControl Category = "pest_control"
	CategoryGeneral     Category = "general"
)

// OrDefault returns the priority, falling back to medium when unset.
// Out-of-set values pass through untouched; the storage boundary is
// deliberately permissive.
func (p Priority) OrDefault() Priority {
	if p == "" {
		return PriorityMedium
	}
	return p
}

// OrDefault returns the category, falling back to general when unset.
func (c Category) OrDefault() Category {
	if c == "" {
		return CategoryGeneral
	}
	return c
}

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusDiscarded TaskStatus = "discarded"
)

// ErrTaskNotFound covers both a missing task and a task owned by another
// user; the two cases are deliberately indistinguishable to callers.
var ErrTaskNotFound = errors.New("task not found")

// Task is one actionable care recommendation for a tracked plant. TaskID is
// generated by the application (pkg/taskid) before the record is written, so
// it can be embedded in the parent analysis record's action-item list; ID is
// the storage key and is never exposed through the API.
type Task struct {
	ID          string     `json:"-" gorm:"primaryKey"`
	TaskID      string     `json:"task_id" gorm:"uniqueIndex;not null"`
	UserID      string     `json:"user_id" gorm:"index;not null"`
	PlantID     string     `json:"plant_id" gorm:"index;not null"`
	PlantTypeID string     `json:"plant_type_id,omitempty"`
	AnalysisID  string     `json:"analysis_id,omitempty" gorm:"index"` // Optional link to the analysis that spawned this task
	Description string     `json:"description" gorm:"not null"`
	Priority    Priority   `json:"priority" gorm:"default:medium"`
	Category    Category   `json:"category" gorm:"default:general"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      TaskStatus `json:"status" gorm:"default:pending"`
	// CompletedDate is stamped when the task enters completed or discarded.
	// It is never cleared, even if the task is later reopened.
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	Comment       string     `json:"comment,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TaskDraft is one recommended task as supplied by the analysis step,
// before identifiers and status are stamped.
type TaskDraft struct {
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Category    Category   `json:"category"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}
