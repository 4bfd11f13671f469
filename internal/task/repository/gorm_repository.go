package repository

import (
	"errors"
	"time"

	"greenur-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByTaskID(taskID string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("task_id = ?", taskID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByUserID(userID string, filter TaskFilter) ([]*domain.Task, error) {
	var tasks []*domain.Task

	query := r.db.Where("user_id = ?", userID)
	if filter.PlantID != "" {
		query = query.Where("plant_id = ?", filter.PlantID)
	}
	if filter.AnalysisID != "" {
		query = query.Where("analysis_id = ?", filter.AnalysisID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	// Stable storage order; display ordering is applied by the usecase.
	err := query.Order("created_at ASC, id ASC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindByTaskIDs(userID string, taskIDs []string) ([]*domain.Task, error) {
	if len(taskIDs) == 0 {
		return []*domain.Task{}, nil
	}
	var tasks []*domain.Task
	err := r.db.Where("user_id = ? AND task_id IN ?", userID, taskIDs).
		Order("created_at ASC, id ASC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) Delete(taskID string) error {
	return r.db.Delete(&domain.Task{}, "task_id = ?", taskID).Error
}
