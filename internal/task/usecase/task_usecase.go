package usecase

import (
	"log"
	"time"

	"greenur-backend/internal/task/domain"
	"greenur-backend/internal/task/repository"
	"greenur-backend/pkg/taskid"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo      repository.TaskRepository
	plantGuard    PlantGuard
	analysisGuard AnalysisGuard
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository, plantGuard PlantGuard) TaskUsecase {
	return &taskUsecase{
		taskRepo:   taskRepo,
		plantGuard: plantGuard,
	}
}

func (u *taskUsecase) SetAnalysisGuard(guard AnalysisGuard) {
	u.analysisGuard = guard
}

func (u *taskUsecase) ListTasks(userID string, filter ListFilter) ([]*domain.Task, error) {
	if filter.PlantID != "" {
		if _, err := u.plantGuard.VerifyOwnership(userID, filter.PlantID); err != nil {
			return nil, err
		}
	}
	if filter.AnalysisID != "" && u.analysisGuard != nil {
		if err := u.analysisGuard.VerifyOwnership(userID, filter.AnalysisID); err != nil {
			return nil, err
		}
	}

	tasks, err := u.taskRepo.FindByUserID(userID, repository.TaskFilter{
		PlantID:    filter.PlantID,
		AnalysisID: filter.AnalysisID,
		Status:     filter.Status,
	})
	if err != nil {
		return nil, err
	}

	domain.SortForDisplay(tasks, time.Now())
	return tasks, nil
}

func (u *taskUsecase) CreateTasks(userID, plantID string, drafts []domain.TaskDraft) (int, error) {
	plantTypeID, err := u.plantGuard.VerifyOwnership(userID, plantID)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, draft := range drafts {
		task := &domain.Task{
			TaskID:      taskid.New(),
			UserID:      userID,
			PlantID:     plantID,
			PlantTypeID: plantTypeID,
			Description: draft.Description,
			Priority:    draft.Priority.OrDefault(),
			Category:    draft.Category.OrDefault(),
			DueDate:     draft.DueDate,
			Status:      domain.TaskStatusPending,
		}
		if err := u.taskRepo.Create(task); err != nil {
			log.Printf("[TaskUsecase] Failed to create task for plant %s: %v", plantID, err)
			continue
		}
		created++
	}
	return created, nil
}

func (u *taskUsecase) UpdateTaskStatus(userID, taskID, status string, comment *string) (*domain.Task, error) {
	task, err := u.getOwnedTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatus(status)
	if task.Status == domain.TaskStatusCompleted || task.Status == domain.TaskStatusDiscarded {
		now := time.Now()
		task.CompletedDate = &now
	}
	if comment != nil {
		// Last write wins; comments are not appended or versioned.
		task.Comment = *comment
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	task, err := u.getOwnedTask(userID, taskID)
	if err != nil {
		return err
	}
	// The parent analysis keeps the deleted identifier in its action-item
	// list; readers resolve that list defensively.
	return u.taskRepo.Delete(task.TaskID)
}

func (u *taskUsecase) getOwnedTask(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByTaskID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}
