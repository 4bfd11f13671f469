package usecase

import (
	"fmt"
	"log"
	"time"

	"greenur-backend/internal/analysis/domain"
	"greenur-backend/internal/analysis/repository"
	taskdomain "greenur-backend/internal/task/domain"
	taskrepo "greenur-backend/internal/task/repository"
	"greenur-backend/pkg/taskid"
)

// analysisUsecase implements AnalysisUsecase interface
type analysisUsecase struct {
	analysisRepo repository.AnalysisRepository
	taskRepo     taskrepo.TaskRepository
	plantGuard   PlantGuard
}

// NewAnalysisUsecase creates a new instance of analysisUsecase
func NewAnalysisUsecase(analysisRepo repository.AnalysisRepository, taskRepo taskrepo.TaskRepository, plantGuard PlantGuard) AnalysisUsecase {
	return &analysisUsecase{
		analysisRepo: analysisRepo,
		taskRepo:     taskRepo,
		plantGuard:   plantGuard,
	}
}

func (u *analysisUsecase) CreateWithTasks(userID string, req CreateAnalysisRequest) (*CreateAnalysisResult, error) {
	if req.PlantID == "" {
		return nil, fmt.Errorf("%w: plant_id is required", domain.ErrInvalidAnalysis)
	}
	if req.PlantTypeID == "" {
		return nil, fmt.Errorf("%w: plant_type_id is required", domain.ErrInvalidAnalysis)
	}
	if len(req.CurrentStage) == 0 {
		return nil, fmt.Errorf("%w: current_stage is required", domain.ErrInvalidAnalysis)
	}

	if _, err := u.plantGuard.VerifyOwnership(userID, req.PlantID); err != nil {
		return nil, err
	}

	// Task identifiers are generated up front so the analysis record can
	// reference its tasks before any of them exist.
	actionItemIDs := make([]string, len(req.ActionItems))
	for i := range req.ActionItems {
		actionItemIDs[i] = taskid.New()
	}

	analysis := &domain.PlantAnalysis{
		UserID:           userID,
		PlantID:          req.PlantID,
		PlantTypeID:      req.PlantTypeID,
		AnalysisDate:     time.Now(),
		CurrentStage:     req.CurrentStage,
		CareInstructions: req.CareInstructions,
		NextCheckupDate:  req.NextCheckupDate,
		ActionItemIDs:    actionItemIDs,
	}
	if err := u.analysisRepo.Create(analysis); err != nil {
		return nil, err
	}

	// The task batch follows the analysis record. A reader who fetches the
	// analysis in this window sees identifiers whose tasks do not exist yet;
	// that is an accepted eventually-consistent read, and a per-task failure
	// here is logged rather than rolled back.
	for i, draft := range req.ActionItems {
		task := &taskdomain.Task{
			TaskID:      actionItemIDs[i],
			UserID:      userID,
			PlantID:     req.PlantID,
			PlantTypeID: req.PlantTypeID,
			AnalysisID:  analysis.ID,
			Description: draft.Description,
			Priority:    draft.Priority.OrDefault(),
			Category:    draft.Category.OrDefault(),
			DueDate:     draft.DueDate,
			Status:      taskdomain.TaskStatusPending,
		}
		if err := u.taskRepo.Create(task); err != nil {
			log.Printf("[AnalysisUsecase] Failed to create task %s for analysis %s: %v", task.TaskID, analysis.ID, err)
			continue
		}
	}

	return &CreateAnalysisResult{
		AnalysisID:    analysis.ID,
		ActionItemIDs: actionItemIDs,
	}, nil
}

func (u *analysisUsecase) GetAnalysisByID(userID, analysisID string) (*domain.PlantAnalysis, error) {
	analysis, err := u.analysisRepo.FindByID(analysisID)
	if err != nil {
		return nil, err
	}
	if analysis == nil || analysis.UserID != userID {
		return nil, domain.ErrAnalysisNotFound
	}
	return analysis, nil
}

func (u *analysisUsecase) GetPlantAnalyses(userID, plantID string) ([]*domain.PlantAnalysis, error) {
	if _, err := u.plantGuard.VerifyOwnership(userID, plantID); err != nil {
		return nil, err
	}
	return u.analysisRepo.FindByPlantID(userID, plantID)
}

func (u *analysisUsecase) GetAnalysisTasks(userID, analysisID string) ([]*taskdomain.Task, error) {
	analysis, err := u.GetAnalysisByID(userID, analysisID)
	if err != nil {
		return nil, err
	}

	tasks, err := u.taskRepo.FindByTaskIDs(userID, analysis.ActionItemIDs)
	if err != nil {
		return nil, err
	}

	taskdomain.SortForDisplay(tasks, time.Now())
	return tasks, nil
}

func (u *analysisUsecase) VerifyOwnership(userID, analysisID string) error {
	_, err := u.GetAnalysisByID(userID, analysisID)
	return err
}
