package usecase

import (
	"time"

	"greenur-backend/internal/analysis/domain"
	taskdomain "greenur-backend/internal/task/domain"
)

// AnalysisUsecase defines the interface for analysis-record business logic
type AnalysisUsecase interface {
	// CreateWithTasks persists one analysis record together with the batch of
	// tasks it spawned. The analysis record is written first with the
	// pre-generated task identifiers stamped in, then the tasks; the two
	// writes are not transactional and readers must tolerate the gap.
	CreateWithTasks(userID string, req CreateAnalysisRequest) (*CreateAnalysisResult, error)

	// GetAnalysisByID retrieves one analysis record, scoped to the owner
	GetAnalysisByID(userID, analysisID string) (*domain.PlantAnalysis, error)

	// GetPlantAnalyses retrieves a plant's analyses, newest first
	GetPlantAnalyses(userID, plantID string) ([]*domain.PlantAnalysis, error)

	// GetAnalysisTasks resolves the analysis record's action-item list to the
	// task records that still exist, in display order. Identifiers with no
	// matching task are dropped, never reported as errors.
	GetAnalysisTasks(userID, analysisID string) ([]*taskdomain.Task, error)

	// VerifyOwnership confirms the analysis belongs to the user. Absent and
	// not-owned both return ErrAnalysisNotFound.
	VerifyOwnership(userID, analysisID string) error
}

// PlantGuard confirms a tracked plant belongs to a user. Implemented by the
// plant usecase.
type PlantGuard interface {
	VerifyOwnership(userID, plantID string) (plantTypeID string, err error)
}

// CreateAnalysisRequest carries one analysis submission. CurrentStage and
// CareInstructions are opaque payloads from the analysis step, passed through
// verbatim.
type CreateAnalysisRequest struct {
	PlantID          string
	PlantTypeID      string
	CurrentStage     domain.JSONMap
	CareInstructions domain.JSONMap
	NextCheckupDate  *time.Time
	ActionItems      []taskdomain.TaskDraft
}

// CreateAnalysisResult reports what was created: the analysis record's
// storage identifier and the generated task identifiers, in draft order.
type CreateAnalysisResult struct {
	AnalysisID    string   `json:"analysis_id"`
	ActionItemIDs []string `json:"action_item_ids"`
}
