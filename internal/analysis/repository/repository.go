package repository

import (
	"greenur-backend/internal/analysis/domain"
)

// AnalysisRepository defines the interface for analysis-record data access.
// Records are create-and-read only; nothing updates or deletes them.
type AnalysisRepository interface {
	Create(analysis *domain.PlantAnalysis) error
	FindByID(id string) (*domain.PlantAnalysis, error)
	FindByPlantID(userID, plantID string) ([]*domain.PlantAnalysis, error)
}
