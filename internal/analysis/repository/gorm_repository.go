package repository

import (
	"errors"
	"time"

	"greenur-backend/internal/analysis/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormAnalysisRepository implements AnalysisRepository using GORM
type gormAnalysisRepository struct {
	db *gorm.DB
}

// NewGormAnalysisRepository creates a new GORM-based AnalysisRepository
func NewGormAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &gormAnalysisRepository{db: db}
}

func (r *gormAnalysisRepository) Create(analysis *domain.PlantAnalysis) error {
	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}
	analysis.CreatedAt = time.Now()
	return r.db.Create(analysis).Error
}

func (r *gormAnalysisRepository) FindByID(id string) (*domain.PlantAnalysis, error) {
	var analysis domain.PlantAnalysis
	err := r.db.Where("id = ?", id).First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &analysis, nil
}

func (r *gormAnalysisRepository) FindByPlantID(userID, plantID string) ([]*domain.PlantAnalysis, error) {
	var analyses []*domain.PlantAnalysis
	err := r.db.Where("user_id = ? AND plant_id = ?", userID, plantID).
		Order("analysis_date DESC").Find(&analyses).Error
	return analyses, err
}
