package repository

import (
	"sync"
	"time"

	"greenur-backend/internal/analysis/domain"

	"github.com/google/uuid"
)

// MemoryAnalysisRepository is an in-memory AnalysisRepository used in tests
type MemoryAnalysisRepository struct {
	mu       sync.Mutex
	analyses []*domain.PlantAnalysis
}

func NewMemoryAnalysisRepository() *MemoryAnalysisRepository {
	return &MemoryAnalysisRepository{}
}

func (r *MemoryAnalysisRepository) Create(analysis *domain.PlantAnalysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}
	analysis.CreatedAt = time.Now()
	cp := *analysis
	r.analyses = append(r.analyses, &cp)
	return nil
}

func (r *MemoryAnalysisRepository) FindByID(id string) (*domain.PlantAnalysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.analyses {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryAnalysisRepository) FindByPlantID(userID, plantID string) ([]*domain.PlantAnalysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*domain.PlantAnalysis{}
	// Newest first, matching the SQL implementation
	for i := len(r.analyses) - 1; i >= 0; i-- {
		a := r.analyses[i]
		if a.UserID == userID && a.PlantID == plantID {
			cp := *a
			result = append(result, &cp)
		}
	}
	return result, nil
}
