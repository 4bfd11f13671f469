package repository

import (
	"sync"
	"time"

	"greenur-backend/internal/plant/domain"

	"github.com/google/uuid"
)

// MemoryPlantRepository is an in-memory PlantRepository used in tests
type MemoryPlantRepository struct {
	mu     sync.Mutex
	plants []*domain.TrackedPlant
}

func NewMemoryPlantRepository() *MemoryPlantRepository {
	return &MemoryPlantRepository{}
}

func (r *MemoryPlantRepository) Create(plant *domain.TrackedPlant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if plant.ID == "" {
		plant.ID = uuid.New().String()
	}
	plant.CreatedAt = time.Now()
	plant.UpdatedAt = time.Now()
	cp := *plant
	r.plants = append(r.plants, &cp)
	return nil
}

func (r *MemoryPlantRepository) FindByID(id string) (*domain.TrackedPlant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plants {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryPlantRepository) FindByUserID(userID string) ([]*domain.TrackedPlant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*domain.TrackedPlant{}
	for _, p := range r.plants {
		if p.UserID == userID {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *MemoryPlantRepository) Update(plant *domain.TrackedPlant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	plant.UpdatedAt = time.Now()
	for i, p := range r.plants {
		if p.ID == plant.ID {
			cp := *plant
			r.plants[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *MemoryPlantRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.plants {
		if p.ID == id {
			r.plants = append(r.plants[:i], r.plants[i+1:]...)
			return nil
		}
	}
	return nil
}
