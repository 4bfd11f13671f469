package repository

import (
	"greenur-backend/internal/plant/domain"
)

// PlantRepository defines the interface for tracked-plant data access
type PlantRepository interface {
	Create(plant *domain.TrackedPlant) error
	FindByID(id string) (*domain.TrackedPlant, error)
	FindByUserID(userID string) ([]*domain.TrackedPlant, error)
	Update(plant *domain.TrackedPlant) error
	Delete(id string) error
}
