package usecase

import (
	"greenur-backend/internal/plant/domain"
)

// PlantUsecase defines the interface for tracked-plant business logic
type PlantUsecase interface {
	// CreatePlant adds a plant to the user's tracked collection
	CreatePlant(userID, plantTypeID, nickname, imageURL string) (*domain.TrackedPlant, error)

	// GetUserPlants retrieves all tracked plants for a user
	GetUserPlants(userID string) ([]*domain.TrackedPlant, error)

	// GetPlantByID retrieves one plant, scoped to the owner
	GetPlantByID(userID, plantID string) (*domain.TrackedPlant, error)

	// UpdatePlant updates nickname, health status or image
	UpdatePlant(userID, plantID string, updates PlantUpdateRequest) (*domain.TrackedPlant, error)

	// DeletePlant removes the plant record. Analyses and tasks that reference
	// it are left in place.
	DeletePlant(userID, plantID string) error

	// VerifyOwnership confirms the plant belongs to the user and returns its
	// catalog plant-type identifier. Absent and not-owned are
	// indistinguishable: both return ErrPlantNotFound.
	VerifyOwnership(userID, plantID string) (plantTypeID string, err error)
}

// PlantUpdateRequest represents the fields that can be updated
type PlantUpdateRequest struct {
	Nickname     *string `json:"nickname,omitempty"`
	HealthStatus *string `json:"health_status,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
}
