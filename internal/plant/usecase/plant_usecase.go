package usecase

import (
	"greenur-backend/internal/plant/domain"
	"greenur-backend/internal/plant/repository"
)

// plantUsecase implements PlantUsecase interface
type plantUsecase struct {
	plantRepo repository.PlantRepository
}

// NewPlantUsecase creates a new instance of plantUsecase
func NewPlantUsecase(plantRepo repository.PlantRepository) PlantUsecase {
	return &plantUsecase{
		plantRepo: plantRepo,
	}
}

func (u *plantUsecase) CreatePlant(userID, plantTypeID, nickname, imageURL string) (*domain.TrackedPlant, error) {
	plant := &domain.TrackedPlant{
		UserID:       userID,
		PlantTypeID:  plantTypeID,
		Nickname:     nickname,
		HealthStatus: domain.HealthStatusHealthy,
		ImageURL:     imageURL,
	}
	if err := u.plantRepo.Create(plant); err != nil {
		return nil, err
	}
	return plant, nil
}

func (u *plantUsecase) GetUserPlants(userID string) ([]*domain.TrackedPlant, error) {
	return u.plantRepo.FindByUserID(userID)
}

func (u *plantUsecase) GetPlantByID(userID, plantID string) (*domain.TrackedPlant, error) {
	plant, err := u.plantRepo.FindByID(plantID)
	if err != nil {
		return nil, err
	}
	if plant == nil || plant.UserID != userID {
		return nil, domain.ErrPlantNotFound
	}
	return plant, nil
}

func (u *plantUsecase) UpdatePlant(userID, plantID string, updates PlantUpdateRequest) (*domain.TrackedPlant, error) {
	plant, err := u.GetPlantByID(userID, plantID)
	if err != nil {
		return nil, err
	}

	if updates.Nickname != nil {
		plant.Nickname = *updates.Nickname
	}
	if updates.HealthStatus != nil {
		plant.HealthStatus = domain.HealthStatus(*updates.HealthStatus)
	}
	if updates.ImageURL != nil {
		plant.ImageURL = *updates.ImageURL
	}

	if err := u.plantRepo.Update(plant); err != nil {
		return nil, err
	}
	return plant, nil
}

func (u *plantUsecase) DeletePlant(userID, plantID string) error {
	plant, err := u.GetPlantByID(userID, plantID)
	if err != nil {
		return err
	}
	return u.plantRepo.Delete(plant.ID)
}

func (u *plantUsecase) VerifyOwnership(userID, plantID string) (string, error) {
	plant, err := u.GetPlantByID(userID, plantID)
	if err != nil {
		return "", err
	}
	return plant.PlantTypeID, nil
}
