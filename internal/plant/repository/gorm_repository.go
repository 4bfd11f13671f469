package repository

import (
	"errors"
	"time"

	"greenur-backend/internal/plant/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormPlantRepository implements PlantRepository using GORM
type gormPlantRepository struct {
	db *gorm.DB
}

// NewGormPlantRepository creates a new GORM-based PlantRepository
func NewGormPlantRepository(db *gorm.DB) PlantRepository {
	return &gormPlantRepository{db: db}
}

func (r *gormPlantRepository) Create(plant *domain.TrackedPlant) error {
	if plant.ID == "" {
		plant.ID = uuid.New().String()
	}
	plant.CreatedAt = time.Now()
	plant.UpdatedAt = time.Now()
	return r.db.Create(plant).Error
}

func (r *gormPlantRepository) FindByID(id string) (*domain.TrackedPlant, error) {
	var plant domain.TrackedPlant
	err := r.db.Where("id = ?", id).First(&plant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plant, nil
}

func (r *gormPlantRepository) FindByUserID(userID string) ([]*domain.TrackedPlant, error) {
	var plants []*domain.TrackedPlant
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&plants).Error
	return plants, err
}

func (r *gormPlantRepository) Update(plant *domain.TrackedPlant) error {
	plant.UpdatedAt = time.Now()
	return r.db.Save(plant).Error
}

func (r *gormPlantRepository) Delete(id string) error {
	return r.db.Delete(&domain.TrackedPlant{}, "id = ?", id).Error
}
