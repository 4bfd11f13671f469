package repository

import (
	"errors"
	"strings"
	"time"

	"greenur-backend/internal/catalog/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormCatalogRepository implements CatalogRepository using GORM
type gormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM-based CatalogRepository
func NewGormCatalogRepository(db *gorm.DB) CatalogRepository {
	return &gormCatalogRepository{db: db}
}

func (r *gormCatalogRepository) Create(plantType *domain.PlantType) error {
	if plantType.ID == "" {
		plantType.ID = uuid.New().String()
	}
	plantType.CreatedAt = time.Now()
	plantType.UpdatedAt = time.Now()
	return r.db.Create(plantType).Error
}

func (r *gormCatalogRepository) FindByID(id string) (*domain.PlantType, error) {
	var plantType domain.PlantType
	err := r.db.Where("id = ?", id).First(&plantType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plantType, nil
}

func (r *gormCatalogRepository) Search(query string) ([]*domain.PlantType, error) {
	var plantTypes []*domain.PlantType
	q := r.db.Order("common_name ASC")
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(common_name) LIKE ? OR LOWER(scientific_name) LIKE ?", pattern, pattern)
	}
	err := q.Find(&plantTypes).Error
	return plantTypes, err
}
