package repository

import (
	"greenur-backend/internal/catalog/domain"
)

// CatalogRepository defines read access to the plant-type catalog. The
// collection is populated by the external scraper; Create exists for seeding
// and tests only.
type CatalogRepository interface {
	Create(plantType *domain.PlantType) error
	FindByID(id string) (*domain.PlantType, error)
	Search(query string) ([]*domain.PlantType, error)
}
