package usecase

import (
	"greenur-backend/internal/catalog/domain"
	"greenur-backend/internal/catalog/repository"
)

// CatalogUsecase defines read access to the plant-type catalog
type CatalogUsecase interface {
	SearchPlantTypes(query string) ([]*domain.PlantType, error)
	GetPlantTypeByID(id string) (*domain.PlantType, error)
}

type catalogUsecase struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogUsecase creates a new instance of catalogUsecase
func NewCatalogUsecase(catalogRepo repository.CatalogRepository) CatalogUsecase {
	return &catalogUsecase{
		catalogRepo: catalogRepo,
	}
}

func (u *catalogUsecase) SearchPlantTypes(query string) ([]*domain.PlantType, error) {
	return u.catalogRepo.Search(query)
}

func (u *catalogUsecase) GetPlantTypeByID(id string) (*domain.PlantType, error) {
	plantType, err := u.catalogRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if plantType == nil {
		return nil, domain.ErrPlantTypeNotFound
	}
	return plantType, nil
}
