package delivery

import (
	"errors"
	"log"
	"net/http"

	"greenur-backend/internal/catalog/domain"
	"greenur-backend/internal/catalog/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only plant-type catalog
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
	}
}

// SearchPlantTypes lists catalog entries, optionally filtered by name
// GET /api/plant-types?q=
func (h *CatalogHandler) SearchPlantTypes(c *gin.Context) {
	plantTypes, err := h.catalogUsecase.SearchPlantTypes(c.Query("q"))
	if err != nil {
		log.Printf("[CatalogHandler] search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search plant types"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plant_types": plantTypes,
		"total":       len(plantTypes),
	})
}

// GetPlantTypeByID returns one catalog entry
// GET /api/plant-types/:id
func (h *CatalogHandler) GetPlantTypeByID(c *gin.Context) {
	plantType, err := h.catalogUsecase.GetPlantTypeByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrPlantTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plant type not found"})
			return
		}
		log.Printf("[CatalogHandler] get failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get plant type"})
		return
	}

	c.JSON(http.StatusOK, plantType)
}
