package delivery

import (
	"errors"
	"log"
	"net/http"

	"greenur-backend/internal/plant/domain"
	"greenur-backend/internal/plant/usecase"

	"github.com/gin-gonic/gin"
)

// PlantHandler handles tracked-plant HTTP requests
type PlantHandler struct {
	plantUsecase usecase.PlantUsecase
}

// NewPlantHandler creates a new PlantHandler
func NewPlantHandler(plantUsecase usecase.PlantUsecase) *PlantHandler {
	return &PlantHandler{
		plantUsecase: plantUsecase,
	}
}

// CreatePlantRequest represents the request body for tracking a plant
type CreatePlantRequest struct {
	PlantTypeID string `json:"plant_type_id" binding:"required"`
	Nickname    string `json:"nickname"`
	ImageURL    string `json:"image_url"`
}

// CreatePlant adds a plant to the caller's tracked collection
// POST /api/plants
func (h *PlantHandler) CreatePlant(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plant, err := h.plantUsecase.CreatePlant(userID, req.PlantTypeID, req.Nickname, req.ImageURL)
	if err != nil {
		log.Printf("[PlantHandler] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create plant"})
		return
	}

	c.JSON(http.StatusCreated, plant)
}

// GetPlants returns all of the caller's tracked plants
// GET /api/plants
func (h *PlantHandler) GetPlants(c *gin.Context) {
	userID := c.GetString("userID")

	plants, err := h.plantUsecase.GetUserPlants(userID)
	if err != nil {
		log.Printf("[PlantHandler] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plants": plants,
		"total":  len(plants),
	})
}

// GetPlantByID returns one tracked plant
// GET /api/plants/:id
func (h *PlantHandler) GetPlantByID(c *gin.Context) {
	userID := c.GetString("userID")
	plantID := c.Param("id")

	plant, err := h.plantUsecase.GetPlantByID(userID, plantID)
	if err != nil {
		if errors.Is(err, domain.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plant not found"})
			return
		}
		log.Printf("[PlantHandler] get %s failed: %v", plantID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get plant"})
		return
	}

	c.JSON(http.StatusOK, plant)
}

// UpdatePlant updates nickname, health status or image
// PUT /api/plants/:id
func (h *PlantHandler) UpdatePlant(c *gin.Context) {
	userID := c.GetString("userID")
	plantID := c.Param("id")

	var updates usecase.PlantUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plant, err := h.plantUsecase.UpdatePlant(userID, plantID, updates)
	if err != nil {
		if errors.Is(err, domain.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plant not found"})
			return
		}
		log.Printf("[PlantHandler] update %s failed: %v", plantID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update plant"})
		return
	}

	c.JSON(http.StatusOK, plant)
}

// DeletePlant removes a tracked plant
// DELETE /api/plants/:id
func (h *PlantHandler) DeletePlant(c *gin.Context) {
	userID := c.GetString("userID")
	plantID := c.Param("id")

	if err := h.plantUsecase.DeletePlant(userID, plantID); err != nil {
		if errors.Is(err, domain.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plant not found"})
			return
		}
		log.Printf("[PlantHandler] delete %s failed: %v", plantID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete plant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "plant deleted successfully"})
}
