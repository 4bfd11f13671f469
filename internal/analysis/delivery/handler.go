package delivery

import (
	"errors"
	"log"
	"net/http"
	"time"

	"greenur-backend/internal/analysis/domain"
	"greenur-backend/internal/analysis/usecase"
	plantdomain "greenur-backend/internal/plant/domain"
	taskdomain "greenur-backend/internal/task/domain"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler handles analysis-record HTTP requests
type AnalysisHandler struct {
	analysisUsecase usecase.AnalysisUsecase
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(analysisUsecase usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{
		analysisUsecase: analysisUsecase,
	}
}

// ActionItemRequest is one recommended task in an analysis submission
type ActionItemRequest struct {
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category"`
	DueDate     *string `json:"due_date"`
}

// CreateAnalysisRequest represents the request body for an analysis
// submission. Required-field validation happens in the usecase so the error
// can name the missing field.
type CreateAnalysisRequest struct {
	PlantID          string                 `json:"plant_id"`
	PlantTypeID      string                 `json:"plant_type_id"`
	CurrentStage     map[string]interface{} `json:"current_stage"`
	CareInstructions map[string]interface{} `json:"care_instructions"`
	NextCheckupDate  *string                `json:"next_checkup_date"`
	ActionItems      []ActionItemRequest    `json:"action_items"`
}

// CreateAnalysis persists an analysis record and its task batch
// POST /api/analyses
func (h *AnalysisHandler) CreateAnalysis(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	drafts := make([]taskdomain.TaskDraft, 0, len(req.ActionItems))
	for _, item := range req.ActionItems {
		drafts = append(drafts, taskdomain.TaskDraft{
			Description: item.Description,
			Priority:    taskdomain.Priority(item.Priority),
			Category:    taskdomain.Category(item.Category),
			DueDate:     parseDate(item.DueDate),
		})
	}

	result, err := h.analysisUsecase.CreateWithTasks(userID, usecase.CreateAnalysisRequest{
		PlantID:          req.PlantID,
		PlantTypeID:      req.PlantTypeID,
		CurrentStage:     domain.JSONMap(req.CurrentStage),
		CareInstructions: domain.JSONMap(req.CareInstructions),
		NextCheckupDate:  parseDate(req.NextCheckupDate),
		ActionItems:      drafts,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAnalysis):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, plantdomain.ErrPlantNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			log.Printf("[AnalysisHandler] create failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create analysis"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetAnalysisByID returns one analysis record
// GET /api/analyses/:id
func (h *AnalysisHandler) GetAnalysisByID(c *gin.Context) {
	userID := c.GetString("userID")
	analysisID := c.Param("id")

	analysis, err := h.analysisUsecase.GetAnalysisByID(userID, analysisID)
	if err != nil {
		if errors.Is(err, domain.ErrAnalysisNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return
		}
		log.Printf("[AnalysisHandler] get %s failed: %v", analysisID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get analysis"})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// GetPlantAnalyses returns a plant's analyses, newest first
// GET /api/plants/:id/analyses
func (h *AnalysisHandler) GetPlantAnalyses(c *gin.Context) {
	userID := c.GetString("userID")
	plantID := c.Param("id")

	analyses, err := h.analysisUsecase.GetPlantAnalyses(userID, plantID)
	if err != nil {
		if errors.Is(err, plantdomain.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[AnalysisHandler] list for plant %s failed: %v", plantID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list analyses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analyses": analyses,
		"total":    len(analyses),
	})
}

// GetAnalysisTasks resolves an analysis record's action items to the task
// records that still exist
// GET /api/analyses/:id/tasks
func (h *AnalysisHandler) GetAnalysisTasks(c *gin.Context) {
	userID := c.GetString("userID")
	analysisID := c.Param("id")

	tasks, err := h.analysisUsecase.GetAnalysisTasks(userID, analysisID)
	if err != nil {
		if errors.Is(err, domain.ErrAnalysisNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return
		}
		log.Printf("[AnalysisHandler] resolve tasks for %s failed: %v", analysisID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve analysis tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"total": len(tasks),
	})
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t
	}
	return nil
}
