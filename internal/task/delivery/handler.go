package delivery

import (
	"errors"
	"log"
	"net/http"
	"time"

	analysisdomain "greenur-backend/internal/analysis/domain"
	plantdomain "greenur-backend/internal/plant/domain"
	"greenur-backend/internal/task/domain"
	"greenur-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// TaskDraftRequest is one task draft in a create request
type TaskDraftRequest struct {
	Description string  `json:"description" binding:"required"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category"`
	DueDate     *string `json:"due_date"`
}

// CreateTasksRequest represents the request body for creating tasks
type CreateTasksRequest struct {
	PlantID string             `json:"plant_id" binding:"required"`
	Tasks   []TaskDraftRequest `json:"tasks" binding:"required"`
}

// UpdateTaskStatusRequest represents the request body for a status update
type UpdateTaskStatusRequest struct {
	Status  string  `json:"status" binding:"required"`
	Comment *string `json:"comment"`
}

// GetTasks returns the caller's tasks in display order
// GET /api/tasks?plant_id=&analysis_id=&status=
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	filter := usecase.ListFilter{
		PlantID:    c.Query("plant_id"),
		AnalysisID: c.Query("analysis_id"),
		Status:     c.Query("status"),
	}

	tasks, err := h.taskUsecase.ListTasks(userID, filter)
	if err != nil {
		if errors.Is(err, plantdomain.ErrPlantNotFound) || errors.Is(err, analysisdomain.ErrAnalysisNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[TaskHandler] list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"total": len(tasks),
	})
}

// CreateTasks creates a batch of tasks for an owned plant
// POST /api/tasks
func (h *TaskHandler) CreateTasks(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	drafts := make([]domain.TaskDraft, 0, len(req.Tasks))
	for _, t := range req.Tasks {
		drafts = append(drafts, domain.TaskDraft{
			Description: t.Description,
			Priority:    domain.Priority(t.Priority),
			Category:    domain.Category(t.Category),
			DueDate:     parseDate(t.DueDate),
		})
	}

	count, err := h.taskUsecase.CreateTasks(userID, req.PlantID, drafts)
	if err != nil {
		if errors.Is(err, plantdomain.ErrPlantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[TaskHandler] create for plant %s failed: %v", req.PlantID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tasks"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"count": count})
}

// UpdateTaskStatus updates a task's status and optional comment
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTaskStatus(userID, taskID, req.Status, req.Comment)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		log.Printf("[TaskHandler] update %s failed: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.DeleteTask(userID, taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		log.Printf("[TaskHandler] delete %s failed: %v", taskID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted successfully"})
}

// MissingTaskID answers update/delete requests that omit the task identifier
// PUT /api/tasks, DELETE /api/tasks
func (h *TaskHandler) MissingTaskID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "task id is required"})
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
