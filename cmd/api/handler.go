package api

import (
	analysisUsecase "greenur-backend/internal/analysis/usecase"
	"greenur-backend/internal/auth/verifier"
	catalogUsecase "greenur-backend/internal/catalog/usecase"
	plantUsecase "greenur-backend/internal/plant/usecase"
	taskUsecase "greenur-backend/internal/task/usecase"
	"greenur-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	tokenVerifier   verifier.TokenVerifier
	plantUsecase    plantUsecase.PlantUsecase
	catalogUsecase  catalogUsecase.CatalogUsecase
	analysisUsecase analysisUsecase.AnalysisUsecase
	taskUsecase     taskUsecase.TaskUsecase
	config          *config.Config
}

func NewHandler(tokenVerifier verifier.TokenVerifier, plantUc plantUsecase.PlantUsecase, catalogUc catalogUsecase.CatalogUsecase, analysisUc analysisUsecase.AnalysisUsecase, taskUc taskUsecase.TaskUsecase, cfg *config.Config) *Handler {
	return &Handler{
		tokenVerifier:   tokenVerifier,
		plantUsecase:    plantUc,
		catalogUsecase:  catalogUc,
		analysisUsecase: analysisUc,
		taskUsecase:     taskUc,
		config:          cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	r.Use(CORSMiddleware())

	// Setup routes
	SetupRoutes(r, h.tokenVerifier, h.plantUsecase, h.catalogUsecase, h.analysisUsecase, h.taskUsecase)

	return r.Run(addr)
}

// CORSMiddleware answers preflight requests with 204 and permissive headers
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
