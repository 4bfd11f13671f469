package api

import (
	"net/http"

	analysisDelivery "greenur-backend/internal/analysis/delivery"
	analysisUsecase "greenur-backend/internal/analysis/usecase"
	authDelivery "greenur-backend/internal/auth/delivery"
	"greenur-backend/internal/auth/verifier"
	catalogDelivery "greenur-backend/internal/catalog/delivery"
	catalogUsecase "greenur-backend/internal/catalog/usecase"
	plantDelivery "greenur-backend/internal/plant/delivery"
	plantUsecase "greenur-backend/internal/plant/usecase"
	taskDelivery "greenur-backend/internal/task/delivery"
	taskUsecase "greenur-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, tokenVerifier verifier.TokenVerifier, plantUc plantUsecase.PlantUsecase, catalogUc catalogUsecase.CatalogUsecase, analysisUc analysisUsecase.AnalysisUsecase, taskUc taskUsecase.TaskUsecase) {
	plantHandler := plantDelivery.NewPlantHandler(plantUc)
	catalogHandler := catalogDelivery.NewCatalogHandler(catalogUc)
	analysisHandler := analysisDelivery.NewAnalysisHandler(analysisUc)
	taskHandler := taskDelivery.NewTaskHandler(taskUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Catalog routes (protected, read-only)
		plantTypes := api.Group("/plant-types")
		plantTypes.Use(authDelivery.AuthMiddleware(tokenVerifier))
		{
			plantTypes.GET("", catalogHandler.SearchPlantTypes)
			plantTypes.GET("/:id", catalogHandler.GetPlantTypeByID)
		}

		// Tracked-plant routes (protected)
		plants := api.Group("/plants")
		plants.Use(authDelivery.AuthMiddleware(tokenVerifier))
		{
			plants.POST("", plantHandler.CreatePlant)
			plants.GET("", plantHandler.GetPlants)
			plants.GET("/:id", plantHandler.GetPlantByID)
			plants.PUT("/:id", plantHandler.UpdatePlant)
			plants.DELETE("/:id", plantHandler.DeletePlant)
			plants.GET("/:id/analyses", analysisHandler.GetPlantAnalyses)
		}

		// Analysis routes (protected)
		analyses := api.Group("/analyses")
		analyses.Use(authDelivery.AuthMiddleware(tokenVerifier))
		{
			analyses.POST("", analysisHandler.CreateAnalysis)
			analyses.GET("/:id", analysisHandler.GetAnalysisByID)
			analyses.GET("/:id/tasks", analysisHandler.GetAnalysisTasks)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(authDelivery.AuthMiddleware(tokenVerifier))
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTasks)
			tasks.PUT("/:id", taskHandler.UpdateTaskStatus)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			// Identifier-less update/delete is a client error, not a routing miss
			tasks.PUT("", taskHandler.MissingTaskID)
			tasks.DELETE("", taskHandler.MissingTaskID)
		}
	}
}
