package main

import (
	"context"
	"log"

	api "greenur-backend/cmd/api"
	analysisdomain "greenur-backend/internal/analysis/domain"
	analysisRepo "greenur-backend/internal/analysis/repository"
	analysisUsecase "greenur-backend/internal/analysis/usecase"
	"greenur-backend/internal/auth/verifier"
	catalogdomain "greenur-backend/internal/catalog/domain"
	catalogRepo "greenur-backend/internal/catalog/repository"
	catalogUsecase "greenur-backend/internal/catalog/usecase"
	plantdomain "greenur-backend/internal/plant/domain"
	plantRepo "greenur-backend/internal/plant/repository"
	plantUsecase "greenur-backend/internal/plant/usecase"
	taskdomain "greenur-backend/internal/task/domain"
	taskRepo "greenur-backend/internal/task/repository"
	taskUsecase "greenur-backend/internal/task/usecase"
	"greenur-backend/pkg/config"
	"greenur-backend/pkg/database"
	"greenur-backend/pkg/firebase"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas. No foreign keys are declared between
	// collections; cross-record consistency is maintained by the usecases.
	if err := db.AutoMigrate(&catalogdomain.PlantType{}, &plantdomain.TrackedPlant{}, &analysisdomain.PlantAnalysis{}, &taskdomain.Task{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	catalogRepository := catalogRepo.NewGormCatalogRepository(db)
	plantRepository := plantRepo.NewGormPlantRepository(db)
	analysisRepository := analysisRepo.NewGormAnalysisRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize the token verifier: Firebase in production, a shared-secret
	// JWT verifier when no credentials are configured
	var tokenVerifier verifier.TokenVerifier
	if cfg.FirebaseCredentials != "" {
		authClient, err := firebase.NewAuthClient(context.Background(), cfg.FirebaseCredentials)
		if err != nil {
			log.Fatal("Failed to initialize Firebase auth:", err)
		}
		tokenVerifier = verifier.NewFirebaseVerifier(authClient)
	} else {
		log.Println("[WARN] No Firebase credentials configured, using shared-secret JWT verifier")
		tokenVerifier = verifier.NewJWTVerifier(cfg.JWTSecret)
	}

	// Initialize use cases (dependency injection)
	catalogUsecaseInstance := catalogUsecase.NewCatalogUsecase(catalogRepository)
	plantUsecaseInstance := plantUsecase.NewPlantUsecase(plantRepository)
	analysisUsecaseInstance := analysisUsecase.NewAnalysisUsecase(analysisRepository, taskRepository, plantUsecaseInstance)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository, plantUsecaseInstance)
	taskUsecaseInstance.SetAnalysisGuard(analysisUsecaseInstance)

	// Initialize HTTP handler
	handler := api.NewHandler(tokenVerifier, plantUsecaseInstance, catalogUsecaseInstance, analysisUsecaseInstance, taskUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
