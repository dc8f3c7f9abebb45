package main

import (
	"fmt"
	"log"

	"github.com/Autum7899/My-Portfolio/adapters/event"
	httpAdapter "github.com/Autum7899/My-Portfolio/adapters/http"
	"github.com/Autum7899/My-Portfolio/adapters/media_storage"
	"github.com/Autum7899/My-Portfolio/adapters/persistence"
	"github.com/Autum7899/My-Portfolio/internal/config"
	authUC "github.com/Autum7899/My-Portfolio/internal/usecase/auth"
	backupUC "github.com/Autum7899/My-Portfolio/internal/usecase/backup"
	contentUC "github.com/Autum7899/My-Portfolio/internal/usecase/content"
	snapshotUC "github.com/Autum7899/My-Portfolio/internal/usecase/snapshot"
	"github.com/Autum7899/My-Portfolio/pkg/auth"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

func main() {
	fmt.Println("Start Portfolio API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg.Kafka.Brokers)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	careerRepo := persistence.NewPostgresCareerRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	messageRepo := persistence.NewPostgresMessageRepo(dbPool, appLogger)
	adminRepo := persistence.NewPostgresAdminRepo(dbPool, appLogger)
	snapshotCache := persistence.NewRedisSnapshotCache(redisClient, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize uploader: %v", err)
	}

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(adminRepo, jwtSvc, appLogger)
	snapshotUseCase := snapshotUC.NewSnapshotUseCase(profileRepo, careerRepo, projectRepo, skillRepo, snapshotCache, appLogger)
	contentUseCase := contentUC.NewContentUseCase(
		profileRepo, careerRepo, projectRepo, skillRepo, messageRepo,
		kafkaClient, snapshotCache, appLogger,
	)
	backupUseCase := backupUC.NewBackupUseCase(snapshotUseCase, uploader, appLogger)

	// HTTP Handlers
	router := httpAdapter.NewRouter(httpAdapter.Handlers{
		Portfolio: httpAdapter.NewPortfolioHandler(snapshotUseCase, appLogger),
		Auth:      httpAdapter.NewAuthHandler(loginUseCase, appLogger),
		Career:    httpAdapter.NewCareerHandler(contentUseCase, appLogger),
		Project:   httpAdapter.NewProjectHandler(contentUseCase, appLogger),
		Skill:     httpAdapter.NewSkillHandler(contentUseCase, appLogger),
		Profile:   httpAdapter.NewProfileHandler(contentUseCase, appLogger),
		Message:   httpAdapter.NewMessageHandler(contentUseCase, appLogger),
		Media:     httpAdapter.NewMediaHandler(uploader, appLogger),
		Backup:    httpAdapter.NewBackupHandler(backupUseCase, appLogger),
	}, jwtSvc, appLogger)

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
