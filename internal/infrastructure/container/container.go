package container

import (
	"fmt"

	"github.com/auditrecrut/backend/internal/config"
	"github.com/auditrecrut/backend/internal/delivery/http"
	"github.com/auditrecrut/backend/internal/delivery/http/handler"
	"github.com/auditrecrut/backend/internal/delivery/http/middleware"
	"github.com/auditrecrut/backend/internal/infrastructure/database"
	"github.com/auditrecrut/backend/internal/infrastructure/server"
	"github.com/auditrecrut/backend/internal/infrastructure/storage"
	"github.com/auditrecrut/backend/internal/repository/postgres"
	redisrepo "github.com/auditrecrut/backend/internal/repository/redis"
	"github.com/auditrecrut/backend/internal/usecase/auth"
	"github.com/auditrecrut/backend/internal/usecase/candidateprofile"
	"github.com/auditrecrut/backend/internal/usecase/candidates"
	"github.com/auditrecrut/backend/internal/usecase/dashboard"
	"github.com/auditrecrut/backend/internal/usecase/mission"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize object storage
	cvStorage, err := storage.NewS3Storage(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize repositories
	userRepo := postgres.NewUserProfileRepository(db)
	graduateRepo := postgres.NewGraduateProfileRepository(db)
	professionalRepo := postgres.NewProfessionalProfileRepository(db)
	missionRepo := postgres.NewMissionRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	analysisRepo := postgres.NewAnalysisRepository(db)
	sessionRepo := redisrepo.NewSessionRepository(redisClient)
	profileCache := redisrepo.NewProfileCache(redisClient)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		sessionRepo,
		profileCache,
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessExpiry(),
	)

	dashboardUseCase := dashboard.NewDashboardUseCase(
		userRepo,
		missionRepo,
		matchRepo,
		analysisRepo,
	)

	candidatesUseCase := candidates.NewCandidatesUseCase(
		missionRepo,
		matchRepo,
		userRepo,
	)

	missionUseCase := mission.NewMissionUseCase(
		missionRepo,
		activityRepo,
	)

	profileFormUseCase := candidateprofile.NewProfileFormUseCase(
		graduateRepo,
		professionalRepo,
		userRepo,
		profileCache,
		cvStorage,
		candidateprofile.PlaceholderAnalysis{},
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	dashboardHandler := handler.NewDashboardHandler(authUseCase, dashboardUseCase)
	missionHandler := handler.NewMissionHandler(missionUseCase)
	candidateHandler := handler.NewCandidateHandler(candidatesUseCase)
	profileHandler := handler.NewProfileHandler(profileFormUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		dashboardHandler,
		missionHandler,
		candidateHandler,
		profileHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			fmt.Printf("Error closing Redis: %v\n", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
