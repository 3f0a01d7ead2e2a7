package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/campushub/portal/docs" // generated swagger docs
	appControllers "github.com/campushub/portal/internal/app/controllers"
	appMigrations "github.com/campushub/portal/internal/app/migrations"
	appRepos "github.com/campushub/portal/internal/app/repositories"
	appRoutes "github.com/campushub/portal/internal/app/routes"
	appServices "github.com/campushub/portal/internal/app/services"
	"github.com/campushub/portal/internal/config"
	"github.com/campushub/portal/internal/db"
	appMiddleware "github.com/campushub/portal/internal/middleware"
	pkgAuth "github.com/campushub/portal/internal/pkg/auth"
	"github.com/campushub/portal/internal/pkg/cache"
	"github.com/campushub/portal/internal/pkg/filestorage"
	"github.com/campushub/portal/internal/pkg/helpers"
	"github.com/campushub/portal/internal/pkg/logger"
	"github.com/campushub/portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthController         *appControllers.AuthController
	ProfileController      *appControllers.ProfileController
	JobController          *appControllers.JobController
	ApplicationController  *appControllers.ApplicationController
	ResourceController     *appControllers.ResourceController
	AnnouncementController *appControllers.AnnouncementController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	FileStorage            *filestorage.LocalStorage
	Cache                  *cache.Client
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations, and
// seeds default accounts.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, dbPool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default accounts, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.UploadsDir, cfg.Storage.URLPrefix)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Cache = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := deps.Cache.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to redis")
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	tokenStore := pkgAuth.NewTokenStore(deps.Cache)

	authService := appServices.NewAuthService(deps.Repos.User, deps.JWTService, tokenStore, lgr)
	profileService := appServices.NewProfileService(deps.Repos.User, deps.FileStorage, lgr)
	jobService := appServices.NewJobService(deps.Repos.Job, deps.Repos.Application, deps.Repos.User, lgr)
	applicationService := appServices.NewApplicationService(deps.Repos.Application, lgr)
	resourceService := appServices.NewResourceService(deps.Repos.Resource, deps.FileStorage, lgr)
	announcementService := appServices.NewAnnouncementService(deps.Repos.Announcement, lgr)

	deps.AuthController = appControllers.NewAuthController(authService, lgr)
	deps.ProfileController = appControllers.NewProfileController(profileService, lgr)
	deps.JobController = appControllers.NewJobController(jobService, lgr)
	deps.ApplicationController = appControllers.NewApplicationController(applicationService, lgr)
	deps.ResourceController = appControllers.NewResourceController(resourceService, lgr)
	deps.AnnouncementController = appControllers.NewAnnouncementController(announcementService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// SetupRouter builds the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.MaxMultipartMemory = filestorage.MaxUploadSize

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.ProfileController,
		deps.JobController,
		deps.ApplicationController,
		deps.ResourceController,
		deps.AnnouncementController,
		deps.AuthMiddleware,
		cfg.Storage.UploadsDir,
	)

	return router
}
