package bootstrap

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/tnp/internal/app/auth"
	appControllers "github.com/yigit/tnp/internal/app/controllers"
	appMigrations "github.com/yigit/tnp/internal/app/migrations"
	appRepos "github.com/yigit/tnp/internal/app/repositories"
	appRoutes "github.com/yigit/tnp/internal/app/routes"
	appServices "github.com/yigit/tnp/internal/app/services"
	"github.com/yigit/tnp/internal/config"
	"github.com/yigit/tnp/internal/db"
	"github.com/yigit/tnp/internal/domain"
	appMiddleware "github.com/yigit/tnp/internal/middleware"
	pkgAuth "github.com/yigit/tnp/internal/pkg/auth"
	"github.com/yigit/tnp/internal/pkg/filestorage"
	"github.com/yigit/tnp/internal/pkg/helpers"
	"github.com/yigit/tnp/internal/pkg/logger"
	"github.com/yigit/tnp/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	// AuthLimiter is nil when rate limiting is disabled
	AuthLimiter *appMiddleware.IPRateLimiter
	CORS        gin.HandlerFunc
	JWTService  *pkgAuth.JWTService
	Policy      *appAuth.AccessPolicy
	FileStorage *filestorage.LocalStorage
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  strings.ToLower(cfg.Logging.Format) == "text",
		Service: "tnp",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects, applies pending migrations and seeds default data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("dir", migrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.Migrate(ctx, os.DirFS(migrationsDir)); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		store := seed.StoreFrom(appRepos.NewRepositories(database))
		opts := seed.Options{
			AdminName:     cfg.Seed.AdminName,
			AdminEmail:    cfg.Seed.AdminEmail,
			AdminPassword: cfg.Seed.AdminPassword,
		}
		if err := seed.CreateDefaultData(ctx, store, opts, lgr); err != nil {
			// Startup continues; the API is usable without demo data
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(database)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(
		cfg.Storage.UploadDir,
		cfg.Storage.BaseURL,
		filestorage.WithMaxSize(cfg.Storage.MaxUploadSize),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.Policy = appAuth.NewAccessPolicy()

	deps.Services = appServices.NewServices(deps.Repos, appServices.Options{
		JWT:         deps.JWTService,
		Storage:     deps.FileStorage,
		Policy:      deps.Policy,
		Transitions: domain.TransitionPolicy{Strict: cfg.Applications.StrictTransitions},
		Logger:      lgr,
	})

	deps.Controllers = appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.Services.Auth),
		Student:      appControllers.NewStudentController(deps.Services.Student),
		Company:      appControllers.NewCompanyController(deps.Services.Company),
		Job:          appControllers.NewJobController(deps.Services.Job),
		Application:  appControllers.NewApplicationController(deps.Services.Application),
		Announcement: appControllers.NewAnnouncementController(deps.Services.Announcement),
		Analytic:     appControllers.NewAnalyticController(deps.Services.Analytic),
		Health:       appControllers.NewHealthController(database),
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Policy)

	deps.CORS, err = appMiddleware.CORS(cfg.CORS.AllowedOrigins, helpers.ParseDuration(cfg.CORS.MaxAge, 12*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("invalid cors configuration: %w", err)
	}

	if cfg.RateLimit.Enabled {
		deps.AuthLimiter = appMiddleware.NewIPRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			helpers.ParseDuration(cfg.RateLimit.IdleTTL, 10*time.Minute),
			lgr,
		)
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.Recovery(), appMiddleware.RequestLogger(lgr))
	if deps.CORS != nil {
		router.Use(deps.CORS)
	}
	appMiddleware.RegisterValidators()

	var authLimiter gin.HandlerFunc
	if deps.AuthLimiter != nil {
		authLimiter = deps.AuthLimiter.Middleware()
	}
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, authLimiter)
	appRoutes.SetupSwagger(router)

	// Uploaded profile images
	staticPath := uploadsRoute(cfg.Storage.BaseURL)
	router.Static(staticPath, cfg.Storage.UploadDir)
	lgr.Info().Str("path", cfg.Storage.UploadDir).Str("route", staticPath).Msg("Static file serving configured for uploads")

	return router
}

// uploadsRoute returns the router path that serves stored files. baseURL may
// be an absolute URL when uploads sit behind another host.
func uploadsRoute(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return "/uploads"
	}
	return strings.TrimRight(u.Path, "/")
}
