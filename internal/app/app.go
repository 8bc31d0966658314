package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recruiting_backend/internal/config"
	"recruiting_backend/internal/controller"
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/service"
	"recruiting_backend/pkg/database"
	"recruiting_backend/pkg/logger"
	"recruiting_backend/pkg/monitoring"
	"recruiting_backend/pkg/security"
	"recruiting_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	school      *repository.SchoolRepository
	coach       *repository.CoachRepository
	interaction *repository.InteractionRepository
	task        *repository.TaskRepository
	event       *repository.EventRepository
	video       *repository.VideoRepository
	suggestion  *repository.SuggestionRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	storage     *service.StorageService
	school      *service.SchoolService
	interaction *service.InteractionService
	task        *service.TaskService
	event       *service.EventService
	video       *service.VideoService
	suggestion  *service.SuggestionService
	recovery    *service.RecoveryService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	school      *controller.SchoolController
	interaction *controller.InteractionController
	task        *controller.TaskController
	event       *controller.EventController
	video       *controller.VideoController
	suggestion  *controller.SuggestionController
	recovery    *controller.RecoveryController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig applies a hot-reloaded configuration.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		school:      repository.NewSchoolRepository(db),
		coach:       repository.NewCoachRepository(db),
		interaction: repository.NewInteractionRepository(db),
		task:        repository.NewTaskRepository(db),
		event:       repository.NewEventRepository(db),
		video:       repository.NewVideoRepository(db),
		suggestion:  repository.NewSuggestionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)

	s.suggestion = service.NewSuggestionService(
		repos.suggestion,
		repos.school,
		repos.interaction,
		repos.task,
		repos.event,
		repos.video,
		repos.user,
		rdb,
	)

	s.school = service.NewSchoolService(repos.school, repos.coach)
	s.interaction = service.NewInteractionService(repos.interaction, repos.school, s.suggestion)
	s.task = service.NewTaskService(repos.task, s.suggestion)
	s.event = service.NewEventService(repos.event)
	s.video = service.NewVideoService(repos.video, s.storage, s.suggestion)
	s.recovery = service.NewRecoveryService(s.suggestion)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		school:      controller.NewSchoolController(s.school, repos.user),
		interaction: controller.NewInteractionController(s.interaction, repos.user),
		task:        controller.NewTaskController(s.task, repos.user),
		event:       controller.NewEventController(s.event, repos.user),
		video:       controller.NewVideoController(s.video, repos.user),
		suggestion:  controller.NewSuggestionController(s.suggestion, repos.user),
		recovery:    controller.NewRecoveryController(s.recovery, repos.user),
		health:      controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks runs the scheduled engine sweep for every athlete.
func (a *App) startBackgroundTasks(s *services) {
	interval := time.Duration(a.Config.Engine.RunIntervalHours) * time.Hour
	go func() {
		ticker := time.NewTicker(interval)
		for range ticker.C {
			if err := s.suggestion.RunForAllAthletes(); err != nil {
				logger.Log.Error("scheduled suggestion sweep error", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, repos, db, rdb)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("recruiting-platform", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}()
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
