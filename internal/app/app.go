package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KINGAKWO/lingoRoots-sub000/internal/config"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/controller"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/repository"
	"github.com/KINGAKWO/lingoRoots-sub000/internal/service"
	"github.com/KINGAKWO/lingoRoots-sub000/pkg/database"
	"github.com/KINGAKWO/lingoRoots-sub000/pkg/logger"
	"github.com/KINGAKWO/lingoRoots-sub000/pkg/monitoring"
	"github.com/KINGAKWO/lingoRoots-sub000/pkg/security"
	"github.com/KINGAKWO/lingoRoots-sub000/pkg/tracing"

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
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user      *repository.UserRepository
	language  *repository.LanguageRepository
	lesson    *repository.LessonRepository
	quiz      *repository.QuizRepository
	flashcard *repository.FlashcardRepository
	progress  *repository.ProgressRepository
}

type services struct {
	auth      *service.AuthService
	storage   *service.StorageService
	content   *service.ContentService
	quiz      *service.QuizService
	profile   *service.ProfileService
	flashcard *service.FlashcardService
	user      *service.UserService
}

type controllers struct {
	auth      *controller.AuthController
	language  *controller.LanguageController
	lesson    *controller.LessonController
	quiz      *controller.QuizController
	flashcard *controller.FlashcardController
	dashboard *controller.DashboardController
	user      *controller.UserController
	media     *controller.MediaController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig runs every registered reload callback. Called by the config
// watcher after a hot reload.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		language:  repository.NewLanguageRepository(db),
		lesson:    repository.NewLessonRepository(db),
		quiz:      repository.NewQuizRepository(db),
		flashcard: repository.NewFlashcardRepository(db),
		progress:  repository.NewProgressRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.content = service.NewContentService(repos.language, repos.lesson, repos.quiz, repos.flashcard, s.storage, rdb)
	s.quiz = service.NewQuizService(repos.quiz, repos.lesson, repos.progress)
	s.profile = service.NewProfileService(repos.user, repos.lesson, repos.progress)
	s.flashcard = service.NewFlashcardService(repos.flashcard, repos.lesson, repos.progress, rdb, cfg)
	s.user = service.NewUserService(repos.user, repos.language)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		language:  controller.NewLanguageController(s.content),
		lesson:    controller.NewLessonController(s.content, s.profile),
		quiz:      controller.NewQuizController(s.quiz, s.content),
		flashcard: controller.NewFlashcardController(s.flashcard, s.content),
		dashboard: controller.NewDashboardController(s.profile),
		user:      controller.NewUserController(s.user),
		media:     controller.NewMediaController(s.content),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.MigrateOnly {
		logger.Log.Info("Migration finished, exiting")
		os.Exit(0)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("lingoroots", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	defer logger.Log.Sync()

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
