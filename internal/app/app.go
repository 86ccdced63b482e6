package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"road_scholar_backend/internal/config"
	"road_scholar_backend/internal/controller"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/service"
	"road_scholar_backend/pkg/configwatcher"
	"road_scholar_backend/pkg/database"
	"road_scholar_backend/pkg/logger"
	"road_scholar_backend/pkg/monitoring"
	"road_scholar_backend/pkg/security"
	"road_scholar_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	ConfigDir       string
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracer          *sdktrace.TracerProvider
	ctx             context.Context
	cancel          context.CancelFunc
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	module      *repository.ModuleRepository
	lesson      *repository.LessonRepository
	activity    *repository.ActivityRepository
	question    *repository.QuestionRepository
	choice      *repository.ChoiceRepository
	attempt     *repository.AttemptRepository
	history     *repository.HistoryRepository
	userLesson  *repository.UserLessonRepository
	bookmark    *repository.BookmarkRepository
	feedback    *repository.FeedbackRepository
	leaderboard repository.LeaderboardCache
}

type services struct {
	storage     *service.StorageService
	auth        *service.AuthService
	user        *service.UserService
	module      *service.ModuleService
	lesson      *service.LessonService
	activity    *service.ActivityService
	question    *service.QuestionService
	progress    *service.ProgressService
	achievement *service.AchievementService
	bookmark    *service.BookmarkService
	feedback    *service.FeedbackService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	module      *controller.ModuleController
	lesson      *controller.LessonController
	activity    *controller.ActivityController
	history     *controller.ActivityHistoryController
	question    *controller.QuestionController
	achievement *controller.AchievementController
	bookmark    *controller.BookmarkController
	feedback    *controller.FeedbackController
	health      *controller.HealthController
}

// RegisterConfigCallback runs callback with every successfully reloaded config.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		module:      repository.NewModuleRepository(db),
		lesson:      repository.NewLessonRepository(db),
		activity:    repository.NewActivityRepository(db),
		question:    repository.NewQuestionRepository(db),
		choice:      repository.NewChoiceRepository(db),
		attempt:     repository.NewAttemptRepository(db),
		history:     repository.NewHistoryRepository(db),
		userLesson:  repository.NewUserLessonRepository(db),
		bookmark:    repository.NewBookmarkRepository(db),
		feedback:    repository.NewFeedbackRepository(db),
		leaderboard: repository.NewLeaderboardCache(rdb, cfg.Leaderboard.CacheTTL()),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	storage := service.NewStorageService(cfg)
	assembler := service.NewQuizAssembler(repos.activity, repos.question, cfg.Quiz.Size, nil)

	return &services{
		storage: storage,
		auth:    service.NewAuthService(repos.user, service.NewGoogleVerifier(&cfg.Google), cfg),
		user:    service.NewUserService(repos.user, storage, repos.leaderboard),
		module:  service.NewModuleService(repos.module, repos.userLesson, repos.bookmark, storage),
		lesson:  service.NewLessonService(repos.lesson, repos.module, storage),
		activity: service.NewActivityService(
			repos.activity,
			repos.module,
			repos.question,
			repos.attempt,
			assembler,
			repos.leaderboard,
		),
		question: service.NewQuestionService(repos.question, repos.choice, repos.activity, storage),
		progress: service.NewProgressService(
			repos.history,
			repos.userLesson,
			repos.lesson,
			repos.user,
			repos.leaderboard,
		),
		achievement: service.NewAchievementService(
			repos.module,
			repos.activity,
			repos.userLesson,
			repos.history,
			cfg.Quiz.MasteryScore,
		),
		bookmark: service.NewBookmarkService(repos.bookmark, repos.module),
		feedback: service.NewFeedbackService(repos.feedback),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user),
		module:      controller.NewModuleController(s.module),
		lesson:      controller.NewLessonController(s.lesson, s.progress),
		activity:    controller.NewActivityController(s.activity),
		history:     controller.NewActivityHistoryController(s.progress),
		question:    controller.NewQuestionController(s.question),
		achievement: controller.NewAchievementController(s.achievement),
		bookmark:    controller.NewBookmarkController(s.bookmark),
		feedback:    controller.NewFeedbackController(s.feedback),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.ctx, cfg.RateLimit))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp connects storage and builds the HTTP router. With cfg.MigrateOnly it stops
// after the schema migration.
func NewApp(cfg *config.Config, configDir string) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}, nil
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config:    cfg,
		ConfigDir: configDir,
		DB:        db,
		Redis:     rdb,
		ctx:       ctx,
		cancel:    cancel,
	}

	repos := app.initRepositories(db, rdb, cfg)
	svcs := app.initServices(repos, cfg)
	ctrls := app.initControllers(svcs, db)

	app.RegisterConfigCallback(logger.ApplyConfig)
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		repos.leaderboard.SetTTL(newCfg.Leaderboard.CacheTTL())
	})

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("road-scholar", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			cancel()
			return nil, err
		}
		app.tracer = tp
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == "debug" {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app, nil
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

// Run serves until SIGINT or SIGTERM, then drains requests for up to five seconds.
func (a *App) Run() error {
	defer a.cancel()

	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		if err := configwatcher.Watch(a.ctx, a.ConfigDir, a.applyConfig); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}()

	serveErr := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit, stop := signal.NotifyContext(a.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serveErr:
		return err
	case <-quit.Done():
	}
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	logger.Log.Info("Server exiting")
	return nil
}
