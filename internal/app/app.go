package app

import (
	"badge_studio_backend/internal/config"
	"badge_studio_backend/internal/controller"
	"badge_studio_backend/internal/repository"
	"badge_studio_backend/internal/service"
	"badge_studio_backend/internal/util"
	"badge_studio_backend/pkg/configwatcher"
	"badge_studio_backend/pkg/database"
	"badge_studio_backend/pkg/logger"
	"badge_studio_backend/pkg/monitoring"
	"badge_studio_backend/pkg/security"
	"badge_studio_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
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
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	profile     *repository.ProfileRepository
	goal        *repository.GoalRepository
	milestone   *repository.MilestoneRepository
	resource    *repository.ResourceRepository
	bookmark    *repository.BookmarkRepository
	badge       *repository.BadgeRepository
	adminAction *repository.AdminActionRepository
	analytics   *repository.AnalyticsRepository
	status      *repository.StatusRepository
	session     repository.SessionIndex
}

type services struct {
	ai        *service.AIService
	storage   *service.StorageService
	audit     *service.AuditService
	auth      *service.AuthService
	badge     *service.BadgeService
	profile   *service.ProfileService
	goal      *service.GoalService
	resource  *service.ResourceService
	milestone *service.MilestoneService
	peer      *service.PeerService
	analytics *service.AnalyticsService
	admin     *service.AdminService
	status    *service.StatusService
}

type controllers struct {
	auth      *controller.AuthController
	badge     *controller.BadgeController
	profile   *controller.ProfileController
	goal      *controller.GoalController
	milestone *controller.MilestoneController
	resource  *controller.ResourceController
	peer      *controller.PeerController
	analytics *controller.AnalyticsController
	admin     *controller.AdminController
	status    *controller.StatusController
	health    *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	repos := &repositories{
		user:        repository.NewUserRepository(db),
		profile:     repository.NewProfileRepository(db),
		goal:        repository.NewGoalRepository(db),
		milestone:   repository.NewMilestoneRepository(db),
		resource:    repository.NewResourceRepository(db),
		bookmark:    repository.NewBookmarkRepository(db),
		badge:       repository.NewBadgeRepository(db),
		adminAction: repository.NewAdminActionRepository(db),
		analytics:   repository.NewAnalyticsRepository(db),
		status:      repository.NewStatusRepository(db),
	}
	if rdb != nil {
		repos.session = repository.NewRedisSessionIndex(rdb)
	}
	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	s.ai = service.NewAIService(cfg.AI)
	s.audit = service.NewAuditService(repos.adminAction)
	s.auth = service.NewAuthService(repos.user, s.audit, repos.session, cfg.Auth)
	s.badge = service.NewBadgeService(s.ai, repos.badge, s.storage)
	s.profile = service.NewProfileService(repos.profile)
	s.goal = service.NewGoalService(repos.goal)
	s.resource = service.NewResourceService(repos.resource, s.audit)
	s.milestone = service.NewMilestoneService(repos.milestone, repos.user, s.goal, s.resource)
	s.peer = service.NewPeerService(repos.user, repos.profile, repos.bookmark)
	s.analytics = service.NewAnalyticsService(repos.analytics, s.audit, cfg.Analytics)
	s.admin = service.NewAdminService(repos.user, repos.badge, repos.adminAction, s.audit)
	s.status = service.NewStatusService(repos.status)

	return s, nil
}

func (a *App) initControllers(s *services, cfg *config.Config) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth, cfg.Auth),
		badge:     controller.NewBadgeController(s.badge),
		profile:   controller.NewProfileController(s.profile),
		goal:      controller.NewGoalController(s.goal),
		milestone: controller.NewMilestoneController(s.milestone),
		resource:  controller.NewResourceController(s.resource),
		peer:      controller.NewPeerController(s.peer),
		analytics: controller.NewAnalyticsController(s.analytics),
		admin:     controller.NewAdminController(s.admin),
		status:    controller.NewStatusController(s.status),
		health:    controller.NewHealthController(a.DB, a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	if cfg.RateLimit.MaxRequests > 0 {
		window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))
	}

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New 使用已建立的连接组装应用，rdb 可为 nil
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*App, error) {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services, err := app.initServices(repos, cfg)
	if err != nil {
		return nil, err
	}
	app.services = services
	controllers := app.initControllers(services, cfg)

	// 生成服务的地址、模型和密钥支持热加载
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		services.ai.UpdateConfig(newCfg.AI)
	})

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	migrate := cfg.ForceMigrate || cfg.Server.Mode != "release"
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app, err := New(cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize application", zap.Error(err))
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("badge-studio", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

// Drain 等待后台任务完成
func (a *App) Drain() {
	if a.services != nil {
		a.services.milestone.Wait()
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	if a.Config.Server.WatchConfig {
		go func() {
			if err := configwatcher.WatchConfig(watchCtx, a.Config.Path, a.applyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Drain()

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}

	logger.Log.Info("Server exiting")
}
