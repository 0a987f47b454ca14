package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/controller"
	"github.com/hugohenrick/toko-digital/internal/adapter/api/route"
	"github.com/hugohenrick/toko-digital/internal/adapter/cache"
	"github.com/hugohenrick/toko-digital/internal/adapter/events"
	"github.com/hugohenrick/toko-digital/internal/adapter/repository"
	"github.com/hugohenrick/toko-digital/internal/config"
	"github.com/hugohenrick/toko-digital/internal/domain/setting"
	"github.com/hugohenrick/toko-digital/internal/infrastructure/database"
	"github.com/hugohenrick/toko-digital/internal/infrastructure/scheduler"
	"github.com/hugohenrick/toko-digital/internal/service"
	"github.com/hugohenrick/toko-digital/pkg/auth"
	"github.com/hugohenrick/toko-digital/pkg/logger"
	"github.com/hugohenrick/toko-digital/pkg/middleware"
	"github.com/hugohenrick/toko-digital/pkg/tenant"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const version = "1.0.0"

// App representa a aplicação e suas dependências
type App struct {
	cfg       *config.Config
	log       logger.Logger
	router    *gin.Engine
	server    *http.Server
	db        *database.PostgresDB
	redis     *redis.Client
	nats      *events.NATSPublisher
	scheduler *scheduler.Scheduler
}

// NewApp conecta a infraestrutura, monta os serviços e registra as rotas
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET_KEY não configurada")
	}

	db, err := database.NewPostgresDB(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}
	a := &App{cfg: cfg, log: log, db: db}

	// Sessões e tráfego dependem do Redis; o cache de relatórios pode ser desligado
	a.redis, err = cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		a.Close()
		return nil, err
	}
	var statsCache service.StatsCache = cache.Noop{}
	if cfg.Redis.StatsTTL > 0 {
		statsCache = cache.NewStatsCache(a.redis, cfg.Redis.StatsTTL)
	}

	var publisher events.Publisher = events.Discard{}
	if cfg.NATS.Enabled {
		a.nats, err = events.NewNATSPublisher(cfg.NATS.URL, log)
		if err != nil {
			log.Warn("NATS indisponível, eventos serão descartados", "url", cfg.NATS.URL, "error", err)
		} else {
			publisher = a.nats
		}
	}

	pool := db.Pool()
	users := repository.NewUserRepository(pool)
	stores := repository.NewStoreRepository(pool)
	templates := repository.NewTemplateRepository(pool)
	products := repository.NewProductRepository(pool)
	orders := repository.NewOrderRepository(pool)
	customers := repository.NewCustomerRepository(pool)
	ledger := repository.NewFinanceRepository(pool)
	subscriptions := repository.NewSubscriptionRepository(pool)
	analyticsRepo := repository.NewAnalyticsRepository(pool)
	activity := repository.NewActivityLogRepository(pool)
	notifications := repository.NewNotificationRepository(pool)
	settings := repository.NewSettingRepository(pool)
	chats := repository.NewChatRepository(pool)

	jwtService, err := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	if err != nil {
		a.Close()
		return nil, err
	}
	sessions := auth.NewSessionService(jwtService, cache.NewSessionStore(a.redis), users)
	traffic := cache.NewTrafficCounter(a.redis)
	defaults := setting.Defaults(cfg.Platform.Currency, cfg.Auth.TrialDays)

	accounts := service.NewAccountService(service.AccountDeps{
		Users:         users,
		Stores:        stores,
		Subscriptions: subscriptions,
		Settings:      settings,
		Sessions:      sessions,
		Events:        publisher,
		Logger:        log,
		Defaults:      defaults,
	})
	admin := service.NewAdminService(service.AdminDeps{
		Users:    users,
		Stores:   stores,
		Activity: activity,
		Settings: settings,
		Cache:    statsCache,
		Sessions: sessions,
		Events:   publisher,
		Logger:   log,
		Defaults: defaults,
	})
	reports := service.NewReportService(service.ReportDeps{
		Orders:        orders,
		Customers:     customers,
		Products:      products,
		Finance:       ledger,
		Users:         users,
		Stores:        stores,
		Subscriptions: subscriptions,
		Analytics:     analyticsRepo,
		Cache:         statsCache,
		Logger:        log,
	})
	relations := &service.RelationLoader{
		Users:         users,
		Stores:        stores,
		Products:      products,
		Orders:        orders,
		Customers:     customers,
		Finance:       ledger,
		Subscriptions: subscriptions,
	}
	catalog := service.NewProductService(products, stores, log)
	orderService := service.NewOrderService(orders, products, customers, ledger, publisher, log)
	subscriptionService := service.NewSubscriptionService(subscriptions, publisher, log)
	analyticsService := service.NewAnalyticsService(stores, orders, analyticsRepo, traffic, log)

	a.scheduler = scheduler.New(cfg.Scheduler, analyticsService, subscriptionService, log)

	base := cfg.Platform.BaseDomain
	a.router = a.newRouter()

	api := a.router.Group(cfg.Server.BasePath)
	authenticated := []gin.HandlerFunc{
		auth.JWTAuthMiddleware(jwtService),
		tenant.Middleware(repository.NewStoreResolver(users, stores)),
	}
	protected := api.Group("", authenticated...)
	owner := protected.Group("", tenant.RequireStore())

	route.SetupAuthRoutes(api, controller.NewAuthController(accounts, base), authenticated...)
	route.SetupStorefrontRoutes(api, controller.NewStorefrontController(stores, products, traffic, base, log))
	route.SetupStoreRoutes(owner, route.StoreControllers{
		Dashboard: controller.NewDashboardController(reports, orders),
		Products:  controller.NewProductController(products, catalog, relations),
		Orders:    controller.NewOrderController(orders, orderService, relations),
		Store:     controller.NewStoreController(stores, templates, base),
		Chats:     controller.NewChatController(chats),
	})
	route.SetupProfileRoutes(protected, controller.NewProfileController(accounts, base))
	route.SetupCustomerRoutes(owner, controller.NewCustomerController(customers, relations))
	route.SetupAdminRoutes(protected, controller.NewAdminController(controller.AdminDeps{
		Admin:         admin,
		Reports:       reports,
		Accounts:      accounts,
		Relations:     relations,
		Users:         users,
		Stores:        stores,
		Subscriptions: subscriptions,
		Notifications: notifications,
		Activity:      activity,
		Logger:        log,
	}))
	route.SetupSuperAdminRoutes(protected, controller.NewSuperAdminController(reports, ledger, stores))

	a.server = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return a, nil
}

// newRouter cria o engine com os middlewares globais e as rotas de infraestrutura
func (a *App) newRouter() *gin.Engine {
	gin.SetMode(a.cfg.Server.Mode)
	router := gin.New()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	if len(a.cfg.Server.AllowedOrigins) == 0 || a.cfg.Server.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = a.cfg.Server.AllowedOrigins
	}

	router.Use(
		middleware.Recovery(a.log),
		middleware.RequestLogger(a.log),
		metrics.Handler(),
		cors.New(corsCfg),
	)

	router.GET("/health", a.health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}

// health verifica o banco e o Redis
func (a *App) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{"database": "ok", "redis": "ok"}
	status := http.StatusOK
	if err := a.db.Ping(ctx); err != nil {
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if err := a.redis.Ping(ctx).Err(); err != nil {
		checks["redis"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{"status": http.StatusText(status), "version": version, "checks": checks})
}

// Start inicia o scheduler e o servidor HTTP; bloqueia até o servidor parar
func (a *App) Start() error {
	if err := a.scheduler.Start(); err != nil {
		return err
	}

	a.log.Info("Servidor iniciado", "addr", a.server.Addr, "base_path", a.cfg.Server.BasePath)
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown encerra o servidor aguardando as requisições em andamento
func (a *App) Shutdown(ctx context.Context) error {
	a.scheduler.Stop()
	return a.server.Shutdown(ctx)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.nats != nil {
		a.nats.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}
