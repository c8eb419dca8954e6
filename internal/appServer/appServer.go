package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/config"
	repository "github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/database/postgres"
	rediscache "github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/database/redis"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/service"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/transport"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/internal/worker"

	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/pkg/postgres"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/pkg/redis"
	"github.com/yurigilbarrosemp/Client-CRM---SmokeUp/pkg/telegram"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Schema auto-creation
	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize Telegram bot for best-effort reminder/sale alerts
	var telegramBot *telegram.Bot
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)
		logrus.Info("Telegram bot initialized")
	} else {
		logrus.Warn("Telegram bot not configured, alerts will only be stored")
	}

	// Initialize report cache if Redis is configured
	var reportCache service.ReportCache
	if cfg.Redis.Host != "" {
		redisClient := redis.NewRedisClient(&cfg.Redis)
		defer redisClient.Close()
		reportCache = rediscache.NewReportCache(redisClient, cfg.App.ReportCacheTTL)
		logrus.Info("Report cache initialized")
	}

	// Initialize services
	customerService := service.NewCustomerService(customerRepo, purchaseRepo)
	productService := service.NewProductService(productRepo)

	// One-time catalog seed, a no-op on every later startup
	if err := productService.EnsureSeedCatalog(context.Background()); err != nil {
		logrus.Fatalf("Failed to seed product catalog: %v", err)
	}
	saleService := service.NewSaleService(purchaseRepo, customerRepo, productRepo, notificationRepo, telegramBot, cfg.Telegram.ChatID)
	reminderService := service.NewReminderService(customerRepo, notificationRepo, telegramBot, cfg.Telegram.ChatID)
	reportService := service.NewReportService(customerRepo, purchaseRepo, reportCache)

	// Start the reminder worker
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reminderWorker := worker.NewReminderWorker(reminderService, cfg.App.ReminderInterval)
	go reminderWorker.Start(ctx)

	// Initialize handlers
	customerHandler := transport.NewCustomerHandler(customerService)
	productHandler := transport.NewProductHandler(productService)
	saleHandler := transport.NewSaleHandler(saleService)
	notificationHandler := transport.NewNotificationHandler(reminderService)
	reportHandler := transport.NewReportHandler(reportService)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		handler := transport.InitRoutes(cfg.Server.Timeout, customerHandler, productHandler, saleHandler, notificationHandler, reportHandler)
		if err := srv.Run(cfg, handler); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
