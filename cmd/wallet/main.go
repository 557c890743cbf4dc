package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/averros/digiwallet/internal/pkg/config"
	"github.com/averros/digiwallet/internal/pkg/database"
	"github.com/averros/digiwallet/internal/pkg/health"
	"github.com/averros/digiwallet/internal/pkg/logger"
	"github.com/averros/digiwallet/internal/pkg/metrics"
	"github.com/averros/digiwallet/internal/pkg/middleware"
	natspkg "github.com/averros/digiwallet/internal/pkg/nats"
	"github.com/averros/digiwallet/internal/pkg/server"
	fraudHandler "github.com/averros/digiwallet/services/fraud/handler/http"
	fraudUsecase "github.com/averros/digiwallet/services/fraud/usecase"
	"github.com/averros/digiwallet/services/wallet/gateway"
	"github.com/averros/digiwallet/services/wallet/handler"
	walletHandler "github.com/averros/digiwallet/services/wallet/handler/http"
	"github.com/averros/digiwallet/services/wallet/repository"
	walletUsecase "github.com/averros/digiwallet/services/wallet/usecase"
)

func main() {
	appName := "wallet-service"
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	defer natsClient.Close()

	// Metrics collector shared by the ledger and the fraud subsystem
	collector := metrics.NewCollector()

	// Initialize repositories
	walletRepo := repository.NewWalletRepo(configs, postgresClient.GetDB(), redisClient)
	txRepo := repository.NewTransactionRepo(configs, postgresClient.GetDB())

	// Initialize gateway
	walletGW := gateway.NewNATSGateway(natsClient)

	// Initialize use cases. The fraud use case doubles as the real-time
	// evaluator consulted by the ledger.
	fraudUC := fraudUsecase.NewFraudDetectionUC(configs.Fraud, txRepo, walletGW, collector)
	ledgerUC := walletUsecase.NewLedgerUC(configs, walletRepo, txRepo, fraudUC, walletGW, collector)

	// Initialize handlers
	walletH := walletHandler.NewWalletHandler(ledgerUC)
	fraudH := fraudHandler.NewFraudHandler(fraudUC)

	adminAPIKey := config.GetEnv("ADMIN_API_KEY", "")
	if adminAPIKey == "" {
		zapLogger.Warn("ADMIN_API_KEY is not set, admin endpoints will reject all requests")
	}

	h := handler.NewHandler(walletH, fraudH, configs, adminAPIKey)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health and metrics endpoints
	health.RegisterHealthEndpoints(e, appName)
	e.GET("/metrics", echo.WrapHandler(collector.Handler()))

	// Register service routes
	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated", zap.Error(err))
	}
}
