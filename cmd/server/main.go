package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agarciagaray/mi-riesgo/internal/application/usecase"
	"github.com/agarciagaray/mi-riesgo/internal/domain/port"
	"github.com/agarciagaray/mi-riesgo/internal/domain/service"
	"github.com/agarciagaray/mi-riesgo/internal/infrastructure/adapter"
	"github.com/agarciagaray/mi-riesgo/internal/infrastructure/config"
	infrakafka "github.com/agarciagaray/mi-riesgo/internal/infrastructure/kafka"
	"github.com/agarciagaray/mi-riesgo/internal/infrastructure/persistence/memory"
	pgRepo "github.com/agarciagaray/mi-riesgo/internal/infrastructure/persistence/postgres"
	"github.com/agarciagaray/mi-riesgo/internal/presentation/rest"
	"github.com/agarciagaray/mi-riesgo/pkg/auth"
	pkgkafka "github.com/agarciagaray/mi-riesgo/pkg/kafka"
	"github.com/agarciagaray/mi-riesgo/pkg/observability"
	pkgpostgres "github.com/agarciagaray/mi-riesgo/pkg/postgres"
)

const eventsTopic = "bureau.events"

func main() {
	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Service: cfg.ServiceName,
		Level:   cfg.LogLevel,
	})
	logger.Info("starting credit reporting core",
		"http_port", cfg.HTTPPort,
		"metrics_port", cfg.MetricsPort,
		"demo_mode", cfg.DemoMode,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Persistence --------------------------------------------------------
	var (
		clientRepo  port.ClientRepository
		loanRepo    port.LoanRepository
		companyRepo port.CompanyRepository
		ready       func() error
	)

	if cfg.DemoMode {
		store := memory.NewStore()
		if err := memory.Seed(ctx, store, time.Now().UTC()); err != nil {
			logger.Error("failed to seed demo dataset", "error", err)
			os.Exit(1)
		}
		clientRepo, loanRepo, companyRepo = store.Clients(), store.Loans(), store.Companies()
		logger.Info("running on seeded in-memory dataset")
	} else {
		pgCfg := pkgpostgres.Config{
			Host:     cfg.DB.Host,
			Port:     cfg.DB.Port,
			User:     cfg.DB.User,
			Password: cfg.DB.Password,
			Database: cfg.DB.Name,
			SSLMode:  cfg.DB.SSLMode,
		}
		pool, err := pkgpostgres.NewPool(ctx, pgCfg)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pkgpostgres.RunMigrations(pgCfg.DSN(), "file://./migrations"); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		logger.Info("connected to database")

		clientRepo = pgRepo.NewClientRepo(pool)
		loanRepo = pgRepo.NewLoanRepo(pool)
		companyRepo = pgRepo.NewCompanyRepo(pool)
		ready = func() error { return pool.Ping(context.Background()) }
	}

	// --- Infrastructure adapters -------------------------------------------
	var publisher port.EventPublisher
	if cfg.Kafka.Enabled {
		producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
		defer producer.Close()
		publisher = infrakafka.NewKafkaEventPublisher(producer, eventsTopic, logger)
	} else {
		logger.Warn("event publishing disabled")
	}

	var scoringClient port.ScoringClient
	switch {
	case cfg.Scoring.BaseURL != "":
		scoringClient = adapter.NewRemoteScoringClient(adapter.ScoringClientConfig{
			BaseURL: cfg.Scoring.BaseURL,
			APIKey:  cfg.Scoring.APIKey,
			Timeout: cfg.Scoring.Timeout,
		}, nil)
	case cfg.DemoMode:
		scoringClient = adapter.NewStubScoringClient()
	}

	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret:     cfg.Auth.JWTSecret,
		Issuer:     cfg.Auth.Issuer,
		Expiration: cfg.Auth.TokenTTL,
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// --- Domain services and use cases --------------------------------------
	resolver := service.NewLoanStatusResolver()
	scorer := service.NewRiskScorer()
	aggregator := service.NewPortfolioAggregator()

	reportsUC := usecase.NewGetCreditReportUseCase(clientRepo, loanRepo, resolver)
	scoringUC := usecase.NewScoreReportUseCase(reportsUC, scoringClient, scorer, cfg.Scoring.Timeout, logger)
	dashboardUC := usecase.NewAggregatePortfolioUseCase(clientRepo, loanRepo, companyRepo, aggregator)
	listClientsUC := usecase.NewListClientsUseCase(clientRepo)
	listCompaniesUC := usecase.NewListCompaniesUseCase(companyRepo)
	updateClientUC := usecase.NewUpdateClientUseCase(clientRepo, publisher)
	updateLoanUC := usecase.NewUpdateLoanUseCase(loanRepo, resolver, publisher)
	ingestUC := usecase.NewIngestFileUseCase(clientRepo, loanRepo, publisher, logger)

	// --- Metrics server -----------------------------------------------------
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := meterProvider.Shutdown(context.Background()); err != nil {
			logger.Error("meter provider shutdown error", "error", err)
		}
	}()
	metrics := observability.NewBureauMetrics()

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", metricsHandler)
	metricsServer := &http.Server{Addr: cfg.MetricsAddr(), Handler: metricsMux}

	go func() {
		logger.Info("metrics server listening", "addr", cfg.MetricsAddr())
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP API server ----------------------------------------------------
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	handler := rest.NewHandler(
		reportsUC, scoringUC, dashboardUC, listClientsUC, listCompaniesUC,
		updateClientUC, updateLoanUC, ingestUC,
		metrics, logger, ready,
	)
	handler.RegisterRoutes(router, jwtService)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown error", "error", err)
	}

	logger.Info("credit reporting core stopped")
}
