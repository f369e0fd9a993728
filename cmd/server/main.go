package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"shrimpfarm/internal/config"
	cronrunner "shrimpfarm/internal/cron"
	"shrimpfarm/internal/db"
	"shrimpfarm/internal/handler"
	"shrimpfarm/internal/logger"
	"shrimpfarm/internal/report"
	gormrepository "shrimpfarm/internal/repository/gorm"
	"shrimpfarm/internal/service"

	_ "shrimpfarm/docs"
)

func main() {
	cfgPath := os.Getenv("SF_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("SF_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)

	marketPrice := mustDecimal(logger, "report.market_price_per_kg", cfg.Report.MarketPricePerKg)
	survivalPct := mustDecimal(logger, "report.survival_assumption_pct", cfg.Report.SurvivalAssumptionPct)

	builder := &report.Builder{
		Repo:                  store,
		Logger:                logger,
		MarketPricePerKg:      marketPrice,
		SurvivalAssumptionPct: survivalPct,
	}
	batchSvc := &service.BatchService{Repo: store, Logger: logger}
	sampleSvc := &service.SampleService{Repo: store}
	expenseSvc := &service.ExpenseService{Repo: store}
	harvestSvc := &service.HarvestService{Repo: store, Logger: logger}
	snapshotSvc := &service.DashboardSnapshotService{
		Repo:    store,
		Builder: builder,
		Logger:  logger,
		Retain:  cfg.Dashboard.SnapshotRetain,
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	farmHandler := &handler.FarmHandler{Repo: store}
	farmHandler.Register(engine)
	batchHandler := &handler.BatchHandler{Service: batchSvc, Repo: store}
	batchHandler.Register(engine)
	sampleHandler := &handler.SampleHandler{
		Service:               sampleSvc,
		Repo:                  store,
		SurvivalAssumptionPct: survivalPct,
	}
	sampleHandler.Register(engine)
	expenseHandler := &handler.ExpenseHandler{Service: expenseSvc, Repo: store}
	expenseHandler.Register(engine)
	harvestHandler := &handler.HarvestHandler{Service: harvestSvc, Repo: store}
	harvestHandler.Register(engine)
	reportHandler := &handler.ReportHandler{Builder: builder}
	reportHandler.Register(engine)
	dashboardHandler := &handler.DashboardHandler{Builder: builder, Repo: store}
	dashboardHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Cron.Enabled {
		cronRunner := cronrunner.New(logger, ctx)
		_, err := cronRunner.Add("dashboard_snapshot", cfg.Cron.DashboardSnapshot, snapshotSvc.RunOnce)
		if err != nil {
			logger.Warn("cron register dashboard snapshot failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	} else {
		go func() {
			if err := snapshotSvc.Run(ctx, cfg.Dashboard.SnapshotInterval); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("dashboard snapshot loop stopped", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 2)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func mustDecimal(logger *zap.Logger, key, raw string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		logger.Fatal("invalid decimal config value", zap.String("key", key), zap.String("value", raw))
	}
	return v
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
