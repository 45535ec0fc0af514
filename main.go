package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"project-board/config"
	"project-board/handlers"
	"project-board/helper"
	"project-board/logger"
	"project-board/middleware"
	"project-board/repositories"
	"project-board/services"
	"project-board/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	sugar, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer sugar.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := telemetry.NewProvider(ctx, telemetry.Config{
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: "1.0.0",
		Enabled:        cfg.Tracing.Enabled,
	})
	if err != nil {
		sugar.Fatalw("init tracing", "error", err)
	}

	// Initialize database
	db, err := config.InitDB(cfg.Database)
	if err != nil {
		sugar.Fatalw("init database", "error", err)
	}

	// Initialize repositories
	tx := repositories.NewTransactor(db)
	userRepo := repositories.NewUserAccountRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewArticleCommentRepository(db)

	// Initialize services
	secret := []byte(cfg.JWT.Secret)
	authService := services.NewAuthService(tx, userRepo, secret, cfg.JWT.Expiration, sugar)
	articleService := services.NewArticleService(tx, articleRepo, sugar)
	commentService := services.NewArticleCommentService(tx, articleRepo, commentRepo, sugar)

	// Initialize handlers
	httpHelper, err := helper.NewHTTPHelper()
	if err != nil {
		sugar.Fatalw("init validator", "error", err)
	}
	h := handlers.Handlers{
		Auth:           handlers.NewAuthHandler(authService, httpHelper),
		Article:        handlers.NewArticleHandler(articleService, httpHelper),
		ArticleComment: handlers.NewArticleCommentHandler(commentService, httpHelper),
	}

	// Setup router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(sugar), middleware.Metrics())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterRoutes(router.Group("/api"), h, secret)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sugar.Infow("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("server stopped", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("server shutdown", "error", err)
	}
	if err := provider.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("tracer shutdown", "error", err)
	}
}
