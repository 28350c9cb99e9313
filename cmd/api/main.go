package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"portfolio/cmd/api/auth"
	"portfolio/cmd/api/handlers"
	"portfolio/cmd/api/httpclient"
	"portfolio/cmd/api/quota"
	"portfolio/cmd/api/router"
	"portfolio/cmd/api/services"
	"portfolio/config"
	"portfolio/db"
	"portfolio/eventbus"
	"portfolio/forms"
	"portfolio/internal/logger"
	"portfolio/repositories"
	"portfolio/summarizer"
)

// @title           Portfolio API
// @version         1.0
// @description     Public reads and admin CRUD for the portfolio's blog posts and projects
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// MongoDB 초기화
	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		_ = db.Disconnect(shutdownCtx)
	}()

	// EventBus 초기화 및 토픽 보장
	eventbus.SetContentTopic(cfg.Kafka.Topic)
	if cfg.Kafka.Brokers != "" {
		if err := eventbus.EnsureTopics(cfg.Kafka.Brokers, eventbus.TopicContentEvents, 3); err != nil {
			logger.Log.Errorf("failed to ensure eventbus topics: %v", err)
		}
	}
	bus, err := eventbus.New(cfg.Kafka.Brokers)
	if err != nil {
		logger.Log.Errorf("failed to create event bus: %v", err)
		os.Exit(1)
	}
	defer bus.Close()

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		logger.Log.Errorf("failed to initialize jwt: %v", err)
		os.Exit(1)
	}

	var googleOAuth services.GoogleOAuth
	if g, err := auth.NewGoogleOAuthClientFromEnv(); err == nil {
		googleOAuth = g
	} else {
		logger.Log.Infof("google sign-in disabled: %v", err)
	}

	var gen summarizer.Generator
	if cfg.GeminiAPIKey != "" {
		g, err := summarizer.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log.Errorf("failed to create gemini client: %v", err)
			os.Exit(1)
		}
		gen = g
	}

	// 서비스 초기화
	database := db.Database()
	postSvc := services.NewPostService(repositories.NewBlogPostRepository(database), bus, cfg.Server.BaseURL)
	projectSvc := services.NewProjectService(repositories.NewProjectRepository(database))
	authSvc := services.NewAuthService(repositories.NewUserRepository(database), jwtManager, googleOAuth)

	r, err := router.New(router.Deps{
		Layout:     handlers.NewLayout(cfg.Site, cfg.Server.SecureCookies),
		BaseURL:    cfg.Server.BaseURL,
		Posts:      postSvc,
		Projects:   projectSvc,
		Auth:       authSvc,
		Newsletter: services.NewNewsletterService(bus),
		Previews:   services.NewPreviewService(httpclient.New(httpclient.Config{Timeout: 8 * time.Second, UserAgent: "portfolio-preview/1.0"})),
		Excerpts:   services.NewExcerptService(gen, quota.NewExcerptQuotaLimiterFromConfig(cfg)),
		Guard:      forms.NewSubmitGuard(time.Hour),
		Health:     db.Ping,
	})
	if err != nil {
		logger.Log.Errorf("failed to build router: %v", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: cors.New(cors.Options{
			AllowedOrigins:   cfg.Server.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id", "X-Span-Id"},
			AllowCredentials: true,
		}).Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("starting portfolio server on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("server error: %v", err)
			cancel()
		}
	}()

	// 종료 신호 대기
	<-ctx.Done()
	logger.Log.Info("received shutdown signal, shutting down server...")

	shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
	defer done()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("server shutdown: %v", err)
	}
	logger.Log.Info("server stopped")
}
