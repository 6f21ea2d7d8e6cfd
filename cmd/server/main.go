// @title Code Review Service API
// @version 1.0
// @description Reviews GitHub-hosted code submissions with a generative-AI provider.
// @BasePath /api
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"coderev/internal/cache"
	"coderev/internal/config"
	"coderev/internal/github"
	"coderev/internal/handler"
	apphttp "coderev/internal/http"
	"coderev/internal/logger"
	"coderev/internal/ratelimit"
	"coderev/internal/service"
	"coderev/internal/service/ai"
	"coderev/pkg/snowflake"
)

func main() {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	if err := run(cfg); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := snowflake.Init(0); err != nil {
		return err
	}

	repoCache, err := cache.New(cfg.RedisURL)
	if err != nil {
		return err
	}
	defer repoCache.Close()
	if repoCache.Enabled() {
		logger.Info("repository cache enabled")
	}

	provider, err := ai.NewProvider(ai.Config{
		Provider:        cfg.AIProvider,
		APIKey:          cfg.AIAPIKey,
		BaseURL:         cfg.AIBaseURL,
		Model:           cfg.AIModel,
		Thinking:        cfg.AIThinking,
		ReasoningEffort: cfg.AIReasoningEffort,
	})
	if err != nil {
		return err
	}

	ghClient := github.NewClient(cfg.GitHubToken, cfg.GitHubAPIURL, nil)
	pacer := ai.NewRateLimiter(cfg.AIRequestsPerMinute)
	limiter := ratelimit.New(ratelimit.Config{
		Enabled: cfg.RateLimitEnabled,
		Limit:   cfg.RateLimitRequests,
		Window:  cfg.RateLimitWindow,
	})

	svc := service.NewReviewService(ghClient, repoCache, provider, pacer)
	reviewHandler := handler.NewReviewHandler(svc, limiter, cfg.RequestTimeout)
	e := apphttp.NewRouter(reviewHandler, cfg.SwaggerEnabled)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			"addr", cfg.Addr,
			"provider", provider.Name(),
			"rate_limit_enabled", cfg.RateLimitEnabled)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
