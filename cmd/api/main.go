package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appfeedback "github.com/bryanwahyu/feedback-analyzer/internal/application/feedback"
	"github.com/bryanwahyu/feedback-analyzer/internal/config"
	domain "github.com/bryanwahyu/feedback-analyzer/internal/domain/feedback"
	"github.com/bryanwahyu/feedback-analyzer/internal/infra/ai/gemini"
	"github.com/bryanwahyu/feedback-analyzer/internal/infra/ai/openai"
	"github.com/bryanwahyu/feedback-analyzer/internal/infra/ai/prompt"
	"github.com/bryanwahyu/feedback-analyzer/internal/infra/db"
	"github.com/bryanwahyu/feedback-analyzer/internal/infra/db/mysql"
	"github.com/bryanwahyu/feedback-analyzer/internal/infra/db/postgres"
	"github.com/bryanwahyu/feedback-analyzer/internal/infra/db/sqlite"
	"github.com/bryanwahyu/feedback-analyzer/internal/infra/httpserver"
	"github.com/bryanwahyu/feedback-analyzer/internal/logging"
	"github.com/bryanwahyu/feedback-analyzer/internal/middleware"
)

func main() {
	path := config.DefaultPath
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger := logging.Init(os.Stdout, cfg.Log.Level)
	ctx := context.Background()

	completer, err := newCompleter(ctx, cfg)
	if err != nil {
		logger.Error("completion client init failed", "err", err)
		os.Exit(1)
	}

	opener, store := newStore(cfg)

	svc := appfeedback.NewService(prompt.NewFeedbackAnalyzer(completer), store)

	handler := httpserver.NewRouter(svc, httpserver.Options{
		Logger:      logger,
		Metrics:     middleware.NewMetrics(),
		Health:      map[string]middleware.HealthChecker{"database": &middleware.DatabaseHealthChecker{Opener: opener}},
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			"addr", addr,
			"db_driver", cfg.Database.Driver,
			"completion_provider", cfg.Completion.Provider,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down server")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}

func newCompleter(ctx context.Context, cfg *config.Config) (domain.Completer, error) {
	switch cfg.Completion.Provider {
	case config.ProviderGemini:
		g := cfg.Completion.Gemini
		c, err := gemini.NewClient(ctx, g.APIKey, g.Model, g.BaseURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		o := cfg.Completion.OpenAI
		return openai.NewClient(o.APIKey, openai.Options{
			BaseURL:   o.BaseURL,
			Model:     o.Model,
			MaxTokens: o.MaxTokens,
			JSONMode:  o.JSONMode,
		}), nil
	}
}

// newStore picks the dialect. Connections are opened per request by the
// returned Opener; nothing is dialed here.
func newStore(cfg *config.Config) (db.Opener, domain.Store) {
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		o := postgres.NewOpener(cfg.PostgresDSN())
		return o, postgres.NewFeedbackRepository(o)
	case config.DriverSQLite:
		o := sqlite.NewOpener(cfg.Database.Path)
		return o, sqlite.NewFeedbackRepository(o)
	default:
		o := mysql.NewOpener(cfg.MySQLDSN())
		return o, mysql.NewFeedbackRepository(o)
	}
}
