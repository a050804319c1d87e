package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/domain"
	"github.com/Zachkp/folio/internal/filter"
	"github.com/Zachkp/folio/internal/health"
	"github.com/Zachkp/folio/internal/loader"
	logpkg "github.com/Zachkp/folio/internal/logger"
	"github.com/Zachkp/folio/internal/metrics"
	"github.com/Zachkp/folio/internal/portfolio"
	"github.com/Zachkp/folio/internal/prefs"
	"github.com/Zachkp/folio/internal/recipes"
	"github.com/Zachkp/folio/internal/server"
	"github.com/Zachkp/folio/web"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.HTTP.Mode)
	logpkg.RouteDebug(logger)

	logger.Info("Starting folio",
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("recipes", cfg.Documents.Recipes),
		zap.String("projects", cfg.Documents.Projects),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := prefs.Open(ctx, cfg.Preferences.Path)
	if err != nil {
		logger.Fatal("Failed to open preference store", zap.Error(err))
	}
	defer store.Close()

	// Documents load once, in the background; features stay disabled until
	// their snapshot is published.
	fetcher := loader.NewFetcher(time.Duration(cfg.Documents.FetchTimeout) * time.Second)
	recorder := metrics.Recorder{}

	recipeSnap := loader.NewSnapshot[[]domain.Recipe]()
	folioSnap := loader.NewSnapshot[portfolio.Portfolio]()
	metrics.MarkPending("recipes")
	metrics.MarkPending("portfolio")

	loader.New("recipes", recipes.Load(fetcher, cfg.Documents.Recipes), recipeSnap, recorder, logger).Start(ctx)
	loader.New("portfolio", portfolio.Load(fetcher, portfolio.Sources{
		About:      cfg.Documents.About,
		Skills:     cfg.Documents.Skills,
		Experience: cfg.Documents.Experience,
		Projects:   cfg.Documents.Projects,
	}), folioSnap, recorder, logger).Start(ctx)

	finder := recipes.NewFinder(recipeSnap, filter.NewPicker(nil).Intn).WithObserver(recorder)
	folio := portfolio.NewService(folioSnap).WithObserver(recorder)
	healthSvc := health.New(map[string]health.StatusSource{
		"recipes":   recipeSnap,
		"portfolio": folioSnap,
	}, store)

	tmpl, err := web.Templates()
	if err != nil {
		logger.Fatal("Failed to parse templates", zap.Error(err))
	}

	srv := server.New(finder, folio, prefs.NewService(store), healthSvc, logger, server.Options{
		DataDir:       cfg.Documents.DataDir,
		SecureCookies: cfg.HTTP.SecureCookies,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      srv.Router(tmpl, web.Static()),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
