package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/foundermind/foundermind-backend/internal/adapter/notify"
	"github.com/foundermind/foundermind-backend/internal/adapter/postgres"
	"github.com/foundermind/foundermind-backend/internal/adapter/postgres/burnoutscore"
	"github.com/foundermind/foundermind-backend/internal/adapter/postgres/journalentry"
	"github.com/foundermind/foundermind-backend/internal/adapter/postgres/peermatch"
	"github.com/foundermind/foundermind-backend/internal/adapter/postgres/profile"
	"github.com/foundermind/foundermind-backend/internal/adapter/postgres/user"
	"github.com/foundermind/foundermind-backend/internal/adapter/provider/anthropic"
	"github.com/foundermind/foundermind-backend/internal/adapter/provider/insightstub"
	"github.com/foundermind/foundermind-backend/internal/adapter/pseudonym"
	"github.com/foundermind/foundermind-backend/internal/auth"
	"github.com/foundermind/foundermind-backend/internal/config"
	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/service/assessment"
	"github.com/foundermind/foundermind-backend/internal/service/compatibility"
	"github.com/foundermind/foundermind-backend/internal/service/journal"
	"github.com/foundermind/foundermind-backend/internal/service/matching"
	"github.com/foundermind/foundermind-backend/internal/transport/middleware"
	"github.com/foundermind/foundermind-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// adapters and services together, and serves HTTP until the context is
// cancelled or a termination signal arrives.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("env", cfg.Env),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer pool.Close()

	users := user.New(pool)
	profiles := profile.New(pool)
	matches := peermatch.New(pool)
	entries := journalentry.New(pool)
	scores := burnoutscore.New(pool)
	txManager := postgres.NewTxManager(pool)

	pseudonyms := pseudonym.NewGenerator()

	assessmentSvc, err := newAssessmentService(cfg.Insight, logger, profiles, users, pseudonyms, txManager)
	if err != nil {
		return fmt.Errorf("creating assessment service: %w", err)
	}
	compatibilitySvc := compatibility.NewService(logger, profiles)
	matchingSvc := matching.NewService(logger, profiles, users, matches, notify.NewLogNotifier(logger), txManager, domain.MatchingRules{
		SimilarityFloor:        cfg.Matching.SimilarityFloor,
		ArchetypeBonus:         cfg.Matching.ArchetypeBonus,
		SharedDimensionEpsilon: cfg.Matching.SharedDimensionEpsilon,
		MaxMatches:             cfg.Matching.MaxMatches,
	})
	journalSvc := journal.NewService(logger, entries, scores, profiles, users, pseudonyms, txManager)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("creating rate limiter: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	router := rest.NewRouter(rest.RouterDeps{
		Health:        rest.NewHealthHandler(pool, BuildVersion()),
		Assessment:    rest.NewAssessmentHandler(assessmentSvc, logger),
		Compatibility: rest.NewCompatibilityHandler(compatibilitySvc, logger),
		Matches:       rest.NewMatchesHandler(matchingSvc, logger),
		Journal:       rest.NewJournalHandler(journalSvc, logger),
		Metrics:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})
	// Instrumentation runs inside mux so the route template is known.
	router.Use(mux.MiddlewareFunc(metrics.Instrument()))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(),
		middleware.Auth(jwtManager),
	)(router)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// newAssessmentService picks the insight generator: the Anthropic client when
// insight generation is enabled, the deterministic stub otherwise.
func newAssessmentService(
	cfg config.InsightConfig,
	logger *slog.Logger,
	profiles *profile.Repo,
	users *user.Repo,
	pseudonyms *pseudonym.Generator,
	tx *postgres.TxManager,
) (*assessment.Service, error) {
	if !cfg.Enabled {
		return assessment.NewService(logger, profiles, users, insightstub.NewStub(), pseudonyms, tx), nil
	}

	generator, err := anthropic.NewGenerator(logger, cfg.APIKey, cfg.Model, cfg.MaxTokens, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return assessment.NewService(logger, profiles, users, generator, pseudonyms, tx), nil
}
