// Command server starts the DoradcaAI HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Chudy3122/doradca-ai/internal/adapter/ai/openrouter"
	"github.com/Chudy3122/doradca-ai/internal/adapter/ai/stub"
	httpserver "github.com/Chudy3122/doradca-ai/internal/adapter/httpserver"
	"github.com/Chudy3122/doradca-ai/internal/adapter/observability"
	"github.com/Chudy3122/doradca-ai/internal/adapter/pdf"
	"github.com/Chudy3122/doradca-ai/internal/adapter/repo/postgres"
	"github.com/Chudy3122/doradca-ai/internal/app"
	"github.com/Chudy3122/doradca-ai/internal/config"
	"github.com/Chudy3122/doradca-ai/internal/domain"
	"github.com/Chudy3122/doradca-ai/internal/service/ratelimiter"
	"github.com/Chudy3122/doradca-ai/internal/usecase"
)

// redisAdapter narrows *redis.Client to the readiness interface.
type redisAdapter struct{ *redis.Client }

func (r redisAdapter) Ping(ctx context.Context) app.RedisPingResult {
	return r.Client.Ping(ctx)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	// Infra: DB pool
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DBURL)
	if err != nil {
		slog.Error("db connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	// Redis backs only the chat rate limiter; the app runs without it.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer func() { _ = rdb.Close() }()
	}

	// Repositories
	questionRepo := postgres.NewQuestionRepo(pool)
	testRepo := postgres.NewTestRepo(pool)
	answerRepo := postgres.NewAnswerRepo(pool)
	profileRepo := postgres.NewProfileRepo(pool)
	chatLogRepo := postgres.NewChatLogRepo(pool)

	// AI client: OpenRouter when a key is configured, deterministic stub
	// otherwise so dev environments work offline.
	var aiClient domain.AIClient
	if cfg.OpenRouterAPIKey != "" {
		orc := openrouter.New(cfg)
		go orc.RunCatalogRefresher(ctx)
		aiClient = orc
	} else {
		if cfg.IsProd() {
			slog.Error("OPENROUTER_API_KEY required in prod")
			os.Exit(1)
		}
		slog.Warn("no OpenRouter key configured; using stub AI client")
		aiClient = stub.New()
	}

	chatLimiter := ratelimiter.NewChatLimiter(rdb, ratelimiter.PerMinute(cfg.ChatRatePerMin))
	renderer := pdf.NewChromiumRenderer(cfg.ChromiumPath, cfg.PDFTimeout)

	// Usecases
	questionSvc := usecase.NewQuestionService(questionRepo)
	analyzeSvc := usecase.NewAnalyzeService(testRepo, answerRepo, questionRepo, profileRepo)
	profileSvc := usecase.NewProfileService(profileRepo)
	chatSvc := usecase.NewChatService(aiClient, chatLogRepo, chatLimiter, cfg.ChatMaxTokens)
	cvSvc := usecase.NewCVService(renderer)

	// Dev-mode question bank seeding (idempotent upsert).
	if cfg.IsDev() {
		if err := seedQuestions(ctx, questionSvc, cfg.QuestionSeedPath); err != nil {
			slog.Warn("question seeding skipped", slog.Any("error", err))
		}
	}

	var redisForCheck app.RedisClient
	if rdb != nil {
		redisForCheck = redisAdapter{rdb}
	}
	dbCheck, redisCheck, pdfCheck, aiCheck := app.BuildReadinessChecks(cfg, pool, redisForCheck)

	srv := &httpserver.Server{
		Cfg:       cfg,
		Analyze:   analyzeSvc,
		Profiles:  profileSvc,
		Chat:      chatSvc,
		CV:        cvSvc,
		Questions: questionSvc,
		DBCheck:   dbCheck,
		PDFCheck:  pdfCheck,
		AICheck:   aiCheck,
	}
	// A missing Redis only unbounds the chat limiter; it should not fail
	// readiness, so the probe is wired only when a client exists.
	if rdb != nil {
		srv.RedisCheck = redisCheck
	}

	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
