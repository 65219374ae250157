// @title         resume-optimizer API
// @version       1.0
// @description   Подгонка резюме под вакансию: скрапинг вакансии, очистка через LLM и переписывание резюме.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	httpapi "github.com/artem13815/resume-optimizer/api/http"
	"github.com/artem13815/resume-optimizer/api/http/handlers"
	"github.com/artem13815/resume-optimizer/api/http/middleware"
	_ "github.com/artem13815/resume-optimizer/docs"
	"github.com/artem13815/resume-optimizer/pkg/config"
	"github.com/artem13815/resume-optimizer/pkg/health"
	"github.com/artem13815/resume-optimizer/pkg/health/checkers"
	"github.com/artem13815/resume-optimizer/pkg/jobposting"
	"github.com/artem13815/resume-optimizer/pkg/llm"
	"github.com/artem13815/resume-optimizer/pkg/llm/anthropic"
	"github.com/artem13815/resume-optimizer/pkg/llm/openrouter"
	"github.com/artem13815/resume-optimizer/pkg/logging"
	"github.com/artem13815/resume-optimizer/pkg/optimization"
	mongorepo "github.com/artem13815/resume-optimizer/pkg/repository/mongo"
	pgrepo "github.com/artem13815/resume-optimizer/pkg/repository/postgres"
	mongostore "github.com/artem13815/resume-optimizer/pkg/storage/mongo"
	pgstore "github.com/artem13815/resume-optimizer/pkg/storage/postgres"
)

func main() {
	// Конфигурация из env/.env/config.yaml
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, checker, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("store: %v", err)
	}
	defer closeStore()

	llmClient := newLLM(cfg, logger)

	var renderer jobposting.Fetcher
	if cfg.RenderEnabled {
		renderer = jobposting.NewChromeRenderer(cfg.ChromePath)
	}
	extractor := jobposting.NewExtractor(
		jobposting.NewStaticFetcher(30*time.Second),
		renderer,
		jobposting.NewLLMCleanser(llmClient, logger.WithField("component", "cleanser")),
		logger.WithField("component", "extractor"),
	)
	optimizer := optimization.NewOptimizer(llmClient, logger.WithField("component", "optimizer"))
	optimizationUC := optimization.NewService(repo, extractor, optimizer, logger.WithField("component", "optimization"))

	healthHandler := handlers.NewHealthHandler(health.NewService(checker))
	optimizeHandler := handlers.NewOptimizeHandler(optimizationUC, logger)
	optimizationsHandler := handlers.NewOptimizationsHandler(optimizationUC, logger)

	app := fiber.New(fiber.Config{
		AppName:   "resume-optimizer",
		BodyLimit: 20 << 20,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.AccessLog(logger.WithField("component", "http")))
	app.Use(cors.New())

	httpapi.Register(app, healthHandler, optimizeHandler, optimizationsHandler)
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.WithError(err).Error("shutdown")
		}
	}()

	logger.WithFields(logrus.Fields{
		"port":     cfg.Port,
		"store":    cfg.StoreDriver,
		"llm":      cfg.LLMProvider,
		"renderer": cfg.RenderEnabled,
	}).Info("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.WithError(err).Error("server stopped")
	}
}

func openStore(ctx context.Context, cfg config.Config, logger *logrus.Logger) (optimization.Repository, health.Checker, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := mongostore.Connect(ctx, cfg.MongoURL)
		if err != nil {
			return nil, nil, nil, err
		}
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				logger.WithError(err).Warn("mongo disconnect")
			}
		}
		repo, err := mongorepo.NewOptimizationRepository(ctx, client.Database(cfg.MongoDatabase))
		if err != nil {
			closeFn()
			return nil, nil, nil, err
		}
		logger.WithField("database", cfg.MongoDatabase).Info("mongo ready")
		return repo, checkers.NewMongoChecker(client), closeFn, nil
	case config.StorePostgres:
		pool, err := pgstore.Open(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return pgrepo.NewOptimizationRepository(pool), checkers.NewPostgresChecker(pool), pool.Close, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func newLLM(cfg config.Config, logger *logrus.Logger) llm.Client {
	var client llm.Client
	var configured bool
	switch cfg.LLMProvider {
	case config.ProviderAnthropic:
		client = anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicModel, logger.WithField("component", "anthropic"))
		configured = cfg.AnthropicAPIKey != ""
	default:
		client = openrouter.New(cfg.OpenRouterAPIKey, cfg.OpenRouterBase, cfg.OpenRouterModel, cfg.OpenRouterAppTitle, cfg.OpenRouterReferer)
		configured = cfg.OpenRouterAPIKey != ""
	}
	if !configured {
		logger.WithField("provider", cfg.LLMProvider).Warn("LLM API key is empty, optimizations will use fallback results")
	}
	return client
}
