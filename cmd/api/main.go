package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/BoomMccloud/interviewer-pro-sub001/internal/ai"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/auth"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/cache"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/config"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/database"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/events"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/handler"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/interview"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/logger"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/persona"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/repository"
	"github.com/BoomMccloud/interviewer-pro-sub001/pkg"
)

type application struct {
	DB       *pgxpool.Pool
	Redis    *redis.Client
	Logger   *zap.Logger
	Config   *config.Config
	Handler  *handler.Handler
	Verifier *auth.Verifier
	Limiter  *cache.RateLimiter
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxOpenConns, cfg.DB.MaxIdleTime)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	rdb := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(ctx, rdb); err != nil {
		sugar.Fatalw("redis unreachable", "addr", cfg.Redis.Addr, "err", err)
	}
	defer rdb.Close()

	var crypto *pkg.Crypto
	if cfg.Crypto.Secret != "" {
		crypto, err = pkg.NewCrypto(cfg.Crypto.Secret)
		if err != nil {
			sugar.Fatal(err)
		}
		sugar.Info("encryption at rest enabled")
	}

	repo := repository.NewRepository(pool, crypto)
	if err := repo.EnsureSchema(ctx); err != nil {
		sugar.Fatal(err)
	}

	personas, err := persona.NewRegistry(cfg.Interview.PersonaFile, sugar)
	if err != nil {
		sugar.Fatal(err)
	}

	provider, err := ai.NewProvider(ai.ProviderName(cfg.AI.Provider), ai.ProviderConfig{
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		Timeout:     cfg.AI.Timeout,
		MaxTokens:   cfg.AI.MaxTokens,
		Temperature: cfg.AI.Temperature,
	})
	if err != nil {
		sugar.Fatal(err)
	}
	gateway := ai.NewGateway(provider, personas, sugar)
	sugar.Infow("ai provider ready", "provider", provider.Name(), "model", cfg.AI.Model)

	var sink interview.EventSink
	if cfg.NATS.URL != "" {
		publisher, err := events.Connect(cfg.NATS.URL, sugar)
		if err != nil {
			sugar.Fatal(err)
		}
		defer publisher.Close()
		sink = publisher
	}

	engine := interview.NewEngine(
		repo.Session,
		gateway,
		cache.NewSessionLock(rdb, cfg.Interview.LockTTL, sugar),
		cache.NewStateCache(rdb, cfg.Interview.StateCacheTTL, sugar),
		sink,
		sugar,
		interview.Options{
			QuestionBudget: cfg.Interview.QuestionBudget,
			Pregenerate:    cfg.Interview.Pregenerate,
		},
	)

	app := &application{
		DB:       pool,
		Redis:    rdb,
		Logger:   log,
		Config:   cfg,
		Handler:  &handler.Handler{Engine: engine, Logger: sugar},
		Verifier: auth.NewVerifier(cfg.JWT.Secret),
		Limiter:  cache.NewRateLimiter(rdb, cfg.Limiter.Requests, cfg.Limiter.Window),
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
