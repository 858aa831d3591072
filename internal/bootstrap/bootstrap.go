// Package bootstrap wires configuration, storage, clients, repositories,
// services and routes into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/edustack/coachhub/internal/app/controllers"
	"github.com/edustack/coachhub/internal/app/repositories"
	"github.com/edustack/coachhub/internal/app/routes"
	"github.com/edustack/coachhub/internal/app/services"
	"github.com/edustack/coachhub/internal/config"
	"github.com/edustack/coachhub/internal/db"
	"github.com/edustack/coachhub/internal/middleware"
	"github.com/edustack/coachhub/internal/pkg/auth"
	"github.com/edustack/coachhub/internal/pkg/cache"
	"github.com/edustack/coachhub/internal/pkg/filestorage"
	"github.com/edustack/coachhub/internal/pkg/genai"
	"github.com/edustack/coachhub/internal/pkg/logger"
	"github.com/edustack/coachhub/internal/seed"
	"github.com/edustack/coachhub/internal/server"
)

// App is the assembled application
type App struct {
	Config     *config.Config
	DB         *db.PostgresDB
	Server     *server.Server
	redisCli   *redis.Client
	stopSweeps context.CancelFunc
}

// NewApp builds the application from configuration. Fails fast: any missing
// required setting or unreachable database stops startup here.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.NewMigrator(database, "migrations").Run(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.PublicURL+"/uploads")
	if err != nil {
		database.Close()
		return nil, err
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  mustDuration(cfg.JWT.AccessTokenExpiration),
		RefreshTokenExp: mustDuration(cfg.JWT.RefreshTokenExpiration),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	var redisCli *redis.Client
	if cfg.Redis.Enabled {
		redisCli = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisCli.Ping(ctx).Err(); err != nil {
			// Listing works without the cache, just slower
			logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, listing cache disabled")
			redisCli = nil
		}
	}
	listingCache := cache.New(redisCli, mustDuration(cfg.Redis.ListingTTL))

	generator := genai.NewClient(cfg.GenAI.Endpoint, cfg.GenAI.Model, cfg.GenAI.APIKey, genai.Params{
		MaxTokens:   cfg.GenAI.MaxTokens,
		Temperature: cfg.GenAI.Temperature,
		TopP:        cfg.GenAI.TopP,
		TopK:        cfg.GenAI.TopK,
	})

	gateway := services.NewSimulatedGateway(mustDuration(cfg.Payment.VerifyDelay), cfg.Payment.SuccessRate)

	repos := repositories.NewRepositories(database.Pool)
	svcs := services.NewServices(services.Deps{
		Repos:        repos,
		JWTService:   jwtService,
		Storage:      storage,
		ListingCache: listingCache,
		Generator:    generator,
		Gateway:      gateway,
		PaymentCfg: services.PaymentConfig{
			PayeeID:      cfg.Payment.PayeeID,
			MerchantName: cfg.Payment.MerchantName,
			Currency:     cfg.Payment.Currency,
			AmountRupees: cfg.Payment.AmountRupees,
			PublicURL:    cfg.Server.PublicURL,
		},
	})
	ctrls := controllers.NewControllers(svcs, storage)

	if err := seed.Books(ctx, repos.BookRepository); err != nil {
		logger.Warn().Err(err).Msg("Book seeding failed")
	}

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestLogger())

	routes.SetupRoutes(engine, ctrls, jwtService, cfg.Server.StoragePath)

	sweepCtx, stopSweeps := context.WithCancel(context.Background())
	go sweepExpiredTokens(sweepCtx, repos.TokenRepository)

	return &App{
		Config:     cfg,
		DB:         database,
		Server:     server.New(engine, cfg.Server.Port),
		redisCli:   redisCli,
		stopSweeps: stopSweeps,
	}, nil
}

// sweepExpiredTokens periodically clears refresh tokens past their expiry
func sweepExpiredTokens(ctx context.Context, tokenRepo *repositories.TokenRepository) {
	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := tokenRepo.DeleteExpired(ctx)
			if err != nil {
				logger.Warn().Err(err).Msg("Expired token sweep failed")
				continue
			}
			if n > 0 {
				logger.Info().Int64("count", n).Msg("Expired refresh tokens removed")
			}
		}
	}
}

// Close releases held connections
func (a *App) Close() {
	if a.stopSweeps != nil {
		a.stopSweeps()
	}
	if a.redisCli != nil {
		_ = a.redisCli.Close()
	}
	if a.DB != nil {
		a.DB.Close()
	}
}

// mustDuration parses a duration already validated by the config loader
func mustDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Fatal().Err(err).Str("value", s).Msg("Invalid duration in configuration")
	}
	return d
}
