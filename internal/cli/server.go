package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codebyghita/guess-game/internal/app"
	"github.com/codebyghita/guess-game/internal/config"
	"github.com/codebyghita/guess-game/internal/infra/memory"
	pgcatalog "github.com/codebyghita/guess-game/internal/infra/postgres"
	redisinfra "github.com/codebyghita/guess-game/internal/infra/redis"
	"github.com/codebyghita/guess-game/internal/infra/trivia"
	transport "github.com/codebyghita/guess-game/internal/transport/http"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	sessionTTL := config.TTLDuration(cfg.Redis.TTL, 0)
	catalogTTL := config.TTLDuration(cfg.Catalog.TTL, 10*time.Minute)
	dailyTTL := config.TTLDuration(cfg.Daily.MarkerTTL, 48*time.Hour)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	// Catalog source preference: postgres, then the live feed, then builtin.
	var loader memory.CatalogLoader
	switch {
	case pool != nil:
		loader = pgcatalog.NewCatalogLoader(pool)
	case cfg.Feed.Enabled:
		loader = trivia.NewClient(cfg.Feed.URL)
	default:
		loader = memory.NewStaticCatalogLoader(app.BuiltinCatalog())
	}

	var catalogRepo app.CatalogRepository
	if redisClient != nil {
		catalogRepo = redisinfra.NewCatalogRepository(redisClient, loader, catalogTTL)
	} else {
		catalogRepo = memory.NewCatalogRepository(loader, catalogTTL)
	}

	var sessions app.SessionStore
	var boardStore app.LeaderboardStore
	var dailyStore app.DailyStore
	if redisClient != nil {
		sessions = redisinfra.NewGameStateStore(redisClient, sessionTTL)
		boardStore = redisinfra.NewLeaderboardStore(redisClient)
		dailyStore = redisinfra.NewDailyStore(redisClient, dailyTTL)
	} else {
		sessions = memory.NewGameStateStore()
		boardStore = memory.NewLeaderboardStore()
		dailyStore = memory.NewDailyStore()
	}

	engine := app.NewGameEngine(sessions, catalogRepo, app.NewLeaderboardService(boardStore), app.NewDailyGate(dailyStore))
	wsHandler := transport.NewWSHandler(engine)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting guess-game server on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
