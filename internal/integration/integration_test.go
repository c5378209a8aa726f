package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/codebyghita/guess-game/internal/app"
	"github.com/codebyghita/guess-game/internal/domain"
	pgloader "github.com/codebyghita/guess-game/internal/infra/postgres"
	pgmigrations "github.com/codebyghita/guess-game/internal/infra/postgres/migrations"
	infraredis "github.com/codebyghita/guess-game/internal/infra/redis"
	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
)

func TestClassicGameEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedQuestions(t, ctx, pgURL, sampleCatalog())

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	loader := pgloader.NewCatalogLoader(pool)

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}
	catalogRepo := infraredis.NewCatalogRepository(redisClient, loader, 5*time.Minute)
	sessions := infraredis.NewGameStateStore(redisClient, 5*time.Minute)
	board := app.NewLeaderboardService(infraredis.NewLeaderboardStore(redisClient))
	daily := app.NewDailyGate(infraredis.NewDailyStore(redisClient, 48*time.Hour))
	engine := app.NewGameEngine(sessions, catalogRepo, board, daily)

	sess, err := engine.StartGame(ctx, "u1", domain.DifficultyEasy, domain.ModeClassic)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.Phase != domain.PhasePlaying || sess.ActiveQuestion == nil {
		t.Fatalf("expected active question, got %+v", sess)
	}

	// Answer every question correctly until the target is reached.
	for round := 0; round < 5; round++ {
		_, ev, err := engine.SubmitAnswer(ctx, "u1", sess.ActiveQuestion.CorrectAnswer)
		if err != nil {
			t.Fatalf("submit round %d: %v", round, err)
		}
		if !ev.Correct {
			t.Fatalf("expected correct answer on round %d, got %+v", round, ev)
		}
		sess, err = engine.Advance(ctx, "u1")
		if err != nil {
			t.Fatalf("advance round %d: %v", round, err)
		}
	}

	if sess.Phase != domain.PhaseComplete {
		t.Fatalf("expected completed game, got phase %q", sess.Phase)
	}
	// 10 base per easy question, streak bonus of 5 on the last two.
	if sess.Score != 60 {
		t.Fatalf("expected score 60, got %d", sess.Score)
	}
	if sess.BestScore != 60 {
		t.Fatalf("expected best score 60, got %d", sess.BestScore)
	}

	entries, err := engine.Leaderboard(ctx, domain.DifficultyEasy)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 1 || entries[0].UserID != "u1" || entries[0].Score != 60 {
		t.Fatalf("expected u1 with 60 points on the board, got %+v", entries)
	}

	// The session must survive via redis, not in-process state.
	reloaded, err := engine.Session(ctx, "u1")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if reloaded.TotalGamesPlayed != 1 || reloaded.BestScore != 60 {
		t.Fatalf("expected persisted aggregates, got %+v", reloaded)
	}
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "guess", "POSTGRES_PASSWORD": "guesspass", "POSTGRES_DB": "guessdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://guess:guesspass@%s:%s/guessdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seedQuestions(t *testing.T, ctx context.Context, dsn string, questions []domain.Question) {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, q := range questions {
		data, err := json.Marshal(q)
		if err != nil {
			t.Fatalf("marshal question: %v", err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO questions (id, data) VALUES (? , ?::jsonb) ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data`, q.ID, string(data)); err != nil {
			t.Fatalf("insert question: %v", err)
		}
	}
}

func sampleCatalog() []domain.Question {
	catalog := make([]domain.Question, 0, 6)
	for i := 0; i < 6; i++ {
		catalog = append(catalog, domain.Question{
			ID:            fmt.Sprintf("it-q%d", i),
			Kind:          domain.KindWord,
			Prompt:        fmt.Sprintf("integration prompt %d", i),
			CorrectAnswer: fmt.Sprintf("integration-answer-%d", i),
			Hints:         []string{"a hint"},
			Difficulty:    domain.DifficultyEasy,
			Category:      "integration",
		})
	}
	return catalog
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
