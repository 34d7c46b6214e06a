package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	_ "github.com/lib/pq"

	config "github.com/maheshrc27/postflow-tools/configs"
	"github.com/maheshrc27/postflow-tools/internal/publisher"
	"github.com/maheshrc27/postflow-tools/internal/queue"
	"github.com/maheshrc27/postflow-tools/internal/repository"
	"github.com/maheshrc27/postflow-tools/internal/service"
	"github.com/maheshrc27/postflow-tools/internal/tools"
	"github.com/maheshrc27/postflow-tools/migrations"
)

// App holds every wired component. Postgres, Redis, RabbitMQ and R2 are
// only connected when configured.
type App struct {
	Config   *config.Config
	Calendar repository.CalendarRepository
	Posts    service.PostService
	Registry *tools.Registry
	Queue    *queue.Queue

	db          *sql.DB
	redis       *asynq.RedisClientOpt
	asynqClient *asynq.Client
	events      eventSink
}

type eventSink interface {
	service.EventPublisher
	Close() error
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg, Calendar: repository.NewCalendarRepository()}

	opts := service.PostServiceOptions{
		Platforms: service.NewPlatformServiceFromConfig(*cfg),
		Calendar:  a.Calendar,
		Media:     service.NewMediaService(cfg.MediaOutputDir, cfg.FFmpegPath),
		Hashtags:  service.NewHashtagService(),
	}

	if cfg.PostgresURI != "" {
		db, err := sql.Open("postgres", cfg.PostgresURI)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("database is unreachable: %w", err)
		}
		if err := migrations.Up(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		a.db = db
		opts.History = repository.NewPostingHistoryRepository(db)
	}

	if cfg.RedisURI != "" {
		a.redis = &asynq.RedisClientOpt{Addr: cfg.RedisURI}
		a.asynqClient = asynq.NewClient(*a.redis)
		opts.Enqueuer = queue.NewEnqueuer(a.asynqClient)
	}

	if cfg.RabbitMQ.URL != "" {
		events, err := publisher.NewRabbitMQ(cfg.RabbitMQ, slog.Default())
		if err != nil {
			a.Close()
			return nil, err
		}
		a.events = events
	} else {
		a.events = publisher.Nop{}
	}
	opts.Events = a.events

	if cfg.R2.Configured() {
		store, err := service.NewR2Service(ctx, cfg.R2)
		if err != nil {
			a.Close()
			return nil, err
		}
		opts.Store = store
	}

	a.Posts = service.NewPostService(opts)
	a.Queue = queue.NewQueue(a.Posts)

	registry, err := tools.NewRegistry(a.Posts, service.NewCalendarService(a.Calendar))
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Registry = registry

	return a, nil
}

func (a *App) Close() {
	if a.asynqClient != nil {
		a.asynqClient.Close()
	}
	if a.events != nil {
		if err := a.events.Close(); err != nil {
			slog.Info(err.Error())
		}
	}
	if a.db != nil {
		closeDB(a.db)
	}
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stderr, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stderr, "Done")
}

func SetupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(handler)
}
