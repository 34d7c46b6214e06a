package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/robfig/cron"

	"github.com/maheshrc27/postflow-tools/internal/api/handlers"
	"github.com/maheshrc27/postflow-tools/internal/api/middleware"
	job "github.com/maheshrc27/postflow-tools/internal/jobs"
	"github.com/maheshrc27/postflow-tools/internal/queue"
)

func (a *App) NewHTTPServer() *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Info(err.Error())
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       3600,
	}))

	tool := handlers.NewToolHandler(a.Registry)
	app.Get("/health", tool.Health)

	authMiddleware := middleware.NewAuthMiddleware(*a.Config)
	api := app.Group("/tools")
	api.Use(authMiddleware.AuthMiddleware())
	api.Get("/", tool.ListTools)
	api.Post("/:name", tool.CallTool)

	return app
}

// Serve runs the HTTP server, the calendar prune job and, when Redis is
// configured, the delivery worker until SIGINT or SIGTERM.
func (a *App) Serve() error {
	app := a.NewHTTPServer()

	pruneJob := job.NewCalendarPruneJob(a.Calendar, a.Config.CalendarRetention)
	c := cron.New()
	if err := c.AddFunc(a.Config.PruneSchedule, pruneJob.PruneCalendar); err != nil {
		return fmt.Errorf("invalid prune schedule %q: %w", a.Config.PruneSchedule, err)
	}
	c.Start()
	defer c.Stop()

	var worker *asynq.Server
	if a.redis != nil {
		worker = asynq.NewServer(*a.redis, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeDeliverScheduledPost, a.Queue.HandleDeliverScheduledPostTask)

		slog.Info("Starting the Asynq server...")
		if err := worker.Start(mux); err != nil {
			return fmt.Errorf("could not start Asynq server: %w", err)
		}
	} else {
		slog.Info("REDIS_URI not set, scheduled posts stay pending")
	}

	errCh := make(chan error, 1)
	go func() {
		if err := app.Listen(":" + a.Config.Port); err != nil {
			errCh <- err
		}
	}()
	slog.Info("Server is running", "port", a.Config.Port)

	return gracefulShutdown(app, worker, errCh)
}

func gracefulShutdown(app *fiber.App, worker *asynq.Server, errCh <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	}
	slog.Info("Shutting down server...")

	if worker != nil {
		worker.Shutdown()
	}

	if err := app.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	slog.Info("Server shutdown complete.")
	return nil
}
