package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/responses"
)

// NewApp builds the fiber application with every scheduling route mounted
// under /api/v1.
func NewApp(cfg *config.SchedulerConfig, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpu-scheduler",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Output: slog.NewLogLogger(log.Handler(), slog.LevelInfo).Writer()}))

	handler := NewSchedulerHandlerImpl(cfg, log)
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/simulate", handler.Simulate)
		v1.Post("/all", handler.AllAlgorithms)
	}
	return app
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return ctx.Status(code).JSON(responses.ErrorResponse{Error: err.Error()})
}
