package api

import (
	"bytes"
	"errors"
	"log/slog"
	"slices"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/input"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(requests.ScheduleRequest) ([]schedulers.Algorithm, error) {
		return []schedulers.Algorithm{schedulers.FCFS}, nil
	})
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(requests.ScheduleRequest) ([]schedulers.Algorithm, error) {
		return []schedulers.Algorithm{schedulers.RR}, nil
	})
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(requests.ScheduleRequest) ([]schedulers.Algorithm, error) {
		return []schedulers.Algorithm{schedulers.SJF}, nil
	})
}

// Simulate picks the algorithm from the request body.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(request requests.ScheduleRequest) ([]schedulers.Algorithm, error) {
		alg, err := schedulers.ParseAlgorithm(request.Algorithm)
		if err != nil {
			return nil, err
		}
		return []schedulers.Algorithm{alg}, nil
	})
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	return s.schedule(ctx, func(requests.ScheduleRequest) ([]schedulers.Algorithm, error) {
		return schedulers.Algorithms, nil
	})
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, selectAlgorithms func(requests.ScheduleRequest) ([]schedulers.Algorithm, error)) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}

	processes, err := input.ParseProcesses(request.Processes, request.ArrivalTimes, request.BurstTimes)
	if err != nil {
		return s.fail(ctx, err)
	}
	algorithms, err := selectAlgorithms(request)
	if err != nil {
		return s.fail(ctx, err)
	}
	timeQuantum := s.config.RoundRobinTimeQuantum
	if slices.Contains(algorithms, schedulers.RR) {
		if timeQuantum, err = input.TimeQuantum(request.TimeQuantum, timeQuantum); err != nil {
			return s.fail(ctx, err)
		}
	}

	results := make([]responses.ScheduleResponse, 0, len(algorithms))
	for _, alg := range algorithms {
		response, err := schedulers.Execute(alg, processes, timeQuantum)
		if err != nil {
			return s.fail(ctx, err)
		}
		s.logger.Debug("schedule computed",
			"run_id", response.RunId,
			"algorithm", alg,
			"processes", len(processes),
			"total_time", response.TotalTime)
		results = append(results, response)
	}

	if ctx.Query("format") == "table" {
		var buf bytes.Buffer
		for i, response := range results {
			report.Write(&buf, algorithms[i].String(), response)
		}
		return ctx.SendString(buf.String())
	}
	if len(results) == 1 {
		return ctx.JSON(results[0])
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	if isInputError(err) {
		s.logger.Debug("rejected schedule request", "error", err)
		return badRequest(ctx, err.Error())
	}
	s.logger.Error("schedule request failed", "error", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(responses.ErrorResponse{Error: "can not process request"})
}

func isInputError(err error) bool {
	for _, target := range []error{
		input.ErrInvalidProcessCount,
		input.ErrArrayLengthMismatch,
		input.ErrInvalidTimeValue,
		input.ErrInvalidTimeQuantum,
		schedulers.ErrUnsupportedAlgorithm,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: message})
}
