package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

var ErrUnsupportedAlgorithm = errors.New("selected algorithm is not supported")

type Algorithm string

const (
	FCFS Algorithm = "FCFS"
	SJF  Algorithm = "SJF"
	RR   Algorithm = "RR"
)

// Algorithms lists every supported variant in display order.
var Algorithms = []Algorithm{FCFS, SJF, RR}

// Scheduler is implemented by every algorithm variant. Schedule must not
// mutate processes and must return freshly allocated results.
type Scheduler interface {
	Algorithm() Algorithm
	Schedule(processes []core.Process) core.Schedule
}

func (a Algorithm) String() string {
	switch a {
	case FCFS:
		return "First-come, first-serve"
	case SJF:
		return "Shortest-job-first"
	case RR:
		return "Round-robin"
	}
	return string(a)
}

func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToUpper(strings.TrimSpace(name)))
	for _, known := range Algorithms {
		if alg == known {
			return alg, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
}

// New returns the scheduler for alg. timeQuantum only matters for RR.
func New(alg Algorithm, timeQuantum int) (Scheduler, error) {
	switch alg {
	case FCFS:
		return FirstComeFirstServe{}, nil
	case SJF:
		return ShortestJobFirst{}, nil
	case RR:
		return RoundRobin{TimeQuantum: timeQuantum}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(alg))
}

func Simulate(alg Algorithm, processes []core.Process, timeQuantum int) (core.Schedule, error) {
	scheduler, err := New(alg, timeQuantum)
	if err != nil {
		return core.Schedule{}, err
	}
	return scheduler.Schedule(processes), nil
}
