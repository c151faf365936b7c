// Package input parses and validates raw scheduling input before it reaches
// the simulator. The schedulers assume everything checked here.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
)

var (
	ErrInvalidProcessCount = errors.New("number of processes must be a positive integer")
	ErrArrayLengthMismatch = errors.New("number of arrival times and burst times must match the number of processes")
	ErrInvalidTimeValue    = errors.New("arrival times and burst times must be non-negative integers")
	ErrInvalidTimeQuantum  = errors.New("time quantum must be a positive integer")
)

// ParseProcesses builds the process set from a process count and two
// comma separated lists.
func ParseProcesses(count, arrivalTimes, burstTimes string) ([]core.Process, error) {
	processCount, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || processCount <= 0 {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidProcessCount, count)
	}

	arrivals := strings.Split(strings.TrimSpace(arrivalTimes), ",")
	bursts := strings.Split(strings.TrimSpace(burstTimes), ",")
	if len(arrivals) != processCount || len(bursts) != processCount {
		return nil, fmt.Errorf("%w: %d processes, %d arrival times, %d burst times",
			ErrArrayLengthMismatch, processCount, len(arrivals), len(bursts))
	}

	processes := make([]core.Process, processCount)
	for i := range processes {
		arrival, err := strconv.Atoi(strings.TrimSpace(arrivals[i]))
		if err != nil || arrival < 0 {
			return nil, fmt.Errorf("%w: arrival time %q of process %d", ErrInvalidTimeValue, arrivals[i], i+1)
		}
		burst, err := strconv.Atoi(strings.TrimSpace(bursts[i]))
		if err != nil || burst <= 0 {
			return nil, fmt.Errorf("%w: burst time %q of process %d", ErrInvalidTimeValue, bursts[i], i+1)
		}
		processes[i] = core.Process{ID: i, ArrivalTime: arrival, BurstTime: burst}
	}
	if err := checkHorizon(processes); err != nil {
		return nil, err
	}
	return processes, nil
}

// TimeQuantum returns requested, or fallback when nothing was requested.
func TimeQuantum(requested *int, fallback int) (int, error) {
	if requested == nil {
		return fallback, nil
	}
	if *requested <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTimeQuantum, *requested)
	}
	return *requested, nil
}

// checkHorizon rejects process sets whose schedule could run past
// math.MaxInt: no completion time exceeds the latest arrival plus the total
// burst time.
func checkHorizon(processes []core.Process) error {
	latestArrival, totalBurst := 0, 0
	for _, p := range processes {
		latestArrival = max(latestArrival, p.ArrivalTime)
		if p.BurstTime > math.MaxInt-totalBurst {
			return fmt.Errorf("%w: total burst time is too large", ErrInvalidTimeValue)
		}
		totalBurst += p.BurstTime
	}
	if totalBurst > math.MaxInt-latestArrival {
		return fmt.Errorf("%w: latest arrival %d plus total burst time %d is too large",
			ErrInvalidTimeValue, latestArrival, totalBurst)
	}
	return nil
}
