package schedulers

import (
	"github.com/google/uuid"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// GenerateResponse turns a finished schedule into the API response, adding
// averages, utilization and throughput.
func GenerateResponse(alg Algorithm, timeQuantum int, processes []core.Process, schedule core.Schedule) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(processes))
	for _, p := range processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(p, schedule))
	}

	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)
	cpuMetric := core.Measure(processes, schedule)

	var utilization, throughput float64
	if cpuMetric.TotalTime > 0 {
		utilization = float64(cpuMetric.UtilizationTime) / float64(cpuMetric.TotalTime)
		throughput = float64(len(processes)) / float64(cpuMetric.TotalTime)
	}

	response := responses.ScheduleResponse{
		RunId:                 uuid.NewString(),
		Algorithm:             string(alg),
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               proccessDetails,
		Timeline:              schedule.Timeline,
	}
	if alg == RR {
		response.TimeQuantum = timeQuantum
		if response.TimeQuantum <= 0 {
			response.TimeQuantum = DefaultTimeQuantum
		}
	}
	return response
}

func generateProcessDetails(p core.Process, schedule core.Schedule) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		CompletionTime: schedule.Completion[p.ID],
		TurnAroundTime: schedule.Turnaround[p.ID],
		WaitingTime:    schedule.Waiting[p.ID],
		ResponseTime:   schedule.FirstStart(p.ID) - p.ArrivalTime,
	}
}

// Execute simulates alg over processes and builds the response for it.
func Execute(alg Algorithm, processes []core.Process, timeQuantum int) (responses.ScheduleResponse, error) {
	schedule, err := Simulate(alg, processes, timeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return GenerateResponse(alg, timeQuantum, processes, schedule), nil
}
