package core

// Process is a single unit of work submitted to the simulated CPU.
// ID is the 0-based input position and decides output ordering.
type Process struct {
	ID          int
	ArrivalTime int
	BurstTime   int
}

// Slice is one contiguous stretch of CPU time given to a process.
type Slice struct {
	ProcessID int `json:"process_id"`
	Start     int `json:"start"`
	Stop      int `json:"stop"`
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// NewProcesses zips parallel arrival and burst slices into processes.
func NewProcesses(arrivalTimes, burstTimes []int) []Process {
	processes := make([]Process, len(arrivalTimes))
	for i := range arrivalTimes {
		processes[i] = Process{ID: i, ArrivalTime: arrivalTimes[i], BurstTime: burstTimes[i]}
	}
	return processes
}

// Measure derives cpu usage from a finished schedule. The clock starts at 0,
// so leading idle time before the first arrival counts as idle.
func Measure(processes []Process, schedule Schedule) CpuMetric {
	var metric CpuMetric
	for _, p := range processes {
		metric.UtilizationTime += p.BurstTime
		if c := schedule.Completion[p.ID]; c > metric.TotalTime {
			metric.TotalTime = c
		}
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}
