package schedulers

import "cpu-scheduler/internal/core"

type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Algorithm() Algorithm { return FCFS }

// Schedule runs processes in input order. Processes are not sorted by
// arrival: a later entry that arrived earlier still waits for the ones
// listed before it.
func (FirstComeFirstServe) Schedule(processes []core.Process) core.Schedule {
	schedule := core.NewSchedule(len(processes))
	currentTime := 0
	for _, p := range processes {
		if currentTime < p.ArrivalTime {
			currentTime = p.ArrivalTime // cpu idles until arrival
		}
		schedule.Run(p.ID, currentTime, currentTime+p.BurstTime)
		currentTime += p.BurstTime
		schedule.Complete(p, currentTime)
	}
	return schedule
}

// RunFCFS schedules parallel arrival/burst slices first-come-first-serve.
func RunFCFS(arrivalTimes, burstTimes []int) core.Schedule {
	return FirstComeFirstServe{}.Schedule(core.NewProcesses(arrivalTimes, burstTimes))
}
