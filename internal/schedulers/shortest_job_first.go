package schedulers

import "cpu-scheduler/internal/core"

type ShortestJobFirst struct{}

func (ShortestJobFirst) Algorithm() Algorithm { return SJF }

// Schedule is non-preemptive: once picked, a process runs to completion.
func (ShortestJobFirst) Schedule(processes []core.Process) core.Schedule {
	schedule := core.NewSchedule(len(processes))
	completed := make([]bool, len(processes))
	currentTime := 0

	for done := 0; done < len(processes); {
		shortest := pickShortestJob(processes, completed, currentTime)
		if shortest == -1 {
			currentTime = nextArrival(processes, completed, currentTime)
			continue
		}

		p := processes[shortest]
		schedule.Run(p.ID, currentTime, currentTime+p.BurstTime)
		currentTime += p.BurstTime
		schedule.Complete(p, currentTime)
		completed[shortest] = true
		done++
	}
	return schedule
}

// pickShortestJob returns the position of the ready process with the smallest
// burst, breaking ties by earlier arrival and then by scan order. It returns
// -1 when nothing has arrived yet.
func pickShortestJob(processes []core.Process, completed []bool, currentTime int) int {
	shortest := -1
	for i, p := range processes {
		if completed[i] || p.ArrivalTime > currentTime {
			continue
		}
		if shortest == -1 {
			shortest = i
			continue
		}
		best := processes[shortest]
		if p.BurstTime < best.BurstTime ||
			(p.BurstTime == best.BurstTime && p.ArrivalTime < best.ArrivalTime) {
			shortest = i
		}
	}
	return shortest
}

// nextArrival returns the earliest arrival after currentTime among the
// processes not yet done. Nothing changes while the cpu idles, so the clock
// can skip straight to it.
func nextArrival(processes []core.Process, done []bool, currentTime int) int {
	next := -1
	for i, p := range processes {
		if done[i] || p.ArrivalTime <= currentTime {
			continue
		}
		if next == -1 || p.ArrivalTime < next {
			next = p.ArrivalTime
		}
	}
	if next == -1 {
		return currentTime + 1
	}
	return next
}

// RunSJF schedules parallel arrival/burst slices shortest-job-first.
func RunSJF(arrivalTimes, burstTimes []int) core.Schedule {
	return ShortestJobFirst{}.Schedule(core.NewProcesses(arrivalTimes, burstTimes))
}
