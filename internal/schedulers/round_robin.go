package schedulers

import "cpu-scheduler/internal/core"

const DefaultTimeQuantum = 2

type RoundRobin struct {
	TimeQuantum int
}

func (RoundRobin) Algorithm() Algorithm { return RR }

type readyQueue struct {
	ids     []int
	inQueue []bool
}

func (q *readyQueue) push(id int) {
	q.ids = append(q.ids, id)
	q.inQueue[id] = true
}

func (q *readyQueue) pop() int {
	id := q.ids[0]
	q.ids = q.ids[1:]
	q.inQueue[id] = false
	return id
}

// admit enqueues, in input order, every arrived process that still needs
// cpu time and is not already waiting.
func (q *readyQueue) admit(processes []core.Process, remaining []int, currentTime int) {
	for i, p := range processes {
		if p.ArrivalTime <= currentTime && !q.inQueue[i] && remaining[i] > 0 {
			q.push(i)
		}
	}
}

// Schedule preempts the running process after at most TimeQuantum units.
// Arrivals are admitted both before picking the next process and after the
// slice ends, so a process arriving exactly when a slice finishes queues
// behind the preempted one but ahead of the following dequeue.
func (r RoundRobin) Schedule(processes []core.Process) core.Schedule {
	quantum := r.TimeQuantum
	if quantum <= 0 {
		quantum = DefaultTimeQuantum
	}

	schedule := core.NewSchedule(len(processes))
	remaining := make([]int, len(processes))
	for i, p := range processes {
		remaining[i] = p.BurstTime
	}
	finished := make([]bool, len(processes))
	queue := &readyQueue{inQueue: make([]bool, len(processes))}
	currentTime := 0

	for completed := 0; completed < len(processes); {
		queue.admit(processes, remaining, currentTime)
		if len(queue.ids) == 0 {
			currentTime = nextArrival(processes, finished, currentTime)
			continue
		}

		i := queue.pop()
		execTime := min(quantum, remaining[i])
		schedule.Run(processes[i].ID, currentTime, currentTime+execTime)
		currentTime += execTime
		remaining[i] -= execTime

		if remaining[i] == 0 {
			schedule.Complete(processes[i], currentTime)
			finished[i] = true
			completed++
		} else {
			queue.push(i)
		}

		queue.admit(processes, remaining, currentTime)
	}
	return schedule
}

// RunRoundRobin schedules parallel arrival/burst slices round-robin.
func RunRoundRobin(arrivalTimes, burstTimes []int, timeQuantum int) core.Schedule {
	return RoundRobin{TimeQuantum: timeQuantum}.Schedule(core.NewProcesses(arrivalTimes, burstTimes))
}
