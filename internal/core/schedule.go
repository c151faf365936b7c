package core

// Schedule holds per-process results indexed by Process.ID.
type Schedule struct {
	Completion []int
	Turnaround []int
	Waiting    []int
	Timeline   []Slice
}

func NewSchedule(processCount int) Schedule {
	return Schedule{
		Completion: make([]int, processCount),
		Turnaround: make([]int, processCount),
		Waiting:    make([]int, processCount),
	}
}

// Complete records the finish of p at completionTime and derives the
// turnaround and waiting times from it.
func (s *Schedule) Complete(p Process, completionTime int) {
	s.Completion[p.ID] = completionTime
	s.Turnaround[p.ID] = completionTime - p.ArrivalTime
	s.Waiting[p.ID] = s.Turnaround[p.ID] - p.BurstTime
}

// Run appends an execution slice, merging it with the previous one when the
// same process continues without a gap.
func (s *Schedule) Run(processID, start, stop int) {
	if n := len(s.Timeline); n > 0 {
		last := &s.Timeline[n-1]
		if last.ProcessID == processID && last.Stop == start {
			last.Stop = stop
			return
		}
	}
	s.Timeline = append(s.Timeline, Slice{ProcessID: processID, Start: start, Stop: stop})
}

// FirstStart returns the time a process first got the cpu, or -1.
func (s Schedule) FirstStart(processID int) int {
	for _, slice := range s.Timeline {
		if slice.ProcessID == processID {
			return slice.Start
		}
	}
	return -1
}
