package core

import (
	"reflect"
	"testing"
)

func TestScheduleComplete(t *testing.T) {
	s := NewSchedule(2)
	s.Complete(Process{ID: 1, ArrivalTime: 3, BurstTime: 4}, 10)

	if s.Completion[1] != 10 || s.Turnaround[1] != 7 || s.Waiting[1] != 3 {
		t.Fatalf("unexpected result: completion=%d turnaround=%d waiting=%d",
			s.Completion[1], s.Turnaround[1], s.Waiting[1])
	}
}

func TestScheduleRun_MergesContiguousSlices(t *testing.T) {
	var s Schedule
	s.Run(0, 0, 2)
	s.Run(0, 2, 4)
	s.Run(1, 4, 5)
	s.Run(1, 6, 7)

	want := []Slice{{0, 0, 4}, {1, 4, 5}, {1, 6, 7}}
	if !reflect.DeepEqual(s.Timeline, want) {
		t.Fatalf("timeline = %v, want %v", s.Timeline, want)
	}
	if got := s.FirstStart(1); got != 4 {
		t.Errorf("FirstStart(1) = %d, want 4", got)
	}
	if got := s.FirstStart(7); got != -1 {
		t.Errorf("FirstStart(7) = %d, want -1", got)
	}
}

func TestMeasure(t *testing.T) {
	processes := NewProcesses([]int{2, 10}, []int{3, 1})
	s := NewSchedule(2)
	s.Complete(processes[0], 5)
	s.Complete(processes[1], 11)

	got := Measure(processes, s)
	want := CpuMetric{TotalTime: 11, UtilizationTime: 4, IdleTime: 7}
	if got != want {
		t.Fatalf("Measure = %+v, want %+v", got, want)
	}
}
