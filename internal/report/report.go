// Package report renders schedule responses as text: a title, a Gantt line
// and a table of per-process timings.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

var header = []string{"Process #", "Arrival Time", "Burst Time", "Completion Time", "Turnaround Time", "Waiting Time"}

// Write renders a full report for one scheduling run.
func Write(w io.Writer, title string, response responses.ScheduleResponse) {
	outputTitle(w, title)
	outputGantt(w, response)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputGantt prints process numbers between bars with the slice boundaries
// underneath. Gaps where the cpu had nothing to run get an idle column.
func outputGantt(w io.Writer, response responses.ScheduleResponse) {
	type segment struct {
		label       string
		start, stop int
	}
	var segments []segment
	clock := 0
	for _, slice := range response.Timeline {
		if slice.Start > clock {
			segments = append(segments, segment{"idle", clock, slice.Start})
		}
		segments = append(segments, segment{"P" + strconv.Itoa(slice.ProcessID+1), slice.Start, slice.Stop})
		clock = slice.Stop
	}

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, seg := range segments {
		padding := strings.Repeat(" ", (8-len(seg.label))/2)
		_, _ = fmt.Fprint(w, padding, seg.label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, seg := range segments {
		_, _ = fmt.Fprint(w, seg.start, "\t")
		if i == len(segments)-1 {
			_, _ = fmt.Fprint(w, seg.stop)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.AppendBulk(Rows(response))
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%%, throughput %.2f/t\n\n",
		response.CpuUtilization*100, response.CpuThroughput)
}

// Rows returns one table row per process, numbered from 1.
func Rows(response responses.ScheduleResponse) [][]string {
	rows := make([][]string, len(response.Details))
	for i, d := range response.Details {
		rows[i] = []string{
			strconv.Itoa(d.ProcessId + 1),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.CompletionTime),
			strconv.Itoa(d.TurnAroundTime),
			strconv.Itoa(d.WaitingTime),
		}
	}
	return rows
}
