package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/input"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
)

func newRunCmd() *cobra.Command {
	var (
		processes string
		arrival   string
		burst     string
		algorithm string
		quantum   int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one algorithm (or ALL) and print the schedule table",
		Example: `  cpu-scheduler run --processes 3 --arrival 0,1,2 --burst 5,3,1 --algorithm SJF
  cpu-scheduler run --processes 3 --arrival 0,0,0 --burst 4,2,6 --algorithm RR --quantum 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			procs, err := input.ParseProcesses(processes, arrival, burst)
			if err != nil {
				return err
			}

			algorithms := schedulers.Algorithms
			if !strings.EqualFold(strings.TrimSpace(algorithm), "all") {
				alg, err := schedulers.ParseAlgorithm(algorithm)
				if err != nil {
					return err
				}
				algorithms = []schedulers.Algorithm{alg}
			}

			timeQuantum := cfg.RoundRobinTimeQuantum
			if slices.Contains(algorithms, schedulers.RR) {
				var requested *int
				if cmd.Flags().Changed("quantum") {
					requested = &quantum
				}
				if timeQuantum, err = input.TimeQuantum(requested, timeQuantum); err != nil {
					return err
				}
			}

			for _, alg := range algorithms {
				response, err := schedulers.Execute(alg, procs, timeQuantum)
				if err != nil {
					return err
				}
				logger.Debug("schedule computed",
					"run_id", response.RunId,
					"algorithm", alg,
					"processes", len(procs),
					"total_time", response.TotalTime)
				report.Write(cmd.OutOrStdout(), alg.String(), response)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&processes, "processes", "n", "", "Number of processes")
	cmd.Flags().StringVarP(&arrival, "arrival", "a", "", "Comma separated arrival times")
	cmd.Flags().StringVarP(&burst, "burst", "b", "", "Comma separated burst times")
	cmd.Flags().StringVar(&algorithm, "algorithm", "FCFS", "Algorithm: FCFS, SJF, RR or ALL")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", schedulers.DefaultTimeQuantum, "Round-robin time quantum")
	return cmd
}
