package cli

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"cpu-scheduler/internal/input"
	"cpu-scheduler/internal/schedulers"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunCmd_SingleAlgorithm(t *testing.T) {
	out, err := execute(t, "run", "-n", "3", "-a", "0,1,2", "-b", "5,3,1", "--algorithm", "sjf")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Shortest-job-first") || !strings.Contains(out, "0\t5\t6\t9") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRunCmd_All(t *testing.T) {
	out, err := execute(t, "run", "-n", "3", "-a", "0,0,0", "-b", "4,2,6", "--algorithm", "ALL", "-q", "2")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, alg := range schedulers.Algorithms {
		if !strings.Contains(out, alg.String()) {
			t.Errorf("expected %q section in output", alg.String())
		}
	}
}

func TestRunCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"algorithm", []string{"run", "-n", "1", "-a", "0", "-b", "1", "--algorithm", "LIFO"}, schedulers.ErrUnsupportedAlgorithm},
		{"count", []string{"run", "-n", "0", "-a", "0", "-b", "1"}, input.ErrInvalidProcessCount},
		{"mismatch", []string{"run", "-n", "2", "-a", "0", "-b", "1,1"}, input.ErrArrayLengthMismatch},
		{"quantum", []string{"run", "-n", "1", "-a", "0", "-b", "1", "--algorithm", "RR", "-q", "0"}, input.ErrInvalidTimeQuantum},
		{"input before algorithm", []string{"run", "-n", "x", "-a", "0", "-b", "1", "--algorithm", "LIFO"}, input.ErrInvalidProcessCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRunCmd_QuantumOnlyCheckedForRoundRobin(t *testing.T) {
	if _, err := execute(t, "run", "-n", "1", "-a", "0", "-b", "1", "--algorithm", "SJF", "-q", "0"); err != nil {
		t.Fatalf("sjf with unused quantum: %v", err)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
