package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/faizmokh/tasklist/internal/files"
	"github.com/faizmokh/tasklist/internal/version"
)

func TestCLIWorkflowEndToEnd(t *testing.T) {
	ctx := context.Background()
	clearEnv(t)
	mgr := newTempManager(t)

	// 1. Add two tasks and leave.
	out := executeCommand(t, NewRootCommand(ctx, mgr, fixedClock()), lines(
		"add", "c", "2024-1-31", "8:15", "Pay rent", "",
		"add", "l", "2024-02-01", "17:30", "Water plants", "and the herbs", "",
		"end",
	))
	assertContains(t, out, msgExiting)

	data := readDataFile(t, mgr)
	wantJSON := `[{"priority":"c","date":"2024-01-31","time":"08:15","task":["Pay rent"]},` +
		`{"priority":"l","date":"2024-02-01","time":"17:30","task":["Water plants","and the herbs"]}]`
	if data != wantJSON {
		t.Fatalf("data file = %s, want %s", data, wantJSON)
	}

	// 2. A new run sees both tasks, including due status markers.
	out = executeCommand(t, NewRootCommand(ctx, mgr, fixedClock()), lines("print", "end"))
	assertContains(t, out, "| 1  | 2024-01-31 | 08:15 | C | O |Pay rent")
	assertContains(t, out, "| 2  | 2024-02-01 | 17:30 | L | T |Water plants")
	assertContains(t, out, "|    |            |       |   |   |and the herbs")

	// 3. Edit, then delete the first task.
	out = executeCommand(t, NewRootCommand(ctx, mgr, fixedClock()), lines(
		"edit", "2", "priority", "h",
		"delete", "1",
		"end",
	))
	assertContains(t, out, msgChanged)
	assertContains(t, out, msgDeleted)

	data = readDataFile(t, mgr)
	wantJSON = `[{"priority":"h","date":"2024-02-01","time":"17:30","task":["Water plants","and the herbs"]}]`
	if data != wantJSON {
		t.Fatalf("data file = %s, want %s", data, wantJSON)
	}
}

func TestCLIDoesNotSaveWithoutEnd(t *testing.T) {
	clearEnv(t)
	mgr := newTempManager(t)

	cmd := NewRootCommand(context.Background(), mgr, fixedClock())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(lines("add", "n", "2024-01-01", "10:00", "lost", "")))
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error when input ends before end")
	}
	if _, err := mgr.Read(files.DefaultDataFile); err == nil {
		t.Fatalf("data file written without end")
	}
}

func TestCLIAbortsOnMalformedDataFile(t *testing.T) {
	clearEnv(t)
	mgr := newTempManager(t)

	const corrupt = `[{"priority":"c",`
	if err := os.WriteFile(mgr.Path(files.DefaultDataFile), []byte(corrupt), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cmd := NewRootCommand(context.Background(), mgr, fixedClock())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(lines("end")))
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), files.DefaultDataFile) {
		t.Fatalf("Execute error = %v, want diagnostic naming the data file", err)
	}
	if got := readDataFile(t, mgr); got != corrupt {
		t.Fatalf("corrupt file was modified: %q", got)
	}
}

func TestCLIHonorsConfiguredDataFile(t *testing.T) {
	clearEnv(t)
	mgr := newTempManager(t)
	if err := os.WriteFile(mgr.ConfigPath(), []byte("data_file = \"work.json\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	executeCommand(t, NewRootCommand(context.Background(), mgr, fixedClock()), lines(
		"add", "h", "2024-05-05", "5:05", "Configured", "",
		"end",
	))

	data, err := mgr.Read("work.json")
	if err != nil {
		t.Fatalf("Read work.json: %v", err)
	}
	assertContains(t, string(data), `"task":["Configured"]`)
	if _, err := mgr.Read(files.DefaultDataFile); err == nil {
		t.Fatalf("default data file should not exist")
	}
}

func TestCLIVersionFlag(t *testing.T) {
	mgr := newTempManager(t)
	cmd := NewRootCommand(context.Background(), mgr, fixedClock())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	assertContains(t, buf.String(), version.Info())
}

func executeCommand(t *testing.T, cmd *cobra.Command, input string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", input, err, buf.String())
	}
	return buf.String()
}

func lines(input ...string) string {
	return strings.Join(input, "\n") + "\n"
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TASKLIST_DATA_FILE", "TASKLIST_LOG_LEVEL", "NO_COLOR"} {
		t.Setenv(key, "")
	}
	t.Setenv("TASKLIST_COLOR", "never")
}

func readDataFile(t *testing.T, mgr *files.Manager) string {
	t.Helper()
	data, err := mgr.Read(files.DefaultDataFile)
	if err != nil {
		t.Fatalf("Read data file: %v", err)
	}
	return string(data)
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func newTempManager(t *testing.T) *files.Manager {
	t.Helper()
	base := t.TempDir()
	mgr, err := files.NewManager(base)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr
}
