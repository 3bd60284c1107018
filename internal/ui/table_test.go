package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/faizmokh/tasklist/internal/tasklist"
)

func fixedClock(year int, month time.Month, day int) tasklist.Clock {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func TestRenderSingleTaskWithColor(t *testing.T) {
	table := NewTable(true, fixedClock(2024, time.February, 1))
	tasks := []tasklist.Task{
		{Priority: "h", Date: "2024-03-01", Time: "09:05", Body: []string{"Buy milk"}},
	}

	var buf bytes.Buffer
	if err := table.Render(&buf, tasks); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := strings.Join([]string{
		"+----+------------+-------+---+---+--------------------------------------------+",
		"| N  |    Date    | Time  | P | D |                   Task                     |",
		"+----+------------+-------+---+---+--------------------------------------------+",
		"| 1  | 2024-03-01 | 09:05 | \x1b[103m \x1b[0m | \x1b[102m \x1b[0m |Buy milk                                    |",
		"+----+------------+-------+---+---+--------------------------------------------+",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("Render output mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestRenderSwatchColors(t *testing.T) {
	s := newSwatches(true)

	priorities := map[string]string{
		"c": "\x1b[101m \x1b[0m",
		"h": "\x1b[103m \x1b[0m",
		"n": "\x1b[102m \x1b[0m",
		"l": "\x1b[104m \x1b[0m",
	}
	for p, want := range priorities {
		if got := s.priority(p); got != want {
			t.Fatalf("priority(%q) = %q, want %q", p, got, want)
		}
	}

	due := map[tasklist.DueStatus]string{
		tasklist.DueIncoming: "\x1b[102m \x1b[0m",
		tasklist.DueToday:    "\x1b[103m \x1b[0m",
		tasklist.DueOverdue:  "\x1b[101m \x1b[0m",
	}
	for status, want := range due {
		if got := s.due(status); got != want {
			t.Fatalf("due(%v) = %q, want %q", status, got, want)
		}
	}
}

func TestRenderWithoutColorUsesMarkers(t *testing.T) {
	table := NewTable(false, fixedClock(2024, time.March, 1))
	tasks := []tasklist.Task{
		{Priority: "c", Date: "2024-03-01", Time: "10:00", Body: []string{"Today"}},
		{Priority: "l", Date: "2024-02-01", Time: "10:00", Body: []string{"Late"}},
	}

	var buf bytes.Buffer
	if err := table.Render(&buf, tasks); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("unexpected escape codes in %q", out)
	}
	if !strings.Contains(out, "| 1  | 2024-03-01 | 10:00 | C | T |Today") {
		t.Fatalf("missing first row in:\n%s", out)
	}
	if !strings.Contains(out, "| 2  | 2024-02-01 | 10:00 | L | O |Late") {
		t.Fatalf("missing second row in:\n%s", out)
	}
}

func TestRenderWrapsLongLinesAndExtraBodyLines(t *testing.T) {
	table := NewTable(false, fixedClock(2024, time.March, 1))
	long := strings.Repeat("a", 44) + strings.Repeat("b", 10)
	tasks := []tasklist.Task{
		{Priority: "n", Date: "2024-03-02", Time: "08:00", Body: []string{long, "second line"}},
	}

	var buf bytes.Buffer
	if err := table.Render(&buf, tasks); err != nil {
		t.Fatalf("Render: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), buf.String())
	}
	if want := "| 1  | 2024-03-02 | 08:00 | N | I |" + strings.Repeat("a", 44) + "|"; lines[3] != want {
		t.Fatalf("row = %q, want %q", lines[3], want)
	}
	if want := "|    |            |       |   |   |" + padRight(strings.Repeat("b", 10), 44) + "|"; lines[4] != want {
		t.Fatalf("continuation = %q, want %q", lines[4], want)
	}
	if want := "|    |            |       |   |   |" + padRight("second line", 44) + "|"; lines[5] != want {
		t.Fatalf("second body line = %q, want %q", lines[5], want)
	}
	if lines[6] != border {
		t.Fatalf("last line = %q, want border", lines[6])
	}
	for _, line := range lines {
		if len([]rune(line)) != len([]rune(border)) {
			t.Fatalf("line %q is %d wide, want %d", line, len([]rune(line)), len([]rune(border)))
		}
	}
}

func TestChunk(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"abc", []string{"abc"}},
		{"abcdef", []string{"abc", "def"}},
		{"abcdefg", []string{"abc", "def", "g"}},
		{"äöüßé", []string{"äöü", "ßé"}},
	}
	for _, tc := range cases {
		got := Chunk(tc.in, 3)
		if strings.Join(got, "|") != strings.Join(tc.want, "|") || len(got) != len(tc.want) {
			t.Fatalf("Chunk(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
