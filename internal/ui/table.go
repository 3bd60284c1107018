// Package ui renders the task list as a fixed-width table.
package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/faizmokh/tasklist/internal/tasklist"
)

// TaskWidth is the number of body characters shown per table row.
const TaskWidth = 44

const (
	border   = "+----+------------+-------+---+---+--------------------------------------------+"
	heading  = "| N  |    Date    | Time  | P | D |                   Task                     |"
	blankRow = "|    |            |       |   |   |"
)

// Table renders tasks with priority and due-status swatches.
type Table struct {
	swatches swatches
	clock    tasklist.Clock
}

// NewTable returns a Table. color selects ANSI swatches; clock decides what "today" is.
func NewTable(color bool, clock tasklist.Clock) *Table {
	if clock == nil {
		clock = tasklist.SystemClock
	}
	return &Table{swatches: newSwatches(color), clock: clock}
}

// Render writes the header, then each task's rows followed by a border line.
func (t *Table) Render(w io.Writer, tasks []tasklist.Task) error {
	now := t.clock()

	var b strings.Builder
	b.WriteString(border + "\n")
	b.WriteString(heading + "\n")
	b.WriteString(border + "\n")
	for i, task := range tasks {
		t.writeTask(&b, i+1, task, now)
		b.WriteString(border + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *Table) writeTask(b *strings.Builder, number int, task tasklist.Task, now time.Time) {
	dueCell := " "
	if status, err := tasklist.DueStatusOf(task.Date, now); err == nil {
		dueCell = t.swatches.due(status)
	}

	var chunks []string
	for _, line := range task.Body {
		chunks = append(chunks, Chunk(line, TaskWidth)...)
	}
	if len(chunks) == 0 {
		chunks = []string{""}
	}

	fmt.Fprintf(b, "| %s | %s | %s | %s | %s |%s|\n",
		padRight(strconv.Itoa(number), 2),
		task.Date,
		task.Time,
		t.swatches.priority(task.Priority),
		dueCell,
		padRight(chunks[0], TaskWidth))
	for _, chunk := range chunks[1:] {
		b.WriteString(blankRow + padRight(chunk, TaskWidth) + "|\n")
	}
}

// Chunk splits s into pieces of at most width characters, left to right,
// without regard for word boundaries. An empty string yields one empty chunk.
func Chunk(s string, width int) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}

	chunks := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := min(start+width, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// padRight pads s with spaces up to width characters.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
