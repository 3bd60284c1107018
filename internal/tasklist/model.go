// Package tasklist owns the ordered task list, its field rules, and its JSON form.
package tasklist

// Task is a single entry of the list. Body holds the text lines in input order.
type Task struct {
	Priority string   `json:"priority"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Body     []string `json:"task"`
}

// Priority codes, stored lowercase.
const (
	PriorityCritical = "c"
	PriorityHigh     = "h"
	PriorityNormal   = "n"
	PriorityLow      = "l"
)

// DueStatus classifies a task date against the current date.
type DueStatus uint8

const (
	// DueIncoming marks tasks dated after today.
	DueIncoming DueStatus = iota
	// DueToday marks tasks dated today.
	DueToday
	// DueOverdue marks tasks dated before today.
	DueOverdue
)

// String returns the single-letter tag for the status.
func (s DueStatus) String() string {
	switch s {
	case DueIncoming:
		return "I"
	case DueToday:
		return "T"
	case DueOverdue:
		return "O"
	default:
		return "?"
	}
}

// Field names a task attribute that can be edited.
type Field string

const (
	FieldPriority Field = "priority"
	FieldDate     Field = "date"
	FieldTime     Field = "time"
	FieldBody     Field = "task"
)

// ParseField maps the edit prompt input to a Field.
func ParseField(input string) (Field, bool) {
	switch f := Field(input); f {
	case FieldPriority, FieldDate, FieldTime, FieldBody:
		return f, true
	default:
		return "", false
	}
}

// Clone returns a copy of t that shares no backing arrays with it.
func (t Task) Clone() Task {
	t.Body = append([]string(nil), t.Body...)
	return t
}
