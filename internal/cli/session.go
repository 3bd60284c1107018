package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/faizmokh/tasklist/internal/tasklist"
	"github.com/faizmokh/tasklist/internal/ui"
)

const (
	promptAction   = "Input an action (add, print, edit, delete, end):"
	promptPriority = "Input the task priority (C, H, N, L):"
	promptDate     = "Input the date (yyyy-mm-dd):"
	promptTime     = "Input the time (hh:mm):"
	promptBody     = "Input a new task (enter a blank line to end):"
	promptField    = "Input a field to edit (priority, date, time, task):"

	msgInvalidAction = "The input action is invalid"
	msgInvalidDate   = "The input date is invalid"
	msgInvalidTime   = "The input time is invalid"
	msgInvalidIndex  = "Invalid task number"
	msgInvalidField  = "Invalid field"
	msgBlankTask     = "The task is blank"
	msgNoTasks       = "No tasks have been input"
	msgChanged       = "The task is changed"
	msgDeleted       = "The task is deleted"
)

const maxLineBytes = 1 << 20

// Session runs the interactive command loop over one store. It owns no
// persistence; the caller loads the store before Run and saves it afterwards.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	store  *tasklist.Store
	table  *ui.Table
	logger *log.Logger
	eof    bool
}

// NewSession wires a session reading lines from in and writing prompts to out.
func NewSession(in io.Reader, out io.Writer, store *tasklist.Store, table *ui.Table, logger *log.Logger) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{in: scanner, out: out, store: store, table: table, logger: logger}
}

// Run dispatches actions until "end" is entered, then returns nil. Running out
// of input first returns an error wrapping io.ErrUnexpectedEOF.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.println(promptAction)
		action, err := s.readLine()
		if err != nil {
			return s.inputErr(err)
		}

		var actionErr error
		switch action {
		case "add":
			actionErr = s.add()
		case "print":
			actionErr = s.print()
		case "edit":
			actionErr = s.edit()
		case "delete":
			actionErr = s.delete()
		case "end":
			return nil
		default:
			s.println(msgInvalidAction)
		}
		if actionErr != nil {
			return s.inputErr(actionErr)
		}
	}
}

func (s *Session) inputErr(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("input closed before end: %w", io.ErrUnexpectedEOF)
	}
	return err
}

func (s *Session) readLine() (string, error) {
	if s.in.Scan() {
		return s.in.Text(), nil
	}
	if err := s.in.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	s.eof = true
	return "", io.EOF
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

// ask is the prompt state machine shared by every field: show the prompt,
// read a line, parse it, then accept or report the rejection and ask again.
// An empty reject message re-prompts silently.
func ask[T any](s *Session, prompt func() string, reject string, parse func(string) (T, error)) (T, error) {
	for {
		s.println(prompt())
		line, err := s.readLine()
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(line)
		if err == nil {
			return value, nil
		}
		s.logger.Debug("rejected input", "input", line, "err", err)
		if reject != "" {
			s.println(reject)
		}
	}
}

func static(prompt string) func() string {
	return func() string { return prompt }
}

func (s *Session) askPriority() (string, error) {
	return ask(s, static(promptPriority), "", tasklist.ParsePriority)
}

func (s *Session) askDate() (string, error) {
	return ask(s, static(promptDate), msgInvalidDate, tasklist.ParseDate)
}

func (s *Session) askTime() (string, error) {
	return ask(s, static(promptTime), msgInvalidTime, tasklist.ParseTime)
}

// askIndex returns the 0-based index of a task. The store must not be empty.
func (s *Session) askIndex() (int, error) {
	prompt := func() string {
		return fmt.Sprintf("Input the task number (1-%d):", s.store.Len())
	}
	return ask(s, prompt, msgInvalidIndex, func(line string) (int, error) {
		return tasklist.ParseIndex(line, s.store.Len())
	})
}

func (s *Session) askField() (tasklist.Field, error) {
	return ask(s, static(promptField), msgInvalidField, func(line string) (tasklist.Field, error) {
		field, ok := tasklist.ParseField(strings.TrimSpace(line))
		if !ok {
			return "", fmt.Errorf("unknown field %q", line)
		}
		return field, nil
	})
}

// askBody collects trimmed lines until a blank one. End of input also ends the
// body; the caller decides what an empty result means.
func (s *Session) askBody() ([]string, error) {
	s.println(promptBody)

	var lines []string
	for {
		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return lines, nil
		}
		lines = append(lines, line)
	}
}
