package tasklist

import (
	"fmt"
	"strings"
)

// Store is the ordered, in-memory task list. Positions are the only identity a
// task has: deleting one shifts every later task down by one.
type Store struct {
	tasks []Task
}

// NewStore returns a store holding tasks in the given order after validating each one.
func NewStore(tasks ...Task) (*Store, error) {
	s := &Store{tasks: make([]Task, 0, len(tasks))}
	for i, t := range tasks {
		if err := Validate(t); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		s.tasks = append(s.tasks, t.Clone())
	}
	return s, nil
}

// Len reports how many tasks the store holds.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Empty reports whether the store holds no tasks.
func (s *Store) Empty() bool {
	return len(s.tasks) == 0
}

// Tasks returns a copy of the tasks in display order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Task returns a copy of the task at the 0-based index.
func (s *Store) Task(index int) (Task, error) {
	if err := s.checkIndex(index); err != nil {
		return Task{}, err
	}
	return s.tasks[index].Clone(), nil
}

// Add appends t after validating it.
func (s *Store) Add(t Task) error {
	if err := Validate(t); err != nil {
		return err
	}
	s.tasks = append(s.tasks, t.Clone())
	return nil
}

// Update replaces the task at the 0-based index after validating the replacement.
func (s *Store) Update(index int, t Task) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if err := Validate(t); err != nil {
		return err
	}
	s.tasks[index] = t.Clone()
	return nil
}

// Delete removes and returns the task at the 0-based index.
func (s *Store) Delete(index int) (Task, error) {
	if err := s.checkIndex(index); err != nil {
		return Task{}, err
	}
	removed := s.tasks[index]
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	return removed, nil
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return fmt.Errorf("%w: %d (size %d)", ErrInvalidIndex, index+1, len(s.tasks))
	}
	return nil
}

// Validate checks that every field of t is in its canonical, valid form.
func Validate(t Task) error {
	if p, err := ParsePriority(t.Priority); err != nil || p != t.Priority {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if d, err := ParseDate(t.Date); err != nil || d != t.Date {
		return fmt.Errorf("%w: %q", ErrInvalidDate, t.Date)
	}
	if tm, err := ParseTime(t.Time); err != nil || tm != t.Time {
		return fmt.Errorf("%w: %q", ErrInvalidTime, t.Time)
	}
	if len(t.Body) == 0 {
		return ErrBlankTask
	}
	for _, line := range t.Body {
		if strings.TrimSpace(line) == "" {
			return fmt.Errorf("%w: blank line in body", ErrBlankTask)
		}
	}
	return nil
}
