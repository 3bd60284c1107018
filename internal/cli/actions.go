package cli

import (
	"fmt"
	"io"

	"github.com/faizmokh/tasklist/internal/tasklist"
)

func (s *Session) add() error {
	priority, err := s.askPriority()
	if err != nil {
		return err
	}
	date, err := s.askDate()
	if err != nil {
		return err
	}
	clock, err := s.askTime()
	if err != nil {
		return err
	}
	body, err := s.askBody()
	if err != nil {
		return err
	}

	if len(body) == 0 {
		s.println(msgBlankTask)
		return nil
	}

	task := tasklist.Task{Priority: priority, Date: date, Time: clock, Body: body}
	if err := s.store.Add(task); err != nil {
		return fmt.Errorf("add task: %w", err)
	}
	s.logger.Debug("added task", "number", s.store.Len(), "date", date, "lines", len(body))
	return nil
}

// requireTasks prints the empty-list message and reports false when there is nothing to show.
func (s *Session) requireTasks() bool {
	if s.store.Empty() {
		s.println(msgNoTasks)
		return false
	}
	return true
}

func (s *Session) print() error {
	if !s.requireTasks() {
		return nil
	}
	return s.table.Render(s.out, s.store.Tasks())
}

func (s *Session) edit() error {
	if !s.requireTasks() {
		return nil
	}
	if err := s.table.Render(s.out, s.store.Tasks()); err != nil {
		return err
	}

	index, err := s.askIndex()
	if err != nil {
		return err
	}
	task, err := s.store.Task(index)
	if err != nil {
		return err
	}

	field, err := s.askField()
	if err != nil {
		return err
	}

	switch field {
	case tasklist.FieldPriority:
		task.Priority, err = s.askPriority()
	case tasklist.FieldDate:
		task.Date, err = s.askDate()
	case tasklist.FieldTime:
		task.Time, err = s.askTime()
	case tasklist.FieldBody:
		task.Body, err = s.askNonBlankBody()
	}
	if err != nil {
		return err
	}

	if err := s.store.Update(index, task); err != nil {
		return fmt.Errorf("edit task %d: %w", index+1, err)
	}
	s.logger.Debug("edited task", "number", index+1, "field", string(field))
	s.println(msgChanged)
	return nil
}

// askNonBlankBody repeats the body prompt until at least one line is given,
// so an edit can never leave a task without text.
func (s *Session) askNonBlankBody() ([]string, error) {
	for {
		body, err := s.askBody()
		if err != nil {
			return nil, err
		}
		if len(body) > 0 {
			return body, nil
		}
		s.println(msgBlankTask)
		if s.eof {
			return nil, io.EOF
		}
	}
}

func (s *Session) delete() error {
	if !s.requireTasks() {
		return nil
	}
	if err := s.table.Render(s.out, s.store.Tasks()); err != nil {
		return err
	}

	index, err := s.askIndex()
	if err != nil {
		return err
	}
	if _, err := s.store.Delete(index); err != nil {
		return fmt.Errorf("delete task %d: %w", index+1, err)
	}
	s.logger.Debug("deleted task", "number", index+1, "remaining", s.store.Len())
	s.println(msgDeleted)
	return nil
}
