package tasklist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/faizmokh/tasklist/internal/files"
)

// Writer persists the task list through the shared files.Manager.
type Writer struct {
	manager *files.Manager
	name    string
}

// NewWriter wires a writer for the data file name, resolved by manager.
func NewWriter(manager *files.Manager, name string) *Writer {
	return &Writer{manager: manager, name: name}
}

// Save replaces the data file with the full contents of store.
func (w *Writer) Save(ctx context.Context, store *Store) error {
	if w == nil || w.manager == nil {
		return errors.New("writer not initialized with file manager")
	}

	data, err := Encode(store)
	if err != nil {
		return err
	}
	if err := w.manager.Write(w.name, data); err != nil {
		return fmt.Errorf("write %s: %w", w.manager.Path(w.name), err)
	}
	return nil
}

// Encode renders store as a JSON array. An empty store encodes as [].
func Encode(store *Store) ([]byte, error) {
	tasks := []Task{}
	if store != nil {
		tasks = store.Tasks()
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return data, nil
}
