package tasklist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/faizmokh/tasklist/internal/files"
)

// Reader loads the persisted task list through the shared files.Manager.
type Reader struct {
	manager *files.Manager
	name    string
}

// NewReader wires a reader for the data file name, resolved by manager.
func NewReader(manager *files.Manager, name string) *Reader {
	return &Reader{manager: manager, name: name}
}

// Load returns the persisted store. A missing file yields an empty store;
// malformed JSON or an invalid task is reported instead of being dropped.
func (r *Reader) Load(ctx context.Context) (*Store, error) {
	if r == nil || r.manager == nil {
		return nil, errors.New("reader not initialized with file manager")
	}

	data, err := r.manager.Read(r.name)
	if err != nil {
		if errors.Is(err, files.ErrNotFound) {
			return NewStore()
		}
		return nil, err
	}

	return Decode(data, r.manager.Path(r.name))
}

// Decode parses the JSON array form of a task list. source names the origin in errors.
func Decode(data []byte, source string) (*Store, error) {
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}

	store, err := NewStore(tasks...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	return store, nil
}
