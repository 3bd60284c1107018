package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// DefaultDataFile is the task list file name used when no config overrides it.
	DefaultDataFile = "tasklist.json"
	// ConfigFileName is the optional TOML config looked up in the base directory.
	ConfigFileName = "tasklist.toml"

	dirPermissions  = 0o755
	filePermissions = 0o644
)

// ErrNotFound is returned by Read when the requested file does not exist yet.
var ErrNotFound = errors.New("file not found")

// Manager centralizes where tasklist files live on disk and how they are written.
type Manager struct {
	basePath string
}

// NewManager constructs a Manager rooted at the provided directory. If basePath
// is empty, it falls back to the location determined by ResolveBasePath.
func NewManager(basePath string) (*Manager, error) {
	var err error
	if basePath == "" {
		basePath, err = ResolveBasePath()
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}

	return &Manager{basePath: abs}, nil
}

// BasePath returns the root directory storing tasklist files.
func (m *Manager) BasePath() string {
	return m.basePath
}

// Path resolves name against the base directory. Absolute names are returned unchanged.
func (m *Manager) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(m.basePath, name)
}

// ConfigPath returns the absolute path of the optional config file.
func (m *Manager) ConfigPath() string {
	return m.Path(ConfigFileName)
}

// Read returns the contents of name. A missing file yields an error wrapping ErrNotFound.
func (m *Manager) Read(name string) ([]byte, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}

	path := m.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Write replaces name with data. The content goes to a temporary file in the
// same directory first and is renamed into place once synced.
func (m *Manager) Write(name string, data []byte) error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}

	path := m.Path(name)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	temp, err := os.CreateTemp(dir, "tasklist-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
