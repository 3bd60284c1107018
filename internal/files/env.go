package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// HomeEnv overrides the directory holding the task list and its config.
	HomeEnv = "TASKLIST_HOME"
)

// ResolveBasePath determines where tasklist keeps its files. It defaults to the
// current working directory and can be overridden by exporting TASKLIST_HOME.
func ResolveBasePath() (string, error) {
	if override, ok := os.LookupEnv(HomeEnv); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			path, err := normalizePath(override)
			if err != nil {
				return "", err
			}
			return path, nil
		}
	}

	return os.Getwd()
}

func normalizePath(input string) (string, error) {
	if strings.HasPrefix(input, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
