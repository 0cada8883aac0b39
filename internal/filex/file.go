package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureParentDir creates the directory that will hold filePath and returns
// its absolute path. In-memory SQLite DSNs (":memory:", "file:...") are left
// alone and yield "".
func EnsureParentDir(filePath string) (string, error) {
	if filePath == ":memory:" || strings.HasPrefix(filePath, "file:") {
		return "", nil
	}

	abs, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", filePath, err)
	}

	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
