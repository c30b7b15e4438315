package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Scanner selects unit test source files in a single directory
type Scanner struct {
	source  *regexp.Regexp
	exclude map[string]bool
}

// NewScanner creates a Scanner that keeps file names matching source,
// never returning any of the excluded names (the runner file lives next to
// the sources and must not register itself).
func NewScanner(source *regexp.Regexp, exclude ...string) *Scanner {
	excludeMap := make(map[string]bool)
	for _, name := range exclude {
		excludeMap[name] = true
	}
	return &Scanner{source: source, exclude: excludeMap}
}

// Scan returns the paths of the selected files in root, sorted by file name.
// Subdirectories are not descended into.
func (s *Scanner) Scan(root string) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("unit test path does not exist: %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("unit test path is not a directory: %s", root)
	}

	// ReadDir returns entries sorted by name
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", root, err)
	}

	var sourceFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if s.exclude[name] || !s.source.MatchString(name) {
			continue
		}
		sourceFiles = append(sourceFiles, filepath.Join(root, name))
	}

	return sourceFiles, nil
}
