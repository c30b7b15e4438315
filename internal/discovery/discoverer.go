package discovery

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"utgen/internal/domain"
)

// Progress receives one tick per scanned source file
type Progress interface {
	Increment()
	Finish()
}

// Discoverer builds the discovery mapping from a unit test directory
type Discoverer struct {
	scanner  *Scanner
	parser   *Parser
	logger   *log.Logger
	progress Progress
}

// NewDiscoverer creates a Discoverer
func NewDiscoverer(scanner *Scanner, parser *Parser, logger *log.Logger) *Discoverer {
	return &Discoverer{
		scanner: scanner,
		parser:  parser,
		logger:  logger,
	}
}

// SetProgress sets the progress reporter used by Collect; nil disables it
func (d *Discoverer) SetProgress(progress Progress) {
	d.progress = progress
}

// Discover scans dir and collects every test function found in the selected files
func (d *Discoverer) Discover(dir string) (*domain.Mapping, error) {
	files, err := d.Scan(dir)
	if err != nil {
		return nil, err
	}
	return d.Collect(files)
}

// Scan returns the source files that Collect would read
func (d *Discoverer) Scan(dir string) ([]string, error) {
	files, err := d.scanner.Scan(dir)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("found source files", "dir", dir, "count", len(files))
	for _, f := range files {
		d.logger.Debug("source file", "name", filepath.Base(f))
	}
	return files, nil
}

// Collect parses files in order and groups the entries by source file key.
// A file without test functions adds no group; files sharing a key are merged.
func (d *Discoverer) Collect(files []string) (*domain.Mapping, error) {
	mapping := domain.NewMapping()
	if d.progress != nil {
		defer d.progress.Finish()
	}

	for _, file := range files {
		entries, err := d.parser.FindTestCases(file)
		if err != nil {
			return nil, err
		}

		key := GroupKey(file)
		for _, entry := range entries {
			d.logger.Debug("found unit test", "group", key, "declaration", entry.Declaration)
			mapping.Add(key, entry)
		}

		if d.progress != nil {
			d.progress.Increment()
		}
	}

	return mapping, nil
}
