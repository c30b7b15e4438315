package rewrite

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"utgen/internal/domain"
)

// Rewriter regenerates marker bounded sections of target files
type Rewriter struct {
	logger *log.Logger
}

// NewRewriter creates a new Rewriter
func NewRewriter(logger *log.Logger) *Rewriter {
	return &Rewriter{logger: logger}
}

// Rewrite regenerates the section from mapping and writes the file back
// through a temporary file and rename. It reports whether the file changed;
// an up to date file is left untouched.
func (r *Rewriter) Rewrite(section Section, mapping *domain.Mapping) (bool, error) {
	current, updated, err := r.render(section, mapping)
	if err != nil {
		return false, err
	}
	if current == updated {
		r.logger.Debug("section up to date", "section", section.Name, "path", section.Path)
		return false, nil
	}

	if err := writeFileAtomic(section.Path, []byte(updated)); err != nil {
		return false, fmt.Errorf("failed to write %s file %s: %w", section.Name, section.Path, err)
	}
	r.logger.Debug("section rewritten", "section", section.Name, "path", section.Path)
	return true, nil
}

// Check reports whether Rewrite would change the file, without writing it
func (r *Rewriter) Check(section Section, mapping *domain.Mapping) (bool, error) {
	current, updated, err := r.render(section, mapping)
	if err != nil {
		return false, err
	}
	return current != updated, nil
}

func (r *Rewriter) render(section Section, mapping *domain.Mapping) (string, string, error) {
	data, err := os.ReadFile(section.Path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s file: %w", section.Name, err)
	}
	current := string(data)

	lines := splitLines(current)
	s, e, err := LocateMarkers(lines, section.Start, section.End)
	if err != nil {
		return "", "", fmt.Errorf("%s file %s: %w", section.Name, section.Path, err)
	}
	r.logger.Debug("located markers", "section", section.Name, "start", s, "end", e)

	return current, splice(lines, s, e, section, mapping), nil
}
