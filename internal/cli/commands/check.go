package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"utgen/internal/ui"
)

// ErrOutOfDate is returned by check when a generated section is stale
var ErrOutOfDate = errors.New("generated sections are out of date, run utgen")

// CheckCommand handles the check command
type CheckCommand struct {
	deps *dependencies
}

// newCheckCommand creates a new CheckCommand
func newCheckCommand(deps *dependencies) *CheckCommand {
	return &CheckCommand{deps: deps}
}

// Execute runs the command
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	mapping, err := cc.deps.discover()
	if err != nil {
		return err
	}

	sections, err := cc.deps.sections()
	if err != nil {
		return err
	}

	results := make([]ui.SectionResult, 0, len(sections))
	for _, section := range sections {
		changed, err := cc.deps.rewriter.Check(section, mapping)
		if err != nil {
			return err
		}
		results = append(results, ui.SectionResult{Name: section.Name, Path: section.Path, Changed: changed})
	}

	if !cc.deps.formatter.PrintCheck(results) {
		return ErrOutOfDate
	}
	return nil
}
