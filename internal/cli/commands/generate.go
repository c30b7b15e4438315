package commands

import (
	"github.com/spf13/cobra"

	"utgen/internal/ui"
)

// GenerateCommand rewrites the declarations and runner sections
type GenerateCommand struct {
	deps *dependencies
}

// newGenerateCommand creates a new GenerateCommand
func newGenerateCommand(deps *dependencies) *GenerateCommand {
	return &GenerateCommand{deps: deps}
}

// Execute runs the command. A section already written stays written when a
// later one fails.
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	mapping, err := gc.deps.discover()
	if err != nil {
		return err
	}

	sections, err := gc.deps.sections()
	if err != nil {
		return err
	}

	results := make([]ui.SectionResult, 0, len(sections))
	for _, section := range sections {
		gc.deps.logger.Debug("updating "+section.Name+" file", "path", section.Path)
		changed, err := gc.deps.rewriter.Rewrite(section, mapping)
		if err != nil {
			return err
		}
		results = append(results, ui.SectionResult{Name: section.Name, Path: section.Path, Changed: changed})
	}
	gc.deps.logger.Debug("done")

	gc.deps.formatter.PrintSummary(mapping, results)
	return nil
}
