package commands

import (
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	deps *dependencies
}

// newListCommand creates a new ListCommand
func newListCommand(deps *dependencies) *ListCommand {
	return &ListCommand{deps: deps}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	mapping, err := lc.deps.discover()
	if err != nil {
		return err
	}

	lc.deps.formatter.PrintTestList(mapping)
	return nil
}
