package main

import (
	"fmt"
	"os"

	"utgen/internal/cli"
	"utgen/internal/cli/commands"
	"utgen/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "utgen",
		Short:         "Unit test registration generator",
		Long:          `Scans unit_test/ for ut_*.c sources and regenerates the test declarations in ut.h and the RUN_TEST registrations in ut_runner.c.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, os.Stdout, os.Stderr)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
