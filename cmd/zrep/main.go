package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"zrep/internal/cli"
	"zrep/internal/cli/commands"
	"zrep/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "zrep",
		Short:         "Report test results to Zephyr Scale",
		Long:          `Collect the tests whose titles carry a Zephyr test case id, such as "[123] login works", and submit their results as one Zephyr Scale test run.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
