package commands

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"zrep/internal/cli"
	"zrep/internal/config"
	"zrep/internal/execution"
	"zrep/internal/parser"
	"zrep/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Report *ReportCommand
	Run    *RunCommand
	List   *ListCommand

	logger    zerolog.Logger
	logCloser io.Closer
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	c := &Commands{logger: zerolog.Nop()}
	p := &pipeline{
		config:    cfg,
		logger:    &c.logger,
		formatter: ui.NewFormatter(),
	}

	c.Report = NewReportCommand(p)
	c.Run = NewRunCommand(p, execution.NewRunner())
	c.List = NewListCommand(p)
	return c
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.ConfigFile, "config", "c", "", "Config file (default "+config.DefaultConfigFile+")")
	pf.StringVar(&flags.EnvFile, "env-file", "", "Dotenv file with ZEPHYR_* variables (default "+config.DefaultEnvFile+")")
	pf.StringVarP(&flags.Format, "format", "F", "", "Report format: "+strings.Join(parser.Formats(), ", ")+" (default "+config.DefaultFormat+")")
	pf.IntVarP(&flags.Workers, "workers", "w", 0, "Number of workers delivering test results")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "Only log warnings and errors")
	pf.StringVar(&flags.LogFile, "log-file", "", "Also write JSON logs to this file")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		c.logger, c.logCloser = cli.InitLogger(flags.Verbose, flags.Quiet, flags.LogFile)
		return nil
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if c.logCloser != nil {
			return c.logCloser.Close()
		}
		return nil
	}

	// Report command
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Submit the tagged tests of a report to Zephyr",
		Long:  "Read a finished test report, collect every test whose title carries a [id] tag and create one Zephyr test run from them",
		Args:  cobra.NoArgs,
		RunE:  c.Report.Execute,
	}
	reportCmd.Flags().StringVarP(&flags.Input, "input", "i", "-", "Report file or directory, - for stdin")
	reportCmd.Flags().StringVar(&flags.Filter, "filter", "", "Only read report files whose name matches this pattern")
	reportCmd.Flags().StringVarP(&flags.Out, "out", "o", "", "Write the test run to this JSON file instead of submitting it")
	rootCmd.AddCommand(reportCmd)

	// Run command
	runCmd := &cobra.Command{
		Use:   "run -- <test command> [args...]",
		Short: "Run a test command and report its results",
		Long:  "Execute a test command that writes its report to stdout, report the tagged tests as they finish and exit with the command's status",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().StringVarP(&flags.Out, "out", "o", "", "Write the test run to this JSON file instead of submitting it")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the records a report would submit",
		Long:  "Read a finished test report and print the Zephyr records it maps to without submitting anything",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.Input, "input", "i", "-", "Report file or directory, - for stdin")
	listCmd.Flags().StringVar(&flags.Filter, "filter", "", "Only read report files whose name matches this pattern")
	rootCmd.AddCommand(listCmd)
}

// openInput opens a report file, "-" or "" meaning stdin
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
