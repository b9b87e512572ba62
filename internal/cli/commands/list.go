package commands

import (
	"context"

	"github.com/spf13/cobra"

	"zrep/internal/config"
	"zrep/internal/domain"
	"zrep/internal/execution"
	"zrep/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	pipeline *pipeline
}

// NewListCommand creates a new ListCommand
func NewListCommand(p *pipeline) *ListCommand {
	return &ListCommand{pipeline: p}
}

// tablePrinter prints the batch instead of submitting it
type tablePrinter struct {
	formatter *ui.Formatter
}

func (t tablePrinter) CreateRun(_ context.Context, _ config.RunConfig, batch domain.Batch) error {
	t.formatter.PrintBatch(batch)
	return nil
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	events, entries, err := lc.pipeline.readReport()
	if err != nil {
		return err
	}

	rep, err := lc.pipeline.begin(tablePrinter{formatter: lc.pipeline.formatter}, entries)
	if err != nil {
		return err
	}

	// Delivered in order on a single worker so the listing is stable.
	pool := execution.NewWorkerPool(&config.Config{Workers: 1}, rep)
	stats := pool.Dispatch(ctx, execution.Feed(events))
	if err := lc.pipeline.end(ctx, rep, stats); err != nil {
		return err
	}

	// An empty batch never reaches the printer.
	if len(rep.Results()) == 0 {
		lc.pipeline.formatter.PrintBatch(nil)
	}
	return nil
}
