package commands

import (
	"github.com/spf13/cobra"

	"zrep/internal/execution"
)

// ReportCommand handles the report command
type ReportCommand struct {
	pipeline *pipeline
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(p *pipeline) *ReportCommand {
	return &ReportCommand{pipeline: p}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	events, entries, err := rc.pipeline.readReport()
	if err != nil {
		return err
	}

	rep, err := rc.pipeline.begin(rc.pipeline.submitter(), entries)
	if err != nil {
		return err
	}

	stats := rc.pipeline.deliver(ctx, rep, execution.Feed(events), len(events))
	return rc.pipeline.end(ctx, rep, stats)
}
