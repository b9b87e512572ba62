package commands

import (
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"zrep/internal/domain"
	"zrep/internal/execution"
	"zrep/internal/parser"
)

// RunCommand handles the run command
type RunCommand struct {
	pipeline *pipeline
	runner   *execution.Runner
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(p *pipeline, runner *execution.Runner) *RunCommand {
	return &RunCommand{
		pipeline: p,
		runner:   runner,
	}
}

// Execute runs the command. Settings are resolved before the test command
// starts; the command's own failure is returned after the run is reported.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	prs, err := parser.ForFormat(rc.pipeline.config.Format)
	if err != nil {
		return err
	}

	rep, err := rc.pipeline.begin(rc.pipeline.submitter(), nil)
	if err != nil {
		return err
	}

	proc, err := rc.runner.Start(ctx, args)
	if err != nil {
		return err
	}

	events := make(chan domain.TestEvent, 64)
	var g errgroup.Group
	g.Go(func() error {
		defer close(events)
		err := prs.Parse(proc.Stdout, func(e domain.TestEvent) {
			events <- e
		})
		// keep the command from blocking on a full pipe
		_, _ = io.Copy(io.Discard, proc.Stdout)
		return err
	})

	stats := rc.pipeline.deliver(ctx, rep, events, -1)
	parseErr := g.Wait()
	waitErr := proc.Wait()
	if parseErr != nil {
		return parseErr
	}

	if err := rc.pipeline.end(ctx, rep, stats); err != nil {
		return err
	}
	return waitErr
}
