package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"zrep/internal/config"
	"zrep/internal/discovery"
	"zrep/internal/domain"
	"zrep/internal/execution"
	"zrep/internal/parser"
	"zrep/internal/reporter"
	"zrep/internal/storage"
	"zrep/internal/ui"
	"zrep/internal/zephyr"
)

// pipeline drives the reporter lifecycle shared by all commands
type pipeline struct {
	config    *config.Config
	logger    *zerolog.Logger
	formatter *ui.Formatter
}

// submitter returns the JSON export when --out is set, the Zephyr client otherwise
func (p *pipeline) submitter() reporter.Submitter {
	if p.config.Flags.Out != "" {
		return storage.NewJSONStorage(p.config.Flags.Out)
	}
	return zephyr.NewClient(nil, *p.logger)
}

// begin resolves the run settings and starts a reporter
func (p *pipeline) begin(sub reporter.Submitter, entries [][]any) (*reporter.Reporter, error) {
	rc, err := p.config.ResolveRunConfig(entries)
	if err != nil {
		return nil, err
	}

	rep := reporter.New(sub, *p.logger)
	if err := rep.OnBegin(rc); err != nil {
		return nil, err
	}
	return rep, nil
}

// deliver hands the events to the reporter through the worker pool.
// count sizes the progress bar, negative when unknown.
func (p *pipeline) deliver(ctx context.Context, rep *reporter.Reporter, events <-chan domain.TestEvent, count int) execution.Stats {
	pool := execution.NewWorkerPool(p.config, rep)
	if !p.config.Flags.Quiet {
		pool.SetProgress(ui.NewProgressBar(count))
	}
	return pool.Dispatch(ctx, events)
}

// end submits the batch and prints a summary
func (p *pipeline) end(ctx context.Context, rep *reporter.Reporter, stats execution.Stats) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := rep.OnEnd(ctx); err != nil {
		return err
	}
	if !p.config.Flags.Quiet {
		p.formatter.PrintSummary(rep.Results(), stats.Total)
	}
	return nil
}

// readReport parses the configured input in full. A directory input is
// scanned for report files of the configured format, read in path order.
func (p *pipeline) readReport() ([]domain.TestEvent, [][]any, error) {
	files, err := p.reportFiles()
	if err != nil {
		return nil, nil, err
	}

	var events []domain.TestEvent
	var entries [][]any
	for _, file := range files {
		fileEvents, fileEntries, err := p.readReportFile(file)
		if err != nil {
			return nil, nil, err
		}
		events = append(events, fileEvents...)
		if entries == nil {
			entries = fileEntries
		}
	}
	return events, entries, nil
}

// reportFiles expands the input flag into the report files to read
func (p *pipeline) reportFiles() ([]string, error) {
	input := p.config.Flags.Input
	if input == "" || input == "-" {
		return []string{"-"}, nil
	}
	if info, err := os.Stat(input); err != nil || !info.IsDir() {
		return []string{input}, nil
	}

	exts, err := parser.Extensions(p.config.Format)
	if err != nil {
		return nil, err
	}
	files, err := discovery.NewScanner(p.config.PathsToIgnore).Scan(input, exts)
	if err != nil {
		return nil, err
	}
	files = discovery.NewFilter().FilterByName(files, p.config.Flags.Filter)
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s reports found in %s", p.config.Format, input)
	}
	p.logger.Debug().Str("dir", input).Int("files", len(files)).Msg("found report files")
	return files, nil
}

func (p *pipeline) readReportFile(path string) ([]domain.TestEvent, [][]any, error) {
	prs, err := parser.ForFormat(p.config.Format)
	if err != nil {
		return nil, nil, err
	}

	in, err := openInput(path)
	if err != nil {
		return nil, nil, err
	}
	defer in.Close()

	events, err := parser.Collect(prs, in)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, reporterEntries(prs), nil
}

func reporterEntries(prs parser.Parser) [][]any {
	if rc, ok := prs.(parser.ReporterConfigured); ok {
		return rc.ReporterEntries()
	}
	return nil
}
