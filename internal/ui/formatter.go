package ui

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"

	"zrep/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter() *Formatter {
	return &Formatter{out: os.Stdout}
}

// NewFormatterTo creates a Formatter writing to w
func NewFormatterTo(w io.Writer) *Formatter {
	return &Formatter{out: w}
}

// PrintBatch prints the records of a batch, sorted by test case key
func (f *Formatter) PrintBatch(batch domain.Batch) {
	if len(batch) == 0 {
		fmt.Fprintln(f.out, color.YellowString("No tagged tests found"))
		return
	}

	rows := make(domain.Batch, len(batch))
	copy(rows, batch)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TestCaseKey < rows[j].TestCaseKey
	})

	keyWidth, envWidth := len("Test Case"), len("Environment")
	for _, r := range rows {
		keyWidth = max(keyWidth, len(r.TestCaseKey))
		envWidth = max(envWidth, len(r.Environment))
	}
	const statusWidth = len("Not Executed")

	fmt.Fprintf(f.out, "%-*s  %-*s  %-*s  %s\n", keyWidth, "Test Case", statusWidth, "Status", envWidth, "Environment", "Executed")
	for _, r := range rows {
		status := statusColor(r.Status).Sprintf("%-*s", statusWidth, r.Status)
		fmt.Fprintf(f.out, "%-*s  %s  %-*s  %s\n", keyWidth, r.TestCaseKey, status, envWidth, r.Environment, r.ExecutionDate)
	}
}

// PrintSummary prints the per-status counts of a batch next to the total
// number of finished tests.
func (f *Formatter) PrintSummary(batch domain.Batch, finished int) {
	counts := batch.Count()
	fmt.Fprintln(f.out)
	fmt.Fprintf(f.out, "%d of %d finished test(s) tagged: ", len(batch), finished)
	fmt.Fprintln(f.out,
		color.GreenString("%d pass", counts[domain.StatusPass])+", "+
			color.RedString("%d fail", counts[domain.StatusFail])+", "+
			color.MagentaString("%d blocked", counts[domain.StatusBlocked])+", "+
			color.YellowString("%d not executed", counts[domain.StatusNotExecuted]))
}

func statusColor(s domain.Status) *color.Color {
	switch s {
	case domain.StatusPass:
		return color.New(color.FgGreen)
	case domain.StatusFail:
		return color.New(color.FgRed)
	case domain.StatusBlocked:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgYellow)
	}
}
