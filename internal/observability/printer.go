package observability

import (
	"io"

	"github.com/fatih/color"
	"github.com/jonathan/ci-reports/internal/types"
)

// Printer writes human-facing status lines
type Printer struct {
	out   io.Writer
	warn  *color.Color
	good  *color.Color
	bad   *color.Color
	plain *color.Color
}

// NewPrinter creates a new Printer that writes to the given writer. Colors are
// dropped when noColor is set or the process is not attached to a terminal.
func NewPrinter(out io.Writer, noColor bool) *Printer {
	p := &Printer{
		out:   out,
		warn:  color.New(color.FgYellow),
		good:  color.New(color.FgGreen),
		bad:   color.New(color.FgRed, color.Bold),
		plain: color.New(color.Reset),
	}
	if noColor || color.NoColor {
		for _, c := range []*color.Color{p.warn, p.good, p.bad, p.plain} {
			c.DisableColor()
		}
	}
	return p
}

// Infof prints an uncolored line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Infof(format string, args ...any) {
	p.plain.Fprintf(p.out, format+"\n", args...)
}

// Failf prints a failure line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Failf(format string, args ...any) {
	p.bad.Fprintf(p.out, format+"\n", args...)
}

// PrintCoverageLine prints one line of a coverage report, colored by trend.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCoverageLine(trend types.Trend, line string) {
	switch trend {
	case types.TrendDecreased:
		p.warn.Fprint(p.out, line)
	case types.TrendImproved:
		p.good.Fprint(p.out, line)
	default:
		p.plain.Fprint(p.out, line)
	}
}

// PrintSuiteTallies prints the suites with memory errors and their totals.
func (p *Printer) PrintSuiteTallies(tallies []types.SuiteTally) {
	if len(tallies) == 0 {
		p.Infof("No valgrind errors found")
		return
	}
	for _, t := range tallies {
		p.Failf("%s: %d valgrind error(s)", t.Suite, t.Counts.Total())
	}
}
