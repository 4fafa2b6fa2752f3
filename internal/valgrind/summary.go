package valgrind

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/ci-reports/internal/types"
	"go.uber.org/zap"
)

// ReportSuffix ends the file name of every per-suite valgrind report.
const ReportSuffix = "_valgrind_report.xml"

// SuiteName strips the report suffix from a report file name.
func SuiteName(fileName string) string {
	return strings.TrimSuffix(fileName, ReportSuffix)
}

// FindReports lists the report files directly inside dir, sorted by name.
func FindReports(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read report directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ReportSuffix) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Summarize parses every report in dir and returns a tally for each suite that
// had at least one counted error. The first malformed report aborts the run.
func Summarize(dir string, log *zap.Logger) ([]types.SuiteTally, error) {
	names, err := FindReports(dir)
	if err != nil {
		return nil, err
	}
	log.Debug("found valgrind reports", zap.String("dir", dir), zap.Int("count", len(names)))

	var tallies []types.SuiteTally
	for _, name := range names {
		tally, failed, err := ParseReportFile(filepath.Join(dir, name), log)
		if err != nil {
			return tallies, err
		}
		if !failed {
			log.Debug("suite clean", zap.String("report", name))
			continue
		}
		tallies = append(tallies, types.SuiteTally{Suite: SuiteName(name), Counts: tally})
	}
	return tallies, nil
}

// Header returns the CSV header row.
func Header() []string {
	return append([]string{"Suites"}, types.ErrorKinds[:]...)
}

// Row returns the CSV row of a suite tally.
func Row(t types.SuiteTally) []string {
	row := make([]string, 0, len(t.Counts)+1)
	row = append(row, t.Suite)
	for _, n := range t.Counts {
		row = append(row, strconv.Itoa(n))
	}
	return row
}

// Writer streams the summary matrix as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter writes the header row to w and returns a Writer for the suite rows.
func NewWriter(w io.Writer) (*Writer, error) {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(Header()); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	cw.Flush()
	return &Writer{csv: cw}, cw.Error()
}

// WriteTally appends a suite row.
func (w *Writer) WriteTally(t types.SuiteTally) error {
	if err := w.csv.Write(Row(t)); err != nil {
		return fmt.Errorf("failed to write CSV row for %s: %w", t.Suite, err)
	}
	w.csv.Flush()
	return w.csv.Error()
}

// WriteCSV writes the header and one row per tally to w.
func WriteCSV(w io.Writer, tallies []types.SuiteTally) error {
	cw, err := NewWriter(w)
	if err != nil {
		return err
	}
	for _, t := range tallies {
		if err := cw.WriteTally(t); err != nil {
			return err
		}
	}
	return nil
}
