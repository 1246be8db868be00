// Package report renders scan output: one numbered line per finding on
// stdout, in dump order, plus an optional per-category summary table at the
// end of the run.
package report

import (
	"fmt"
	"io"

	"cleanup-discogs/internal/release"
)

// Writer prints findings as they arrive. Lines are numbered sequentially
// across the whole run, matching the long-standing report format:
//
//	       1 -- ISRC (wrong length): https://www.discogs.com/release/123
type Writer struct {
	out     io.Writer
	counter int
	summary Summary
}

// NewWriter returns a Writer printing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out, summary: Summary{Categories: make(map[release.Category]int)}}
}

// Write prints one finding and records it in the running summary.
func (w *Writer) Write(f release.Finding) error {
	w.counter++
	w.summary.Findings++
	w.summary.Categories[f.Category]++
	_, err := fmt.Fprintf(w.out, "%8d -- %s: %s\n", w.counter, f.Detail, f.URL())
	return err
}

// Count returns the number of findings written so far.
func (w *Writer) Count() int {
	return w.counter
}

// Summary returns the running totals. ScannedReleases and FlaggedReleases
// are maintained by the caller via Observe.
func (w *Writer) Summary() Summary {
	return w.summary
}

// Observe records one scanned release and whether it produced findings.
func (w *Writer) Observe(flagged bool) {
	w.summary.Scanned++
	if flagged {
		w.summary.Flagged++
	}
}

// Summary holds the end-of-run totals.
type Summary struct {
	Scanned    int
	Flagged    int
	Findings   int
	Categories map[release.Category]int
}
