package report_test

import (
	"strings"
	"testing"

	"cleanup-discogs/internal/release"
	"cleanup-discogs/internal/report"
)

func TestWriterLineFormat(t *testing.T) {
	var buf strings.Builder
	w := report.NewWriter(&buf)

	findings := []release.Finding{
		{ReleaseID: 123, Category: release.CategoryISRC, Detail: "ISRC (wrong length)"},
		{ReleaseID: 456, Category: release.CategorySPARS, Detail: "SPARS Code (in Notes)"},
	}
	for _, f := range findings {
		if err := w.Write(f); err != nil {
			t.Fatalf("Write returned error: %v", err)
		}
	}

	want := "       1 -- ISRC (wrong length): https://www.discogs.com/release/123\n" +
		"       2 -- SPARS Code (in Notes): https://www.discogs.com/release/456\n"
	if got := buf.String(); got != want {
		t.Fatalf("output:\n%q\nwant:\n%q", got, want)
	}
	if w.Count() != 2 {
		t.Errorf("Count = %d, want 2", w.Count())
	}
}

func TestWriterSummaryTotals(t *testing.T) {
	var buf strings.Builder
	w := report.NewWriter(&buf)

	w.Observe(true)
	w.Observe(false)
	w.Observe(true)
	for _, f := range []release.Finding{
		{ReleaseID: 1, Category: release.CategoryISRC, Detail: "a"},
		{ReleaseID: 1, Category: release.CategoryISRC, Detail: "b"},
		{ReleaseID: 2, Category: release.CategorySPARS, Detail: "c"},
	} {
		if err := w.Write(f); err != nil {
			t.Fatalf("Write returned error: %v", err)
		}
	}

	s := w.Summary()
	if s.Scanned != 3 || s.Flagged != 2 || s.Findings != 3 {
		t.Fatalf("summary = %+v", s)
	}
	if s.Categories[release.CategoryISRC] != 2 || s.Categories[release.CategorySPARS] != 1 {
		t.Fatalf("categories = %v", s.Categories)
	}
}

func TestRenderSummary(t *testing.T) {
	s := report.Summary{
		Scanned:  10,
		Flagged:  4,
		Findings: 7,
		Categories: map[release.Category]int{
			release.CategoryISRC:  5,
			release.CategorySPARS: 2,
		},
	}

	var buf strings.Builder
	if err := report.RenderSummary(&buf, s); err != nil {
		t.Fatalf("RenderSummary returned error: %v", err)
	}

	// go-pretty renders header and footer cells upper-cased
	out := buf.String()
	for _, fragment := range []string{"CATEGORY", "FINDINGS", "TOTAL", "isrc", "spars", "5", "2", "7", "10 releases scanned, 4 flagged"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("output missing %q:\n%s", fragment, out)
		}
	}

	// largest category first
	if strings.Index(out, "isrc") > strings.Index(out, "spars") {
		t.Errorf("categories not sorted by count:\n%s", out)
	}
}
