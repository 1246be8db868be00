package checks_test

import (
	"reflect"
	"testing"

	"cleanup-discogs/internal/checks"
	"cleanup-discogs/internal/release"
)

func testPolicy() checks.Policy {
	return checks.Policy{CurrentYear: 2026, MinYear: 1900}
}

func newEvaluator(opts checks.Options) *checks.Evaluator {
	return checks.NewEvaluator(opts, testPolicy(), nil)
}

func details(findings []release.Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Detail)
	}
	return out
}

func TestEvaluateCleanRelease(t *testing.T) {
	rel := &release.Release{
		ID:       1,
		Status:   "Accepted",
		Country:  "Sweden",
		Released: "1999-03-00",
		Year:     1999,
		Month:    3,
		Formats:  []release.Format{{Name: "Vinyl", Qty: 2}},
		Labels:   []release.Label{{Name: "Svek", Catno: "SK 032"}},
		Tracks: []release.Track{
			{Position: "A1", Title: "Vakna"},
			{Position: "B1", Title: "Sommar"},
		},
	}

	findings := newEvaluator(checks.DefaultOptions()).Evaluate(rel)
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %v", details(findings))
	}
}

func TestEvaluateConsistentEmbeddedYear(t *testing.T) {
	// Registration the year before release is normal and must stay silent.
	rel := &release.Release{
		ID:      2,
		Country: "Spain",
		Year:    1986,
		Month:   -1,
		Identifiers: []release.Identifier{
			{Type: "Depósito Legal", Value: "B 12345-1985"},
		},
	}

	findings := newEvaluator(checks.DefaultOptions()).Evaluate(rel)
	if len(findings) != 0 {
		t.Fatalf("expected no findings, got %v", details(findings))
	}
}

func TestEvaluateDepositoFiledUnderOther(t *testing.T) {
	// A registration number hiding in an "Other" entry is reclassified; its
	// embedded year is NOT compared against the release year, since the value
	// was never confirmed to be a depósito legal.
	rel := &release.Release{
		ID:      11,
		Country: "Spain",
		Year:    1986,
		Month:   -1,
		Identifiers: []release.Identifier{
			{Type: "Other", Value: "B 12345-1985"},
		},
	}

	findings := newEvaluator(checks.DefaultOptions()).Evaluate(rel)
	got := details(findings)
	want := []string{"Possible Depósito Legal (in Other)", "Depósito Legal (in Other)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("findings = %v, want %v", got, want)
	}
	for _, f := range findings {
		if f.Category != release.CategoryDeposito {
			t.Errorf("finding %q has category %s, want %s", f.Detail, f.Category, release.CategoryDeposito)
		}
	}
}

func TestEvaluateIndependentFindings(t *testing.T) {
	// A month of 00 and legacy link markup are unrelated; both must be
	// reported.
	opts := checks.DefaultOptions()
	opts.MonthValid = true

	rel := &release.Release{
		ID:    3,
		Year:  1999,
		Month: 0,
		Notes: `<a href="http://example.com">info</a>`,
	}

	findings := newEvaluator(opts).Evaluate(rel)
	got := details(findings)
	want := []string{"Month 00", "old link (Notes)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("findings = %v, want %v", got, want)
	}
	for _, f := range findings {
		if f.ReleaseID != 3 {
			t.Errorf("finding carries release id %d, want 3", f.ReleaseID)
		}
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	rel := &release.Release{
		ID:      4,
		Country: "Spain",
		Year:    1986,
		Month:   -1,
		Identifiers: []release.Identifier{
			{Type: "Depósito Legal", Value: "B 12345-1987."},
			{Type: "Other", Value: "STEMRA"},
		},
	}

	eval := newEvaluator(checks.DefaultOptions())
	first := eval.Evaluate(rel)
	second := eval.Evaluate(rel)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("evaluation not idempotent: %v vs %v", details(first), details(second))
	}
	if len(first) == 0 {
		t.Fatal("expected findings")
	}
}

func TestEvaluateCategoryToggles(t *testing.T) {
	rel := &release.Release{
		ID:    5,
		Year:  1999,
		Month: -1,
		Identifiers: []release.Identifier{
			{Type: "ISRC", Value: "USRC176078"},
			{Type: "ASIN", Value: "B0002UAL"},
		},
	}

	opts := checks.DefaultOptions()
	opts.ISRC = false
	findings := newEvaluator(opts).Evaluate(rel)
	got := details(findings)
	want := []string{"ASIN (wrong length)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("findings = %v, want %v", got, want)
	}
}

func TestEvaluateDuplicateISRC(t *testing.T) {
	rel := &release.Release{
		ID:    6,
		Year:  1999,
		Month: -1,
		Identifiers: []release.Identifier{
			{Type: "ISRC", Value: "USRC17607839", Description: "Track 1"},
			{Type: "ISRC", Value: "US-RC1-76-07839", Description: "Track 2"},
		},
	}

	findings := newEvaluator(checks.DefaultOptions()).Evaluate(rel)
	got := details(findings)
	want := []string{"ISRC (duplicate USRC17607839)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("findings = %v, want %v", got, want)
	}
}

func TestEvaluateReportAllCollapse(t *testing.T) {
	rel := &release.Release{
		ID:    7,
		Year:  1999,
		Month: -1,
		Identifiers: []release.Identifier{
			{Type: "ASIN", Value: "B0002UAL"},
			{Type: "ASIN", Value: "B0003UAL"},
		},
	}

	opts := checks.DefaultOptions()
	findings := newEvaluator(opts).Evaluate(rel)
	if len(findings) != 2 {
		t.Fatalf("report_all: got %d findings, want 2", len(findings))
	}

	opts.ReportAll = false
	findings = newEvaluator(opts).Evaluate(rel)
	if len(findings) != 1 {
		t.Fatalf("collapsed: got %d findings (%v), want 1", len(findings), details(findings))
	}
}

func TestEvaluateParseErrors(t *testing.T) {
	rel := &release.Release{
		ID:          8,
		Year:        1999,
		Month:       -1,
		ParseErrors: []string{`format quantity "two"`},
	}

	findings := newEvaluator(checks.Options{}).Evaluate(rel)
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	if findings[0].Category != release.CategoryParseError {
		t.Fatalf("category = %s, want %s", findings[0].Category, release.CategoryParseError)
	}
}

func TestEvaluateRegionalGating(t *testing.T) {
	id := release.Identifier{Type: "Other", Value: "PKD 4/97", Description: "Production date"}

	india := &release.Release{ID: 9, Country: "India", Year: 1995, Month: -1, Identifiers: []release.Identifier{id}}
	sweden := &release.Release{ID: 10, Country: "Sweden", Year: 1995, Month: -1, Identifiers: []release.Identifier{id}}

	eval := newEvaluator(checks.DefaultOptions())
	if got := details(eval.Evaluate(india)); len(got) != 1 || got[0] != "Indian PKD (release date earlier)" {
		t.Fatalf("india findings = %v", got)
	}
	if got := details(eval.Evaluate(sweden)); len(got) != 0 {
		t.Fatalf("sweden findings = %v, want none", got)
	}
}

func TestEvaluateFindingURL(t *testing.T) {
	f := release.Finding{ReleaseID: 1234, Category: release.CategoryISRC, Detail: "ISRC (wrong length)"}
	if got, want := f.URL(), "https://www.discogs.com/release/1234"; got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
}
