// Package checks implements the field classification and pattern validation
// engine: independent per-field validators, misplaced-data classifiers and
// cross-field consistency rules, composed per record by the Evaluator.
//
// Every check is a pure function of its inputs plus the read-only tables in
// internal/smells. Absent or empty values are never findings; only wrong
// content is.
package checks

import (
	"fmt"
	"strings"

	"cleanup-discogs/internal/release"
)

// Context carries the per-record facts shared by the checks: the declared
// release year (0 when unknown), the release country, and the policy knobs
// for year comparisons.
type Context struct {
	// CurrentYear is the upper bound for any plausible year, normally the
	// UTC year the dump was generated.
	CurrentYear int
	// Year is the declared release year, 0 when absent or unparsable.
	Year int
	// Country drives the regional checks (Spain, India, Greece,
	// Czechoslovakia).
	Country string
	// YearTolerance is how many years an embedded registration year may
	// precede the declared release year before the gap itself is flagged.
	// 0 disables the gap check; the ordering rule (embedded must not follow
	// the release year) always applies.
	YearTolerance int
	// MinYear is the earliest plausible embedded year; anything before it is
	// impossible regardless of the declared year.
	MinYear int
}

// Issue is one smell detected by a check, not yet bound to a release.
// The Evaluator stamps the release id to produce a Finding.
type Issue struct {
	Category release.Category
	Detail   string
}

func issuef(cat release.Category, format string, args ...any) Issue {
	return Issue{Category: cat, Detail: fmt.Sprintf(format, args...)}
}

// pinCentury resolves a two digit year against the current year: values up
// to the current century's offset are 20xx, the rest 19xx. Years >= 100 pass
// through unchanged.
func pinCentury(year, currentYear int) int {
	if year >= 100 {
		return year
	}
	if year <= currentYear-2000 {
		return year + 2000
	}
	return year + 1900
}

// compareEmbeddedYear applies the cross-field year policy: an embedded year
// must be plausible, must not follow the declared release year, and must not
// precede it by more than the tolerance window. A zero declared year
// disables the ordering checks but not the plausibility check.
func compareEmbeddedYear(embedded int, what string, cat release.Category, ctx Context) []Issue {
	var issues []Issue
	switch {
	case embedded < ctx.MinYear || embedded > ctx.CurrentYear:
		issues = append(issues, issuef(cat, "%s (impossible year: %d)", what, embedded))
	case ctx.Year != 0 && ctx.Year < embedded:
		issues = append(issues, issuef(cat, "%s (release date earlier)", what))
	case ctx.Year != 0 && ctx.YearTolerance > 0 && ctx.Year-embedded > ctx.YearTolerance:
		issues = append(issues, issuef(cat, "%s (predates release by %d years)", what, ctx.Year-embedded))
	}
	return issues
}

// stripRunes removes every rune in cutset from s.
func stripRunes(s, cutset string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(cutset, r) {
			return -1
		}
		return r
	}, s)
}

// squashSpaces collapses runs of whitespace into single spaces.
func squashSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
