package checks

import "cleanup-discogs/internal/release"

// CheckMonth validates a declared release month. -1 means absent, which is
// never a smell; 0 is the historically allowed "00" placeholder that current
// guidelines reject.
func CheckMonth(month int) []Issue {
	switch {
	case month < 0:
		return nil
	case month == 0:
		return []Issue{issuef(release.CategoryMonth, "Month 00")}
	case month > 12:
		return []Issue{issuef(release.CategoryMonth, "Month impossible (%d)", month)}
	}
	return nil
}

// CheckYear validates a declared release year against the plausible range:
// not before recorded media existed, not after the dump was generated.
func CheckYear(year int, ctx Context) []Issue {
	if year == 0 {
		return nil
	}
	if year < ctx.MinYear || year > ctx.CurrentYear {
		return []Issue{issuef(release.CategoryYear, "Year %d invalid", year)}
	}
	return nil
}
