package checks

import (
	"strconv"
	"strings"

	"cleanup-discogs/internal/release"
	"cleanup-discogs/internal/smells"
)

// depositoYearSeparators are the separators seen before the year segment of
// a depósito legal value, Unicode dash included.
var depositoYearSeparators = []string{"-", "–", "/", ".", " ", "'", "_"}

// ExtractDepositoYear pulls the registration year out of a depósito legal
// value, trying the known separators right to left. Two digit years are
// pinned to a century against currentYear. ok is false when no year segment
// can be found (pre-1958 values often carry none).
func ExtractDepositoYear(value string, currentYear int) (year int, ok bool) {
	value = strings.TrimSpace(value)
	for _, sep := range depositoYearSeparators {
		idx := strings.LastIndex(value, sep)
		if idx < 0 || idx+len(sep) >= len(value) {
			continue
		}
		text := value[idx+len(sep):]
		// A three digit group after a dot is a serial fragment, not a year.
		if sep == "." && len(text) == 3 {
			continue
		}
		text = strings.ReplaceAll(text, ".", "")
		parsed, err := strconv.Atoi(text)
		if err != nil {
			continue
		}
		return pinCentury(parsed, currentYear), true
	}
	return 0, false
}

// CheckDepositoValue validates the value of a Depósito Legal entry:
// formatting conventions first, then the embedded year against the declared
// release year.
func CheckDepositoValue(value string, ctx Context) []Issue {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	var issues []Issue
	if strings.HasSuffix(trimmed, ".") {
		issues = append(issues, issuef(release.CategoryDeposito, "Depósito Legal (formatting)"))
	}

	yearValue := trimmed
	if strings.HasSuffix(yearValue, "℗") {
		issues = append(issues, issuef(release.CategoryDeposito, "Depósito Legal (formatting, has ℗)"))
		yearValue = strings.TrimSpace(strings.TrimSuffix(yearValue, "℗"))
	}

	if ctx.Year == 0 {
		return issues
	}

	year, ok := ExtractDepositoYear(yearValue, ctx.CurrentYear)
	if !ok {
		issues = append(issues, issuef(release.CategoryDeposito, "Depósito Legal (year not found)"))
		return issues
	}
	issues = append(issues, compareEmbeddedYear(year, "Depósito Legal", release.CategoryDeposito, ctx)...)
	return issues
}

// LooksLikeDeposito reports whether a value outside a Depósito Legal entry
// is shaped like a registration number.
func LooksLikeDeposito(value string) bool {
	return smells.HasDepositoValuePrefix(strings.ToLower(value))
}
