package checks

import (
	"regexp"
	"strconv"
	"strings"

	"cleanup-discogs/internal/release"
)

// pkdYear matches the year segment of an Indian PKD production date stamp
// ("4/97", "12/1997").
var pkdYear = regexp.MustCompile(`\d{1,2}/((?:19|20)?\d{2})`)

// czechDate matches the trailing two digit year of a Czechoslovak
// manufacturing date code.
var czechDate = regexp.MustCompile(`(\d{2})\s+\d$`)

// greekLicenseSeparators split a Greek license number from its year segment.
var greekLicenseSeparators = []string{"/", " ", "-", ")", "'", "."}

// czechWrongE is U+0115 (e with breve), which is not part of the Czech
// alphabet but looks close enough to U+011B (ě) that people type it.
const czechWrongE = 'ĕ'

// MentionsPKD reports whether text refers to an Indian PKD production date.
func MentionsPKD(lower string) bool {
	return strings.Contains(lower, "pkd") || strings.Contains(lower, "production date")
}

// CheckIndianPKD validates an Indian PKD production date stamp found in an
// identifier value: the embedded year must be plausible and must not follow
// the declared release year. A PKD stamp on a release without a year is its
// own smell: the stamp dates the pressing.
func CheckIndianPKD(value string, ctx Context) []Issue {
	if ctx.Year == 0 {
		return []Issue{issuef(release.CategoryPKD, "Indian PKD (no year)")}
	}
	m := pkdYear.FindStringSubmatch(value)
	if m == nil {
		return nil
	}
	parsed, _ := strconv.Atoi(m[1])
	year := pinCentury(parsed, ctx.CurrentYear)
	return compareEmbeddedYear(year, "Indian PKD", release.CategoryPKD, ctx)
}

// CheckGreekLicense validates a Greek license number: the year after the
// last separator must not follow the declared release year. Greek pressings
// are a 20th century phenomenon, so short years are pinned to 19xx.
func CheckGreekLicense(value string, ctx Context) []Issue {
	if ctx.Year == 0 {
		return nil
	}
	trimmed := strings.TrimSpace(value)
	for _, sep := range greekLicenseSeparators {
		idx := strings.LastIndex(trimmed, sep)
		if idx < 0 || idx+1 >= len(trimmed) {
			continue
		}
		year, err := strconv.Atoi(trimmed[idx+1:])
		if err != nil {
			continue
		}
		if year < 100 {
			year += 1900
		}
		if year > ctx.Year {
			return []Issue{issuef(release.CategoryGreekLicense, "Greek license year wrong")}
		}
		return nil
	}
	return nil
}

// CheckCzechDate validates a Czechoslovak manufacturing date code: the
// embedded two digit year (always 19xx) must not follow the declared
// release year.
func CheckCzechDate(value string, ctx Context) []Issue {
	if ctx.Year == 0 {
		return nil
	}
	m := czechDate.FindStringSubmatch(strings.TrimRight(value, " \t"))
	if m == nil {
		return nil
	}
	parsed, _ := strconv.Atoi(m[1])
	year := parsed + 1900
	if year > ctx.Year {
		return []Issue{issuef(release.CategoryCzechDate, "Czechoslovak manufacturing date (release year wrong)")}
	}
	return nil
}

// HasCzechWrongE reports whether text contains the ĕ lookalike that is not a
// valid Czech letter.
func HasCzechWrongE(s string) bool {
	return strings.ContainsRune(s, czechWrongE)
}
