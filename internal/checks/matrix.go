package checks

import (
	"regexp"
	"strconv"
	"strings"

	"cleanup-discogs/internal/release"
	"cleanup-discogs/internal/smells"
)

// cinramYear matches the "#NN" year stamp Cinram cuts into non-US matrices.
var cinramYear = regexp.MustCompile(`#(\d{2})`)

// pallasYear matches the trailing two digit year of a P+O (Pallas) matrix
// code.
var pallasYear = regexp.MustCompile(`P\+O[–-]\d{4,5}[–-][ABCD]\d?\s+\d{2}[–-](\d{2})`)

// CheckMatrixValue validates a Matrix / Runout entry value: the recurring
// PDMC-for-PMDC transposition and the plant year stamps that can contradict
// the declared release year.
func CheckMatrixValue(value string, ctx Context) []Issue {
	var issues []Issue
	for _, typo := range smells.PDMCTypos {
		if strings.Contains(value, typo) {
			issues = append(issues, issuef(release.CategoryMatrix, "Matrix (PDMC instead of PMDC)"))
			break
		}
	}

	if ctx.Year == 0 {
		return issues
	}

	if strings.Contains(value, "MFG BY CINRAM") && strings.Contains(value, "#") && !strings.Contains(value, "USA") {
		if m := cinramYear.FindStringSubmatch(value); m != nil {
			parsed, _ := strconv.Atoi(m[1])
			year := pinCentury(parsed, ctx.CurrentYear)
			issues = append(issues, compareEmbeddedYear(year, "Matrix (Cinram)", release.CategoryMatrix, ctx)...)
		}
	} else if strings.Contains(value, "P+O") {
		if m := pallasYear.FindStringSubmatch(value); m != nil {
			parsed, _ := strconv.Atoi(m[1])
			year := pinCentury(parsed, ctx.CurrentYear)
			issues = append(issues, compareEmbeddedYear(year, "Matrix (Pallas)", release.CategoryMatrix, ctx)...)
		}
	}
	return issues
}
