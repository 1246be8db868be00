package checks

import (
	"strings"
	"unicode"

	"cleanup-discogs/internal/release"
)

// CheckASINValue validates an ASIN entry value: ten alphanumerics, first one
// a letter (the catalog historically uses a B prefix). Hyphens and a leading
// "<label>:" prefix are tolerated formatting, not smells.
func CheckASINValue(value string) []Issue {
	asin := strings.TrimSpace(value)
	if asin == "" {
		return nil
	}
	asin = strings.ReplaceAll(asin, "-", "")
	if idx := strings.LastIndex(asin, ":"); idx >= 0 {
		asin = strings.TrimSpace(asin[idx+1:])
	}

	if len(asin) != 10 {
		return []Issue{issuef(release.CategoryASIN, "ASIN (wrong length)")}
	}
	for i, r := range asin {
		if r > unicode.MaxASCII || (!unicode.IsLetter(r) && !unicode.IsDigit(r)) {
			return []Issue{issuef(release.CategoryASIN, "ASIN (wrong format)")}
		}
		if i == 0 && !unicode.IsLetter(r) {
			return []Issue{issuef(release.CategoryASIN, "ASIN (wrong format)")}
		}
	}
	return nil
}
