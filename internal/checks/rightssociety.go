package checks

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cleanup-discogs/internal/release"
	"cleanup-discogs/internal/smells"
)

// rsCruft lists punctuation stripped before comparing rights society values.
const rsCruft = ". •[]()"

// rsDelimiters separate multiple societies in one field, in the order the
// splits are tried.
var rsDelimiters = []string{"/", "|", "\\", "-", "—", "•", "·", ",", ":", " ", "&", "+"}

// upperUnd uppercases without locale-specific surprises; society names mix
// scripts (ΑΕΠΙ, n©b) so plain ASCII uppercasing is not enough.
var upperUnd = cases.Upper(language.Und)

// NormalizeRightsSociety uppercases a value and strips decoration so it can
// be compared against the society vocabulary.
func NormalizeRightsSociety(value string) string {
	return stripRunes(upperUnd.String(strings.TrimSpace(value)), rsCruft)
}

// IsRightsSociety reports whether a value names a known society.
func IsRightsSociety(value string) bool {
	upper := upperUnd.String(strings.TrimSpace(value))
	if _, ok := smells.RightsSocieties[upper]; ok {
		return true
	}
	_, ok := smells.RightsSocieties[NormalizeRightsSociety(value)]
	return ok
}

// CheckRightsSocietyValue validates the value of a Rights Society entry:
// a known society (or the "NONE" convention) passes, known misspellings and
// wrong-charset homoglyph variants are flagged, and fields holding several
// societies are split and each part checked.
func CheckRightsSocietyValue(value string, ctx Context) []Issue {
	upper := upperUnd.String(strings.TrimSpace(value))
	if upper == "" || upper == "NONE" {
		return nil
	}
	if IsRightsSociety(value) {
		return nil
	}

	if issues := checkOneSociety(upper); len(issues) > 0 {
		return issues
	}

	// The field either holds several societies or a bogus value.
	var issues []Issue
	for _, sep := range rsDelimiters {
		if !strings.Contains(upper, sep) {
			continue
		}
		for _, part := range strings.Split(upper, sep) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, ok := smells.RightsSocieties[part]; ok {
				continue
			}
			issues = append(issues, checkOneSociety(part)...)
		}
		break
	}
	return issues
}

func checkOneSociety(upper string) []Issue {
	var issues []Issue
	stripped := stripRunes(upper, rsCruft)
	if _, ok := smells.RightsSocietiesWrong[stripped]; ok {
		issues = append(issues, issuef(release.CategoryRightsSociety, "Rights Society (possible wrong value: %s)", stripped))
	}
	if _, ok := smells.RightsSocietiesWrongChar[stripped]; ok {
		issues = append(issues, issuef(release.CategoryRightsSociety, "Rights Society (wrong character set: %s)", stripped))
	}
	return issues
}
