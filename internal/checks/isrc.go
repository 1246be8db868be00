package checks

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"cleanup-discogs/internal/release"
)

// isrcCruft lists the separators people type into ISRC values, including the
// en dash.
const isrcCruft = "- .:–"

// isrcShape matches a normalized 12 character ISRC: country code, registrant
// code, two digit year of reference, five digit designation.
var isrcShape = regexp.MustCompile(`^(\w{2})(\w{3})(\d{2})(\d{5})$`)

// NormalizeISRC uppercases an ISRC value and strips prefixes, separators and
// the Chinese "/A.J6" suffix so the bare 12 character code remains.
func NormalizeISRC(value string) string {
	code := strings.ToUpper(strings.TrimSpace(value))
	if rest, ok := strings.CutPrefix(code, "ISRC"); ok {
		code = strings.TrimSpace(rest)
	}
	if rest, ok := strings.CutPrefix(code, "CODE"); ok {
		code = strings.TrimSpace(rest)
	}
	// Chinese ISRCs carry a "/A.J6" style suffix that is not part of the code.
	if strings.Contains(code, "/A.J6") {
		if idx := strings.LastIndex(code, "/"); idx >= 0 {
			code = strings.TrimSpace(code[:idx])
		}
	}
	return stripRunes(code, isrcCruft)
}

// CheckISRCValue validates one ISRC entry value. The returned code is the
// normalized form (for duplicate detection); year is the embedded year of
// reference, already century-pinned, 0 when the value is malformed.
func CheckISRCValue(value string, ctx Context) (issues []Issue, code string, year int) {
	code = NormalizeISRC(value)
	if code == "" {
		return nil, "", 0
	}
	if len(code) != 12 {
		return []Issue{issuef(release.CategoryISRC, "ISRC (wrong length)")}, code, 0
	}

	m := isrcShape.FindStringSubmatch(code)
	if m == nil || !lettersOnly(m[1]) {
		return []Issue{issuef(release.CategoryISRC, "ISRC (wrong format)")}, code, 0
	}

	embedded, _ := strconv.Atoi(m[3])
	year = pinCentury(embedded, ctx.CurrentYear)
	issues = append(issues, compareEmbeddedYear(year, "ISRC", release.CategoryISRC, ctx)...)
	return issues, code, year
}

func lettersOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
