package checks

import (
	"regexp"
	"strings"

	"cleanup-discogs/internal/release"
	"cleanup-discogs/internal/smells"
)

// sidHomoglyphs maps the lookalike runes people type into SID codes onto the
// letters the IFPI scheme actually uses.
var sidHomoglyphs = strings.NewReplacer(
	" ", "", "-", "",
	"⨍", "f", "ƒ", "f",
	"ρ", "p", "ƥ", "p",
)

// NormalizeSID lowers a SID value and maps homoglyphs and separators away.
func NormalizeSID(value string) string {
	return sidHomoglyphs.Replace(strings.ToLower(strings.TrimSpace(value)))
}

// CheckMasteringSIDValue validates a Mastering SID Code entry value and its
// surroundings: the grammar, the release format and the release year.
func CheckMasteringSIDValue(value string, formats []release.Format, ctx Context) []Issue {
	return checkSIDValue(value, smells.MasteringSIDValue, "Mastering SID Code", release.CategoryMasteringSID, formats, ctx)
}

// CheckMouldSIDValue validates a Mould SID Code entry value.
func CheckMouldSIDValue(value string, formats []release.Format, ctx Context) []Issue {
	return checkSIDValue(value, smells.MouldSIDValue, "Mould SID Code", release.CategoryMouldSID, formats, ctx)
}

func checkSIDValue(value string, shape *regexp.Regexp, what string, cat release.Category, formats []release.Format, ctx Context) []Issue {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == "" {
		return nil
	}
	if _, ok := smells.SIDIgnoreValues[lower]; ok {
		return nil
	}

	if !shape.MatchString(NormalizeSID(lower)) {
		return []Issue{issuef(cat, "%s (illegal value: %s)", what, strings.TrimSpace(value))}
	}

	var issues []Issue
	// a SID code on a non laser-read medium means the format or the entry
	// is wrong; only trust single-format releases
	if len(formats) == 1 {
		if _, ok := smells.SIDWrongFormats[formats[0].Name]; ok {
			issues = append(issues, issuef(cat, "%s (Wrong Format: %s)", what, formats[0].Name))
		}
	}
	if ctx.Year != 0 && ctx.Year < smells.SIDFirstYear {
		issues = append(issues, issuef(cat, "%s (wrong year: %d)", what, ctx.Year))
	}
	return issues
}
