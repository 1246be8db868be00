package checks

import (
	"strings"

	"cleanup-discogs/internal/release"
	"cleanup-discogs/internal/smells"
)

// sparsCruft lists every separator people sprinkle into SPARS codes,
// Unicode bullets included.
const sparsCruft = ". •·∙᛫[]-|︱/\\"

// sparsDelimiters are tried in order when a field holds several codes.
var sparsDelimiters = []string{"|", "/", ",", " ", "&", "-", "+", "•"}

// NormalizeSPARS lowers a SPARS value and strips separator cruft.
func NormalizeSPARS(value string) string {
	return stripRunes(strings.ToLower(strings.TrimSpace(value)), sparsCruft)
}

// IsValidSPARS reports membership in the closed SPARS vocabulary,
// case-insensitively and ignoring separator cruft.
func IsValidSPARS(value string) bool {
	_, ok := smells.ValidSPARSCodes[NormalizeSPARS(value)]
	return ok
}

// CheckSPARSValue validates the value of a SPARS Code entry. Fields holding
// several codes are split and each code checked on its own. The literal
// "none" is an accepted convention, not a smell.
func CheckSPARSValue(value string, ctx Context) []Issue {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "none" {
		return nil
	}

	// Sony distribution codes regularly end up in the SPARS field.
	if trimmed == "CDC" || trimmed == "CDM" {
		return []Issue{issuef(release.CategorySPARS, "Sony Format Code in SPARS (%s)", trimmed)}
	}

	lower := strings.ToLower(trimmed)
	codes := []string{NormalizeSPARS(lower)}
	if len(codes[0]) != 3 {
		if split, ok := splitSPARS(lower); ok {
			codes = split
		}
	}

	var issues []Issue
	for _, code := range codes {
		issues = append(issues, checkOneSPARS(code, ctx)...)
	}
	return issues
}

// splitSPARS tries the known delimiters and accepts a split only when every
// part is a three character code.
func splitSPARS(lower string) ([]string, bool) {
	for _, sep := range sparsDelimiters {
		if !strings.Contains(lower, sep) {
			continue
		}
		parts := strings.Split(lower, sep)
		codes := make([]string, 0, len(parts))
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if len(part) != 3 {
				codes = nil
				break
			}
			codes = append(codes, part)
		}
		if codes != nil {
			return codes, true
		}
	}
	return nil, false
}

func checkOneSPARS(code string, ctx Context) []Issue {
	var issues []Issue
	valid := true
	if _, ok := smells.ValidSPARSCodes[code]; !ok {
		valid = false
		issues = append(issues, issuef(release.CategorySPARS, "SPARS Code (invalid SPARS: %s)", code))
	}
	for _, r := range code {
		if r > 0x100 {
			valid = false
			issues = append(issues, issuef(release.CategorySPARS, "SPARS Code (wrong character set: %s)", code))
			break
		}
	}
	if valid && ctx.Year != 0 && ctx.Year < smells.SPARSFirstYear {
		issues = append(issues, issuef(release.CategorySPARS, "SPARS Code (impossible year: %d)", ctx.Year))
	}
	return issues
}
