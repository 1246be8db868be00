package checks

import (
	"strings"

	"cleanup-discogs/internal/release"
	"cleanup-discogs/internal/smells"
)

// IsLabelCode reports whether a value matches the label code grammar
// (optional "LC" prefix, four to six digits).
func IsLabelCode(value string) bool {
	return smells.LabelCodeValue.MatchString(strings.ToLower(value))
}

// CheckLabelCodeValue validates the value of a Label Code entry.
func CheckLabelCodeValue(value string) []Issue {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == "" {
		return nil
	}

	var issues []Issue
	// the letter O instead of a zero is a recurring typo
	if rest, ok := strings.CutPrefix(lower, "lc"); ok && strings.ContainsRune(rest, 'o') {
		issues = append(issues, issuef(release.CategoryLabelCode, "Spelling error (in Label Code)"))
	}
	if !smells.LabelCodeValue.MatchString(lower) {
		issues = append(issues, issuef(release.CategoryLabelCode, "Label Code (value)"))
	}
	return issues
}
