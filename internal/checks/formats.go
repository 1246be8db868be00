package checks

import (
	"strings"

	"cleanup-discogs/internal/release"
	"cleanup-discogs/internal/smells"
)

// CheckFormat validates one declared format: data that belongs in the
// identifier section but was typed into the free-text field, the CD+G
// descriptor spelled out in text instead of selected, and DMM on media that
// cannot be direct metal mastered.
func CheckFormat(f release.Format) []Issue {
	var issues []Issue

	text := strings.TrimSpace(f.Text)
	if text != "" {
		lower := strings.ToLower(text)
		if IsValidSPARS(text) {
			issues = append(issues, issuef(release.CategorySPARS, "Possible SPARS Code (in Format)"))
		}
		if strings.HasPrefix(lower, "lc") && smells.LabelCodeValue.MatchString(lower) {
			issues = append(issues, issuef(release.CategoryLabelCode, "Possible Label Code (in Format)"))
		}
		if lower == "cd+g" || lower == "cd-g" || lower == "cd g" || lower == "cdg" {
			issues = append(issues, issuef(release.CategoryCDG, "CD+G (in Format)"))
		}
		// Direct Metal Mastering only exists for vinyl.
		if lower == "dmm" && f.Name != "Vinyl" {
			issues = append(issues, issuef(release.CategoryMatrix, "DMM (%s, in Format)", f.Name))
		}
	}
	return issues
}

// IsCDRelease reports whether any declared format is CD media. The CD-era
// checks (SID codes, certain plants) key off this.
func IsCDRelease(formats []release.Format) bool {
	for _, f := range formats {
		if f.Name == "CD" || f.Name == "CDr" {
			return true
		}
	}
	return false
}
