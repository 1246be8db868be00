package checks

import (
	"strings"

	"cleanup-discogs/internal/release"
	"cleanup-discogs/internal/smells"
)

// pressingRoles mark a company entry as a manufacturing credit; the plant
// founding-year checks only make sense for those.
var pressingRoles = []string{
	"Pressed By", "Duplicated By", "Manufactured By", "Glass Mastered At",
}

// CheckCompany compares a company credit against the known plant founding
// years: a release cannot be pressed at a plant before the plant existed.
// isCD gates the plants that also distributed other formats.
func CheckCompany(c release.Company, isCD bool, ctx Context) []Issue {
	if ctx.Year == 0 {
		return nil
	}
	var issues []Issue
	for _, plant := range smells.Plants {
		if c.ID != plant.CompanyID {
			continue
		}
		if plant.CDOnly && !isCD {
			continue
		}
		if ctx.Year < plant.FirstYear {
			qualifier := "wrong year"
			if plant.CDOnly {
				qualifier = "possibly wrong year"
			}
			issues = append(issues, issuef(release.CategoryPlant, "Pressing plant %s (%s %d)", plant.Name, qualifier, ctx.Year))
		}
	}
	return issues
}

// IsPressingRole reports whether a company role is a manufacturing credit.
func IsPressingRole(role string) bool {
	for _, r := range pressingRoles {
		if strings.Contains(role, r) {
			return true
		}
	}
	return false
}

// nonPlantNameMarkers are name fragments that point at a company credited as
// a plant but really belonging to a different role category.
var nonPlantNameMarkers = []string{
	"Distribution", "Distributed", "Publishing", "Promotion", "Management",
}

// CheckCompanyRole flags a manufacturing credit whose company name suggests
// a different role category.
func CheckCompanyRole(c release.Company) []Issue {
	if !IsPressingRole(c.EntityType) {
		return nil
	}
	for _, marker := range nonPlantNameMarkers {
		if strings.Contains(c.Name, marker) {
			return []Issue{issuef(release.CategoryPlant, "Pressing plant role for %q (name suggests %s)", c.Name, strings.ToLower(marker))}
		}
	}
	return nil
}

// CheckRoles validates comma separated role text against a known role
// vocabulary (loaded from the Discogs credits list). Bracketed qualifiers
// are stripped before matching.
func CheckRoles(roleText string, credits map[string]struct{}) []Issue {
	roleText = strings.TrimSpace(roleText)
	if roleText == "" || len(credits) == 0 {
		return nil
	}

	var issues []Issue
	check := func(segment string) {
		for _, role := range strings.Split(segment, ",") {
			role = strings.TrimSpace(role)
			// "By" is a fragment left over when a bracketed qualifier splits
			// a role name in half.
			if role == "" || role == "By" {
				continue
			}
			if _, ok := credits[role]; !ok {
				issues = append(issues, issuef(release.CategoryCredits, "Role %q invalid", role))
			}
		}
	}

	if !strings.Contains(roleText, "[") {
		check(roleText)
		return issues
	}
	for _, part := range strings.Split(roleText, "[") {
		if !strings.Contains(part, "]") {
			continue
		}
		for strings.Contains(part, "]") {
			_, part, _ = strings.Cut(part, "]")
		}
		check(part)
	}
	return issues
}

// CheckLabel checks one label credit: labels that did not exist yet at the
// declared release year, label codes filed as catalog numbers, and depósito
// legal values filed as catalog numbers.
func CheckLabel(l release.Label, ctx Context) []Issue {
	var issues []Issue

	// "London" is the perennial wrong-label entry (London Records vs the
	// various London imprints).
	if l.Name == "London" {
		issues = append(issues, issuef(release.CategoryLabelName, "Wrong label (London)"))
	}

	catno := strings.ToLower(strings.TrimSpace(l.Catno))
	if catno != "" {
		if strings.HasPrefix(catno, "lc") && smells.LabelCodeValue.MatchString(catno) {
			issues = append(issues, issuef(release.CategoryLabelCode, "Possible Label Code (in Catalogue Number)"))
		}
		if smells.ContainsDepositoKeyword(catno) && smells.ContainsDepositoValue(catno) {
			issues = append(issues, issuef(release.CategoryDeposito, "Possible Depósito Legal (in Catalogue Number)"))
		}
	}
	return issues
}

// CheckLabelYear compares a label credit against labels with known founding
// years.
func CheckLabelYear(companyID int64, ctx Context) []Issue {
	if ctx.Year == 0 {
		return nil
	}
	for _, label := range smells.LabelFirstYears {
		if companyID == label.CompanyID && ctx.Year < label.FirstYear {
			return []Issue{issuef(release.CategoryLabelName, "Label %s (wrong year %d)", label.Name, ctx.Year)}
		}
	}
	return nil
}
