package checks

import (
	"strings"

	"cleanup-discogs/internal/release"
	"cleanup-discogs/internal/smells"
)

// Signature pairs an identifier type with the traces its data leaves behind
// when filed under another type, most often the generic "Other" bucket.
// Adding a target type means adding a table entry, nothing else.
type Signature struct {
	// Target is the identifier type the content appears to belong to.
	Target   string
	Category release.Category
	// Match inspects the entry value (raw and lower-cased) and the
	// lower-cased, whitespace-squashed description.
	Match func(value, valueLower, descLower string) bool
}

// signatures is the reclassification table. Several signatures may match
// one entry; every match is reported, a human adjudicates.
var signatures = []Signature{
	{
		Target:   "Rights Society",
		Category: release.CategoryRightsSociety,
		Match: func(value, _, descLower string) bool {
			if _, ok := smells.RightsSocietyDescriptions[descLower]; ok {
				return true
			}
			return IsRightsSociety(value)
		},
	},
	{
		Target:   "Label Code",
		Category: release.CategoryLabelCode,
		Match: func(_, valueLower, descLower string) bool {
			if _, ok := smells.LabelCodeDescriptions[descLower]; ok {
				return true
			}
			return strings.HasPrefix(valueLower, "lc") && smells.LabelCodeValue.MatchString(valueLower)
		},
	},
	{
		Target:   "Depósito Legal",
		Category: release.CategoryDeposito,
		Match: func(_, valueLower, descLower string) bool {
			return smells.ContainsDepositoKeyword(descLower) ||
				smells.ContainsDepositoKeyword(valueLower) ||
				smells.HasDepositoValuePrefix(valueLower)
		},
	},
	{
		Target:   "ISRC",
		Category: release.CategoryISRC,
		Match: func(_, _, descLower string) bool {
			if strings.HasPrefix(descLower, "isrc") || strings.HasPrefix(descLower, "issrc") {
				return true
			}
			for frag := range smells.ISRCDescriptions {
				if strings.Contains(descLower, frag) {
					return true
				}
			}
			return false
		},
	},
	{
		Target:   "SPARS Code",
		Category: release.CategorySPARS,
		Match: func(value, _, descLower string) bool {
			if IsValidSPARS(value) {
				return true
			}
			for frag := range smells.SPARSDescriptions {
				if strings.Contains(descLower, frag) {
					return true
				}
			}
			return false
		},
	},
	{
		Target:   "Mastering SID Code",
		Category: release.CategoryMasteringSID,
		Match: func(_, _, descLower string) bool {
			_, ok := smells.MasteringSIDDescriptions[descLower]
			return ok
		},
	},
	{
		Target:   "Mould SID Code",
		Category: release.CategoryMouldSID,
		Match: func(_, _, descLower string) bool {
			_, ok := smells.MouldSIDDescriptions[descLower]
			return ok
		},
	},
	{
		Target:   "ASIN",
		Category: release.CategoryASIN,
		Match: func(_, _, descLower string) bool {
			return strings.HasPrefix(descLower, "asin")
		},
	},
}

// ClassifyEntry tests an identifier entry against every target type
// signature and reports each type the content plausibly belongs to instead
// of the declared one. Ties produce multiple findings by design.
func ClassifyEntry(id release.Identifier) []Issue {
	valueLower := strings.ToLower(id.Value)
	descLower := squashSpaces(strings.ToLower(id.Description))

	var issues []Issue
	for _, sig := range signatures {
		if sig.Target == id.Type {
			continue
		}
		if sig.Match(id.Value, valueLower, descLower) {
			issues = append(issues, issuef(sig.Category, "Possible %s (in %s)", sig.Target, id.Type))
		}
	}

	// a description saying just "SID" leaves even the target type ambiguous
	if _, ok := smells.GenericSIDDescriptions[descLower]; ok {
		issues = append(issues, issuef(release.CategoryMasteringSID, "Unspecified SID Code"))
	}
	return issues
}
