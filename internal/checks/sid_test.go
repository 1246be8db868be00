package checks_test

import (
	"testing"

	"cleanup-discogs/internal/checks"
	"cleanup-discogs/internal/release"
)

func cdFormats() []release.Format {
	return []release.Format{{Name: "CD", Qty: 1}}
}

func TestCheckMasteringSIDValue(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		formats []release.Format
		year    int
		details []string
	}{
		{name: "valid", value: "IFPI L123", formats: cdFormats(), year: 1999},
		{name: "bare code", value: "L1234", formats: cdFormats(), year: 1999},
		{name: "homoglyph f", value: "I⨍PI L123", formats: cdFormats(), year: 1999},
		{name: "ignored placeholder", value: "none", formats: cdFormats(), year: 1999},
		{name: "mould code in mastering field", value: "IFPI 9431", formats: cdFormats(), year: 1999, details: []string{"illegal value"}},
		{name: "vinyl release", value: "IFPI L123", formats: []release.Format{{Name: "Vinyl", Qty: 1}}, year: 1999, details: []string{"Wrong Format: Vinyl"}},
		{name: "pre sid era", value: "IFPI L123", formats: cdFormats(), year: 1990, details: []string{"wrong year: 1990"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues := checks.CheckMasteringSIDValue(tc.value, tc.formats, testContext(tc.year))
			assertDetails(t, issues, tc.details)
		})
	}
}

func TestCheckMouldSIDValue(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		details []string
	}{
		{name: "valid", value: "IFPI 9431"},
		{name: "mastering shaped value accepted", value: "IFPI L123"},
		{name: "too short", value: "IFPI 94", details: []string{"illegal value"}},
		{name: "ignored placeholder", value: "(none)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues := checks.CheckMouldSIDValue(tc.value, cdFormats(), testContext(1999))
			assertDetails(t, issues, tc.details)
		})
	}
}
