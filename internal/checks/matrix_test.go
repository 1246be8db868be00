package checks_test

import (
	"testing"

	"cleanup-discogs/internal/checks"
)

func TestCheckMatrixValue(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		year    int
		details []string
	}{
		{name: "pdmc typo", value: "PDMC FRANCE 123", year: 1995, details: []string{"PDMC instead of PMDC"}},
		{name: "pmdc correct", value: "PMDC FRANCE 123", year: 1995},
		{name: "cinram year after release", value: "MFG BY CINRAM #98 ABC", year: 1995, details: []string{"release date earlier"}},
		{name: "cinram year consistent", value: "MFG BY CINRAM #94 ABC", year: 1995},
		{name: "cinram usa exempt", value: "MFG BY CINRAM USA #98", year: 1995},
		{name: "pallas year after release", value: "P+O-1234-A1 06-97", year: 1995, details: []string{"release date earlier"}},
		{name: "no year no matrix year checks", value: "MFG BY CINRAM #98 ABC", year: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertDetails(t, checks.CheckMatrixValue(tc.value, testContext(tc.year)), tc.details)
		})
	}
}
