package checks_test

import (
	"testing"

	"cleanup-discogs/internal/checks"
)

func TestCheckIndianPKD(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		year    int
		details []string
	}{
		{name: "consistent", value: "PKD 4/97", year: 1998},
		{name: "stamp after release", value: "PKD 4/97", year: 1995, details: []string{"release date earlier"}},
		{name: "four digit year", value: "12/1997", year: 1995, details: []string{"release date earlier"}},
		{name: "no declared year", value: "PKD 4/97", year: 0, details: []string{"Indian PKD (no year)"}},
		{name: "no stamp year found", value: "PKD", year: 1995},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertDetails(t, checks.CheckIndianPKD(tc.value, testContext(tc.year)), tc.details)
		})
	}
}

func TestCheckGreekLicense(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		year    int
		details []string
	}{
		{name: "consistent", value: "1234/85", year: 1986},
		{name: "license after release", value: "1234/87", year: 1986, details: []string{"Greek license year wrong"}},
		{name: "no declared year", value: "1234/87", year: 0},
		{name: "no year segment", value: "license", year: 1986},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertDetails(t, checks.CheckGreekLicense(tc.value, testContext(tc.year)), tc.details)
		})
	}
}

func TestCheckCzechDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		year    int
		details []string
	}{
		{name: "consistent", value: "58 2", year: 1960},
		{name: "manufactured after release", value: "78 2", year: 1975, details: []string{"release year wrong"}},
		{name: "not a date code", value: "ABC", year: 1975},
		{name: "no declared year", value: "78 2", year: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertDetails(t, checks.CheckCzechDate(tc.value, testContext(tc.year)), tc.details)
		})
	}
}

func TestHasCzechWrongE(t *testing.T) {
	if checks.HasCzechWrongE("Pěnička") {
		t.Error("ě (U+011B) is valid Czech")
	}
	if !checks.HasCzechWrongE("Pĕnička") {
		t.Error("ĕ (U+0115) should be flagged")
	}
}
