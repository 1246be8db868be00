package checks_test

import (
	"testing"

	"cleanup-discogs/internal/checks"
)

func TestExtractDepositoYear(t *testing.T) {
	cases := []struct {
		value string
		want  int
		ok    bool
	}{
		{"B 12345-1985", 1985, true},
		{"B-12345/85", 1985, true},
		{"M 4391-02", 2002, true},
		{"B.12345.1985", 1985, true},
		{"DL B 12345", 12345, true},
		{"B12345", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := checks.ExtractDepositoYear(tc.value, 2026)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ExtractDepositoYear(%q) = (%d, %v), want (%d, %v)", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCheckDepositoValue(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		year    int
		details []string
	}{
		{name: "consistent", value: "B 12345-1985", year: 1986},
		{name: "registration after release", value: "B 12345-1987", year: 1986, details: []string{"release date earlier"}},
		{name: "trailing dot", value: "B 12345-1985.", year: 1986, details: []string{"formatting"}},
		{name: "phonogram symbol", value: "B 12345-1985 ℗", year: 1986, details: []string{"formatting, has ℗"}},
		{name: "no year segment", value: "B12345", year: 1986, details: []string{"year not found"}},
		{name: "no declared year skips year checks", value: "B12345", year: 0},
		{name: "impossible embedded year", value: "B 12345-1899", year: 1986, details: []string{"impossible year: 1899"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues := checks.CheckDepositoValue(tc.value, testContext(tc.year))
			assertDetails(t, issues, tc.details)
		})
	}
}

func TestCheckDepositoValueToleranceWindow(t *testing.T) {
	ctx := testContext(1990)
	ctx.YearTolerance = 2

	issues := checks.CheckDepositoValue("B 12345-1985", ctx)
	assertDetails(t, issues, []string{"predates release by 5 years"})

	issues = checks.CheckDepositoValue("B 12345-1989", ctx)
	assertDetails(t, issues, nil)
}
