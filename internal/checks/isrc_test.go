package checks_test

import (
	"testing"

	"cleanup-discogs/internal/checks"
)

func TestNormalizeISRC(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"USRC17607839", "USRC17607839"},
		{"usrc17607839", "USRC17607839"},
		{"ISRC US-RC1-76-07839", "USRC17607839"},
		{"ISRC CODE USRC17607839", "USRC17607839"},
		{"US.RC1.76.07839", "USRC17607839"},
		{"CNA021300060/A.J6", "CNA021300060"},
	}
	for _, tc := range cases {
		if got := checks.NormalizeISRC(tc.value); got != tc.want {
			t.Errorf("NormalizeISRC(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestCheckISRCValue(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		year    int
		details []string
	}{
		{name: "valid", value: "USRC17607839", year: 1995},
		{name: "valid with separators", value: "US-RC1-76-07839", year: 1995},
		{name: "wrong length", value: "USRC176078", year: 1995, details: []string{"wrong length"}},
		{name: "digits in country code", value: "1SRC17607839", year: 1995, details: []string{"wrong format"}},
		{name: "letters in year segment", value: "USRC1XX07839", year: 1995, details: []string{"wrong format"}},
		{name: "release before registration", value: "USRC17607839", year: 1970, details: []string{"release date earlier"}},
		{name: "no declared year only plausibility", value: "USRC17607839", year: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			issues, _, _ := checks.CheckISRCValue(tc.value, testContext(tc.year))
			assertDetails(t, issues, tc.details)
		})
	}
}

func TestCheckISRCValueYearTolerance(t *testing.T) {
	ctx := testContext(2005)
	ctx.YearTolerance = 5

	issues, _, year := checks.CheckISRCValue("USRC17607839", ctx)
	if year != 1976 {
		t.Fatalf("embedded year = %d, want 1976", year)
	}
	assertDetails(t, issues, []string{"predates release by 29 years"})
}

func TestCheckISRCValueRaisedPlausibilityFloor(t *testing.T) {
	ctx := testContext(1995)
	ctx.MinYear = 1950

	// embedded 49 pins to 1949, below the configured floor
	issues, _, _ := checks.CheckISRCValue("USRC14907839", ctx)
	assertDetails(t, issues, []string{"impossible year: 1949"})
}
