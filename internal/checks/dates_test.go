package checks_test

import (
	"testing"

	"cleanup-discogs/internal/checks"
)

func TestCheckMonth(t *testing.T) {
	cases := []struct {
		month   int
		details []string
	}{
		{-1, nil},
		{0, []string{"Month 00"}},
		{6, nil},
		{12, nil},
		{13, []string{"Month impossible (13)"}},
	}
	for _, tc := range cases {
		assertDetails(t, checks.CheckMonth(tc.month), tc.details)
	}
}

func TestCheckYear(t *testing.T) {
	ctx := testContext(0)
	cases := []struct {
		year    int
		details []string
	}{
		{0, nil},
		{1985, nil},
		{1899, []string{"Year 1899 invalid"}},
		{2027, []string{"Year 2027 invalid"}},
	}
	for _, tc := range cases {
		assertDetails(t, checks.CheckYear(tc.year, ctx), tc.details)
	}
}
