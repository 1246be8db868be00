package checks_test

import (
	"testing"

	"cleanup-discogs/internal/checks"
)

func TestCheckNotesLinks(t *testing.T) {
	tests := []struct {
		name    string
		notes   string
		details []string
	}{
		{name: "structured link", notes: "See [r123] for the repress."},
		{name: "raw anchor", notes: `More info: <a href="http://example.com">here</a>`, details: []string{"old link (Notes)"}},
		{name: "escaped anchor", notes: `More info: &lt;a href="http://example.com"&gt;`, details: []string{"old link (Notes)"}},
		{name: "uppercase anchor", notes: `<A HREF="http://example.com">`, details: []string{"old link (Notes)"}},
		{name: "empty", notes: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertDetails(t, checks.CheckNotesLinks(tc.notes), tc.details)
		})
	}
}

func TestCheckNotesDeposito(t *testing.T) {
	notes := "Depósito Legal: B-12345-1985"

	assertDetails(t, checks.CheckNotesDeposito(notes, false), []string{"Depósito Legal (Notes)"})
	assertDetails(t, checks.CheckNotesDeposito(notes, true), nil)
	assertDetails(t, checks.CheckNotesDeposito("Recorded in Madrid.", false), nil)
}

func TestCheckCreativeCommons(t *testing.T) {
	assertDetails(t, checks.CheckCreativeCommons("Licensed under CC-BY-SA 3.0", "Notes"), []string{"Creative Commons reference (CC-BY-SA, in Notes)"})
	assertDetails(t, checks.CheckCreativeCommons("released under a Creative Commons license", "Notes"), []string{"Creative Commons reference (in Notes)"})
	assertDetails(t, checks.CheckCreativeCommons("All rights reserved.", "Notes"), nil)
}
