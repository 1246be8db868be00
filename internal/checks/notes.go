package checks

import (
	"strings"

	"cleanup-discogs/internal/release"
	"cleanup-discogs/internal/smells"
)

// legacyLinkMarkers are the raw hyperlink spellings that predate the
// structured [r123] / [url] syntax. Notes are stored HTML-escaped in the
// dump, so both the raw and the escaped form are checked.
var legacyLinkMarkers = []string{
	"<a href=",
	"&lt;a href=",
}

// CheckNotesLinks flags raw HTML anchor markup in the notes; the site's
// structured link syntax replaced it long ago.
func CheckNotesLinks(notes string) []Issue {
	lower := strings.ToLower(notes)
	for _, marker := range legacyLinkMarkers {
		if strings.Contains(lower, marker) {
			return []Issue{issuef(release.CategoryNotesLink, "old link (Notes)")}
		}
	}
	return nil
}

// CheckNotesDeposito flags depósito legal wording in the notes when the
// release has no Depósito Legal entry in its identifiers: the data exists
// but never made it into BaOI.
func CheckNotesDeposito(notes string, depositoInBaOI bool) []Issue {
	if depositoInBaOI || notes == "" {
		return nil
	}
	if smells.ContainsDepositoKeyword(strings.ToLower(notes)) {
		return []Issue{issuef(release.CategoryDeposito, "Depósito Legal (Notes)")}
	}
	return nil
}

// CheckCreativeCommons flags Creative Commons references in free text.
func CheckCreativeCommons(text, where string) []Issue {
	for _, marker := range smells.CreativeCommonsMarkers {
		if strings.Contains(text, marker) {
			return []Issue{issuef(release.CategoryCreativeCom, "Creative Commons reference (%s, in %s)", marker, where)}
		}
	}
	if strings.Contains(strings.ToLower(text), "creative commons") {
		return []Issue{issuef(release.CategoryCreativeCom, "Creative Commons reference (in %s)", where)}
	}
	return nil
}
