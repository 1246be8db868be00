package checks

import (
	"strconv"
	"strings"

	"cleanup-discogs/internal/release"
)

// sidedFormats are media with sides; their track positions carry a side
// letter ("A1"), so a bare integer position means the tracklist was entered
// CD-style.
var sidedFormats = map[string]struct{}{
	"Vinyl":             {},
	"Cassette":          {},
	"Shellac":           {},
	"8-Track Cartridge": {},
}

// CheckTracklist validates the tracklist against the declared formats:
// CD-style numeric positions on sided media, duplicate positions on
// single-unit releases, and numeric positions that go backwards. Each
// problem is reported once per release; a broken tracklist repeats itself.
func CheckTracklist(tracks []release.Track, formats []release.Format) []Issue {
	if len(tracks) == 0 {
		return nil
	}

	var issues []Issue

	if len(formats) == 1 {
		if _, sided := sidedFormats[formats[0].Name]; sided {
			for _, track := range tracks {
				if _, err := strconv.Atoi(strings.TrimSpace(track.Position)); err == nil {
					issues = append(issues, issuef(release.CategoryTracklist, "Tracklisting (%s)", formats[0].Name))
					break
				}
			}
		}
	}

	if totalQty(formats) == 1 {
		seen := make(map[string]struct{}, len(tracks))
		for _, track := range tracks {
			pos := strings.TrimSpace(track.Position)
			if pos == "" || pos == "-" {
				continue
			}
			if _, dup := seen[pos]; dup {
				issues = append(issues, issuef(release.CategoryTracklist, "Tracklisting reuse (%s, %s)", formatName(formats), pos))
				break
			}
			seen[pos] = struct{}{}
		}
	}

	issues = append(issues, checkMonotonic(tracks)...)
	return issues
}

// checkMonotonic flags purely numeric positions that decrease; tracks are
// stored in playing order, so the numbering must not go backwards.
func checkMonotonic(tracks []release.Track) []Issue {
	prev := 0
	numeric := false
	for _, track := range tracks {
		n, err := strconv.Atoi(strings.TrimSpace(track.Position))
		if err != nil {
			return nil
		}
		if numeric && n < prev {
			return []Issue{issuef(release.CategoryTracklist, "Tracklisting order (%d after %d)", n, prev)}
		}
		prev = n
		numeric = true
	}
	return nil
}

func totalQty(formats []release.Format) int {
	total := 0
	for _, f := range formats {
		total += f.Qty
	}
	return total
}

func formatName(formats []release.Format) string {
	if len(formats) == 0 {
		return "unknown format"
	}
	return formats[0].Name
}
