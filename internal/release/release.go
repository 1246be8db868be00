package release

import "strconv"

// baseURL is the browsable release URL prefix used in every report line.
const baseURL = "https://www.discogs.com/release/"

// Release is one catalog release as parsed from the data dump. A Release is
// constructed once by the dump scanner, evaluated, and discarded; nothing
// mutates it after construction.
type Release struct {
	ID      int64
	Status  string
	Country string

	// Released is the raw released text (e.g. "1986-00-12"). Year is 0 when
	// absent or unparsable; Month is -1 when absent, so a literal "00" month
	// survives parsing and can be flagged.
	Released string
	Year     int
	Month    int

	Notes       string
	Formats     []Format
	Labels      []Label
	Companies   []Company
	Identifiers []Identifier
	Tracks      []Track

	// ParseErrors holds structural problems found while decoding this
	// element. They become parse-error findings; they never abort the scan.
	ParseErrors []string
}

// Format is one entry of the formats list.
type Format struct {
	Name string
	Qty  int
	// Descriptions holds the free-text descriptors, including the "text"
	// attribute people abuse for SPARS codes and label codes.
	Descriptions []string
	Text         string
}

// Label is one label credit with its catalog number.
type Label struct {
	Name  string
	Catno string
}

// Company is one company credit. EntityType is the role text
// ("Pressed By", "Published By", ...).
type Company struct {
	ID         int64
	Name       string
	EntityType string
}

// Identifier is one entry in the Barcode and Other Identifiers collection.
type Identifier struct {
	Type        string
	Value       string
	Description string
}

// Track is one tracklist entry.
type Track struct {
	Position string
	Title    string
	Duration string
}

// URL returns the browsable URL for a release.
func URL(id int64) string {
	return baseURL + strconv.FormatInt(id, 10)
}
