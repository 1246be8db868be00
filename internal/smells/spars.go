package smells

import "regexp"

// ValidSPARSCodes is the closed set of acceptable SPARS codes, lower case.
// Four letter codes are included even though not officially SPARS; they
// appear on real releases.
var ValidSPARSCodes = newSet(
	"aaa", "aad", "add", "ada", "daa",
	"ddd", "dad", "dda", "dddd", "ddad",
)

// SPARSFirstYear is the year the SPARS code was introduced.
const SPARSFirstYear = 1984

// SPARSDescriptions are free text descriptions signalling a SPARS code
// hiding in an "Other" entry, misspellings included.
var SPARSDescriptions = newSet(
	"spars code", "spar code", "spars-code", "spare code",
	"sparse code", "sparc code", "spars.code", "sparcs",
	"sparsc code", "spard code", "sparks code", "sparrs code",
	"sparscode", "sparce code", "saprs-code", "saprs code",
	"sars code", "sprs code", "spas code", "pars code",
	"spars  code", "sparr code", "sparts code", "spras code",
	"spars cod", "spars cde", "spars cpde", "spars cods",
	"spars codde", "spars ccde", "spars coe", "spars coce",
	"spars coda", "spars",
)

// LabelCodeValue matches a well formed label code ("LC" prefix optional).
var LabelCodeValue = regexp.MustCompile(`^\s*(?:lc)?\s*[\-/]?\s*\d{4,6}$`)

// LabelCodeDescriptions are free text descriptions signalling a label code.
var LabelCodeDescriptions = newSet(
	"label code", "labelcode", "lbel code",
	"laabel code", "labe code", "laberl code",
)

// ISRCDescriptions are free text descriptions signalling an ISRC.
var ISRCDescriptions = newSet(
	"international standard recording code",
	"international standard recording copyright",
	"international standart recording code", "isrc", "irsc",
	"iscr", "international standard code recording", "i.s.r.c.",
	"icrs", "international recording standard code", "isr code",
)

// CreativeCommonsMarkers are license identifiers that signal a Creative
// Commons reference in notes or identifier values.
var CreativeCommonsMarkers = []string{
	"CC-BY-NC-ND", "CC-BY-ND", "CC-BY-SA", "ShareAlike",
}
