package release

// Category names one check. Categories are stable identifiers used for
// config toggles and the end-of-run summary.
type Category string

const (
	CategoryASIN          Category = "asin"
	CategoryCDG           Category = "cdg"
	CategoryCreativeCom   Category = "creative_commons"
	CategoryCredits       Category = "credits"
	CategoryCzechDate     Category = "czech_date"
	CategoryCzechSpelling Category = "czech_spelling"
	CategoryDeposito      Category = "deposito_legal"
	CategoryGreekLicense  Category = "greek_license"
	CategoryISRC          Category = "isrc"
	CategoryLabelCode     Category = "label_code"
	CategoryLabelName     Category = "label_name"
	CategoryMasteringSID  Category = "mastering_sid"
	CategoryMatrix        Category = "matrix"
	CategoryMonth         Category = "month"
	CategoryMouldSID      Category = "mould_sid"
	CategoryNotesLink     Category = "notes_link"
	CategoryParseError    Category = "parse_error"
	CategoryPKD           Category = "pkd"
	CategoryPlant         Category = "plant"
	CategoryRightsSociety Category = "rights_society"
	CategorySPARS         Category = "spars"
	CategoryTracklist     Category = "tracklist"
	CategoryYear          Category = "year"
)

// Finding is one reported smell. Findings are pure output; accumulating them
// never touches the Release they were derived from.
type Finding struct {
	ReleaseID int64
	Category  Category
	Detail    string
}

// URL returns the browsable URL of the flagged release.
func (f Finding) URL() string {
	return URL(f.ReleaseID)
}
