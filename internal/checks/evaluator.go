package checks

import (
	"strings"

	"cleanup-discogs/internal/release"
)

// Options selects which check families run. The zero value disables
// everything; use DefaultOptions for the stock selection.
type Options struct {
	ASIN            bool
	CDPlusG         bool
	CreativeCommons bool
	Credits         bool
	CzechDates      bool
	CzechSpelling   bool
	Deposito        bool
	GreekLicense    bool
	IndianPKD       bool
	ISRC            bool
	LabelCode       bool
	LabelName       bool
	Labels          bool
	MasteringSID    bool
	Matrix          bool
	MonthValid      bool
	MouldSID        bool
	Plants          bool
	RightsSociety   bool
	SPARS           bool
	Tracklisting    bool
	URLInHTML       bool
	YearValid       bool

	// ReportAll keeps duplicate findings within one release. When false,
	// repeated (category, detail) pairs collapse to one.
	ReportAll bool
}

// DefaultOptions enables every check except the noisy ones: month and year
// validation and Creative Commons references are opt-in. Credits stays off
// until a role vocabulary is loaded.
func DefaultOptions() Options {
	return Options{
		ASIN:          true,
		CDPlusG:       true,
		CzechDates:    true,
		CzechSpelling: true,
		Deposito:      true,
		GreekLicense:  true,
		IndianPKD:     true,
		ISRC:          true,
		LabelCode:     true,
		LabelName:     true,
		Labels:        true,
		MasteringSID:  true,
		Matrix:        true,
		MouldSID:      true,
		Plants:        true,
		RightsSociety: true,
		SPARS:         true,
		Tracklisting:  true,
		URLInHTML:     true,
		ReportAll:     true,
	}
}

// Policy holds the year comparison knobs shared by every record.
type Policy struct {
	// CurrentYear bounds every plausible year, normally the UTC year the
	// dump was generated.
	CurrentYear int
	// MinYear is the earliest plausible year for any embedded date.
	MinYear int
	// YearTolerance flags embedded years that precede the release by more
	// than this many years; 0 disables the gap check.
	YearTolerance int
}

// Evaluator runs the enabled checks against one release at a time. It is
// stateless between releases and safe for sequential reuse.
type Evaluator struct {
	opts    Options
	policy  Policy
	credits map[string]struct{}
	enabled map[release.Category]bool
}

// NewEvaluator builds an evaluator. credits is the known role vocabulary;
// nil leaves the credits check off regardless of Options.Credits.
func NewEvaluator(opts Options, policy Policy, credits map[string]struct{}) *Evaluator {
	if len(credits) == 0 {
		opts.Credits = false
	}
	return &Evaluator{
		opts:    opts,
		policy:  policy,
		credits: credits,
		enabled: map[release.Category]bool{
			release.CategoryASIN:          opts.ASIN,
			release.CategoryCDG:           opts.CDPlusG,
			release.CategoryCreativeCom:   opts.CreativeCommons,
			release.CategoryCredits:       opts.Credits,
			release.CategoryCzechDate:     opts.CzechDates,
			release.CategoryCzechSpelling: opts.CzechSpelling,
			release.CategoryDeposito:      opts.Deposito,
			release.CategoryGreekLicense:  opts.GreekLicense,
			release.CategoryISRC:          opts.ISRC,
			release.CategoryLabelCode:     opts.LabelCode,
			release.CategoryLabelName:     opts.LabelName,
			release.CategoryMasteringSID:  opts.MasteringSID,
			release.CategoryMatrix:        opts.Matrix,
			release.CategoryMonth:         opts.MonthValid,
			release.CategoryMouldSID:      opts.MouldSID,
			release.CategoryNotesLink:     opts.URLInHTML,
			release.CategoryParseError:    true,
			release.CategoryPKD:           opts.IndianPKD,
			release.CategoryPlant:         opts.Plants,
			release.CategoryRightsSociety: opts.RightsSociety,
			release.CategorySPARS:         opts.SPARS,
			release.CategoryTracklist:     opts.Tracklisting,
			release.CategoryYear:          opts.YearValid,
		},
	}
}

// Evaluate runs every enabled check against one release and returns the
// findings in stable field order: dates, formats, labels, companies,
// identifiers, tracklist, notes. The release is never modified.
func (e *Evaluator) Evaluate(rel *release.Release) []release.Finding {
	ctx := Context{
		CurrentYear:   e.policy.CurrentYear,
		MinYear:       e.policy.MinYear,
		YearTolerance: e.policy.YearTolerance,
		Year:          rel.Year,
		Country:       rel.Country,
	}

	var issues []Issue
	for _, msg := range rel.ParseErrors {
		issues = append(issues, issuef(release.CategoryParseError, "Malformed field (%s)", msg))
	}

	issues = append(issues, CheckMonth(rel.Month)...)
	issues = append(issues, CheckYear(rel.Year, ctx)...)
	if rel.Year == 0 && strings.TrimSpace(rel.Released) != "" {
		issues = append(issues, issuef(release.CategoryYear, "Year %q invalid", rel.Released))
	}

	for _, f := range rel.Formats {
		issues = append(issues, CheckFormat(f)...)
	}
	isCD := IsCDRelease(rel.Formats)

	if e.opts.Labels {
		for _, l := range rel.Labels {
			issues = append(issues, CheckLabel(l, ctx)...)
		}
	}

	for _, c := range rel.Companies {
		issues = append(issues, CheckCompany(c, isCD, ctx)...)
		issues = append(issues, CheckLabelYear(c.ID, ctx)...)
		issues = append(issues, CheckCompanyRole(c)...)
		if e.opts.Credits {
			issues = append(issues, CheckRoles(c.EntityType, e.credits)...)
		}
	}

	issues = append(issues, e.checkIdentifiers(rel, ctx)...)

	issues = append(issues, CheckTracklist(rel.Tracks, rel.Formats)...)
	if rel.Country == "Czechoslovakia" {
		for _, t := range rel.Tracks {
			if HasCzechWrongE(t.Title) {
				issues = append(issues, issuef(release.CategoryCzechSpelling, "Czech spelling (ĕ in tracklist)"))
				break
			}
		}
	}

	issues = append(issues, e.checkNotes(rel)...)

	return e.emit(rel.ID, issues)
}

// checkIdentifiers walks the BaOI entries: type-specific validation for
// matching entries, reclassification for everything else, plus the per
// release duplicate bookkeeping the ISRC and depósito checks need.
func (e *Evaluator) checkIdentifiers(rel *release.Release, ctx Context) []Issue {
	var issues []Issue

	depositoFound := false
	isrcSeen := make(map[string]struct{})
	isrcDescSeen := make(map[string]struct{})

	for _, id := range rel.Identifiers {
		value := strings.TrimSpace(id.Value)
		desc := strings.TrimSpace(id.Description)
		descLower := strings.ToLower(desc)

		switch id.Type {
		case "ASIN":
			issues = append(issues, CheckASINValue(value)...)
		case "Depósito Legal":
			depositoFound = true
			if ctx.Country == "Spain" {
				issues = append(issues, CheckDepositoValue(value, ctx)...)
			}
		case "ISRC":
			isrcIssues, code, _ := CheckISRCValue(value, ctx)
			issues = append(issues, isrcIssues...)
			if len(code) == 12 {
				if _, dup := isrcSeen[code]; dup {
					issues = append(issues, issuef(release.CategoryISRC, "ISRC (duplicate %s)", code))
				}
				isrcSeen[code] = struct{}{}
				if descLower != "" {
					if _, dup := isrcDescSeen[descLower]; dup {
						issues = append(issues, issuef(release.CategoryISRC, "ISRC (description reuse: %s)", desc))
					}
					isrcDescSeen[descLower] = struct{}{}
				}
			}
		case "Label Code":
			issues = append(issues, CheckLabelCodeValue(value)...)
		case "Matrix / Runout":
			issues = append(issues, CheckMatrixValue(value, ctx)...)
		case "Mastering SID Code":
			issues = append(issues, CheckMasteringSIDValue(value, rel.Formats, ctx)...)
		case "Mould SID Code":
			issues = append(issues, CheckMouldSIDValue(value, rel.Formats, ctx)...)
		case "Rights Society":
			issues = append(issues, CheckRightsSocietyValue(value, ctx)...)
		case "SPARS Code":
			issues = append(issues, CheckSPARSValue(value, ctx)...)
		}

		issues = append(issues, ClassifyEntry(id)...)

		if ctx.Country == "Spain" && !depositoFound && id.Type != "Depósito Legal" && LooksLikeDeposito(value) {
			issues = append(issues, issuef(release.CategoryDeposito, "Depósito Legal (in %s)", id.Type))
			depositoFound = true
		}

		switch ctx.Country {
		case "India":
			if MentionsPKD(descLower) {
				issues = append(issues, CheckIndianPKD(value, ctx)...)
			}
		case "Greece":
			if strings.Contains(descLower, "license") {
				issues = append(issues, CheckGreekLicense(value, ctx)...)
			}
		case "Czechoslovakia":
			if strings.Contains(descLower, "date") {
				issues = append(issues, CheckCzechDate(value, ctx)...)
			}
			if HasCzechWrongE(value) || HasCzechWrongE(desc) {
				issues = append(issues, issuef(release.CategoryCzechSpelling, "Czech spelling (ĕ in %s)", id.Type))
			}
		}
	}

	if ctx.Country == "Spain" {
		issues = append(issues, CheckNotesDeposito(rel.Notes, depositoFound)...)
	}
	return issues
}

func (e *Evaluator) checkNotes(rel *release.Release) []Issue {
	if rel.Notes == "" {
		return nil
	}
	var issues []Issue
	issues = append(issues, CheckNotesLinks(rel.Notes)...)
	issues = append(issues, CheckCreativeCommons(rel.Notes, "Notes")...)
	if rel.Country == "Czechoslovakia" && HasCzechWrongE(rel.Notes) {
		issues = append(issues, issuef(release.CategoryCzechSpelling, "Czech spelling (ĕ in Notes)"))
	}
	return issues
}

// emit filters issues by enabled category, optionally collapses duplicates,
// and stamps the release id.
func (e *Evaluator) emit(id int64, issues []Issue) []release.Finding {
	if len(issues) == 0 {
		return nil
	}
	var seen map[Issue]struct{}
	if !e.opts.ReportAll {
		seen = make(map[Issue]struct{}, len(issues))
	}

	findings := make([]release.Finding, 0, len(issues))
	for _, issue := range issues {
		if !e.enabled[issue.Category] {
			continue
		}
		if seen != nil {
			if _, dup := seen[issue]; dup {
				continue
			}
			seen[issue] = struct{}{}
		}
		findings = append(findings, release.Finding{
			ReleaseID: id,
			Category:  issue.Category,
			Detail:    issue.Detail,
		})
	}
	if len(findings) == 0 {
		return nil
	}
	return findings
}
