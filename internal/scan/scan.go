// Package scan drives a full pass over a dump: stream releases, evaluate
// checks, print findings. It owns the wiring between configuration and the
// evaluator.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"cleanup-discogs/internal/checks"
	"cleanup-discogs/internal/config"
	"cleanup-discogs/internal/dump"
	"cleanup-discogs/internal/report"
)

// ErrReleaseNotFound is returned when a single-release scan exhausts the
// dump without seeing the requested id.
var ErrReleaseNotFound = errors.New("release not found in dump")

// Options selects what one run scans.
type Options struct {
	// DumpPath is the dump file, gzip compressed or plain XML.
	DumpPath string
	// ReleaseID restricts the scan to one release; 0 scans everything.
	ReleaseID int64
	// Summary prints the per-category totals after the findings.
	Summary bool
}

// Runner executes scans. Build one per process with New.
type Runner struct {
	logger    *slog.Logger
	evaluator *checks.Evaluator
	out       io.Writer
}

// New wires a Runner from configuration: check toggles, year policy, and
// the credits vocabulary when the credits check is enabled.
func New(logger *slog.Logger, cfg *config.Config, out io.Writer) (*Runner, error) {
	var credits map[string]struct{}
	if cfg.Checks.Credits {
		loaded, err := config.LoadCredits(cfg.Policy.CreditsFile)
		if err != nil {
			return nil, fmt.Errorf("loading credits vocabulary: %w", err)
		}
		credits = loaded
	}

	evaluator := checks.NewEvaluator(
		optionsFromConfig(cfg.Checks),
		checks.Policy{
			CurrentYear:   time.Now().UTC().Year(),
			MinYear:       cfg.Policy.MinPlausibleYear,
			YearTolerance: cfg.Policy.YearTolerance,
		},
		credits,
	)
	return &Runner{logger: logger, evaluator: evaluator, out: out}, nil
}

// Run scans the dump and prints findings as they are found. The returned
// summary covers the whole run even when an error cut it short.
func (r *Runner) Run(ctx context.Context, opts Options) (report.Summary, error) {
	session := uuid.NewString()
	logger := r.logger.With("session_id", session)
	logger.Info("scan started", "dump", opts.DumpPath, "release_id", opts.ReleaseID)
	started := time.Now()

	writer := report.NewWriter(r.out)

	scanner, err := dump.Open(opts.DumpPath)
	if err != nil {
		return writer.Summary(), err
	}
	defer scanner.Close()

	found := false
	for {
		rel, err := scanner.Next(ctx)
		if err != nil {
			if err == io.EOF {
				break
			}
			return writer.Summary(), err
		}

		if opts.ReleaseID != 0 && rel.ID != opts.ReleaseID {
			continue
		}

		findings := r.evaluator.Evaluate(rel)
		writer.Observe(len(findings) > 0)
		for _, f := range findings {
			if err := writer.Write(f); err != nil {
				return writer.Summary(), fmt.Errorf("writing report: %w", err)
			}
		}

		if opts.ReleaseID != 0 {
			found = true
			break
		}
	}

	summary := writer.Summary()
	if opts.ReleaseID != 0 && !found {
		logger.Warn("release not found", "release_id", opts.ReleaseID)
		return summary, ErrReleaseNotFound
	}

	logger.Info("scan finished",
		"scanned", summary.Scanned,
		"flagged", summary.Flagged,
		"findings", summary.Findings,
		"duration", time.Since(started).Round(time.Millisecond),
	)

	if opts.Summary {
		if err := report.RenderSummary(r.out, summary); err != nil {
			return summary, fmt.Errorf("writing summary: %w", err)
		}
	}
	return summary, nil
}

func optionsFromConfig(c config.Checks) checks.Options {
	return checks.Options{
		ASIN:            c.ASIN,
		CDPlusG:         c.CDG,
		CreativeCommons: c.CreativeCommons,
		Credits:         c.Credits,
		CzechDates:      c.CzechDates,
		CzechSpelling:   c.CzechSpelling,
		Deposito:        c.Deposito,
		GreekLicense:    c.GreekLicense,
		IndianPKD:       c.PKD,
		ISRC:            c.ISRC,
		LabelCode:       c.LabelCode,
		LabelName:       c.LabelName,
		Labels:          c.Labels,
		MasteringSID:    c.MasteringSID,
		Matrix:          c.Matrix,
		MonthValid:      c.Month,
		MouldSID:        c.MouldSID,
		Plants:          c.Plants,
		ReportAll:       c.ReportAll,
		RightsSociety:   c.RightsSociety,
		SPARS:           c.SPARS,
		Tracklisting:    c.Tracklisting,
		URLInHTML:       c.HTML,
		YearValid:       c.Year,
	}
}
