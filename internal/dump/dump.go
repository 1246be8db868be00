// Package dump reads Discogs release data dumps: a single XML document,
// usually gzip compressed, holding millions of <release> elements. The
// scanner streams one release at a time so memory stays flat regardless of
// dump size.
package dump

import (
	"bufio"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"cleanup-discogs/internal/release"
)

// skippedStatuses are release states not worth scanning; their data is
// either gone or not yet real.
var skippedStatuses = map[string]struct{}{
	"Deleted":  {},
	"Draft":    {},
	"Rejected": {},
}

// Scanner streams releases out of a dump. Not safe for concurrent use.
type Scanner struct {
	decoder *xml.Decoder
	closers []io.Closer
}

// Open opens a dump file and prepares a Scanner. Gzip compression is
// detected from the stream itself, not the file name.
func Open(path string) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dump: %w", err)
	}

	br := bufio.NewReaderSize(f, 1<<20)
	magic, err := br.Peek(2)
	if err != nil && err != io.EOF {
		f.Close()
		return nil, fmt.Errorf("reading dump header: %w", err)
	}

	scanner := &Scanner{closers: []io.Closer{f}}
	var reader io.Reader = br
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		scanner.closers = append([]io.Closer{gz}, scanner.closers...)
		reader = gz
	}
	scanner.decoder = xml.NewDecoder(reader)
	return scanner, nil
}

// NewScanner wraps an already-open uncompressed XML stream. Intended for
// tests and piped input.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{decoder: xml.NewDecoder(r)}
}

// Next returns the next scannable release, skipping deleted, draft and
// rejected entries. It returns io.EOF when the dump is exhausted. Any XML
// syntax error is fatal: the stream is corrupt beyond the current element.
func (s *Scanner) Next(ctx context.Context) (*release.Release, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tok, err := s.decoder.Token()
		if err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("reading dump: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "release" {
			continue
		}

		var raw xmlRelease
		if err := s.decoder.DecodeElement(&raw, &start); err != nil {
			return nil, fmt.Errorf("decoding release element: %w", err)
		}
		rel := raw.toRelease()
		if _, skip := skippedStatuses[rel.Status]; skip {
			continue
		}
		return rel, nil
	}
}

// Close releases the underlying file and decompressor, if any.
func (s *Scanner) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// xmlRelease mirrors the dump's <release> element closely enough to decode
// it in one pass. Everything is kept as text and validated afterwards.
type xmlRelease struct {
	ID       string `xml:"id,attr"`
	Status   string `xml:"status,attr"`
	Country  string `xml:"country"`
	Released string `xml:"released"`
	Notes    string `xml:"notes"`
	Formats  []struct {
		Name         string   `xml:"name,attr"`
		Qty          string   `xml:"qty,attr"`
		Text         string   `xml:"text,attr"`
		Descriptions []string `xml:"descriptions>description"`
	} `xml:"formats>format"`
	Labels []struct {
		Name  string `xml:"name,attr"`
		Catno string `xml:"catno,attr"`
	} `xml:"labels>label"`
	Companies []struct {
		ID         string `xml:"id"`
		Name       string `xml:"name"`
		EntityType string `xml:"entity_type_name"`
	} `xml:"companies>company"`
	Identifiers []struct {
		Type        string `xml:"type,attr"`
		Value       string `xml:"value,attr"`
		Description string `xml:"description,attr"`
	} `xml:"identifiers>identifier"`
	Tracks []struct {
		Position string `xml:"position"`
		Title    string `xml:"title"`
		Duration string `xml:"duration"`
	} `xml:"tracklist>track"`
}

func (x xmlRelease) toRelease() *release.Release {
	rel := &release.Release{
		Status:  x.Status,
		Country: strings.TrimSpace(x.Country),
		Notes:   x.Notes,
		Month:   -1,
	}

	id, err := strconv.ParseInt(strings.TrimSpace(x.ID), 10, 64)
	if err != nil {
		rel.ParseErrors = append(rel.ParseErrors, fmt.Sprintf("release id %q", x.ID))
	}
	rel.ID = id

	rel.Released = strings.TrimSpace(x.Released)
	rel.Year, rel.Month = parseReleased(rel.Released)

	for _, f := range x.Formats {
		qty := 0
		if t := strings.TrimSpace(f.Qty); t != "" {
			qty, err = strconv.Atoi(t)
			if err != nil {
				rel.ParseErrors = append(rel.ParseErrors, fmt.Sprintf("format quantity %q", f.Qty))
			}
		}
		rel.Formats = append(rel.Formats, release.Format{
			Name:         f.Name,
			Qty:          qty,
			Text:         f.Text,
			Descriptions: f.Descriptions,
		})
	}

	for _, l := range x.Labels {
		rel.Labels = append(rel.Labels, release.Label{Name: l.Name, Catno: l.Catno})
	}

	for _, c := range x.Companies {
		companyID := int64(0)
		if t := strings.TrimSpace(c.ID); t != "" {
			companyID, err = strconv.ParseInt(t, 10, 64)
			if err != nil {
				rel.ParseErrors = append(rel.ParseErrors, fmt.Sprintf("company id %q", c.ID))
			}
		}
		rel.Companies = append(rel.Companies, release.Company{
			ID:         companyID,
			Name:       c.Name,
			EntityType: c.EntityType,
		})
	}

	for _, id := range x.Identifiers {
		rel.Identifiers = append(rel.Identifiers, release.Identifier{
			Type:        id.Type,
			Value:       id.Value,
			Description: id.Description,
		})
	}

	for _, t := range x.Tracks {
		rel.Tracks = append(rel.Tracks, release.Track{
			Position: t.Position,
			Title:    t.Title,
			Duration: t.Duration,
		})
	}
	return rel
}

// parseReleased splits the released text ("1999", "1999-03-00") into a year
// and a month. Year 0 means absent or unparsable; month -1 means absent, so
// a literal "00" month survives for validation.
func parseReleased(text string) (year, month int) {
	month = -1
	if text == "" {
		return 0, month
	}
	parts := strings.SplitN(text, "-", 3)
	y, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, month
	}
	year = y
	if len(parts) > 1 {
		if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			month = m
		}
	}
	return year, month
}
