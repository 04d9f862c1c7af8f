// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package extract

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/poiesic/tandamark/core"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Extractor parses raw document text into trademark records.
// It holds no per-document state and is safe for concurrent use.
type Extractor struct {
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// NewExtractor creates a new extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		logger: slog.Default().With("component", "extractor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses document text into a flat list of trademark records.
//
// Empty or whitespace-only input returns core.ErrNoExtractableText; callers
// must abort the ingestion. A gazette document whose row pattern matches
// nothing, or a labeled document without a mark name, returns an empty list
// with a nil error, which callers surface as a "no records found" condition.
// The remaining fallback formats return exactly one record each.
func (e *Extractor) Extract(text string) ([]*core.Trademark, error) {
	if strings.TrimSpace(text) == "" {
		return nil, core.ErrNoExtractableText
	}

	format := Classify(text)
	e.logger.Info("classified document", "format", format.String(), "chars", len(text))

	switch format {
	case FormatGazetteTable:
		return e.extractGazette(text), nil
	case FormatLabeledFields:
		record := e.extractLabeled(text)
		if record.Name == "" {
			e.logger.Warn("labeled document carries no mark name")
			return []*core.Trademark{}, nil
		}
		return []*core.Trademark{record}, nil
	case FormatGenericTable:
		return []*core.Trademark{e.extractGenericTable(text)}, nil
	default:
		return []*core.Trademark{e.extractMinimal(text)}, nil
	}
}

// gazetteRow is one preliminary row match from the gazette table.
type gazetteRow struct {
	ordinal           string
	applicationNumber string
	date              string
	class             string
	name              string
}

// rowMatches scans the full text for all gazette table rows. The mark name
// for each row spans from the end of its row-start match to the start of the
// next row (or end of text), collapsed to single spaces. Rows with an empty
// name are dropped.
func rowMatches(text string) []gazetteRow {
	locs := gazetteRowRe.FindAllStringSubmatchIndex(text, -1)
	rows := make([]gazetteRow, 0, len(locs))

	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		// The name also stops at any following ordinal-like line (e.g. an
		// INID-coded detail line), not only at the next full row.
		if boundary := nameBoundaryRe.FindStringIndex(text[loc[1]:end]); boundary != nil {
			end = loc[1] + boundary[0]
		}
		name := strings.TrimSpace(whitespaceRe.ReplaceAllString(text[loc[1]:end], " "))
		if name == "" {
			continue
		}
		rows = append(rows, gazetteRow{
			ordinal:           text[loc[2]:loc[3]],
			applicationNumber: text[loc[4]:loc[5]],
			date:              text[loc[6]:loc[7]],
			class:             text[loc[8]:loc[9]],
			name:              name,
		})
	}
	return rows
}

// extractGazette extracts every row of a gazette table, joining rows to
// their detail sections by application number. Returns an empty list when
// the document classified as a gazette by header alone but contains no rows.
func (e *Extractor) extractGazette(text string) []*core.Trademark {
	rows := rowMatches(text)
	if len(rows) == 0 {
		e.logger.Warn("gazette format detected but no table rows matched")
		return []*core.Trademark{}
	}

	details := extractDetailSections(text)
	e.logger.Info("found gazette entries", "rows", len(rows), "detailSections", len(details))

	now := time.Now().UTC()
	records := make([]*core.Trademark, 0, len(rows))

	for i, row := range rows {
		detail := details[row.applicationNumber]

		applicant := core.ApplicantUnknown
		if detail.applicant != "" {
			applicant = detail.applicant
		}

		description := detail.description
		if description != "" {
			description = strings.TrimSpace(strings.TrimPrefix(description, detailDelimiter))
			description = strings.TrimSpace(strings.TrimSuffix(description, detailDelimiter))
		} else {
			description = fmt.Sprintf("Kelas %s: %s", row.class, classDescription(row.class))
		}

		nomor := strings.ToLower(row.applicationNumber)
		records = append(records, &core.Trademark{
			// The ordinal position keeps ids unique when the same
			// application-number/class pair repeats within one gazette.
			Id:                fmt.Sprintf("djki-%s-%s-%d", nomor, row.class, i),
			Name:              row.name,
			ApplicationNumber: row.applicationNumber,
			Class:             row.class,
			Applicant:         applicant,
			Description:       description,
			DocumentId:        "djki-" + nomor,
			SourceType:        core.SourceTypePDF,
			UploadedAt:        now,
		})
	}

	e.logger.Info("extracted gazette trademarks", "records", len(records))
	return records
}

// extractLabeled extracts a single record from a labeled-fields document.
func (e *Extractor) extractLabeled(text string) *core.Trademark {
	fields := make(map[string]string, len(labelPatterns))
	for field, re := range labelPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			fields[field] = strings.TrimSpace(m[1])
		}
	}

	docID := core.IDFromContent("doc", text)
	return &core.Trademark{
		Id:                docID + "-0",
		Name:              fields["name"],
		ApplicationNumber: fields["application"],
		Class:             fields["class"],
		Applicant:         fields["applicant"],
		Description:       fields["description"],
		DocumentId:        docID,
		SourceType:        core.SourceTypePDF,
		UploadedAt:        time.Now().UTC(),
	}
}

// hasGenericTableRow reports whether any line looks like a table row:
// multiple consecutive spaces and at least three fields.
func hasGenericTableRow(text string) bool {
	return findGenericTableRow(text) != ""
}

func findGenericTableRow(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, "  ") && len(strings.Fields(line)) >= 3 {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

// extractGenericTable extracts a single record from the first table-like
// line, assuming a [ordinal] [code] [name...] column layout.
func (e *Extractor) extractGenericTable(text string) *core.Trademark {
	line := findGenericTableRow(text)
	parts := strings.Fields(line)

	docID := core.IDFromContent("table", text)
	return &core.Trademark{
		Id:                docID + "-0",
		Name:              strings.Join(parts[2:], " "),
		ApplicationNumber: parts[1],
		Description:       "Extracted from table format: " + line,
		DocumentId:        docID,
		SourceType:        core.SourceTypePDF,
		UploadedAt:        time.Now().UTC(),
	}
}

// capitalizedRe matches runs of capitalized words, the best guess for a mark
// name in otherwise unstructured text.
var capitalizedRe = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`)

// extractMinimal produces the last-resort record for unrecognized documents.
func (e *Extractor) extractMinimal(text string) *core.Trademark {
	name := "Unknown Trademark"
	if words := capitalizedRe.FindAllString(text, 3); len(words) > 0 {
		name = strings.Join(words, " ")
	}

	e.logger.Warn("no known format detected, creating minimal record", "name", name)

	docID := core.IDFromContent("minimal", text)
	return &core.Trademark{
		Id:          docID + "-0",
		Name:        name,
		Description: fmt.Sprintf("Minimal extraction from %d characters of text", len(text)),
		DocumentId:  docID,
		SourceType:  core.SourceTypePDF,
		UploadedAt:  time.Now().UTC(),
	}
}
