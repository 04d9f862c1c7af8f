package extract

import (
	"regexp"
	"strings"
)

// Detail-section markers as printed in DJKI gazette documents. The numeric
// prefixes are INID codes from the source publication.
const (
	applicantMarker   = "730 Nama Pemohon :"
	descriptionMarker = "510 Uraian Barang/Jasa :"
	addressMarker     = "Alamat Pemohon"

	// detailDelimiter wraps multi-line goods/services descriptions.
	detailDelimiter = "==="

	// descriptionLookahead bounds how many lines after the marker may carry
	// description text.
	descriptionLookahead = 7
)

var (
	detailNomorRe  = regexp.MustCompile(`Nomor Permohonan\s*:\s*(\w+)`)
	ordinalLineRe  = regexp.MustCompile(`^\d+\s`)
	nomorMarkerStr = "Nomor Permohonan"
)

// detailSection carries the applicant and goods/services description for one
// application number.
type detailSection struct {
	applicant   string
	description string
}

// extractDetailSections scans the document line by line for detail blocks
// keyed by application number. Applicant and description appear either
// inline after their marker or on subsequent lines; descriptions may span
// several lines wrapped in the delimiter. Fields found before the next
// application number are attributed to the current one.
func extractDetailSections(text string) map[string]detailSection {
	details := make(map[string]detailSection)
	lines := strings.Split(text, "\n")

	var currentNomor, currentApplicant, currentDescription string

	for i, line := range lines {
		if m := detailNomorRe.FindStringSubmatch(line); m != nil {
			currentNomor = m[1]
		}

		if idx := strings.Index(line, applicantMarker); idx >= 0 {
			applicant := strings.TrimSpace(line[idx+len(applicantMarker):])
			if applicant != "" {
				currentApplicant = applicant
			} else if i+1 < len(lines) {
				// The name is on the next line unless that line already
				// starts the address block.
				next := strings.TrimSpace(lines[i+1])
				if next != "" && !strings.HasPrefix(next, addressMarker) {
					currentApplicant = next
				}
			}
		}

		if idx := strings.Index(line, descriptionMarker); idx >= 0 {
			description := strings.TrimSpace(line[idx+len(descriptionMarker):])
			if description != "" {
				currentDescription = description
			} else {
				currentDescription = collectDescriptionLines(lines, i)
			}
		}

		// Attribute collected fields to the current application number as
		// soon as we have both a number and at least one field.
		if currentNomor != "" && (currentApplicant != "" || currentDescription != "") {
			section := details[currentNomor]
			if currentApplicant != "" {
				section.applicant = currentApplicant
			}
			if currentDescription != "" {
				section.description = currentDescription
			}
			details[currentNomor] = section

			currentApplicant = ""
			currentDescription = ""
		}
	}

	return details
}

// collectDescriptionLines gathers description text from the lines following
// a bare description marker, up to the lookahead bound. Collection stops at
// an empty line or at the start of a new section (an ordinal row or the next
// application number), unless the line is part of a delimited block.
func collectDescriptionLines(lines []string, markerIdx int) string {
	end := markerIdx + 1 + descriptionLookahead
	if end > len(lines) {
		end = len(lines)
	}

	var collected []string
	for _, raw := range lines[markerIdx+1 : end] {
		line := strings.TrimSpace(raw)
		if line == "" {
			break
		}
		delimited := strings.Contains(line, detailDelimiter)
		if !delimited && (ordinalLineRe.MatchString(line) || strings.Contains(line, nomorMarkerStr)) {
			break
		}
		collected = append(collected, line)
	}

	if len(collected) == 0 {
		return ""
	}

	description := strings.Join(collected, " ")
	if len(description) >= 2*len(detailDelimiter) &&
		strings.HasPrefix(description, detailDelimiter) && strings.HasSuffix(description, detailDelimiter) {
		description = strings.TrimSpace(description[len(detailDelimiter) : len(description)-len(detailDelimiter)])
	}
	return description
}
