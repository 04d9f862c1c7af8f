package extract

import "regexp"

// DocumentFormat identifies the extraction strategy for a document.
type DocumentFormat int

const (
	// FormatGazetteTable is the DJKI tabular gazette layout.
	FormatGazetteTable DocumentFormat = iota + 1
	// FormatLabeledFields is the "Nama Merek: X" labeled layout.
	FormatLabeledFields
	// FormatGenericTable is a loosely tabular non-gazette layout.
	FormatGenericTable
	// FormatMinimal is unstructured text with no recognizable layout.
	FormatMinimal
)

// String returns the format name for logging.
func (f DocumentFormat) String() string {
	switch f {
	case FormatGazetteTable:
		return "gazette-table"
	case FormatLabeledFields:
		return "labeled-fields"
	case FormatGenericTable:
		return "generic-table"
	case FormatMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// Gazette header phrases published on DJKI announcement documents.
var gazetteHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)DIREKTORAT JENDERAL KEKAYAAN INTELEKTUAL`),
	regexp.MustCompile(`(?i)DIREKTORAT MEREK DAN INDUKSI`),
	regexp.MustCompile(`(?i)DAFTAR.*PERMOHONAN.*MEREK`),
	regexp.MustCompile(`(?i)PENERIMAAN.*PUBLIKASI`),
}

// gazetteRowRe matches the start of one gazette table row:
// <ordinal> <application-number> <dd/mm/yyyy> <class>. The mark name runs
// from the end of this match to the start of the next row match (RE2 has no
// lookahead, so the boundary is computed from consecutive match offsets).
var gazetteRowRe = regexp.MustCompile(`(?m)^[ \t]*(\d+)[ \t]+([A-Z0-9]+)[ \t]+(\d{2}/\d{2}/\d{4})[ \t]+(\d+)[ \t]+`)

// nameBoundaryRe marks where a row's mark name ends: the next line opening
// with an ordinal-and-token pair, which is either the next table row or an
// INID-coded detail line.
var nameBoundaryRe = regexp.MustCompile(`(?m)^[ \t]*\d+[ \t]+[A-Z0-9]`)

// Labeled field patterns, one per metadata field.
var labelPatterns = map[string]*regexp.Regexp{
	"name":        regexp.MustCompile(`(?i)Nama Merek\s*:\s*(.+)`),
	"application": regexp.MustCompile(`(?i)Nomor Permohonan\s*:\s*(.+)`),
	"class":       regexp.MustCompile(`(?i)Kelas\s*:\s*(.+)`),
	"applicant":   regexp.MustCompile(`(?i)Pemohon\s*:\s*(.+)`),
	"description": regexp.MustCompile(`(?i)Uraian Barang/Jasa\s*:\s*(.+)`),
}

// Classify determines the extraction strategy for a document. It is a pure
// function of the text; extraction itself happens per format in the
// Extractor. Classification never fails: FormatMinimal is the catch-all.
func Classify(text string) DocumentFormat {
	if isGazette(text) {
		return FormatGazetteTable
	}
	if hasLabeledField(text) {
		return FormatLabeledFields
	}
	if hasGenericTableRow(text) {
		return FormatGenericTable
	}
	return FormatMinimal
}

// isGazette reports whether the document is a DJKI gazette, either by header
// phrase or by the presence of at least one table row.
func isGazette(text string) bool {
	for _, re := range gazetteHeaderPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return gazetteRowRe.MatchString(text)
}

func hasLabeledField(text string) bool {
	for _, re := range labelPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
