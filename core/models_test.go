package core

import (
	"strings"
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		content string
	}{
		{
			name:    "same content produces same ID",
			prefix:  "doc",
			content: "test content",
		},
		{
			name:    "empty string",
			prefix:  "minimal",
			content: "",
		},
		{
			name:    "long content",
			prefix:  "table",
			content: "This is a much longer piece of content that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.prefix, tt.content)
			id2 := IDFromContent(tt.prefix, tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %s vs %s", id1, id2)
			}
			if !strings.HasPrefix(id1, tt.prefix+"-") {
				t.Errorf("IDFromContent() = %s, missing prefix %s", id1, tt.prefix)
			}
			// prefix + "-" + 8 hex chars
			if len(id1) != len(tt.prefix)+1+8 {
				t.Errorf("IDFromContent() = %s, unexpected length %d", id1, len(id1))
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("doc", "content1")
	id2 := IDFromContent("doc", "content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestTrademark_SearchText(t *testing.T) {
	tests := []struct {
		name      string
		trademark Trademark
		want      string
	}{
		{
			name: "full record",
			trademark: Trademark{
				Name:        "PINUS RAYA",
				Applicant:   "PT Pinus Sejahtera",
				Class:       "3",
				Description: "Kosmetik dan sabun mandi",
			},
			want: "Nama Merek: PINUS RAYA | Pemohon: PT Pinus Sejahtera | Barang/Jasa: Kosmetik dan sabun mandi | Kelas: 3",
		},
		{
			name: "generic class description is stripped of its prefix",
			trademark: Trademark{
				Name:        "ACME",
				Applicant:   ApplicantUnknown,
				Class:       "9",
				Description: "Kelas 9: Kelas 9",
			},
			want: "Nama Merek: ACME | Pemohon: Tidak Diketahui | Barang/Jasa: Kelas 9 | Kelas: 9",
		},
		{
			name: "empty fields keep their labels",
			trademark: Trademark{
				Name: "Solo Mark",
			},
			want: "Nama Merek: Solo Mark | Pemohon:  | Barang/Jasa:  | Kelas: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.trademark.SearchText()
			if got != tt.want {
				t.Errorf("SearchText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmptyReport(t *testing.T) {
	report := EmptyReport("Pinus")

	if report.TargetTrademark != "Pinus" {
		t.Errorf("TargetTrademark = %q, want %q", report.TargetTrademark, "Pinus")
	}
	if report.TotalCompared != 0 || report.Found != 0 {
		t.Errorf("counts = (%d, %d), want (0, 0)", report.TotalCompared, report.Found)
	}
	if report.Results == nil || len(report.Results) != 0 {
		t.Errorf("Results = %v, want empty non-nil slice", report.Results)
	}
}
