package domain

import (
	"bytes"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/estatecerenti/umkm-monitoring-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RecordSource is the provenance of a monitoring record: submitted by the
// business owner through the bookkeeping app, or typed in manually by a
// console admin.
type RecordSource string

const (
	SourceOwner RecordSource = "pelaku_usaha"
	SourceAdmin RecordSource = "manual"
)

// ProvenanceLabel is the human-readable source shown in lists and exports.
func (s RecordSource) ProvenanceLabel() string {
	if s == SourceOwner {
		return "Pelaku Usaha"
	}
	return "Manual"
}

// Monitoring form section names. The form template is fixed; these literals
// are the section identifiers stored with every record, so they must match
// the stored data exactly.
const (
	SectionProduction    = "Jumlah produksi per bulan"
	SectionFixedLabor    = "Jumlah tenaga kerja tetap"
	SectionCasualLabor   = "Jumlah tenaga kerja tidak tetap"
	SectionRevenue       = "Omset / penjualan per bulan"
	SectionOperatingCost = "Biaya operasional per bulan"
	SectionIssues        = "Masalah yang dihadapi"
	SectionFollowUp      = "Hasil tindak lanjut dari monitoring sebelumnya"

	// ItemTotal is the derived cost row: output of the recompute, never input.
	ItemTotal = "Total"

	// LabelPrevious stands in for a comparison point without any date.
	LabelPrevious = "Sebelumnya"
)

// Partner classification by monthly net profit. Fixed program constants,
// strict less-than on both boundaries.
const (
	ClassificationGrowing     = "Tumbuh"
	ClassificationDeveloping  = "Berkembang"
	ClassificationIndependent = "Mandiri"

	GrowingProfitCeiling   = 3_692_796
	IndependentProfitFloor = 15_000_000
)

// SectionItem is one line item of a monitoring section.
type SectionItem struct {
	Label string `json:"nama"`
	Value string `json:"hasil"`
}

// MonitoringSection is one named block of the monitoring form.
type MonitoringSection struct {
	Name  string        `json:"uraian"`
	Items []SectionItem `json:"items"`
}

// Amount is a monetary or quantity figure that the stores hold sometimes as
// a number and sometimes as a locale-formatted string. It always unmarshals
// to a number.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(utils.ParseAmount(s))
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}

// RecordMeta carries the business attributes of a monitoring record. Field
// names follow the stored form payload.
type RecordMeta struct {
	OwnerName        string `json:"nama"`
	BusinessName     string `json:"usaha"`
	ContactPhone     string `json:"hp"`
	Village          string `json:"desa"`
	City             string `json:"kota"`
	EstateUnit       string `json:"estate"`
	FieldOfficerName string `json:"cdo"`
	Classification   string `json:"klasifikasi"`
	RecordDate       string `json:"tanggal"`
	NetProfit        Amount `json:"labaBersih"`
}

// IdentityKey groups records of the same business across both stores:
// lowercased, trimmed owner and business names joined with a pipe. Two empty
// names collapse into one shared bucket; accepted behavior.
func (m RecordMeta) IdentityKey() string {
	return strings.ToLower(strings.TrimSpace(m.OwnerName)) + "|" +
		strings.ToLower(strings.TrimSpace(m.BusinessName))
}

// ComparisonKind tags the shape of an embedded comparison payload.
type ComparisonKind int

const (
	ComparisonNone ComparisonKind = iota
	ComparisonSingle
	ComparisonList
)

// SnapshotMeta is the reduced meta carried by a comparison point.
type SnapshotMeta struct {
	RecordDate string `json:"tanggal"`
	NetProfit  Amount `json:"labaBersih"`
}

// ComparisonSnapshot is one prior observation embedded inside a record.
type ComparisonSnapshot struct {
	Sections []MonitoringSection `json:"monitoring"`
	Meta     SnapshotMeta        `json:"meta"`
}

// Comparison is the embedded comparison payload resolved into an explicit
// variant at ingestion. Kind None has no snapshots, Single exactly one, List
// one or more.
type Comparison struct {
	Kind      ComparisonKind
	Snapshots []ComparisonSnapshot
}

// MonitoringRecord is one resolved observation of a business, tagged with
// its provenance.
type MonitoringRecord struct {
	ID           string
	Source       RecordSource
	SubmitterRef string
	Meta         RecordMeta
	Sections     []MonitoringSection
	Comparison   Comparison
	CreatedAt    int64
}

// RawMonitoringRecord is the stored payload shape shared by both stores. The
// comparison payload is kept raw here because its shape varies; Resolve turns
// it into the tagged variant.
type RawMonitoringRecord struct {
	ID             string              `json:"id,omitempty"`
	Meta           RecordMeta          `json:"meta"`
	Sections       []MonitoringSection `json:"monitoring"`
	Comparison     jsoniter.RawMessage `json:"comparison,omitempty"`
	ComparisonDate string              `json:"comparisonDate,omitempty"`
	CreatedAt      int64               `json:"createdAt,omitempty"`
}

// Resolve tags the raw record with its provenance and resolves the embedded
// comparison payload into the explicit variant.
func (r *RawMonitoringRecord) Resolve(id string, source RecordSource, submitterRef string) *MonitoringRecord {
	return &MonitoringRecord{
		ID:           id,
		Source:       source,
		SubmitterRef: submitterRef,
		Meta:         r.Meta,
		Sections:     r.Sections,
		Comparison:   resolveComparison(r.Comparison, r.ComparisonDate),
		CreatedAt:    r.CreatedAt,
	}
}

// resolveComparison decodes the three historical payload shapes once, at
// ingestion: a single snapshot object, a bare sections array (the oldest
// form, with its date stored beside it), or a list of snapshots. Anything
// absent or undecodable resolves to None.
func resolveComparison(raw jsoniter.RawMessage, comparisonDate string) Comparison {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Comparison{Kind: ComparisonNone}
	}

	switch trimmed[0] {
	case '{':
		var snap ComparisonSnapshot
		if err := json.Unmarshal(trimmed, &snap); err != nil {
			return Comparison{Kind: ComparisonNone}
		}
		if snap.Meta.RecordDate == "" {
			snap.Meta.RecordDate = comparisonDate
		}
		return Comparison{Kind: ComparisonSingle, Snapshots: []ComparisonSnapshot{snap}}

	case '[':
		var probe []jsoniter.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil || len(probe) == 0 {
			return Comparison{Kind: ComparisonNone}
		}

		if bytes.Contains(probe[0], []byte(`"uraian"`)) {
			// Bare sections array: one snapshot, dated by the sibling field.
			var sections []MonitoringSection
			if err := json.Unmarshal(trimmed, &sections); err != nil {
				return Comparison{Kind: ComparisonNone}
			}
			return Comparison{Kind: ComparisonSingle, Snapshots: []ComparisonSnapshot{{
				Sections: sections,
				Meta:     SnapshotMeta{RecordDate: comparisonDate},
			}}}
		}

		var snaps []ComparisonSnapshot
		if err := json.Unmarshal(trimmed, &snaps); err != nil || len(snaps) == 0 {
			return Comparison{Kind: ComparisonNone}
		}
		return Comparison{Kind: ComparisonList, Snapshots: snaps}
	}

	return Comparison{Kind: ComparisonNone}
}

// BookkeepingSnapshot is the whole-subtree read of the owner-submitted store:
// submitter reference to record id to payload.
type BookkeepingSnapshot map[string]map[string]*RawMonitoringRecord

// ManualSnapshot is the whole-subtree read of the admin-entered store.
type ManualSnapshot map[string]*RawMonitoringRecord
