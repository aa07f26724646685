package domain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected float64
	}{
		{name: "number", payload: `1500000`, expected: 1_500_000},
		{name: "numeric string", payload: `"1500000"`, expected: 1_500_000},
		{name: "locale string", payload: `"1.500.000"`, expected: 1_500_000},
		{name: "locale decimal string", payload: `"1.234,56"`, expected: 1234.56},
		{name: "null", payload: `null`, expected: 0},
		{name: "empty string", payload: `""`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			assert.NoError(t, json.Unmarshal([]byte(tt.payload), &a))
			assert.Equal(t, tt.expected, float64(a))
		})
	}
}

func TestRecordMetaIdentityKey(t *testing.T) {
	meta := RecordMeta{OwnerName: "  Siti Aminah ", BusinessName: "Keripik SINGKONG"}
	assert.Equal(t, "siti aminah|keripik singkong", meta.IdentityKey())

	// Records with no names share one bucket.
	assert.Equal(t, "|", RecordMeta{}.IdentityKey())
}

func TestResolveComparison_SingleObject(t *testing.T) {
	payload := jsoniter.RawMessage(`{
		"meta": {"tanggal": "2024-02-10", "labaBersih": "2.000.000"},
		"monitoring": [{"uraian": "Omset / penjualan per bulan", "items": [{"nama": "Omset", "hasil": "2.000.000"}]}]
	}`)

	cmp := resolveComparison(payload, "")

	assert.Equal(t, ComparisonSingle, cmp.Kind)
	assert.Len(t, cmp.Snapshots, 1)
	assert.Equal(t, "2024-02-10", cmp.Snapshots[0].Meta.RecordDate)
	assert.Equal(t, float64(2_000_000), float64(cmp.Snapshots[0].Meta.NetProfit))
}

func TestResolveComparison_SingleObjectFallsBackToSiblingDate(t *testing.T) {
	payload := jsoniter.RawMessage(`{"monitoring": []}`)

	cmp := resolveComparison(payload, "2024-01-05")

	assert.Equal(t, ComparisonSingle, cmp.Kind)
	assert.Equal(t, "2024-01-05", cmp.Snapshots[0].Meta.RecordDate)
}

func TestResolveComparison_BareSectionsArray(t *testing.T) {
	payload := jsoniter.RawMessage(`[
		{"uraian": "Jumlah produksi per bulan", "items": [{"nama": "Keripik", "hasil": "120"}]}
	]`)

	cmp := resolveComparison(payload, "2023-11-20")

	assert.Equal(t, ComparisonSingle, cmp.Kind)
	assert.Len(t, cmp.Snapshots, 1)
	assert.Equal(t, "2023-11-20", cmp.Snapshots[0].Meta.RecordDate)
	assert.Equal(t, SectionProduction, cmp.Snapshots[0].Sections[0].Name)
}

func TestResolveComparison_SnapshotList(t *testing.T) {
	payload := jsoniter.RawMessage(`[
		{"meta": {"tanggal": "2024-01-10"}, "monitoring": []},
		{"meta": {"tanggal": "2024-02-10"}, "monitoring": []}
	]`)

	cmp := resolveComparison(payload, "")

	assert.Equal(t, ComparisonList, cmp.Kind)
	assert.Len(t, cmp.Snapshots, 2)
	assert.Equal(t, "2024-02-10", cmp.Snapshots[1].Meta.RecordDate)
}

func TestResolveComparison_None(t *testing.T) {
	for _, payload := range []string{"", "null", "[]", "not json"} {
		cmp := resolveComparison(jsoniter.RawMessage(payload), "2024-01-01")
		assert.Equal(t, ComparisonNone, cmp.Kind, "payload %q", payload)
		assert.Empty(t, cmp.Snapshots)
	}
}

func TestRawMonitoringRecordResolve(t *testing.T) {
	raw := &RawMonitoringRecord{
		Meta:           RecordMeta{OwnerName: "Budi", BusinessName: "Madu"},
		Comparison:     jsoniter.RawMessage(`{"monitoring": []}`),
		ComparisonDate: "2024-03-15",
		CreatedAt:      1708387200000,
	}

	rec := raw.Resolve("rec-1", SourceOwner, "uid-9")

	assert.Equal(t, "rec-1", rec.ID)
	assert.Equal(t, SourceOwner, rec.Source)
	assert.Equal(t, "uid-9", rec.SubmitterRef)
	assert.Equal(t, ComparisonSingle, rec.Comparison.Kind)
	assert.Equal(t, "2024-03-15", rec.Comparison.Snapshots[0].Meta.RecordDate)
	assert.Equal(t, int64(1708387200000), rec.CreatedAt)
}

func TestProvenanceLabel(t *testing.T) {
	assert.Equal(t, "Pelaku Usaha", SourceOwner.ProvenanceLabel())
	assert.Equal(t, "Manual", SourceAdmin.ProvenanceLabel())
}
