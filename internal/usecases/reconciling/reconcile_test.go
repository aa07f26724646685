package reconciling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

func ownerRecord(id, owner, business, date string, createdAt int64) *domain.MonitoringRecord {
	return &domain.MonitoringRecord{
		ID:           id,
		Source:       domain.SourceOwner,
		SubmitterRef: "uid-" + id,
		Meta: domain.RecordMeta{
			OwnerName:    owner,
			BusinessName: business,
			RecordDate:   date,
		},
		CreatedAt: createdAt,
	}
}

func adminRecord(id, owner, business, date string) *domain.MonitoringRecord {
	rec := ownerRecord(id, owner, business, date, 0)
	rec.Source = domain.SourceAdmin
	rec.SubmitterRef = ""
	return rec
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "localized day-month-year is rewritten", input: "05-01-2024", expected: "2024-01-05"},
		{name: "ISO input passes through unchanged", input: "2024-01-05", expected: "2024-01-05"},
		{name: "idempotent on its own output", input: NormalizeDate("05-01-2024"), expected: "2024-01-05"},
		{name: "free-form strings pass through", input: "Sebelumnya", expected: "Sebelumnya"},
		{name: "empty string passes through", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDate(tt.input))
		})
	}
}

func TestReconcileBatch_GroupingIdempotence(t *testing.T) {
	batch := []*domain.MonitoringRecord{
		ownerRecord("a", "Siti", "Keripik", "2024-01-01", 0),
		ownerRecord("b", " siti ", "keripik", "2024-02-01", 0),
		adminRecord("c", "Budi", "Madu", "2024-03-01"),
	}

	first := ReconcileBatch(batch)
	second := ReconcileBatch(batch)

	assert.Len(t, first, 2)
	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Identity, second[i].Identity)
		assert.Equal(t, first[i].Latest.ID, second[i].Latest.ID)
		assert.Equal(t, first[i].EffectiveDate, second[i].EffectiveDate)
	}

	// Owner name and business name are normalized before grouping.
	assert.Equal(t, "siti|keripik", first[0].Identity)
	assert.Equal(t, "b", first[0].Latest.ID)
}

func TestReconcileBatch_LatestSelection(t *testing.T) {
	batch := []*domain.MonitoringRecord{
		ownerRecord("d1", "Siti", "Keripik", "2024-01-10", 0),
		ownerRecord("d3", "Siti", "Keripik", "2024-03-10", 0),
		ownerRecord("d2", "Siti", "Keripik", "2024-02-10", 0),
	}

	result := ReconcileBatch(batch)

	assert.Len(t, result, 1)
	assert.Equal(t, "d3", result[0].Latest.ID)
	assert.Equal(t, "2024-03-10", result[0].EffectiveDate)

	// The runner-up becomes the single comparison point.
	assert.Len(t, result[0].ComparisonSeries, 1)
	assert.Equal(t, "2024-02-10", result[0].ComparisonSeries[0].Meta.RecordDate)
}

func TestReconcileBatch_ComparisonDateOverridesEffectiveDate(t *testing.T) {
	rec := adminRecord("m1", "Budi", "Madu", "2024-01-15")
	rec.Comparison = domain.Comparison{
		Kind: domain.ComparisonSingle,
		Snapshots: []domain.ComparisonSnapshot{{
			Meta: domain.SnapshotMeta{RecordDate: "2024-05-20"},
		}},
	}

	result := ReconcileBatch([]*domain.MonitoringRecord{rec})

	assert.Len(t, result, 1)
	// The attached comparison carries a later date than the record itself.
	assert.Equal(t, "2024-05-20", result[0].EffectiveDate)
}

func TestReconcileBatch_ComparisonPayloadKeepsRecordCurrent(t *testing.T) {
	// An older admin record with a freshly dated comparison must outrank a
	// newer plain record of the same identity.
	older := adminRecord("m1", "Budi", "Madu", "2024-01-15")
	older.Comparison = domain.Comparison{
		Kind: domain.ComparisonSingle,
		Snapshots: []domain.ComparisonSnapshot{{
			Meta: domain.SnapshotMeta{RecordDate: "2024-06-01"},
		}},
	}
	newer := ownerRecord("b1", "Budi", "Madu", "2024-03-01", 0)

	result := ReconcileBatch([]*domain.MonitoringRecord{newer, older})

	assert.Len(t, result, 1)
	assert.Equal(t, "m1", result[0].Latest.ID)
	assert.Equal(t, "2024-06-01", result[0].EffectiveDate)
}

func TestReconcileBatch_MissingDateExclusion(t *testing.T) {
	excluded := ownerRecord("x", "Siti", "Keripik", "", 0)
	kept := ownerRecord("k", "Siti", "Keripik", "2024-01-01", 0)

	result := ReconcileBatch([]*domain.MonitoringRecord{excluded, kept})

	assert.Len(t, result, 1)
	assert.Equal(t, "k", result[0].Latest.ID)
	assert.Empty(t, result[0].ComparisonSeries, "a dateless record must not appear as comparison either")

	// A batch with only dateless records yields nothing at all.
	assert.Empty(t, ReconcileBatch([]*domain.MonitoringRecord{ownerRecord("y", "Andi", "Tahu", "", 0)}))
}

func TestReconcileBatch_CreatedAtFallback(t *testing.T) {
	// 2024-02-20 UTC in epoch millis.
	rec := ownerRecord("c1", "Siti", "Keripik", "", 1708387200000)

	result := ReconcileBatch([]*domain.MonitoringRecord{rec})

	assert.Len(t, result, 1)
	assert.Equal(t, "2024-02-20", result[0].EffectiveDate)
}

func TestReconcileBatch_ListSortedByEffectiveDateDescending(t *testing.T) {
	batch := []*domain.MonitoringRecord{
		ownerRecord("a", "Siti", "Keripik", "2024-01-01", 0),
		ownerRecord("b", "Budi", "Madu", "2024-03-01", 0),
		ownerRecord("c", "Andi", "Tahu", "2024-02-01", 0),
	}

	result := ReconcileBatch(batch)

	dates := make([]string, 0, len(result))
	for _, tl := range result {
		dates = append(dates, tl.EffectiveDate)
	}
	assert.Equal(t, []string{"2024-03-01", "2024-02-01", "2024-01-01"}, dates)
}

func TestReconcileBatch_LocalizedDatesAreNormalizedBeforeComparison(t *testing.T) {
	batch := []*domain.MonitoringRecord{
		ownerRecord("iso", "Siti", "Keripik", "2024-01-05", 0),
		// Localized format, later day: must win after normalization.
		ownerRecord("localized", "Siti", "Keripik", "07-01-2024", 0),
	}

	result := ReconcileBatch(batch)

	assert.Len(t, result, 1)
	assert.Equal(t, "localized", result[0].Latest.ID)
	assert.Equal(t, "2024-01-07", result[0].EffectiveDate)
}

func TestReconcileBatch_EmptyIdentityBucketCollapses(t *testing.T) {
	batch := []*domain.MonitoringRecord{
		ownerRecord("u1", "", "", "2024-01-01", 0),
		adminRecord("u2", "  ", "", "2024-02-01"),
	}

	result := ReconcileBatch(batch)

	// Accepted degenerate behavior: one shared "unknown" bucket.
	assert.Len(t, result, 1)
	assert.Equal(t, "u2", result[0].Latest.ID)
	assert.Len(t, result[0].ComparisonSeries, 1)
}

func TestReconcileBatch_SingleComparisonFallbackLabel(t *testing.T) {
	rec := adminRecord("m1", "Budi", "Madu", "")
	rec.CreatedAt = 1704067200000 // keeps the record on the timeline
	rec.Comparison = domain.Comparison{
		Kind:      domain.ComparisonSingle,
		Snapshots: []domain.ComparisonSnapshot{{}},
	}

	result := ReconcileBatch([]*domain.MonitoringRecord{rec})

	assert.Len(t, result, 1)
	assert.Len(t, result[0].ComparisonSeries, 1)
	// No payload date and no record date: the literal previous label is used.
	assert.Equal(t, domain.LabelPrevious, result[0].ComparisonSeries[0].Meta.RecordDate)
}

func TestDetailView_NewerComparisonSupersedes(t *testing.T) {
	rec := adminRecord("m1", "Budi", "Madu", "2024-01-15")
	rec.Sections = []domain.MonitoringSection{{Name: domain.SectionIssues, Items: []domain.SectionItem{{Label: "Permasalahan", Value: "modal"}}}}
	rec.Comparison = domain.Comparison{
		Kind: domain.ComparisonSingle,
		Snapshots: []domain.ComparisonSnapshot{{
			Sections: []domain.MonitoringSection{{Name: domain.SectionIssues, Items: []domain.SectionItem{{Label: "Permasalahan", Value: "pemasaran"}}}},
			Meta:     domain.SnapshotMeta{RecordDate: "2024-04-01", NetProfit: 123},
		}},
	}

	result := ReconcileBatch([]*domain.MonitoringRecord{rec})
	meta, sections := DetailView(result[0])

	assert.Equal(t, "2024-04-01", meta.RecordDate)
	assert.Equal(t, domain.Amount(123), meta.NetProfit)
	assert.Equal(t, "pemasaran", sections[0].Items[0].Value)

	// Comparison older than the record: the record's own data stays.
	rec.Comparison.Snapshots[0].Meta.RecordDate = "2023-12-01"
	result = ReconcileBatch([]*domain.MonitoringRecord{rec})
	meta, sections = DetailView(result[0])
	assert.Equal(t, "2024-01-15", meta.RecordDate)
	assert.Equal(t, "modal", sections[0].Items[0].Value)
}

func TestFlatten_TagsProvenance(t *testing.T) {
	bk := domain.BookkeepingSnapshot{
		"uid9": {
			"r1": &domain.RawMonitoringRecord{Meta: domain.RecordMeta{OwnerName: "Siti"}, CreatedAt: 1},
		},
	}
	manual := domain.ManualSnapshot{
		"m1": &domain.RawMonitoringRecord{Meta: domain.RecordMeta{OwnerName: "Budi"}, CreatedAt: 2},
	}

	batch := Flatten(bk, manual)

	assert.Len(t, batch, 2)
	assert.Equal(t, domain.SourceOwner, batch[0].Source)
	assert.Equal(t, "uid9", batch[0].SubmitterRef)
	assert.Equal(t, "r1", batch[0].ID)
	assert.Equal(t, domain.SourceAdmin, batch[1].Source)
	assert.Empty(t, batch[1].SubmitterRef)
}
