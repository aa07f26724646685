package reconciling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

func monthSections(revenue, production, cost string) []domain.MonitoringSection {
	return []domain.MonitoringSection{
		{
			Name:  domain.SectionRevenue,
			Items: []domain.SectionItem{{Label: "Omset", Value: revenue}},
		},
		{
			Name:  domain.SectionProduction,
			Items: []domain.SectionItem{{Label: "Produksi", Value: production}},
		},
		{
			Name: domain.SectionOperatingCost,
			Items: []domain.SectionItem{
				{Label: "Bahan baku", Value: cost},
				{Label: domain.ItemTotal, Value: cost},
			},
		},
	}
}

func TestChartSeries_OwnerChartsWholeIdentity(t *testing.T) {
	jan := ownerRecord("jan", "Siti", "Keripik", "2024-01-10", 0)
	jan.Sections = monthSections("1.000.000", "100", "400.000")
	mar := ownerRecord("mar", "Siti", "Keripik", "2024-03-10", 0)
	mar.Sections = monthSections("3.000.000", "300", "600.000")
	feb := ownerRecord("feb", "Siti", "Keripik", "2024-02-10", 0)
	feb.Sections = monthSections("2.000.000", "200", "500.000")
	other := ownerRecord("x", "Budi", "Madu", "2024-02-15", 0)

	points := ChartSeries(mar, []*domain.MonitoringRecord{jan, mar, feb, other})

	assert.Len(t, points, 3)
	assert.Equal(t, "2024-01-10", points[0].Date)
	assert.Equal(t, "2024-02-10", points[1].Date)
	assert.Equal(t, "2024-03-10", points[2].Date)

	assert.Equal(t, float64(1_000_000), points[0].Revenue)
	assert.Equal(t, float64(400_000), points[0].OperatingCost)
	assert.Equal(t, float64(600_000), points[0].Profit)
}

func TestChartSeries_SameDateKeepsRichestObservation(t *testing.T) {
	sparse := ownerRecord("sparse", "Siti", "Keripik", "2024-02-10", 0)
	sparse.Sections = monthSections("0", "0", "0")
	rich := ownerRecord("rich", "Siti", "Keripik", "2024-02-10", 0)
	rich.Sections = monthSections("2.000.000", "200", "500.000")

	points := ChartSeries(rich, []*domain.MonitoringRecord{sparse, rich})

	assert.Len(t, points, 1)
	assert.Equal(t, "2024-02-10", points[0].Date)
	assert.Equal(t, float64(2_000_000), points[0].Revenue)
}

func TestChartSeries_AdminChartsComparisonList(t *testing.T) {
	rec := adminRecord("adm", "Budi", "Madu", "2024-03-01")
	rec.Sections = monthSections("3.000.000", "300", "600.000")
	rec.Comparison = domain.Comparison{
		Kind: domain.ComparisonList,
		Snapshots: []domain.ComparisonSnapshot{
			{
				Sections: monthSections("1.000.000", "100", "400.000"),
				Meta:     domain.SnapshotMeta{RecordDate: "10-01-2024"},
			},
			{
				Sections: monthSections("2.000.000", "200", "500.000"),
				Meta:     domain.SnapshotMeta{RecordDate: "2024-02-10"},
			},
		},
	}

	points := ChartSeries(rec, []*domain.MonitoringRecord{rec})

	assert.Len(t, points, 3)
	// Localized snapshot dates are normalized before sorting.
	assert.Equal(t, "2024-01-10", points[0].Date)
	assert.Equal(t, "2024-02-10", points[1].Date)
	assert.Equal(t, "2024-03-01", points[2].Date)
}

func TestChartSeries_UndatedSnapshotUsesPreviousLabel(t *testing.T) {
	rec := adminRecord("adm", "Budi", "Madu", "2024-03-01")
	rec.Sections = monthSections("3.000.000", "300", "600.000")
	rec.Comparison = domain.Comparison{
		Kind: domain.ComparisonSingle,
		Snapshots: []domain.ComparisonSnapshot{
			{Sections: monthSections("1.000.000", "100", "400.000")},
		},
	}

	points := ChartSeries(rec, []*domain.MonitoringRecord{rec})

	assert.Len(t, points, 2)
	// The undated point carries a label instead of a date and sorts first.
	assert.Equal(t, domain.LabelPrevious, points[0].Date)
	assert.Equal(t, "2024-03-01", points[1].Date)
}
