package reconciling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		netProfit float64
		expected  string
	}{
		{name: "below lower threshold", netProfit: 3_000_000, expected: domain.ClassificationGrowing},
		{name: "exactly lower threshold", netProfit: 3_692_796, expected: domain.ClassificationDeveloping},
		{name: "between thresholds", netProfit: 4_000_000, expected: domain.ClassificationDeveloping},
		{name: "exactly upper threshold", netProfit: 15_000_000, expected: domain.ClassificationIndependent},
		{name: "above upper threshold", netProfit: 16_000_000, expected: domain.ClassificationIndependent},
		{name: "zero profit", netProfit: 0, expected: domain.ClassificationGrowing},
		{name: "negative profit", netProfit: -500_000, expected: domain.ClassificationGrowing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.netProfit))
		})
	}
}

func TestRecalculateDerived(t *testing.T) {
	sections := []domain.MonitoringSection{
		{
			Name: domain.SectionProduction,
			Items: []domain.SectionItem{
				{Label: "Keripik singkong", Value: "3.500.000"},
				{Label: "Keripik pisang", Value: "1.500.000"},
			},
		},
		{
			Name:  domain.SectionRevenue,
			Items: []domain.SectionItem{{Label: "Omset", Value: "0"}},
		},
		{
			Name: domain.SectionOperatingCost,
			Items: []domain.SectionItem{
				{Label: "Bahan baku", Value: "800.000"},
				{Label: "Transportasi", Value: "200.000"},
				{Label: domain.ItemTotal, Value: "999"},
			},
		},
	}

	derived := RecalculateDerived(sections)

	assert.Equal(t, float64(5_000_000), derived.TotalProduction)
	assert.Equal(t, float64(1_000_000), derived.TotalOperatingCost)
	assert.Equal(t, float64(4_000_000), derived.NetProfit)
	assert.Equal(t, domain.ClassificationDeveloping, derived.Classification)

	// The revenue section mirrors total production.
	assert.Equal(t, "5.000.000", derived.Sections[1].Items[0].Value)

	// The Total row is overwritten with the sum of the other cost items, and
	// the stale stored value never feeds back into the sum.
	assert.Equal(t, "1.000.000", derived.Sections[2].Items[2].Value)

	// Input sections are not mutated.
	assert.Equal(t, "0", sections[1].Items[0].Value)
	assert.Equal(t, "999", sections[2].Items[2].Value)
}

func TestRecalculateDerived_EmptyRevenueSection(t *testing.T) {
	sections := []domain.MonitoringSection{
		{
			Name:  domain.SectionProduction,
			Items: []domain.SectionItem{{Label: "Madu", Value: "16.000.000"}},
		},
		{Name: domain.SectionRevenue},
	}

	derived := RecalculateDerived(sections)

	assert.Equal(t, float64(16_000_000), derived.NetProfit)
	assert.Equal(t, domain.ClassificationIndependent, derived.Classification)
	assert.Len(t, derived.Sections[1].Items, 1)
	assert.Equal(t, "16.000.000", derived.Sections[1].Items[0].Value)
}
