package exporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

func timeline(owner, business, village, date string, sections []domain.MonitoringSection) *domain.ReconciledTimeline {
	return &domain.ReconciledTimeline{
		Identity: owner + "|" + business,
		Latest: &domain.MonitoringRecord{
			ID:     "rec-" + owner,
			Source: domain.SourceAdmin,
			Meta: domain.RecordMeta{
				OwnerName:    owner,
				BusinessName: business,
				Village:      village,
				RecordDate:   date,
			},
			Sections: sections,
		},
		EffectiveDate: date,
	}
}

func TestBuildExportGroups(t *testing.T) {
	sections := []domain.MonitoringSection{
		{
			Name: domain.SectionProduction,
			Items: []domain.SectionItem{
				{Label: "Keripik singkong", Value: "120"},
				{Label: "Keripik pisang", Value: "80"},
			},
		},
		{
			Name:  domain.SectionIssues,
			Items: []domain.SectionItem{{Label: "Kendala", Value: ""}},
		},
	}

	groups := BuildExportGroups([]*domain.ReconciledTimeline{
		timeline("Siti", "Keripik", "Sukamaju", "2024-02-10", sections),
		timeline("Budi", "Madu", "", "2024-01-05", nil),
	})

	assert.Len(t, groups, 2)

	first := groups[0]
	assert.Equal(t, 3, first.Span)
	assert.Len(t, first.Rows, 3)

	// Identity columns repeat on every row of the group.
	for _, row := range first.Rows {
		assert.Equal(t, "Siti", row.OwnerName)
		assert.Equal(t, "Keripik", row.BusinessName)
		assert.Equal(t, "Sukamaju", row.Village)
		assert.Equal(t, "2024-02-10", row.RecordDate)
	}

	assert.Equal(t, domain.SectionProduction, first.Rows[0].SectionName)
	assert.Equal(t, "Keripik singkong", first.Rows[0].ItemLabel)
	assert.Equal(t, "120", first.Rows[0].ItemValue)

	// Empty values render as a dash.
	assert.Equal(t, "-", first.Rows[2].ItemValue)

	// An identity without line items still yields one placeholder row.
	second := groups[1]
	assert.Equal(t, 1, second.Span)
	assert.Equal(t, "Budi", second.Rows[0].OwnerName)
	assert.Equal(t, "-", second.Rows[0].Village)
	assert.Equal(t, "-", second.Rows[0].SectionName)
}
