package reconciling

import (
	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/utils"
)

// RecalculateDerived recomputes the read-only fields of the admin entry form:
// the revenue section mirrors total production (revenue is modeled as
// production volume), the operating-cost "Total" row is the sum of the other
// cost items, and net profit classifies the business. Runs on every line-item
// edit and again before persisting, so the stored record is always
// consistent.
func RecalculateDerived(sections []domain.MonitoringSection) domain.DerivedFinancials {
	totalProduction := sumSection(sections, domain.SectionProduction, "")
	totalCost := sumSection(sections, domain.SectionOperatingCost, domain.ItemTotal)

	updated := make([]domain.MonitoringSection, len(sections))
	for i, s := range sections {
		items := make([]domain.SectionItem, len(s.Items))
		copy(items, s.Items)

		switch s.Name {
		case domain.SectionRevenue:
			if len(items) == 0 {
				items = []domain.SectionItem{{Label: "-"}}
			}
			items[0].Value = utils.FormatAmount(totalProduction)
		case domain.SectionOperatingCost:
			for j, it := range items {
				if it.Label == domain.ItemTotal {
					items[j].Value = utils.FormatAmount(totalCost)
				}
			}
		}

		updated[i] = domain.MonitoringSection{Name: s.Name, Items: items}
	}

	netProfit := totalProduction - totalCost

	return domain.DerivedFinancials{
		TotalProduction:    totalProduction,
		TotalOperatingCost: totalCost,
		NetProfit:          netProfit,
		Classification:     Classify(netProfit),
		Sections:           updated,
	}
}

// Classify maps net profit onto the partner classification. Both thresholds
// are strict less-than: a profit exactly at the lower bound already counts as
// Berkembang, exactly at the upper bound as Mandiri.
func Classify(netProfit float64) string {
	switch {
	case netProfit < domain.GrowingProfitCeiling:
		return domain.ClassificationGrowing
	case netProfit < domain.IndependentProfitFloor:
		return domain.ClassificationDeveloping
	default:
		return domain.ClassificationIndependent
	}
}
