package reconciling

import (
	"sort"

	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/utils"
)

// chartCandidate is one observation considered for the trend series before
// same-date deduplication.
type chartCandidate struct {
	date      string
	sections  []domain.MonitoringSection
	netProfit float64
}

// ChartSeries widens the comparison series for trend display. Owner-submitted
// identities chart every record of the identity across the batch; admin
// entries chart their embedded comparison list plus the record itself. Two
// observations landing on the same normalized date keep the one with the
// higher richness score. Ordered oldest first for left-to-right charting.
func ChartSeries(rec *domain.MonitoringRecord, batch []*domain.MonitoringRecord) []domain.ChartPoint {
	var candidates []chartCandidate

	if rec.Source == domain.SourceOwner {
		identity := rec.Meta.IdentityKey()
		for _, other := range batch {
			if other.Meta.IdentityKey() != identity {
				continue
			}
			date := orderingDate(other)
			if date == "" {
				continue
			}
			candidates = append(candidates, chartCandidate{
				date:      date,
				sections:  other.Sections,
				netProfit: float64(other.Meta.NetProfit),
			})
		}
	} else {
		for _, snap := range rec.Comparison.Snapshots {
			date := NormalizeDate(snap.Meta.RecordDate)
			if date == "" {
				date = domain.LabelPrevious
			}
			candidates = append(candidates, chartCandidate{
				date:      date,
				sections:  snap.Sections,
				netProfit: float64(snap.Meta.NetProfit),
			})
		}
		if date := orderingDate(rec); date != "" {
			candidates = append(candidates, chartCandidate{
				date:      date,
				sections:  rec.Sections,
				netProfit: float64(rec.Meta.NetProfit),
			})
		}
	}

	// Same-date collisions keep the candidate that looks most complete.
	byDate := make(map[string]chartCandidate)
	var order []string
	for _, c := range candidates {
		existing, ok := byDate[c.date]
		if !ok {
			byDate[c.date] = c
			order = append(order, c.date)
			continue
		}
		if richnessScore(c) > richnessScore(existing) {
			byDate[c.date] = c
		}
	}

	points := make([]domain.ChartPoint, 0, len(order))
	for _, date := range order {
		points = append(points, buildPoint(byDate[date]))
	}

	sort.SliceStable(points, func(i, j int) bool {
		return parseDay(points[j].Date).After(parseDay(points[i].Date))
	})

	return points
}

// richnessScore is a deterministic tie-break favoring observations with more
// complete-looking figures: 10000*revenue + 100*production + netProfit.
func richnessScore(c chartCandidate) float64 {
	return 10000*extractFirst(c.sections, domain.SectionRevenue) +
		100*extractFirst(c.sections, domain.SectionProduction) +
		c.netProfit
}

func buildPoint(c chartCandidate) domain.ChartPoint {
	revenue := extractFirst(c.sections, domain.SectionRevenue)
	cost := sumSection(c.sections, domain.SectionOperatingCost, domain.ItemTotal)

	return domain.ChartPoint{
		Date:          c.date,
		Revenue:       revenue,
		Production:    extractFirst(c.sections, domain.SectionProduction),
		OperatingCost: cost,
		FixedLabor:    sumSection(c.sections, domain.SectionFixedLabor, ""),
		CasualLabor:   sumSection(c.sections, domain.SectionCasualLabor, ""),
		Profit:        revenue - cost,
	}
}

// extractFirst reads the first line-item value of the named section.
func extractFirst(sections []domain.MonitoringSection, name string) float64 {
	for _, s := range sections {
		if s.Name != name {
			continue
		}
		if len(s.Items) == 0 {
			return 0
		}
		return utils.ParseAmount(s.Items[0].Value)
	}
	return 0
}

// sumSection adds all line-item values of the named section, skipping the
// item labeled skipLabel (the derived "Total" row is output, not input).
func sumSection(sections []domain.MonitoringSection, name, skipLabel string) float64 {
	var sum float64
	for _, s := range sections {
		if s.Name != name {
			continue
		}
		for _, it := range s.Items {
			if skipLabel != "" && it.Label == skipLabel {
				continue
			}
			sum += utils.ParseAmount(it.Value)
		}
	}
	return sum
}
