// Package reconciling merges the two monitoring sources (bookkeeping entries
// submitted by business owners and manual entries typed in by admins) into one
// comparison timeline per business. It is a pure function of the two latest
// store snapshots and is recomputed from scratch on every change notification;
// data volumes are tens to hundreds of records, so there is no incremental
// update path.
package reconciling

import (
	"regexp"
	"sort"
	"time"

	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/utils"
)

var localizedDatePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// NormalizeDate rewrites DD-MM-YYYY into YYYY-MM-DD and passes anything else
// through unchanged. It is idempotent on already-ISO input; free-form strings
// are left for best-effort parsing downstream.
func NormalizeDate(s string) string {
	if localizedDatePattern.MatchString(s) {
		return s[6:10] + "-" + s[3:5] + "-" + s[0:2]
	}
	return s
}

// parseDay gives the total order over dates used everywhere in this package:
// normalized then parsed as an ISO day; anything unparseable is the zero time
// and therefore sorts as oldest. Ties keep encounter order (stable sorts).
func parseDay(s string) time.Time {
	t, err := time.Parse("2006-01-02", NormalizeDate(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

// orderingDate is the record's own date: the monitoring date when present,
// otherwise the creation timestamp. Empty when the record has neither, which
// excludes it from reconciliation.
func orderingDate(rec *domain.MonitoringRecord) string {
	if rec.Meta.RecordDate != "" {
		return NormalizeDate(rec.Meta.RecordDate)
	}
	if rec.CreatedAt > 0 {
		return utils.EpochMillisToISODate(rec.CreatedAt)
	}
	return ""
}

// primaryDate is the date a record sorts by within its identity group: the
// later of its own date and any date inside its embedded comparison payload.
// An admin may attach a comparison dated after the record's nominal date.
func primaryDate(rec *domain.MonitoringRecord) time.Time {
	max := parseDay(orderingDate(rec))
	for _, snap := range rec.Comparison.Snapshots {
		if d := parseDay(snap.Meta.RecordDate); d.After(max) {
			max = d
		}
	}
	return max
}

// Flatten resolves both snapshots into one tagged record batch. Map iteration
// order is randomized in Go, so keys are walked sorted to keep the encounter
// order (and with it every tie-break) deterministic.
func Flatten(bk domain.BookkeepingSnapshot, manual domain.ManualSnapshot) []*domain.MonitoringRecord {
	batch := make([]*domain.MonitoringRecord, 0, len(manual))

	for _, uid := range sortedKeys(bk) {
		entries := bk[uid]
		for _, id := range sortedKeys(entries) {
			batch = append(batch, entries[id].Resolve(id, domain.SourceOwner, uid))
		}
	}

	for _, id := range sortedKeys(manual) {
		batch = append(batch, manual[id].Resolve(id, domain.SourceAdmin, ""))
	}

	return batch
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reconcile groups the batch by business identity, picks the most current
// record per identity, attaches its comparison series and returns the result
// sorted by effective date, newest first.
func Reconcile(bk domain.BookkeepingSnapshot, manual domain.ManualSnapshot) []*domain.ReconciledTimeline {
	return ReconcileBatch(Flatten(bk, manual))
}

// ReconcileBatch is the batch-level entry point, shared with callers that
// already hold the flattened records.
func ReconcileBatch(batch []*domain.MonitoringRecord) []*domain.ReconciledTimeline {
	type group struct {
		key     string
		records []*domain.MonitoringRecord
	}

	var order []string
	groups := make(map[string]*group)

	for _, rec := range batch {
		if orderingDate(rec) == "" {
			// Neither a monitoring date nor a creation timestamp: the record
			// cannot be placed on any timeline and is dropped silently.
			continue
		}

		key := rec.Meta.IdentityKey()
		g, ok := groups[key]
		if !ok {
			g = &group{key: key}
			groups[key] = g
			order = append(order, key)
		}
		g.records = append(g.records, rec)
	}

	timelines := make([]*domain.ReconciledTimeline, 0, len(order))
	for _, key := range order {
		g := groups[key]

		sort.SliceStable(g.records, func(i, j int) bool {
			return primaryDate(g.records[i]).After(primaryDate(g.records[j]))
		})

		latest := g.records[0]
		series := comparisonSeries(latest, g.records)

		timelines = append(timelines, &domain.ReconciledTimeline{
			Identity:         g.key,
			Latest:           latest,
			ComparisonSeries: series,
			EffectiveDate:    effectiveDate(latest, series),
		})
	}

	sort.SliceStable(timelines, func(i, j int) bool {
		return parseDay(timelines[i].EffectiveDate).After(parseDay(timelines[j].EffectiveDate))
	})

	return timelines
}

// comparisonSeries resolves the comparison points of the group's latest
// record: the embedded payload when the admin attached one, otherwise the
// next-most-recent record of the group. Ordered oldest first.
func comparisonSeries(latest *domain.MonitoringRecord, sorted []*domain.MonitoringRecord) []domain.ComparisonSnapshot {
	var series []domain.ComparisonSnapshot

	switch latest.Comparison.Kind {
	case domain.ComparisonList:
		series = append(series, latest.Comparison.Snapshots...)

	case domain.ComparisonSingle:
		snap := latest.Comparison.Snapshots[0]
		if snap.Meta.RecordDate == "" {
			if latest.Meta.RecordDate != "" {
				snap.Meta.RecordDate = latest.Meta.RecordDate
			} else {
				snap.Meta.RecordDate = domain.LabelPrevious
			}
		}
		if snap.Meta.NetProfit == 0 {
			snap.Meta.NetProfit = latest.Meta.NetProfit
		}
		series = append(series, snap)

	default:
		if len(sorted) > 1 {
			previous := sorted[1]
			series = append(series, domain.ComparisonSnapshot{
				Sections: previous.Sections,
				Meta: domain.SnapshotMeta{
					RecordDate: previous.Meta.RecordDate,
					NetProfit:  previous.Meta.NetProfit,
				},
			})
		}
	}

	sort.SliceStable(series, func(i, j int) bool {
		return parseDay(series[j].Meta.RecordDate).After(parseDay(series[i].Meta.RecordDate))
	})

	return series
}

// effectiveDate picks the cross-identity sort key: the later of the latest
// record's own date and the newest date found in its comparison series.
func effectiveDate(latest *domain.MonitoringRecord, series []domain.ComparisonSnapshot) string {
	best := orderingDate(latest)
	bestDay := parseDay(best)

	for _, snap := range series {
		if d := parseDay(snap.Meta.RecordDate); d.After(bestDay) {
			bestDay = d
			best = NormalizeDate(snap.Meta.RecordDate)
		}
	}

	return best
}

// DetailView resolves the meta and sections shown on a detail screen: when
// the newest comparison point is dated after the record's own date, its data
// supersedes the record's, because the admin backfilled a newer observation
// through the comparison form.
func DetailView(t *domain.ReconciledTimeline) (domain.RecordMeta, []domain.MonitoringSection) {
	meta := t.Latest.Meta
	sections := t.Latest.Sections

	if len(t.ComparisonSeries) == 0 {
		return meta, sections
	}

	newest := t.ComparisonSeries[len(t.ComparisonSeries)-1]
	if parseDay(newest.Meta.RecordDate).After(parseDay(orderingDate(t.Latest))) {
		meta.RecordDate = NormalizeDate(newest.Meta.RecordDate)
		if newest.Meta.NetProfit != 0 {
			meta.NetProfit = newest.Meta.NetProfit
		}
		sections = newest.Sections
	}

	return meta, sections
}
