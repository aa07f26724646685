package exporting

import (
	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/reconciling"
)

// BuildExportGroups turns the reconciled list into spreadsheet row groups:
// one group per identity, one row per (section, line item), with the
// identity columns repeated on every row so the writer can merge them
// vertically. Identities keep the list order (newest first).
func BuildExportGroups(timelines []*domain.ReconciledTimeline) []domain.ExportGroup {
	groups := make([]domain.ExportGroup, 0, len(timelines))

	for _, tl := range timelines {
		meta, sections := reconciling.DetailView(tl)

		var rows []domain.ExportRow
		for _, section := range sections {
			for _, item := range section.Items {
				rows = append(rows, domain.ExportRow{
					OwnerName:    orDash(meta.OwnerName),
					BusinessName: orDash(meta.BusinessName),
					Village:      orDash(meta.Village),
					RecordDate:   orDash(meta.RecordDate),
					SectionName:  section.Name,
					ItemLabel:    orDash(item.Label),
					ItemValue:    orDash(item.Value),
				})
			}
		}

		if len(rows) == 0 {
			// An identity without line items still exports its header data.
			rows = []domain.ExportRow{{
				OwnerName:    orDash(meta.OwnerName),
				BusinessName: orDash(meta.BusinessName),
				Village:      orDash(meta.Village),
				RecordDate:   orDash(meta.RecordDate),
				SectionName:  "-",
				ItemLabel:    "-",
				ItemValue:    "-",
			}}
		}

		groups = append(groups, domain.ExportGroup{
			Rows: rows,
			Span: len(rows),
		})
	}

	return groups
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
