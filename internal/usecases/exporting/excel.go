package exporting

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

const monitoringSheet = "Monitoring"

var excelHeaders = []string{
	"No", "Nama Mitra", "Usaha", "Desa", "Tanggal", "Sumber", "Uraian", "Item", "Hasil",
}

// identityColumns are merged vertically across each row group.
var identityColumns = []string{"A", "B", "C", "D", "E", "F"}

// WriteMonitoringWorkbook streams the reconciled list as an xlsx workbook:
// one row group per identity, identity cells merged across the group.
func WriteMonitoringWorkbook(w io.Writer, timelines []*domain.ReconciledTimeline) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(monitoringSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for i, header := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(monitoringSheet, cell, header); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(monitoringSheet, "B", "C", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(monitoringSheet, "G", "G", 36); err != nil {
		return err
	}
	if err := f.SetColWidth(monitoringSheet, "H", "I", 20); err != nil {
		return err
	}

	row := 2
	for seq, group := range BuildExportGroups(timelines) {
		first := row
		for _, r := range group.Rows {
			values := []any{seq + 1, r.OwnerName, r.BusinessName, r.Village, r.RecordDate, sourceOf(timelines[seq]), r.SectionName, r.ItemLabel, r.ItemValue}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(monitoringSheet, cell, v); err != nil {
					return err
				}
			}
			row++
		}

		if group.Span > 1 {
			last := first + group.Span - 1
			for _, col := range identityColumns {
				if err := f.MergeCell(monitoringSheet, fmt.Sprintf("%s%d", col, first), fmt.Sprintf("%s%d", col, last)); err != nil {
					return err
				}
			}
		}
	}

	return f.Write(w)
}

func sourceOf(tl *domain.ReconciledTimeline) string {
	return tl.Latest.Source.ProvenanceLabel()
}
