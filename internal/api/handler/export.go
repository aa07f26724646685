package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/exporting"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/monitoring"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/apiErrors"
)

// ExportExcel streams the full reconciled monitoring table as a workbook.
func ExportExcel(snapshots monitoring.SnapshotSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		timelines, _ := snapshots.Current()

		// Build into a buffer first so a generation failure still yields a
		// proper error body instead of a truncated download.
		var buf bytes.Buffer
		if err := exporting.WriteMonitoringWorkbook(&buf, timelines); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrExportFailure, "Gagal membuat berkas ekspor", nil)
			return
		}

		filename := fmt.Sprintf("monitoring-umkm-%s.xlsx", time.Now().Format("2006-01-02"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		if _, err := buf.WriteTo(w); err != nil {
			logrus.Error(err)
		}
	}
}

// ExportMonitoringPDF renders one reconciled record as a printable form.
func ExportMonitoringPDF(service monitoring.Monitorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		detail, err := service.GetDetail(recordID)
		if err != nil {
			handleMonitoringError(w, err)
			return
		}

		var buf bytes.Buffer
		if err := exporting.WriteMonitoringPDF(&buf, detail.Meta, detail.Sections); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrExportFailure, "Gagal membuat berkas ekspor", nil)
			return
		}

		filename := fmt.Sprintf("monitoring-%s.pdf", recordID)

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		if _, err := buf.WriteTo(w); err != nil {
			logrus.Error(err)
		}
	}
}
