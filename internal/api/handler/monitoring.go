package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/monitoring"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/apiErrors"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/middleware"
)

type AttachComparisonRequest struct {
	Comparison     jsoniter.RawMessage `json:"comparison"`
	ComparisonDate string              `json:"comparisonDate"`
}

func ListMonitoring(service monitoring.Monitorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := service.ListMonitoring(r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(items); err != nil {
			logrus.Error(err)
		}
	}
}

func GetMonitoringDetail(service monitoring.Monitorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		detail, err := service.GetDetail(recordID)
		if err != nil {
			handleMonitoringError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(detail); err != nil {
			logrus.Error(err)
		}
	}
}

func GetMonitoringChart(service monitoring.Monitorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		points, err := service.GetChart(recordID)
		if err != nil {
			handleMonitoringError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(points); err != nil {
			logrus.Error(err)
		}
	}
}

func CreateRecord(service monitoring.Monitorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input monitoring.RecordInput

		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Format permintaan tidak valid", nil)
			return
		}

		if input.Meta.OwnerName == "" || input.Meta.BusinessName == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nama mitra dan nama usaha wajib diisi", nil)
			return
		}

		record, err := service.CreateRecord(r.Context(), &input, actorName(r))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Gagal menyimpan data monitoring", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(record); err != nil {
			logrus.Error(err)
		}
	}
}

func UpdateRecord(service monitoring.Monitorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input monitoring.RecordInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Format permintaan tidak valid", nil)
			return
		}

		if err := service.UpdateRecord(r.Context(), recordID, &input, actorName(r)); err != nil {
			handleMonitoringError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// RecalculateRecord computes the derived financials for a form in progress
// without persisting anything.
func RecalculateRecord(service monitoring.Monitorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input monitoring.RecordInput

		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Format permintaan tidak valid", nil)
			return
		}

		derived := service.Recalculate(input.Sections)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(derived); err != nil {
			logrus.Error(err)
		}
	}
}

func AttachComparison(service monitoring.Monitorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req AttachComparisonRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Format permintaan tidak valid", nil)
			return
		}

		if len(req.Comparison) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data perbandingan wajib diisi", nil)
			return
		}

		if err := service.AttachComparison(r.Context(), recordID, req.Comparison, req.ComparisonDate, actorName(r)); err != nil {
			handleMonitoringError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteMonitoring(service monitoring.Monitorer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recordID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteMonitoring(r.Context(), recordID, actorName(r)); err != nil {
			handleMonitoringError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// actorName resolves the acting user's display name for activity logging.
func actorName(r *http.Request) string {
	if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
		return claims.UserName
	}
	return ""
}

func handleMonitoringError(w http.ResponseWriter, err error) {
	if errors.Is(err, monitoring.ErrRecordNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Data monitoring tidak ditemukan", nil)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Kesalahan operasi basis data", nil)
}
