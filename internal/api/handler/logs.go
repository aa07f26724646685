package handler

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/repository"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/apiErrors"
)

const defaultLogLimit = 100

func ListActivityLogs(logRepo repository.ActivityLogRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultLogLimit
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parameter limit tidak valid", nil)
				return
			}
			limit = parsed
		}

		logs, err := logRepo.ListLogs(limit)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Gagal membaca log aktivitas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(logs); err != nil {
			logrus.Error(err)
		}
	}
}
