package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/prepost"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/apiErrors"
)

func ListDatasets(service prepost.DatasetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries, err := service.ListDatasets()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Gagal membaca daftar dataset", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summaries); err != nil {
			logrus.Error(err)
		}
	}
}

func GetDataset(service prepost.DatasetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		datasetID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		dataset, err := service.GetDataset(datasetID)
		if err != nil {
			handleDatasetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dataset); err != nil {
			logrus.Error(err)
		}
	}
}

func CreateDataset(service prepost.DatasetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input prepost.DatasetInput

		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Format permintaan tidak valid", nil)
			return
		}

		dataset, err := service.CreateDataset(r.Context(), &input, actorName(r))
		if err != nil {
			handleDatasetError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(dataset); err != nil {
			logrus.Error(err)
		}
	}
}

func UpdateDataset(service prepost.DatasetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		datasetID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input prepost.DatasetInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Format permintaan tidak valid", nil)
			return
		}

		if err := service.UpdateDataset(r.Context(), datasetID, &input, actorName(r)); err != nil {
			handleDatasetError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteDataset(service prepost.DatasetManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		datasetID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteDataset(r.Context(), datasetID, actorName(r)); err != nil {
			handleDatasetError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleDatasetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, prepost.ErrDatasetNotFound):
		apiErrors.WriteError(w, apiErrors.ErrRecordNotFound, "Dataset tidak ditemukan", nil)

	case errors.Is(err, prepost.ErrMissingTitle):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Judul dataset wajib diisi", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Kesalahan operasi basis data", nil)
	}
}
