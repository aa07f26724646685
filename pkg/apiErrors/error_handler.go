package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to the console frontend.
const (
	// Authentication (AUTH_xxx)
	ErrInvalidCredentials    = "AUTH_001" // Kredensial tidak valid
	ErrUserDisabled          = "AUTH_002" // Pengguna dinonaktifkan
	ErrUserNotFound          = "AUTH_003" // Pengguna tidak ditemukan
	ErrInvalidToken          = "AUTH_004" // Token tidak valid
	ErrExpiredToken          = "AUTH_005" // Token kedaluwarsa
	ErrInsufficientPrivilege = "AUTH_006" // Hak akses tidak cukup
	ErrUserAlreadyExists     = "AUTH_007" // Pengguna sudah terdaftar

	// Validation (VAL_xxx)
	ErrInvalidRequest      = "VAL_001" // Permintaan tidak valid
	ErrMissingRequiredData = "VAL_002" // Data wajib tidak lengkap
	ErrInvalidFormat       = "VAL_003" // Format data tidak valid
	ErrRecordNotFound      = "VAL_004" // Data monitoring tidak ditemukan

	// Server (SRV_xxx)
	ErrInternalServer    = "SRV_001" // Kesalahan internal
	ErrDatabaseOperation = "SRV_002" // Kesalahan operasi basis data
	ErrExportFailure     = "SRV_003" // Gagal membuat berkas ekspor
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrRecordNotFound:        http.StatusNotFound,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExportFailure:         http.StatusInternalServerError,
}

// APIError is the standardized error body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the HTTP response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error into an API error body.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Kesalahan tidak diketahui",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
