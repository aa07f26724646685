package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/authenticating"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/apiErrors"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Format permintaan tidak valid", nil)
			return
		}

		token, err := service.LoginUser(req.Identifier, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

// GetMe returns the profile of the authenticated user.
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Pengguna belum masuk", nil)
			return
		}

		user, err := service.GetUserProfile(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logrus.Error(err)
		}
	}
}

func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Pengguna belum masuk", nil)
			return
		}

		targetUserID, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID pengguna tidak valid", nil)
			return
		}

		password, err := service.GenerateStrongPassword(userClaims.UserID, targetUserID)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GeneratePasswordResponse{Password: password})
	}
}

func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Pengguna belum masuk", nil)
			return
		}

		targetUserID, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID pengguna tidak valid", nil)
			return
		}

		// A user changes their own password; admins use generate-password.
		if targetUserID != userClaims.UserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Hanya dapat mengubah kata sandi sendiri", nil)
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Format permintaan tidak valid", nil)
			return
		}

		if err := service.ChangePassword(targetUserID, req.CurrentPassword, req.NewPassword); err != nil {
			handleAuthError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// pathID reads the :id path parameter as an integer.
func pathID(r *http.Request) (int, error) {
	idStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return strconv.Atoi(idStr)
}

// handleAuthError maps usecase errors onto the standardized API error body.
func handleAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details any
		if authErr.UserID != 0 {
			details = map[string]any{"user_id": authErr.UserID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Kredensial tidak valid", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Akun dinonaktifkan", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Pengguna tidak ditemukan", nil)

	case errors.Is(err, authenticating.ErrExpiredToken):
		apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token kedaluwarsa", nil)

	case errors.Is(err, authenticating.ErrInvalidToken):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token tidak valid", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Kesalahan internal", nil)
	}
}
