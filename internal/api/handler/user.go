package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
	"github.com/estatecerenti/umkm-monitoring-api/internal/usecases/authenticating"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/apiErrors"
)

type CreateUserRequest struct {
	Name     string  `json:"nama"`
	Phone    string  `json:"phone"`
	Password string  `json:"password"`
	RoleID   int     `json:"role_id"`
	Estate   *string `json:"estate"`
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Gagal membaca daftar pengguna", nil)
			return
		}

		for _, user := range users {
			user.PasswordHash = ""
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(users); err != nil {
			logrus.Error(err)
		}
	}
}

func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID pengguna tidak valid", nil)
			return
		}

		user, err := service.GetUserProfile(id)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(user); err != nil {
			logrus.Error(err)
		}
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Format permintaan tidak valid", nil)
			return
		}

		if req.Name == "" || req.Phone == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nama, nomor HP, dan kata sandi wajib diisi", nil)
			return
		}

		user := &domain.User{
			Name:   req.Name,
			Phone:  req.Phone,
			Active: true,
			RoleID: req.RoleID,
			Estate: req.Estate,
		}

		created, err := service.CreateUser(user, req.Password)
		if err != nil {
			if errors.Is(err, authenticating.ErrUserAlreadyExists) {
				apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Nomor HP sudah terdaftar", nil)
				return
			}
			handleAuthError(w, err)
			return
		}

		created.PasswordHash = ""

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logrus.Error(err)
		}
	}
}

func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID pengguna tidak valid", nil)
			return
		}

		var req domain.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Format permintaan tidak valid", nil)
			return
		}

		req.ID = id

		if err := service.UpdateUser(&req); err != nil {
			handleAuthError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteUser performs a soft delete so historical activity logs keep
// resolving to a name.
func DeleteUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID pengguna tidak valid", nil)
			return
		}

		deleted := true
		inactive := false

		req := domain.UpdateUserRequest{
			ID:      id,
			Active:  &inactive,
			Deleted: &deleted,
		}

		if err := service.UpdateUser(&req); err != nil {
			handleAuthError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
