package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/apiErrors"
)

// RoleMiddleware restricts access to the listed role ids.
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Pengguna belum terautentikasi", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("access denied for user ID=%d, Role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Anda tidak memiliki izin untuk mengakses sumber daya ini", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly allows administrators only.
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin})
}

// AdminOrFieldOfficer allows administrators and field officers (CDO).
func AdminOrFieldOfficer() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin, domain.RoleFieldOfficer})
}

// AllRoles allows any authenticated console user.
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin, domain.RoleFieldOfficer, domain.RoleViewer})
}
