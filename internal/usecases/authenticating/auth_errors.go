package authenticating

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials    = errors.New("kredensial tidak valid")
	ErrUserDisabled          = errors.New("akun dinonaktifkan")
	ErrUserNotFound          = errors.New("pengguna tidak ditemukan")
	ErrInvalidToken          = errors.New("token tidak valid")
	ErrExpiredToken          = errors.New("token kedaluwarsa")
	ErrInsufficientPrivilege = errors.New("hak akses tidak cukup")
	ErrUserAlreadyExists     = errors.New("pengguna sudah terdaftar")

	ErrInvalidRequest      = errors.New("permintaan tidak valid")
	ErrMissingRequiredData = errors.New("data wajib tidak lengkap")

	ErrWeakPassword     = errors.New("kata sandi terlalu lemah")
	ErrSamePassword     = errors.New("kata sandi baru harus berbeda dari yang lama")
	ErrNoAdminPrivilege = errors.New("hanya administrator yang dapat melakukan aksi ini")

	ErrDatabaseOperation = errors.New("kesalahan operasi basis data")
)

// AuthError carries the API error code and optional user context alongside
// the base error.
type AuthError struct {
	Err     error
	Code    string
	UserID  int
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError reports whether the error is a credential problem, as
// opposed to an authorization or infrastructure one.
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled) ||
		errors.Is(err, ErrUserNotFound)
}

func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrNoAdminPrivilege)
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
