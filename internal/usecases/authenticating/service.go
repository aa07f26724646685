package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/repository"
	"github.com/estatecerenti/umkm-monitoring-api/internal/config"
	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
	"github.com/estatecerenti/umkm-monitoring-api/pkg/apiErrors"
)

const (
	minPasswordLength  = 8
	generatedPwdLength = 12
	passwordAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

type Authenticator interface {
	LoginUser(identifier, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUserProfile(userID int) (*domain.User, error)
	CreateUser(user *domain.User, plainPassword string) (*domain.User, error)
	UpdateUser(req *domain.UpdateUserRequest) error
	ListUser() ([]*domain.User, error)
	GenerateStrongPassword(requestUserID, targetUserID int) (string, error)
	ChangePassword(userID int, currentPassword, newPassword string) error
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// LoginUser authenticates by phone number first and falls back to the
// display name, matching how the console login form is used in the field.
func (s *Service) LoginUser(identifier, password string) (string, error) {
	if identifier == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nomor HP/nama dan kata sandi wajib diisi")
	}

	identifier = strings.TrimSpace(identifier)

	user, err := s.userRepo.GetUserByPhone(identifier)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Gagal membaca data pengguna")
	}

	if user == nil {
		user, err = s.userRepo.GetUserByName(identifier)
		if err != nil {
			return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Gagal membaca data pengguna")
		}
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Pengguna tidak ditemukan")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Akun dinonaktifkan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Kata sandi salah")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Gagal membuat token autentikasi")
	}

	return token, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	ttl := time.Duration(s.cfg.Auth.TokenTTLMinutes) * time.Minute

	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserPhone:  user.Phone,
		UserActive: user.Active,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) GetUserProfile(userID int) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Pengguna tidak ditemukan")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) CreateUser(user *domain.User, plainPassword string) (*domain.User, error) {
	if user.Name == "" || user.Phone == "" || plainPassword == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nama, nomor HP dan kata sandi wajib diisi")
	}

	user.Phone = normalizePhone(user.Phone)

	existing, err := s.userRepo.GetUserByPhone(user.Phone)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Gagal membaca data pengguna")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Nomor HP sudah terdaftar")
	}

	if err := validatePasswordStrength(plainPassword); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInvalidRequest, "Kata sandi minimal 8 karakter")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if user.RoleID == 0 {
		user.RoleID = domain.RoleViewer
	}

	user.PasswordHash = string(hashedPassword)
	user.Active = true

	user, err = s.userRepo.CreateUser(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Gagal membuat pengguna")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) UpdateUser(req *domain.UpdateUserRequest) error {
	if req.ID == 0 {
		return NewAuthError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "ID pengguna wajib diisi")
	}

	existing, err := s.userRepo.GetUserByID(req.ID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Gagal membaca data pengguna")
	}
	if existing == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, fmt.Sprintf("Pengguna %d tidak ditemukan", req.ID))
	}

	if req.Phone != nil {
		phone := normalizePhone(*req.Phone)
		req.Phone = &phone
	}

	if err := s.userRepo.UpdateUser(req); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Gagal memperbarui pengguna")
	}

	return nil
}

func (s *Service) ListUser() ([]*domain.User, error) {
	return s.userRepo.ListUser()
}

// GenerateStrongPassword resets the target user's password to a random one.
// Admin only; the plaintext is returned exactly once for handover.
func (s *Service) GenerateStrongPassword(requestUserID, targetUserID int) (string, error) {
	requestUser, err := s.userRepo.GetUserByID(requestUserID)
	if err != nil {
		return "", err
	}
	if requestUser == nil || requestUser.RoleID != domain.RoleAdmin {
		return "", NewAuthError(ErrNoAdminPrivilege, apiErrors.ErrInsufficientPrivilege, "Hanya administrator yang dapat mengatur ulang kata sandi")
	}

	targetUser, err := s.userRepo.GetUserByID(targetUserID)
	if err != nil {
		return "", err
	}
	if targetUser == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Pengguna tujuan tidak ditemukan")
	}

	newPassword, err := gonanoid.Generate(passwordAlphabet, generatedPwdLength)
	if err != nil {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdatePassword(targetUser.ID, string(hashedPassword)); err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Gagal menyimpan kata sandi baru")
	}

	return newPassword, nil
}

func (s *Service) ChangePassword(userID int, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Pengguna tidak ditemukan")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Kata sandi saat ini salah")
	}

	if currentPassword == newPassword {
		return NewAuthError(ErrSamePassword, apiErrors.ErrInvalidRequest, "Kata sandi baru harus berbeda")
	}

	if err := validatePasswordStrength(newPassword); err != nil {
		return NewAuthError(err, apiErrors.ErrInvalidRequest, "Kata sandi minimal 8 karakter")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(user.ID, string(hashedPassword)); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Gagal menyimpan kata sandi baru")
	}

	return nil
}

func validatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

func normalizePhone(s string) string {
	phone := strings.TrimSpace(s)
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	return phone
}
