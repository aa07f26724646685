package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/estatecerenti/umkm-monitoring-api/infrastructure/repository/mocks"
	"github.com/estatecerenti/umkm-monitoring-api/internal/config"
	"github.com/estatecerenti/umkm-monitoring-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:          "test-secret",
			TokenTTLMinutes: 60,
		},
	}
}

func activeUser(t *testing.T, id int, name, phone, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &domain.User{
		ID:           id,
		Name:         name,
		Phone:        phone,
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RoleFieldOfficer,
	}
}

func TestLoginUser_ByPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	user := activeUser(t, 1, "Siti", "081234567890", "rahasia-123")
	userRepo.EXPECT().GetUserByPhone("081234567890").Return(user, nil)

	service := NewService(userRepo, testConfig())

	token, err := service.LoginUser("081234567890", "rahasia-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "Siti", claims.UserName)
	assert.Equal(t, domain.RoleFieldOfficer, claims.UserRoleID)
}

func TestLoginUser_FallsBackToName(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	user := activeUser(t, 2, "Budi", "081200000002", "rahasia-123")
	userRepo.EXPECT().GetUserByPhone("Budi").Return(nil, nil)
	userRepo.EXPECT().GetUserByName("Budi").Return(user, nil)

	service := NewService(userRepo, testConfig())

	token, err := service.LoginUser("Budi", "rahasia-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	user := activeUser(t, 3, "Siti", "081234567890", "rahasia-123")
	userRepo.EXPECT().GetUserByPhone("081234567890").Return(user, nil)

	service := NewService(userRepo, testConfig())

	_, err := service.LoginUser("081234567890", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, 3, authErr.UserID)
}

func TestLoginUser_DisabledAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	user := activeUser(t, 4, "Siti", "081234567890", "rahasia-123")
	user.Active = false
	userRepo.EXPECT().GetUserByPhone("081234567890").Return(user, nil)

	service := NewService(userRepo, testConfig())

	_, err := service.LoginUser("081234567890", "rahasia-123")
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestLoginUser_UnknownIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	userRepo.EXPECT().GetUserByPhone("tidak-ada").Return(nil, nil)
	userRepo.EXPECT().GetUserByName("tidak-ada").Return(nil, nil)

	service := NewService(userRepo, testConfig())

	_, err := service.LoginUser("tidak-ada", "apapun")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidateToken_Tampered(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	service := NewService(userRepo, testConfig())

	_, err := service.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCreateUser_RejectsDuplicatePhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	existing := activeUser(t, 5, "Siti", "081234567890", "rahasia-123")
	userRepo.EXPECT().GetUserByPhone("081234567890").Return(existing, nil)

	service := NewService(userRepo, testConfig())

	_, err := service.CreateUser(&domain.User{Name: "Siti Baru", Phone: "0812-3456-7890"}, "rahasia-123")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUser_RejectsWeakPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	userRepo.EXPECT().GetUserByPhone(gomock.Any()).Return(nil, nil)

	service := NewService(userRepo, testConfig())

	_, err := service.CreateUser(&domain.User{Name: "Siti", Phone: "081234567890"}, "pendek")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestCreateUser_DefaultsToViewerRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	userRepo.EXPECT().GetUserByPhone(gomock.Any()).Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
		assert.Equal(t, domain.RoleViewer, user.RoleID)
		assert.True(t, user.Active)
		assert.NotEmpty(t, user.PasswordHash)
		user.ID = 10
		return user, nil
	})

	service := NewService(userRepo, testConfig())

	created, err := service.CreateUser(&domain.User{Name: "Siti", Phone: "081234567890"}, "rahasia-123")
	assert.NoError(t, err)
	assert.Equal(t, 10, created.ID)
	assert.Empty(t, created.PasswordHash)
}

func TestGenerateStrongPassword_AdminOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	officer := activeUser(t, 6, "Budi", "081200000006", "rahasia-123")
	userRepo.EXPECT().GetUserByID(6).Return(officer, nil)

	service := NewService(userRepo, testConfig())

	_, err := service.GenerateStrongPassword(6, 7)
	assert.ErrorIs(t, err, ErrNoAdminPrivilege)
}

func TestGenerateStrongPassword_ResetsTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	admin := activeUser(t, 1, "Admin", "081200000001", "rahasia-123")
	admin.RoleID = domain.RoleAdmin
	target := activeUser(t, 7, "Siti", "081200000007", "lama-1234")

	userRepo.EXPECT().GetUserByID(1).Return(admin, nil)
	userRepo.EXPECT().GetUserByID(7).Return(target, nil)

	var storedHash string
	userRepo.EXPECT().UpdatePassword(7, gomock.Any()).DoAndReturn(func(_ int, hash string) error {
		storedHash = hash
		return nil
	})

	service := NewService(userRepo, testConfig())

	password, err := service.GenerateStrongPassword(1, 7)
	assert.NoError(t, err)
	assert.Len(t, password, 12)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)))
}

func TestChangePassword_RequiresCurrentPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	user := activeUser(t, 8, "Siti", "081200000008", "rahasia-123")
	userRepo.EXPECT().GetUserByID(8).Return(user, nil)

	service := NewService(userRepo, testConfig())

	err := service.ChangePassword(8, "salah", "baru-12345")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
