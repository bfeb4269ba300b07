package services_test

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/HuynhPham0302/Ecommerce/internal/models"
	"github.com/HuynhPham0302/Ecommerce/internal/services"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

const testJWTSecret = "test_jwt_secret"

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	user := &models.User{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
	}

	// Successful registration hashes the password and returns a token.
	mockRepo.On("GetByEmail", user.Email).Return(nil, models.ErrUserNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	token, err := authService.RegisterUser(user, "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	assert.Equal(t, models.RoleCustomer, user.Role)
	mockRepo.AssertExpectations(t)

	// Registering an existing email fails with ErrDuplicateEmail.
	mockRepo.On("GetByEmail", user.Email).Return(&models.User{ID: "1"}, nil).Once()
	_, err = authService.RegisterUser(user, "password123")
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           "user-123",
		Email:        "john.doe@example.com",
		PasswordHash: string(hashedPassword),
		Role:         models.RoleCustomer,
	}

	// Successful login returns a token carrying the user's identity.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	loggedIn, token, err := authService.LoginUser(user.Email, "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, string(models.RoleCustomer), claims["role"])
	mockRepo.AssertExpectations(t)

	// A wrong password and an unknown email produce the identical error.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, wrongPassErr := authService.LoginUser(user.Email, "wrongpassword")
	assert.ErrorIs(t, wrongPassErr, models.ErrInvalidCredentials)

	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, models.ErrUserNotFound).Once()
	_, _, noUserErr := authService.LoginUser("nobody@example.com", "password123")
	assert.ErrorIs(t, noUserErr, models.ErrInvalidCredentials)

	assert.Equal(t, wrongPassErr.Error(), noUserErr.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           "user-123",
		Email:        "john.doe@example.com",
		PasswordHash: string(hashedPassword),
		Role:         models.RoleAdmin,
	}

	// Round trip: a freshly issued token verifies to the same identity.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, token, err := authService.LoginUser(user.Email, "password123")
	assert.NoError(t, err)

	userID, role, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, models.RoleAdmin, role)

	// An expired token fails with ErrTokenExpired.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	expiredString, _ := expired.SignedString([]byte(testJWTSecret))
	_, _, err = authService.ValidateToken(expiredString)
	assert.ErrorIs(t, err, models.ErrTokenExpired)

	// A token signed with a different secret fails with ErrTokenInvalid.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	forgedString, _ := forged.SignedString([]byte("other_secret"))
	_, _, err = authService.ValidateToken(forgedString)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)

	// Garbage fails with ErrTokenInvalid.
	_, _, err = authService.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
	mockRepo.AssertExpectations(t)
}
