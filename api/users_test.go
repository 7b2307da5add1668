package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/service/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockUserUseCase is a mock implementation of users.UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(ctx context.Context, input users.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateProfile(ctx context.Context, userID, fullName, email, phone string) error {
	args := m.Called(ctx, userID, fullName, email, phone)
	return args.Error(0)
}

func TestUserHandler_register(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService, "test-secret")

	body := []byte(`{"username":"asha","email":"asha@example.com","password":"secret123","full_name":"Asha Rao"}`)
	w := httptest.NewRecorder()
	c := authedContext(t, w, "POST", "/api/users/register", body)

	created := &domain.User{UserID: "u1", Username: "asha", Email: "asha@example.com"}
	mockService.On("Register", c.Request.Context(), mock.MatchedBy(func(input users.RegisterInput) bool {
		return input.Username == "asha" && input.Password == "secret123"
	})).Return(created, nil)

	handler.register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	// хэш пароля не сериализуется
	assert.NotContains(t, w.Body.String(), "password")

	mockService.AssertExpectations(t)
}

func TestUserHandler_register_Duplicate(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService, "test-secret")

	body := []byte(`{"username":"asha","email":"asha@example.com","password":"secret123","full_name":"Asha Rao"}`)
	w := httptest.NewRecorder()
	c := authedContext(t, w, "POST", "/api/users/register", body)

	mockService.On("Register", c.Request.Context(), mock.Anything).Return(nil, domain.ErrUserExists)

	handler.register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUserHandler_login(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService, "test-secret")

	body := []byte(`{"login":"asha","password":"secret123"}`)
	w := httptest.NewRecorder()
	c := authedContext(t, w, "POST", "/api/users/login", body)

	user := &domain.User{UserID: "u1", Username: "asha"}
	mockService.On("Authenticate", c.Request.Context(), "asha", "secret123").Return(user, nil)

	handler.login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")

	mockService.AssertExpectations(t)
}

func TestUserHandler_login_WrongPassword(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService, "test-secret")

	body := []byte(`{"login":"asha","password":"wrong"}`)
	w := httptest.NewRecorder()
	c := authedContext(t, w, "POST", "/api/users/login", body)

	mockService.On("Authenticate", c.Request.Context(), "asha", "wrong").Return(nil, domain.ErrUserNotFound)

	handler.login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserHandler_profile(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService, "test-secret")

	w := httptest.NewRecorder()
	c := authedContext(t, w, "GET", "/api/users/profile", nil)

	user := &domain.User{UserID: "user-1", Username: "asha", FullName: "Asha Rao"}
	mockService.On("GetByID", c.Request.Context(), "user-1").Return(user, nil)

	handler.profile(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Asha Rao")

	mockService.AssertExpectations(t)
}

func TestUserHandler_updateProfile(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewUserHandler(mockService, "test-secret")

	body := []byte(`{"full_name":"Asha R","email":"asha.r@example.com","phone":"+911112223334"}`)
	w := httptest.NewRecorder()
	c := authedContext(t, w, "PUT", "/api/users/profile", body)

	mockService.On("UpdateProfile", c.Request.Context(), "user-1", "Asha R", "asha.r@example.com", "+911112223334").Return(nil)

	handler.updateProfile(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}
