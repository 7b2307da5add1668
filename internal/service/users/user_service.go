package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/Domenick1991/railbooking/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, login, password string) (*domain.User, error)
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, fullName, email, phone string) error
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type UserService struct {
	repo repository.UserRepository
	// bootstrapAdminEmail promotes a matching registration to admin;
	// when unset, the first registered user becomes admin.
	bootstrapAdminEmail string
}

func NewUserService(repo repository.UserRepository, bootstrapAdminEmail string) *UserService {
	return &UserService{
		repo:                repo,
		bootstrapAdminEmail: strings.ToLower(strings.TrimSpace(bootstrapAdminEmail)),
	}
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	fullName := strings.TrimSpace(input.FullName)
	if username == "" || email == "" || input.Password == "" || fullName == "" {
		return nil, fmt.Errorf("%w: username, email, password and full name are required", domain.ErrInvalidInput)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	isAdmin := false
	if s.bootstrapAdminEmail != "" {
		isAdmin = strings.ToLower(email) == s.bootstrapAdminEmail
	} else {
		count, err := s.repo.Count(ctx)
		if err != nil {
			return nil, err
		}
		isAdmin = count == 0
	}

	user := &domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Phone:        strings.TrimSpace(input.Phone),
		CreatedAt:    time.Now(),
		BookingIDs:   []string{},
		IsAdmin:      isAdmin,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.repo.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID, fullName, email, phone string) error {
	return s.repo.UpdateProfile(ctx, userID, strings.TrimSpace(fullName), strings.TrimSpace(email), strings.TrimSpace(phone))
}

var _ UserUseCase = (*UserService)(nil)
