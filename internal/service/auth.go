package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/henrymzs/estudeAI/internal/models"
	"github.com/henrymzs/estudeAI/internal/repository"
)

var (
	// ErrInvalidCredentials covers unknown email and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken means the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrNotFound means the resource does not exist or is owned by someone
	// else; callers must not distinguish the two cases.
	ErrNotFound = errors.New("resource not found")
)

// LoginResponse is the payload returned on successful login. UserID is for
// internal consumers such as the audit log and never serializes.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      int64  `json:"-"`
}

// AuthService handles registration, login and identity resolution.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	ResolveUser(ctx context.Context, userID int64) (*models.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	hasher     PasswordHasher
	jwtService JWTService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, jwtService JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
	}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The uniqueness check above races with concurrent registrations;
		// the unique index on email is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		UserID:      user.ID,
	}, nil
}

func (s *authService) ResolveUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
