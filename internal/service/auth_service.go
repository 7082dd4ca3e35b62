package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mywallet/internal/auth"
	apperrors "mywallet/internal/errors"
	"mywallet/internal/model"
	"mywallet/internal/repository"
)

// AuthService handles signup, login and logout.
type AuthService interface {
	Signup(ctx context.Context, name, email, password, passwordCheck string) error
	Login(ctx context.Context, email, password string) (name, token string, err error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo   repository.UserRepository
	sessions   auth.SessionRegistry
	bcryptCost int
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, sessions auth.SessionRegistry, bcryptCost int) AuthService {
	return &authService{
		userRepo:   userRepo,
		sessions:   sessions,
		bcryptCost: bcryptCost,
	}
}

// Signup creates a new user with a hashed password. The email existence
// check runs before the password-match check; the unique index on email
// backstops the check against concurrent signups with the same address.
func (s *authService) Signup(ctx context.Context, name, email, password, passwordCheck string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check email existence: %w", err)
	}

	if password != passwordCheck {
		return apperrors.ErrPasswordMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// Login verifies the credentials and opens a fresh session. Prior
// sessions for the same user stay valid.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", apperrors.ErrUserNotFound
		}
		return "", "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", apperrors.ErrInvalidCredentials
	}

	token := auth.NewToken()
	if err := s.sessions.Save(ctx, token, user.ID); err != nil {
		return "", "", fmt.Errorf("open session: %w", err)
	}

	return user.Name, token, nil
}

// Logout revokes the session bound to token. Unknown tokens are a no-op,
// so calling Logout twice with the same token succeeds both times.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
