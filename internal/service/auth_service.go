package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelhunt/internal/errors"
	"hotelhunt/internal/model"
	"hotelhunt/internal/repository"
)

const bcryptCost = 10

// AuthService handles signup and login.
//
// The original backend compared plaintext passwords; this implementation
// stores a bcrypt hash instead and compares against it. The observable
// contract (success acknowledgment, user projection, failure statuses) is
// unchanged.
type AuthService interface {
	Signup(ctx context.Context, name, email, mobno, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Signup creates a new user with hashed password. Email and mobile number must
// both be unused; whichever field collides is named in the returned conflict.
func (s *authService) Signup(ctx context.Context, name, email, mobno, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmailOrMobile(ctx, email, mobno)
	if err == nil && existing != nil {
		return nil, conflictFor(existing, email)
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		MobNo:        mobno,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The existence check and insert are not atomic. A concurrent signup
		// with the same email or mobno can slip past the check and lose on
		// the unique index instead.
		if field, ok := errors.DuplicateKeyField(err); ok {
			if field == "email" {
				return nil, &errors.ConflictError{Field: "email", Value: email}
			}
			return nil, &errors.ConflictError{Field: "mobno", Value: mobno}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user by email and password.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return user, nil
}

func conflictFor(existing *model.User, email string) *errors.ConflictError {
	if existing.Email == email {
		return &errors.ConflictError{Field: "email", Value: existing.Email}
	}
	return &errors.ConflictError{Field: "mobno", Value: existing.MobNo}
}
