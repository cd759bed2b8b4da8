package service

import (
	"context"

	"hotelhunt/internal/model"
	"hotelhunt/internal/repository"
)

// UserService exposes account read operations. Writes go through AuthService.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// ListUsers returns every account. The password hash never leaves the model's
// JSON encoding, so the listing is safe to expose as-is.
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
