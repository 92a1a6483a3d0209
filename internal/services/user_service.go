package services

import (
	"context"
	"fmt"

	"redline-garage/pitwall/internal/db/repositories"
	"redline-garage/pitwall/internal/models/dtos"
)

type UserService struct {
	repo *repositories.UserRepository
}

func NewUserService(repo *repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// EnsureUser records an identity-provider user the first time they show up.
func (s *UserService) EnsureUser(ctx context.Context, id, name, email string) error {
	if id == "" {
		return fmt.Errorf("user id is required")
	}
	return s.repo.EnsureUser(ctx, id, name, email)
}

// GetUser returns nil when the user has never authenticated.
func (s *UserService) GetUser(ctx context.Context, id string) (*dtos.UserSummary, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, internalError("get_user", err)
	}
	if user == nil {
		return nil, nil
	}

	summary := toUserSummary(*user)
	return &summary, nil
}
