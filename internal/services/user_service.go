package services

import (
	"context"
	"fmt"

	"github.com/stwalsh4118/landregistry/internal/logger"
	"github.com/stwalsh4118/landregistry/internal/models"
	"github.com/stwalsh4118/landregistry/internal/repository"
)

// UserService defines read operations over registry users.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns ErrUserNotFound if no user has the id.
	GetUser(ctx context.Context, id string) (*models.User, error)
}

type userService struct {
	repo repository.UserRepository
	log  *logger.Logger
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo repository.UserRepository, log *logger.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list users", err, nil)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to query user", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if user == nil {
		s.log.Debug("User not found", map[string]interface{}{
			"user_id": id,
		})
		return nil, ErrUserNotFound
	}

	return user, nil
}
