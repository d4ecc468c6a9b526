package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "securehub/internal/errors"
	"securehub/internal/model"
	"securehub/internal/repository"
)

// UserUpdate carries optional admin-editable user fields. Nil pointers leave
// the stored value untouched.
type UserUpdate struct {
	Username       *string
	Email          *string
	Bio            *string
	ProfilePicture *string
	IsAdmin        *bool
}

// Stats aggregates platform counts for the admin dashboard.
type Stats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalArticles int64 `json:"totalArticles"`
}

// UserService exposes the admin-only user management surface.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uuid.UUID, update UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*Stats, error)
}

type userService struct {
	userRepo    repository.UserRepository
	articleRepo repository.ArticleRepository
}

// NewUserService creates a new user management service.
func NewUserService(userRepo repository.UserRepository, articleRepo repository.ArticleRepository) UserService {
	return &userService{
		userRepo:    userRepo,
		articleRepo: articleRepo,
	}
}

// List returns all users.
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// Update applies the provided fields to any user, including the admin flag.
func (s *userService) Update(ctx context.Context, id uuid.UUID, update UserUpdate) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = model.NormalizeEmail(*update.Email)
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.ProfilePicture != nil {
		user.ProfilePicture = *update.ProfilePicture
	}
	if update.IsAdmin != nil {
		user.IsAdmin = *update.IsAdmin
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete removes a user by ID.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// Stats returns total user and article counts.
func (s *userService) Stats(ctx context.Context) (*Stats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	articles, err := s.articleRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	return &Stats{TotalUsers: users, TotalArticles: articles}, nil
}
