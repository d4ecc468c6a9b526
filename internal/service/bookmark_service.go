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

// BookmarkService maintains each user's unique bookmark set over articles.
type BookmarkService interface {
	Add(ctx context.Context, userID, articleID uuid.UUID) error
	Remove(ctx context.Context, userID, articleID uuid.UUID) error
	IsBookmarked(ctx context.Context, userID, articleID uuid.UUID) (bool, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.Article, error)
}

type bookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	articleRepo  repository.ArticleRepository
}

// NewBookmarkService creates a new bookmark service.
func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, articleRepo repository.ArticleRepository) BookmarkService {
	return &bookmarkService{
		bookmarkRepo: bookmarkRepo,
		articleRepo:  articleRepo,
	}
}

// Add bookmarks an article for a user. The same pair cannot be added twice.
func (s *bookmarkService) Add(ctx context.Context, userID, articleID uuid.UUID) error {
	if _, err := s.articleRepo.FindByID(ctx, articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrArticleNotFound
		}
		return fmt.Errorf("find article: %w", err)
	}

	if _, err := s.bookmarkRepo.Find(ctx, userID, articleID); err == nil {
		return apperrors.ErrAlreadyBookmarked
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("find bookmark: %w", err)
	}

	bookmark := &model.Bookmark{UserID: userID, ArticleID: articleID}
	if err := s.bookmarkRepo.Create(ctx, bookmark); err != nil {
		return fmt.Errorf("create bookmark: %w", err)
	}
	return nil
}

// Remove deletes the pair if it exists. Removing an absent pair is a no-op.
func (s *bookmarkService) Remove(ctx context.Context, userID, articleID uuid.UUID) error {
	if err := s.bookmarkRepo.Delete(ctx, userID, articleID); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return nil
}

// IsBookmarked reports whether the pair exists.
func (s *bookmarkService) IsBookmarked(ctx context.Context, userID, articleID uuid.UUID) (bool, error) {
	if _, err := s.bookmarkRepo.Find(ctx, userID, articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("find bookmark: %w", err)
	}
	return true, nil
}

// List resolves the user's bookmarks to articles, newest bookmark first.
// Bookmarks whose article has since been deleted are skipped.
func (s *bookmarkService) List(ctx context.Context, userID uuid.UUID) ([]model.Article, error) {
	articles, err := s.bookmarkRepo.ListArticles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarked articles: %w", err)
	}
	return articles, nil
}
