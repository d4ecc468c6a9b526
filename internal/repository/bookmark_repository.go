package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"securehub/internal/model"
)

// BookmarkRepository defines bookmark persistence operations.
type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *model.Bookmark) error
	Find(ctx context.Context, userID, articleID uuid.UUID) (*model.Bookmark, error)
	Delete(ctx context.Context, userID, articleID uuid.UUID) error
	ListArticles(ctx context.Context, userID uuid.UUID) ([]model.Article, error)
}

type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository creates a new bookmark repository.
func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// Create creates a new bookmark. The unique (user, article) index rejects
// duplicate pairs.
func (r *bookmarkRepository) Create(ctx context.Context, bookmark *model.Bookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

// Find returns the bookmark for the pair, or gorm.ErrRecordNotFound.
func (r *bookmarkRepository) Find(ctx context.Context, userID, articleID uuid.UUID) (*model.Bookmark, error) {
	var bookmark model.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		First(&bookmark).Error
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// Delete removes the pair. Removing an absent pair is not an error.
func (r *bookmarkRepository) Delete(ctx context.Context, userID, articleID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&model.Bookmark{}).Error
}

// ListArticles resolves a user's bookmarks to articles, newest bookmark first.
// The inner join silently drops bookmarks whose article was deleted.
func (r *bookmarkRepository) ListArticles(ctx context.Context, userID uuid.UUID) ([]model.Article, error) {
	var articles []model.Article
	err := r.db.WithContext(ctx).
		Model(&model.Article{}).
		Joins("JOIN bookmarks ON bookmarks.article_id = articles.id").
		Where("bookmarks.user_id = ?", userID).
		Order("bookmarks.created_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}
