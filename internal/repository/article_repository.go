package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"securehub/internal/model"
)

// ArticleFilter narrows article listings. Filters compose conjunctively.
type ArticleFilter struct {
	Category string
	Tag      string
	Search   string
	Page     int
	Limit    int
}

// ArticleRepository defines article aggregate persistence operations. Likes and
// comments are mutated through set-level statements rather than whole-document
// writes, so concurrent mutations never overwrite each other.
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, article *model.Article) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error)
	Search(ctx context.Context, filter ArticleFilter) ([]model.Article, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	IncrementViews(ctx context.Context, id uuid.UUID) error
	ToggleLike(ctx context.Context, articleID, userID uuid.UUID) error
	ListLikes(ctx context.Context, articleID uuid.UUID) ([]uuid.UUID, error)

	AddComment(ctx context.Context, comment *model.Comment) error
	FindComment(ctx context.Context, articleID, commentID uuid.UUID) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// Create creates a new article.
func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

// Update persists all fields of an existing article.
func (r *articleRepository) Update(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

// FindByID loads an article with its like set and comments, comments oldest
// first.
func (r *articleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	var article model.Article
	err := r.db.WithContext(ctx).
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Search returns a page of articles newest first plus the total match count.
func (r *articleRepository) Search(ctx context.Context, filter ArticleFilter) ([]model.Article, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Article{})

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Tag != "" {
		// Tags are stored as a JSON array of strings.
		q = q.Where("tags LIKE ?", "%\""+filter.Tag+"\"%")
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("title LIKE ? OR content LIKE ? OR tags LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []model.Article
	err := q.
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

// Delete removes an article together with its likes and comments.
func (r *articleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&model.ArticleLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Article{}).Error
	})
}

// Count returns the total number of articles.
func (r *articleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Article{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// IncrementViews bumps the view counter atomically in the database, so reads
// racing on the same article never lose an increment.
func (r *articleRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// ToggleLike flips the caller's membership in the like set. The delete-else-
// insert runs in one transaction and the composite primary key rejects
// duplicates, so concurrent toggles cannot corrupt the set.
func (r *articleRepository) ToggleLike(ctx context.Context, articleID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("article_id = ? AND user_id = ?", articleID, userID).
			Delete(&model.ArticleLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		return tx.Create(&model.ArticleLike{ArticleID: articleID, UserID: userID}).Error
	})
}

// ListLikes returns the ids of users who currently like the article.
func (r *articleRepository) ListLikes(ctx context.Context, articleID uuid.UUID) ([]uuid.UUID, error) {
	var likes []model.ArticleLike
	err := r.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at ASC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.UserID)
	}
	return ids, nil
}

// AddComment appends a comment to the article's comment list.
func (r *articleRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindComment locates a comment on the given article.
func (r *articleRepository) FindComment(ctx context.Context, articleID, commentID uuid.UUID) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.WithContext(ctx).
		Where("id = ? AND article_id = ?", commentID, articleID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment by ID.
func (r *articleRepository) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", commentID).Delete(&model.Comment{}).Error
}
