package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"securehub/internal/auth"
	apperrors "securehub/internal/errors"
	"securehub/internal/model"
	"securehub/internal/repository"
	"securehub/internal/storage"
)

// ArticleInput carries article fields for create and update. On update, zero
// values leave the stored field untouched.
type ArticleInput struct {
	Title    string
	Content  string
	Category string
	Tags     []string
	ReadTime int
	ImageURL string
	VideoURL string
}

// ArticlePage is one page of search results.
type ArticlePage struct {
	Articles    []model.ArticleView `json:"articles"`
	Total       int64               `json:"total"`
	CurrentPage int                 `json:"currentPage"`
	TotalPages  int                 `json:"totalPages"`
}

// ArticleService owns the article aggregate: field edits, likes, comments and
// the cascading cleanup of attached media.
type ArticleService interface {
	Create(ctx context.Context, author auth.Identity, input ArticleInput) (*model.ArticleView, error)
	List(ctx context.Context, filter repository.ArticleFilter) (*ArticlePage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ArticleView, error)
	Update(ctx context.Context, id uuid.UUID, caller auth.Identity, input ArticleInput) (*model.ArticleView, error)
	Delete(ctx context.Context, id uuid.UUID, caller auth.Identity) error
	ToggleLike(ctx context.Context, id uuid.UUID, caller auth.Identity) ([]uuid.UUID, error)
	AddComment(ctx context.Context, id uuid.UUID, caller auth.Identity, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, id, commentID uuid.UUID, caller auth.Identity) error
}

type articleService struct {
	articleRepo repository.ArticleRepository
	media       storage.MediaStore
}

// NewArticleService creates a new article service.
func NewArticleService(articleRepo repository.ArticleRepository, media storage.MediaStore) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		media:       media,
	}
}

// Create persists a new article with a snapshot of the author's identity taken
// now, never re-resolved later.
func (s *articleService) Create(ctx context.Context, author auth.Identity, input ArticleInput) (*model.ArticleView, error) {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	article := &model.Article{
		Title:    input.Title,
		Content:  input.Content,
		Author:   author.Snapshot(),
		Category: input.Category,
		Tags:     tags,
		ReadTime: input.ReadTime,
		ImageURL: input.ImageURL,
		VideoURL: input.VideoURL,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	view := model.NewArticleView(article)
	return &view, nil
}

// List returns a page of articles matching the filter, newest first.
func (s *articleService) List(ctx context.Context, filter repository.ArticleFilter) (*ArticlePage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	articles, total, err := s.articleRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}

	views := make([]model.ArticleView, 0, len(articles))
	for i := range articles {
		views = append(views, model.NewArticleView(&articles[i]))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ArticlePage{
		Articles:    views,
		Total:       total,
		CurrentPage: filter.Page,
		TotalPages:  totalPages,
	}, nil
}

// GetByID returns an article and increments its view counter. Every read
// counts; the increment happens in the database so concurrent reads all land.
func (s *articleService) GetByID(ctx context.Context, id uuid.UUID) (*model.ArticleView, error) {
	article, err := s.findArticle(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.articleRepo.IncrementViews(ctx, id); err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}
	article.Views++

	view := model.NewArticleView(article)
	return &view, nil
}

// Update applies the provided fields after an owner-or-admin check. A new
// media URL replaces only its own slot; the other slot is left as is.
func (s *articleService) Update(ctx context.Context, id uuid.UUID, caller auth.Identity, input ArticleInput) (*model.ArticleView, error) {
	article, err := s.findArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if !article.IsAuthoredBy(caller.ID) && !caller.IsAdmin {
		return nil, apperrors.ErrForbidden
	}

	if input.Title != "" {
		article.Title = input.Title
	}
	if input.Content != "" {
		article.Content = input.Content
	}
	if input.Category != "" {
		article.Category = input.Category
	}
	if input.Tags != nil {
		article.Tags = input.Tags
	}
	if input.ReadTime > 0 {
		article.ReadTime = input.ReadTime
	}
	if input.ImageURL != "" {
		article.ImageURL = input.ImageURL
	}
	if input.VideoURL != "" {
		article.VideoURL = input.VideoURL
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	view := model.NewArticleView(article)
	return &view, nil
}

// Delete removes an article after an owner-or-admin check, cleaning up any
// attached media. Media removal is best-effort: a file that is already gone
// must not block the delete.
func (s *articleService) Delete(ctx context.Context, id uuid.UUID, caller auth.Identity) error {
	article, err := s.findArticle(ctx, id)
	if err != nil {
		return err
	}
	if !article.IsAuthoredBy(caller.ID) && !caller.IsAdmin {
		return apperrors.ErrForbidden
	}

	for _, url := range []string{article.ImageURL, article.VideoURL} {
		if url == "" {
			continue
		}
		if err := s.media.Remove(url); err != nil {
			log.Printf("remove media %s: %v", url, err)
		}
	}

	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// ToggleLike flips the caller's like on the article and returns the resulting
// set of liker ids. Repeated calls alternate state.
func (s *articleService) ToggleLike(ctx context.Context, id uuid.UUID, caller auth.Identity) ([]uuid.UUID, error) {
	if _, err := s.findArticle(ctx, id); err != nil {
		return nil, err
	}

	if err := s.articleRepo.ToggleLike(ctx, id, caller.ID); err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}

	likes, err := s.articleRepo.ListLikes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	return likes, nil
}

// AddComment appends an immutable comment carrying a snapshot of the caller.
func (s *articleService) AddComment(ctx context.Context, id uuid.UUID, caller auth.Identity, content string) (*model.Comment, error) {
	if _, err := s.findArticle(ctx, id); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ArticleID: id,
		User:      caller.Snapshot(),
		Content:   content,
	}
	if err := s.articleRepo.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("add comment: %w", err)
	}
	return comment, nil
}

// DeleteComment removes a comment. The comment's author may delete it, and so
// may an admin, matching the override granted on article deletion.
func (s *articleService) DeleteComment(ctx context.Context, id, commentID uuid.UUID, caller auth.Identity) error {
	if _, err := s.findArticle(ctx, id); err != nil {
		return err
	}

	comment, err := s.articleRepo.FindComment(ctx, id, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return fmt.Errorf("find comment: %w", err)
	}

	if comment.User.ID != caller.ID && !caller.IsAdmin {
		return apperrors.ErrForbidden
	}

	if err := s.articleRepo.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (s *articleService) findArticle(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return article, nil
}
