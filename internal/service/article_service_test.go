package service

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"securehub/internal/auth"
	apperrors "securehub/internal/errors"
	"securehub/internal/model"
	"securehub/internal/repository"
	"securehub/internal/storage"
)

// MockArticleRepository is a mock implementation of ArticleRepository.
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *model.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *model.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleRepository) Search(ctx context.Context, filter repository.ArticleFilter) ([]model.Article, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Article), args.Get(1).(int64), args.Error(2)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArticleRepository) ToggleLike(ctx context.Context, articleID, userID uuid.UUID) error {
	args := m.Called(ctx, articleID, userID)
	return args.Error(0)
}

func (m *MockArticleRepository) ListLikes(ctx context.Context, articleID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockArticleRepository) AddComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockArticleRepository) FindComment(ctx context.Context, articleID, commentID uuid.UUID) (*model.Comment, error) {
	args := m.Called(ctx, articleID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockArticleRepository) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

// MockMediaStore is a mock implementation of storage.MediaStore.
type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Save(file *multipart.FileHeader) (*storage.SavedMedia, error) {
	args := m.Called(file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.SavedMedia), args.Error(1)
}

func (m *MockMediaStore) Remove(url string) error {
	args := m.Called(url)
	return args.Error(0)
}

func testIdentity(isAdmin bool) auth.Identity {
	return auth.Identity{ID: uuid.New(), Username: "tester", Email: "tester@example.com", IsAdmin: isAdmin}
}

func TestArticleService_Create(t *testing.T) {
	author := testIdentity(false)

	mockRepo := new(MockArticleRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Article")).Return(nil)

	service := NewArticleService(mockRepo, new(MockMediaStore))
	view, err := service.Create(context.Background(), author, ArticleInput{
		Title:    "Password Hygiene",
		Content:  "Long enough content about password hygiene.",
		Category: model.CategoryCybersecurity,
		ReadTime: 5,
	})

	assert.NoError(t, err)
	assert.Equal(t, author.ID, view.Author.ID)
	assert.Equal(t, author.Username, view.Author.Username)
	// Tags are never nil in the serialized shape.
	assert.NotNil(t, view.Tags)
	assert.Empty(t, view.Tags)
	mockRepo.AssertExpectations(t)
}

func TestArticleService_GetByID(t *testing.T) {
	articleID := uuid.New()

	t.Run("counts the view", func(t *testing.T) {
		mockRepo := new(MockArticleRepository)
		mockRepo.On("FindByID", mock.Anything, articleID).Return(&model.Article{ID: articleID, Views: 41}, nil)
		mockRepo.On("IncrementViews", mock.Anything, articleID).Return(nil)

		service := NewArticleService(mockRepo, new(MockMediaStore))
		view, err := service.GetByID(context.Background(), articleID)

		assert.NoError(t, err)
		assert.Equal(t, int64(42), view.Views)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown article", func(t *testing.T) {
		mockRepo := new(MockArticleRepository)
		mockRepo.On("FindByID", mock.Anything, articleID).Return(nil, gorm.ErrRecordNotFound)

		service := NewArticleService(mockRepo, new(MockMediaStore))
		_, err := service.GetByID(context.Background(), articleID)

		assert.ErrorIs(t, err, apperrors.ErrArticleNotFound)
	})
}

func TestArticleService_Update(t *testing.T) {
	author := testIdentity(false)
	articleID := uuid.New()

	stored := func() *model.Article {
		return &model.Article{
			ID:       articleID,
			Title:    "Original title",
			Content:  "Original content",
			Author:   author.Snapshot(),
			Category: model.CategoryPrivacy,
			ReadTime: 4,
			ImageURL: "/uploads/old.png",
		}
	}

	tests := []struct {
		name          string
		caller        auth.Identity
		input         ArticleInput
		expectedError error
		check         func(*testing.T, *model.ArticleView)
	}{
		{
			name:   "author updates provided fields only",
			caller: author,
			input:  ArticleInput{Title: "New title"},
			check: func(t *testing.T, view *model.ArticleView) {
				assert.Equal(t, "New title", view.Title)
				assert.Equal(t, "Original content", view.Content)
				assert.Equal(t, model.CategoryPrivacy, view.Category)
			},
		},
		{
			name:   "new image replaces only the image slot",
			caller: author,
			input:  ArticleInput{ImageURL: "/uploads/new.png"},
			check: func(t *testing.T, view *model.ArticleView) {
				assert.Equal(t, "/uploads/new.png", view.ImageURL)
				assert.Empty(t, view.VideoURL)
			},
		},
		{
			name:   "admin may edit another author's article",
			caller: testIdentity(true),
			input:  ArticleInput{Title: "Moderated title"},
			check: func(t *testing.T, view *model.ArticleView) {
				assert.Equal(t, "Moderated title", view.Title)
			},
		},
		{
			name:          "non-author non-admin is forbidden",
			caller:        testIdentity(false),
			input:         ArticleInput{Title: "Hijacked"},
			expectedError: apperrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockArticleRepository)
			mockRepo.On("FindByID", mock.Anything, articleID).Return(stored(), nil)
			if tt.expectedError == nil {
				mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Article")).Return(nil)
			}

			service := NewArticleService(mockRepo, new(MockMediaStore))
			view, err := service.Update(context.Background(), articleID, tt.caller, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, view)
			} else {
				assert.NoError(t, err)
				tt.check(t, view)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestArticleService_Delete(t *testing.T) {
	author := testIdentity(false)
	articleID := uuid.New()

	t.Run("author delete cleans up attached media", func(t *testing.T) {
		mockRepo := new(MockArticleRepository)
		mockRepo.On("FindByID", mock.Anything, articleID).Return(&model.Article{
			ID:       articleID,
			Author:   author.Snapshot(),
			ImageURL: "/uploads/img.png",
			VideoURL: "/uploads/vid.mp4",
		}, nil)
		mockRepo.On("Delete", mock.Anything, articleID).Return(nil)

		mockMedia := new(MockMediaStore)
		mockMedia.On("Remove", "/uploads/img.png").Return(nil)
		mockMedia.On("Remove", "/uploads/vid.mp4").Return(nil)

		service := NewArticleService(mockRepo, mockMedia)
		err := service.Delete(context.Background(), articleID, author)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockMedia.AssertExpectations(t)
	})

	t.Run("missing media file does not block the delete", func(t *testing.T) {
		mockRepo := new(MockArticleRepository)
		mockRepo.On("FindByID", mock.Anything, articleID).Return(&model.Article{
			ID:       articleID,
			Author:   author.Snapshot(),
			ImageURL: "/uploads/gone.png",
		}, nil)
		mockRepo.On("Delete", mock.Anything, articleID).Return(nil)

		mockMedia := new(MockMediaStore)
		mockMedia.On("Remove", "/uploads/gone.png").Return(assert.AnError)

		service := NewArticleService(mockRepo, mockMedia)
		err := service.Delete(context.Background(), articleID, author)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-author non-admin is forbidden", func(t *testing.T) {
		mockRepo := new(MockArticleRepository)
		mockRepo.On("FindByID", mock.Anything, articleID).Return(&model.Article{
			ID:     articleID,
			Author: author.Snapshot(),
		}, nil)

		service := NewArticleService(mockRepo, new(MockMediaStore))
		err := service.Delete(context.Background(), articleID, testIdentity(false))

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		mockRepo.AssertExpectations(t)
	})
}

func TestArticleService_ToggleLike(t *testing.T) {
	caller := testIdentity(false)
	articleID := uuid.New()

	t.Run("returns the resulting like set", func(t *testing.T) {
		mockRepo := new(MockArticleRepository)
		mockRepo.On("FindByID", mock.Anything, articleID).Return(&model.Article{ID: articleID}, nil)
		mockRepo.On("ToggleLike", mock.Anything, articleID, caller.ID).Return(nil)
		mockRepo.On("ListLikes", mock.Anything, articleID).Return([]uuid.UUID{caller.ID}, nil)

		service := NewArticleService(mockRepo, new(MockMediaStore))
		likes, err := service.ToggleLike(context.Background(), articleID, caller)

		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{caller.ID}, likes)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown article", func(t *testing.T) {
		mockRepo := new(MockArticleRepository)
		mockRepo.On("FindByID", mock.Anything, articleID).Return(nil, gorm.ErrRecordNotFound)

		service := NewArticleService(mockRepo, new(MockMediaStore))
		_, err := service.ToggleLike(context.Background(), articleID, caller)

		assert.ErrorIs(t, err, apperrors.ErrArticleNotFound)
	})
}

func TestArticleService_DeleteComment(t *testing.T) {
	commentAuthor := testIdentity(false)
	articleID := uuid.New()
	commentID := uuid.New()

	comment := func() *model.Comment {
		return &model.Comment{
			ID:        commentID,
			ArticleID: articleID,
			User:      commentAuthor.Snapshot(),
			Content:   "a remark",
		}
	}

	tests := []struct {
		name          string
		caller        auth.Identity
		expectedError error
	}{
		{name: "comment author may delete", caller: commentAuthor},
		{name: "admin may delete any comment", caller: testIdentity(true)},
		{name: "other users are forbidden", caller: testIdentity(false), expectedError: apperrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockArticleRepository)
			mockRepo.On("FindByID", mock.Anything, articleID).Return(&model.Article{ID: articleID}, nil)
			mockRepo.On("FindComment", mock.Anything, articleID, commentID).Return(comment(), nil)
			if tt.expectedError == nil {
				mockRepo.On("DeleteComment", mock.Anything, commentID).Return(nil)
			}

			service := NewArticleService(mockRepo, new(MockMediaStore))
			err := service.DeleteComment(context.Background(), articleID, commentID, tt.caller)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}

	t.Run("unknown comment", func(t *testing.T) {
		mockRepo := new(MockArticleRepository)
		mockRepo.On("FindByID", mock.Anything, articleID).Return(&model.Article{ID: articleID}, nil)
		mockRepo.On("FindComment", mock.Anything, articleID, commentID).Return(nil, gorm.ErrRecordNotFound)

		service := NewArticleService(mockRepo, new(MockMediaStore))
		err := service.DeleteComment(context.Background(), articleID, commentID, commentAuthor)

		assert.ErrorIs(t, err, apperrors.ErrCommentNotFound)
	})
}

func TestArticleService_List(t *testing.T) {
	mockRepo := new(MockArticleRepository)
	// Page and limit default when the caller omits them.
	mockRepo.On("Search", mock.Anything, repository.ArticleFilter{Page: 1, Limit: 10}).
		Return([]model.Article{{ID: uuid.New(), Title: "one"}}, int64(25), nil)

	service := NewArticleService(mockRepo, new(MockMediaStore))
	page, err := service.List(context.Background(), repository.ArticleFilter{})

	assert.NoError(t, err)
	assert.Len(t, page.Articles, 1)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	mockRepo.AssertExpectations(t)
}
