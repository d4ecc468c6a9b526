package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "securehub/internal/errors"
	"securehub/internal/model"
)

// MockBookmarkRepository is a mock implementation of BookmarkRepository.
type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) Create(ctx context.Context, bookmark *model.Bookmark) error {
	args := m.Called(ctx, bookmark)
	return args.Error(0)
}

func (m *MockBookmarkRepository) Find(ctx context.Context, userID, articleID uuid.UUID) (*model.Bookmark, error) {
	args := m.Called(ctx, userID, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) Delete(ctx context.Context, userID, articleID uuid.UUID) error {
	args := m.Called(ctx, userID, articleID)
	return args.Error(0)
}

func (m *MockBookmarkRepository) ListArticles(ctx context.Context, userID uuid.UUID) ([]model.Article, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Article), args.Error(1)
}

func TestBookmarkService_Add(t *testing.T) {
	userID := uuid.New()
	articleID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockBookmarkRepository, *MockArticleRepository)
		expectedError error
	}{
		{
			name: "successful add",
			setupMock: func(mBookmark *MockBookmarkRepository, mArticle *MockArticleRepository) {
				mArticle.On("FindByID", mock.Anything, articleID).Return(&model.Article{ID: articleID}, nil)
				mBookmark.On("Find", mock.Anything, userID, articleID).Return(nil, gorm.ErrRecordNotFound)
				mBookmark.On("Create", mock.Anything, mock.AnythingOfType("*model.Bookmark")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "unknown article",
			setupMock: func(mBookmark *MockBookmarkRepository, mArticle *MockArticleRepository) {
				mArticle.On("FindByID", mock.Anything, articleID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrArticleNotFound,
		},
		{
			name: "same pair cannot be added twice",
			setupMock: func(mBookmark *MockBookmarkRepository, mArticle *MockArticleRepository) {
				mArticle.On("FindByID", mock.Anything, articleID).Return(&model.Article{ID: articleID}, nil)
				mBookmark.On("Find", mock.Anything, userID, articleID).
					Return(&model.Bookmark{UserID: userID, ArticleID: articleID}, nil)
			},
			expectedError: apperrors.ErrAlreadyBookmarked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBookmarkRepo := new(MockBookmarkRepository)
			mockArticleRepo := new(MockArticleRepository)
			tt.setupMock(mockBookmarkRepo, mockArticleRepo)

			service := NewBookmarkService(mockBookmarkRepo, mockArticleRepo)
			err := service.Add(context.Background(), userID, articleID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			mockBookmarkRepo.AssertExpectations(t)
			mockArticleRepo.AssertExpectations(t)
		})
	}
}

func TestBookmarkService_Remove(t *testing.T) {
	userID := uuid.New()
	articleID := uuid.New()

	// Removing an absent pair is a no-op, not an error.
	mockBookmarkRepo := new(MockBookmarkRepository)
	mockBookmarkRepo.On("Delete", mock.Anything, userID, articleID).Return(nil)

	service := NewBookmarkService(mockBookmarkRepo, new(MockArticleRepository))
	err := service.Remove(context.Background(), userID, articleID)

	assert.NoError(t, err)
	mockBookmarkRepo.AssertExpectations(t)
}

func TestBookmarkService_IsBookmarked(t *testing.T) {
	userID := uuid.New()
	articleID := uuid.New()

	t.Run("existing pair", func(t *testing.T) {
		mockBookmarkRepo := new(MockBookmarkRepository)
		mockBookmarkRepo.On("Find", mock.Anything, userID, articleID).
			Return(&model.Bookmark{UserID: userID, ArticleID: articleID}, nil)

		service := NewBookmarkService(mockBookmarkRepo, new(MockArticleRepository))
		bookmarked, err := service.IsBookmarked(context.Background(), userID, articleID)

		assert.NoError(t, err)
		assert.True(t, bookmarked)
	})

	t.Run("absent pair", func(t *testing.T) {
		mockBookmarkRepo := new(MockBookmarkRepository)
		mockBookmarkRepo.On("Find", mock.Anything, userID, articleID).Return(nil, gorm.ErrRecordNotFound)

		service := NewBookmarkService(mockBookmarkRepo, new(MockArticleRepository))
		bookmarked, err := service.IsBookmarked(context.Background(), userID, articleID)

		assert.NoError(t, err)
		assert.False(t, bookmarked)
	})
}
