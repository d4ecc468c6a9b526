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

func TestUserService_Update(t *testing.T) {
	userID := uuid.New()

	t.Run("admin flag can be granted", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("FindByID", mock.Anything, userID).Return(&model.User{
			ID:       userID,
			Username: "alice",
			IsAdmin:  false,
		}, nil)
		mockUserRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		service := NewUserService(mockUserRepo, new(MockArticleRepository))

		isAdmin := true
		user, err := service.Update(context.Background(), userID, UserUpdate{IsAdmin: &isAdmin})

		assert.NoError(t, err)
		assert.True(t, user.IsAdmin)
		assert.Equal(t, "alice", user.Username)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockUserRepo, new(MockArticleRepository))
		_, err := service.Update(context.Background(), userID, UserUpdate{})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	userID := uuid.New()

	t.Run("successful delete", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
		mockUserRepo.On("Delete", mock.Anything, userID).Return(nil)

		service := NewUserService(mockUserRepo, new(MockArticleRepository))
		err := service.Delete(context.Background(), userID)

		assert.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		mockUserRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(mockUserRepo, new(MockArticleRepository))
		err := service.Delete(context.Background(), userID)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_Stats(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockArticleRepo := new(MockArticleRepository)
	mockUserRepo.On("Count", mock.Anything).Return(int64(12), nil)
	mockArticleRepo.On("Count", mock.Anything).Return(int64(34), nil)

	service := NewUserService(mockUserRepo, mockArticleRepo)
	stats, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalUsers)
	assert.Equal(t, int64(34), stats.TotalArticles)
}
