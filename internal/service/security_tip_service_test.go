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

// MockSecurityTipRepository is a mock implementation of SecurityTipRepository.
type MockSecurityTipRepository struct {
	mock.Mock
}

func (m *MockSecurityTipRepository) Create(ctx context.Context, tip *model.SecurityTip) error {
	args := m.Called(ctx, tip)
	return args.Error(0)
}

func (m *MockSecurityTipRepository) Update(ctx context.Context, tip *model.SecurityTip) error {
	args := m.Called(ctx, tip)
	return args.Error(0)
}

func (m *MockSecurityTipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SecurityTip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SecurityTip), args.Error(1)
}

func (m *MockSecurityTipRepository) List(ctx context.Context) ([]model.SecurityTip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SecurityTip), args.Error(1)
}

func (m *MockSecurityTipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSecurityTipRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSecurityTipRepository) FindAtOffset(ctx context.Context, offset int) (*model.SecurityTip, error) {
	args := m.Called(ctx, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SecurityTip), args.Error(1)
}

func TestSecurityTipService_Random(t *testing.T) {
	t.Run("returns a stored tip", func(t *testing.T) {
		tip := &model.SecurityTip{ID: uuid.New(), Content: "Use a password manager.", Category: "Password Security"}

		mockRepo := new(MockSecurityTipRepository)
		mockRepo.On("Count", mock.Anything).Return(int64(3), nil)
		mockRepo.On("FindAtOffset", mock.Anything, mock.AnythingOfType("int")).Return(tip, nil)

		service := NewSecurityTipService(mockRepo)
		got, err := service.Random(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, tip, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("no tips stored", func(t *testing.T) {
		mockRepo := new(MockSecurityTipRepository)
		mockRepo.On("Count", mock.Anything).Return(int64(0), nil)

		service := NewSecurityTipService(mockRepo)
		_, err := service.Random(context.Background())

		assert.ErrorIs(t, err, apperrors.ErrTipNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestSecurityTipService_Update(t *testing.T) {
	tipID := uuid.New()

	t.Run("empty fields keep stored values", func(t *testing.T) {
		mockRepo := new(MockSecurityTipRepository)
		mockRepo.On("FindByID", mock.Anything, tipID).Return(&model.SecurityTip{
			ID:       tipID,
			Content:  "Old content",
			Category: "Email Security",
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.SecurityTip")).Return(nil)

		service := NewSecurityTipService(mockRepo)
		tip, err := service.Update(context.Background(), tipID, "New content", "")

		assert.NoError(t, err)
		assert.Equal(t, "New content", tip.Content)
		assert.Equal(t, "Email Security", tip.Category)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown tip", func(t *testing.T) {
		mockRepo := new(MockSecurityTipRepository)
		mockRepo.On("FindByID", mock.Anything, tipID).Return(nil, gorm.ErrRecordNotFound)

		service := NewSecurityTipService(mockRepo)
		_, err := service.Update(context.Background(), tipID, "x", "y")

		assert.ErrorIs(t, err, apperrors.ErrTipNotFound)
	})
}

func TestSecurityTipService_Delete(t *testing.T) {
	tipID := uuid.New()

	mockRepo := new(MockSecurityTipRepository)
	mockRepo.On("FindByID", mock.Anything, tipID).Return(&model.SecurityTip{ID: tipID}, nil)
	mockRepo.On("Delete", mock.Anything, tipID).Return(nil)

	service := NewSecurityTipService(mockRepo)
	err := service.Delete(context.Background(), tipID)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
