package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "securehub/internal/errors"
	"securehub/internal/model"
	"securehub/internal/repository"
)

// SecurityTipService exposes CRUD plus random selection over security tips.
type SecurityTipService interface {
	Create(ctx context.Context, content, category string) (*model.SecurityTip, error)
	List(ctx context.Context) ([]model.SecurityTip, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.SecurityTip, error)
	Update(ctx context.Context, id uuid.UUID, content, category string) (*model.SecurityTip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Random(ctx context.Context) (*model.SecurityTip, error)
}

type securityTipService struct {
	tipRepo repository.SecurityTipRepository
}

// NewSecurityTipService creates a new security tip service.
func NewSecurityTipService(tipRepo repository.SecurityTipRepository) SecurityTipService {
	return &securityTipService{tipRepo: tipRepo}
}

// Create stores a new tip.
func (s *securityTipService) Create(ctx context.Context, content, category string) (*model.SecurityTip, error) {
	tip := &model.SecurityTip{Content: content, Category: category}
	if err := s.tipRepo.Create(ctx, tip); err != nil {
		return nil, fmt.Errorf("create tip: %w", err)
	}
	return tip, nil
}

// List returns all tips, newest first.
func (s *securityTipService) List(ctx context.Context) ([]model.SecurityTip, error) {
	return s.tipRepo.List(ctx)
}

// GetByID returns a single tip.
func (s *securityTipService) GetByID(ctx context.Context, id uuid.UUID) (*model.SecurityTip, error) {
	return s.findTip(ctx, id)
}

// Update replaces the provided fields, keeping stored values for empty ones.
func (s *securityTipService) Update(ctx context.Context, id uuid.UUID, content, category string) (*model.SecurityTip, error) {
	tip, err := s.findTip(ctx, id)
	if err != nil {
		return nil, err
	}

	if content != "" {
		tip.Content = content
	}
	if category != "" {
		tip.Category = category
	}

	if err := s.tipRepo.Update(ctx, tip); err != nil {
		return nil, fmt.Errorf("update tip: %w", err)
	}
	return tip, nil
}

// Delete removes a tip.
func (s *securityTipService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findTip(ctx, id); err != nil {
		return err
	}
	if err := s.tipRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tip: %w", err)
	}
	return nil
}

// Random returns a uniformly chosen tip.
func (s *securityTipService) Random(ctx context.Context) (*model.SecurityTip, error) {
	count, err := s.tipRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tips: %w", err)
	}
	if count == 0 {
		return nil, apperrors.ErrTipNotFound
	}

	tip, err := s.tipRepo.FindAtOffset(ctx, rand.Intn(int(count)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTipNotFound
		}
		return nil, fmt.Errorf("find tip: %w", err)
	}
	return tip, nil
}

func (s *securityTipService) findTip(ctx context.Context, id uuid.UUID) (*model.SecurityTip, error) {
	tip, err := s.tipRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTipNotFound
		}
		return nil, fmt.Errorf("find tip: %w", err)
	}
	return tip, nil
}
