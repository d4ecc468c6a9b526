package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"securehub/internal/model"
)

// SecurityTipRepository defines security tip persistence operations.
type SecurityTipRepository interface {
	Create(ctx context.Context, tip *model.SecurityTip) error
	Update(ctx context.Context, tip *model.SecurityTip) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SecurityTip, error)
	List(ctx context.Context) ([]model.SecurityTip, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	FindAtOffset(ctx context.Context, offset int) (*model.SecurityTip, error)
}

type securityTipRepository struct {
	db *gorm.DB
}

// NewSecurityTipRepository creates a new security tip repository.
func NewSecurityTipRepository(db *gorm.DB) SecurityTipRepository {
	return &securityTipRepository{db: db}
}

// Create creates a new security tip.
func (r *securityTipRepository) Create(ctx context.Context, tip *model.SecurityTip) error {
	return r.db.WithContext(ctx).Create(tip).Error
}

// Update persists all fields of an existing tip.
func (r *securityTipRepository) Update(ctx context.Context, tip *model.SecurityTip) error {
	return r.db.WithContext(ctx).Save(tip).Error
}

// FindByID finds a tip by ID.
func (r *securityTipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SecurityTip, error) {
	var tip model.SecurityTip
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tip).Error; err != nil {
		return nil, err
	}
	return &tip, nil
}

// List returns all tips, newest first.
func (r *securityTipRepository) List(ctx context.Context) ([]model.SecurityTip, error) {
	var tips []model.SecurityTip
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

// Delete removes a tip by ID.
func (r *securityTipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SecurityTip{}).Error
}

// Count returns the total number of tips.
func (r *securityTipRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.SecurityTip{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindAtOffset returns the tip at the given position, used for random selection.
func (r *securityTipRepository) FindAtOffset(ctx context.Context, offset int) (*model.SecurityTip, error) {
	var tip model.SecurityTip
	if err := r.db.WithContext(ctx).Offset(offset).First(&tip).Error; err != nil {
		return nil, err
	}
	return &tip, nil
}
