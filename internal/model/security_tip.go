package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SecurityTip is a standalone piece of advice with no relation to other entities.
type SecurityTip struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Category  string    `json:"category" gorm:"size:128;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets the UUID before creating the record.
func (t *SecurityTip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
