package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bookmark pairs a user with an article. The composite unique index enforces at
// most one bookmark per (user, article) pair. Bookmarks may outlive the article
// they point at; read paths skip pairs that no longer resolve.
type Bookmark struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);not null;uniqueIndex:idx_user_article_bookmark"`
	ArticleID uuid.UUID `json:"articleId" gorm:"type:char(36);not null;uniqueIndex:idx_user_article_bookmark"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate sets the UUID before creating the record.
func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
