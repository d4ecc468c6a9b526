package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Article categories accepted by the platform.
const (
	CategoryCybersecurity   = "cybersecurity"
	CategoryPrivacy         = "privacy"
	CategoryEthicalHacking  = "ethical-hacking"
	CategoryNetworkSecurity = "network-security"
)

// Categories lists all valid article categories.
var Categories = []string{
	CategoryCybersecurity,
	CategoryPrivacy,
	CategoryEthicalHacking,
	CategoryNetworkSecurity,
}

// Article is the aggregate root for posts. Likes and comments belong to the
// aggregate and are only modified through article operations.
type Article struct {
	ID        uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string        `json:"title" gorm:"size:200;not null"`
	Content   string        `json:"content" gorm:"type:text;not null"`
	Author    UserSnapshot  `json:"author" gorm:"embedded;embeddedPrefix:author_"`
	Category  string        `json:"category" gorm:"size:64;not null;index"`
	Tags      []string      `json:"tags" gorm:"serializer:json;type:text"`
	ReadTime  int           `json:"readTime" gorm:"not null"`
	ImageURL  string        `json:"imageUrl,omitempty" gorm:"size:512"`
	VideoURL  string        `json:"videoUrl,omitempty" gorm:"size:512"`
	Views     int64         `json:"views" gorm:"default:0"`
	Likes     []ArticleLike `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	Comments  []Comment     `json:"-" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// BeforeCreate sets the UUID before creating the record.
func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsAuthoredBy reports whether the given user created the article.
func (a *Article) IsAuthoredBy(userID uuid.UUID) bool {
	return a.Author.ID == userID
}

// ArticleLike is one entry of an article's like set. The composite primary key
// guarantees a user appears at most once per article.
type ArticleLike struct {
	ArticleID uuid.UUID `json:"articleId" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment is an immutable remark on an article. Comments carry their own UUID so
// deletion can target an exact comment even when one user comments repeatedly.
type Comment struct {
	ID        uuid.UUID    `json:"id" gorm:"type:char(36);primaryKey"`
	ArticleID uuid.UUID    `json:"articleId" gorm:"type:char(36);not null;index"`
	User      UserSnapshot `json:"user" gorm:"embedded;embeddedPrefix:user_"`
	Content   string       `json:"content" gorm:"size:1000;not null"`
	CreatedAt time.Time    `json:"createdAt"`
}

// BeforeCreate sets the UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ArticleView is the read shape handed to clients: the article with its like set
// flattened to user ids and comments inlined.
type ArticleView struct {
	Article
	Likes    []string  `json:"likes"`
	Comments []Comment `json:"comments"`
}

// NewArticleView flattens an article's loaded associations for serialization.
func NewArticleView(a *Article) ArticleView {
	likes := make([]string, 0, len(a.Likes))
	for _, l := range a.Likes {
		likes = append(likes, l.UserID.String())
	}
	comments := a.Comments
	if comments == nil {
		comments = []Comment{}
	}
	return ArticleView{Article: *a, Likes: likes, Comments: comments}
}
