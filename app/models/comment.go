package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	COMMENT_STATUS_APPROVED = "approved"
	COMMENT_STATUS_PENDING  = "pending"

	// Shown when a reader leaves the name field empty.
	COMMENT_DEFAULT_AUTHOR = "Leser:in"
)

type Comment struct {
	ID         uint64         `gorm:"primaryKey" json:"id"`
	StoryID    uint64         `gorm:"index" json:"story_id"`
	Story      Story          `gorm:"foreignKey:StoryID" json:"-"`
	AuthorName string         `gorm:"type:varchar(150);default:'Leser:in'" json:"author_name"`
	Body       string         `gorm:"type:text" json:"body" validate:"required,min=1"`
	Status     string         `gorm:"type:varchar(50);default:'approved'" json:"status" validate:"oneof=approved pending"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Comment) Validate() error {
	v := validator.New()
	return v.Struct(c)
}
