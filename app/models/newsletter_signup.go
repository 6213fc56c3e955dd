package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// NewsletterSignup is a single opt-in subscription. The unique index on
// Email is the authoritative duplicate check; the insert either succeeds or
// reports the address as already subscribed.
type NewsletterSignup struct {
	ID               uint64    `gorm:"primaryKey" json:"id"`
	Email            string    `gorm:"uniqueIndex;type:varchar(200)" json:"email" validate:"required,email,max=200"`
	UnsubscribeToken string    `gorm:"uniqueIndex;type:varchar(64)" json:"-"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the NewsletterSignup model
func (NewsletterSignup) TableName() string {
	return "newsletter_signups"
}

func (n *NewsletterSignup) Validate() error {
	v := validator.New()
	return v.Struct(n)
}

// NewNewsletterSignup builds a signup for a normalized address with a fresh
// unsubscribe token.
func NewNewsletterSignup(email string) *NewsletterSignup {
	return &NewsletterSignup{
		Email:            email,
		UnsubscribeToken: uuid.NewString(),
	}
}
