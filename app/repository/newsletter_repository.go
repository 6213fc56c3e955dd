package repository

import (
	"gorm.io/gorm"

	"github.com/levitenleser/levitenleser/app/models"
)

// newsletterRepository implements the NewsletterRepository interface
type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository creates a new newsletter repository instance
func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

// Create inserts a signup. The unique index on email makes the duplicate
// case a gorm.ErrDuplicatedKey, which the controller turns into the
// "already subscribed" notice.
func (r *newsletterRepository) Create(signup *models.NewsletterSignup) error {
	return r.db.Create(signup).Error
}

// EmailExists checks whether an address is already subscribed
func (r *newsletterRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.NewsletterSignup{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// GetAllEmails returns every subscriber address for a dispatch run
func (r *newsletterRepository) GetAllEmails() ([]string, error) {
	var emails []string
	err := r.db.Model(&models.NewsletterSignup{}).Order("created_at ASC").Pluck("email", &emails).Error
	return emails, err
}

// DeleteByToken removes the signup carrying the unsubscribe token and
// reports whether one existed.
func (r *newsletterRepository) DeleteByToken(token string) (bool, error) {
	result := r.db.Where("unsubscribe_token = ?", token).Delete(&models.NewsletterSignup{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Count returns the number of subscribers
func (r *newsletterRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.NewsletterSignup{}).Count(&count).Error
	return count, err
}
