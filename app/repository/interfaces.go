package repository

import (
	"gorm.io/gorm"

	"github.com/levitenleser/levitenleser/app/models"
)

// StoryRepository defines the interface for story-related database operations.
// FindIDBySlug doubles as the slug directory for the uniqueness resolver:
// an absent row is (0, false, nil), never an error.
type StoryRepository interface {
	Create(story *models.Story) error
	GetByID(id uint64) (*models.Story, error)
	GetBySlug(slug string) (*models.Story, error)
	GetAll() ([]models.Story, error)
	GetAllWithCommentCounts() ([]models.Story, error)
	Update(story *models.Story) error
	Delete(id uint64) error
	Count() (int64, error)
	FindIDBySlug(slug string) (uint64, bool, error)
}

// CommentRepository defines the interface for comment-related operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetApprovedByStoryID(storyID uint64) ([]models.Comment, error)
	CountApprovedByStoryID(storyID uint64) (int64, error)
	Delete(id uint64) error
}

// NewsletterRepository defines the interface for newsletter signups
type NewsletterRepository interface {
	Create(signup *models.NewsletterSignup) error
	EmailExists(email string) (bool, error)
	GetAllEmails() ([]string, error)
	DeleteByToken(token string) (bool, error)
	Count() (int64, error)
}

// UserRepository defines the interface for author account operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByActivationToken(token string) (*models.User, error)
	Update(user *models.User) error
}

// AllowlistRepository answers whether an address may register for the CMS.
// FindByEmail returns (nil, nil) for an address that is not listed.
type AllowlistRepository interface {
	FindByEmail(email string) (*models.AuthorAllowlist, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Story      StoryRepository
	Comment    CommentRepository
	Newsletter NewsletterRepository
	User       UserRepository
	Allowlist  AllowlistRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Story:      NewStoryRepository(db),
		Comment:    NewCommentRepository(db),
		Newsletter: NewNewsletterRepository(db),
		User:       NewUserRepository(db),
		Allowlist:  NewAllowlistRepository(db),
	}
}
