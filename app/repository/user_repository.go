package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/levitenleser/levitenleser/app/models"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new author account
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(id uint64) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByActivationToken retrieves a user by their activation token
func (r *userRepository) GetByActivationToken(token string) (*models.User, error) {
	var user models.User
	err := r.db.Where("activation_token = ?", token).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update saves an existing user
func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// allowlistRepository implements the AllowlistRepository interface
type allowlistRepository struct {
	db *gorm.DB
}

// NewAllowlistRepository creates a new allowlist repository instance
func NewAllowlistRepository(db *gorm.DB) AllowlistRepository {
	return &allowlistRepository{db: db}
}

// FindByEmail returns the allowlist entry for an address, or (nil, nil)
// when the address is not listed.
func (r *allowlistRepository) FindByEmail(email string) (*models.AuthorAllowlist, error) {
	var entry models.AuthorAllowlist
	err := r.db.Where("email = ?", email).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
