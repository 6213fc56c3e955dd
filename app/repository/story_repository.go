package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/levitenleser/levitenleser/app/models"
)

// storyRepository implements the StoryRepository interface
type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository creates a new story repository instance
func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

// Create inserts a new story. A violated slug unique index surfaces as
// gorm.ErrDuplicatedKey for the caller to translate.
func (r *storyRepository) Create(story *models.Story) error {
	return r.db.Create(story).Error
}

// GetByID retrieves a story by its ID
func (r *storyRepository) GetByID(id uint64) (*models.Story, error) {
	var story models.Story
	err := r.db.First(&story, id).Error
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// GetBySlug retrieves a story by its slug
func (r *storyRepository) GetBySlug(slug string) (*models.Story, error) {
	var story models.Story
	err := r.db.Where("slug = ?", slug).First(&story).Error
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// GetAll retrieves every story, newest creation first
func (r *storyRepository) GetAll() ([]models.Story, error) {
	var list []models.Story
	err := r.db.Order("created_at DESC").Find(&list).Error
	return list, err
}

// GetAllWithCommentCounts retrieves every story and fills CommentsCount
// from the approved comments per story.
func (r *storyRepository) GetAllWithCommentCounts() ([]models.Story, error) {
	list, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	type commentCount struct {
		StoryID uint64
		Total   int64
	}
	var counts []commentCount
	err = r.db.Model(&models.Comment{}).
		Select("story_id, COUNT(*) AS total").
		Where("status = ?", models.COMMENT_STATUS_APPROVED).
		Group("story_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	byStory := make(map[uint64]int64, len(counts))
	for _, c := range counts {
		byStory[c.StoryID] = c.Total
	}
	for i := range list {
		list[i].CommentsCount = byStory[list[i].ID]
	}
	return list, nil
}

// Update saves an existing story
func (r *storyRepository) Update(story *models.Story) error {
	return r.db.Save(story).Error
}

// Delete removes a story for good. The row is gone afterwards, so the
// slug becomes available for the resolver again.
func (r *storyRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Story{}, id).Error
}

// Count returns the total number of stories
func (r *storyRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Story{}).Count(&count).Error
	return count, err
}

// FindIDBySlug is the exact-match point lookup used by the uniqueness
// resolver. "No row" and "zero rows" are the same answer here; only
// transport failures come back as errors.
func (r *storyRepository) FindIDBySlug(slug string) (uint64, bool, error) {
	var story models.Story
	err := r.db.Select("id").Where("slug = ?", slug).First(&story).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("slug lookup for %q: %w", slug, err)
	}
	return story.ID, true, nil
}
