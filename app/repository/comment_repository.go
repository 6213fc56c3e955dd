package repository

import (
	"gorm.io/gorm"

	"github.com/levitenleser/levitenleser/app/models"
)

// commentRepository implements the CommentRepository interface
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create stores a new comment
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetApprovedByStoryID returns the approved comments of a story, newest first
func (r *commentRepository) GetApprovedByStoryID(storyID uint64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("story_id = ? AND status = ?", storyID, models.COMMENT_STATUS_APPROVED).
		Order("created_at DESC").Find(&comments).Error
	return comments, err
}

// CountApprovedByStoryID returns the number of approved comments of a story
func (r *commentRepository) CountApprovedByStoryID(storyID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("story_id = ? AND status = ?", storyID, models.COMMENT_STATUS_APPROVED).
		Count(&count).Error
	return count, err
}

// Delete soft deletes a comment by its ID
func (r *commentRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
