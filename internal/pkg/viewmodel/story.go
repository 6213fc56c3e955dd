package viewmodel

import (
	"github.com/levitenleser/levitenleser/app/models"
	"github.com/levitenleser/levitenleser/internal/pkg/stories"
)

// StoryTeaser is a story prepared for a listing card.
type StoryTeaser struct {
	ID            uint64
	Title         string
	Slug          string
	Date          string
	ReadTime      string
	Tag           string
	Excerpt       string
	Author        string
	Openable      bool
	CommentsCount int64
}

// NewStoryTeaser normalizes a story for display: human date form, "<n> Min"
// read time, tag falling back to category.
func NewStoryTeaser(s models.Story) StoryTeaser {
	return StoryTeaser{
		ID:            s.ID,
		Title:         s.Title,
		Slug:          s.Slug,
		Date:          s.DateHuman(),
		ReadTime:      stories.NormalizeReadTime(s.ReadTime),
		Tag:           s.DisplayTag(),
		Excerpt:       s.Excerpt,
		Author:        s.Author,
		Openable:      s.HasBody(),
		CommentsCount: s.CommentsCount,
	}
}

// NewStoryTeasers maps a sorted story list into teasers.
func NewStoryTeasers(list []models.Story) []StoryTeaser {
	teasers := make([]StoryTeaser, 0, len(list))
	for _, s := range list {
		teasers = append(teasers, NewStoryTeaser(s))
	}
	return teasers
}
