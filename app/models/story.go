package models

import (
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/levitenleser/levitenleser/internal/pkg/stories"
)

// Story is one published short story. Date stays free text the way authors
// type it; the normalizer decides on save and display what it means.
type Story struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"type:varchar(255)" json:"title" validate:"required,min=1,max=255"`
	Slug     string `gorm:"uniqueIndex;type:varchar(255)" json:"slug" validate:"required,min=1,max=255"`
	Category string `gorm:"type:varchar(100);default:'Feuilleton'" json:"category"`
	Date     string `gorm:"type:varchar(100)" json:"date" validate:"required"`
	ReadTime string `gorm:"type:varchar(50)" json:"read_time"`
	Tag      string `gorm:"type:varchar(100)" json:"tag"`
	Excerpt  string `gorm:"type:text" json:"excerpt" validate:"required"`
	Body     string `gorm:"type:longtext" json:"body"`
	Author   string `gorm:"type:varchar(150)" json:"author"`

	// No soft delete: removing a story is irreversible and frees its slug.
	// A deleted_at scope would hide rows from the resolver that the unique
	// slug index still enforces.
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Filled by the repository from the comments table, not a column.
	CommentsCount int64 `gorm:"-" json:"comments_count"`
}

// TableName specifies the table name for the Story model
func (Story) TableName() string {
	return "stories"
}

func (s *Story) Validate() error {
	v := validator.New()
	return v.Struct(s)
}

// HasBody reports whether the story is openable in the reader view.
// Stories without a body render only their excerpt.
func (s *Story) HasBody() bool {
	return strings.TrimSpace(s.Body) != ""
}

// DisplayTag returns the badge shown in listings, falling back to the
// category when no tag is set.
func (s *Story) DisplayTag() string {
	if t := strings.TrimSpace(s.Tag); t != "" {
		return t
	}
	return strings.TrimSpace(s.Category)
}

// PublishedAt is the instant used for ordering: the repository timestamp
// when present, otherwise the parsed date field. Stories with neither sort
// last.
func (s *Story) PublishedAt() (time.Time, bool) {
	if !s.CreatedAt.IsZero() {
		return s.CreatedAt, true
	}
	return stories.ParseStoryDate(s.Date)
}

// DateHuman renders the publication date in the long German form, keeping
// the raw text when it does not parse so authors can spot and fix it.
func (s *Story) DateHuman() string {
	return stories.NormalizeDateInput(s.Date)
}

// SortStories orders newest first by PublishedAt; undatable stories go to
// the end.
func SortStories(list []Story) []Story {
	sorted := make([]Story, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, oki := sorted[i].PublishedAt()
		tj, okj := sorted[j].PublishedAt()
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		return ti.After(tj)
	})
	return sorted
}
