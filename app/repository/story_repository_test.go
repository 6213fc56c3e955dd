package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/levitenleser/levitenleser/app/models"
	"github.com/levitenleser/levitenleser/internal/pkg/stories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Story{}))
	return db
}

func herbststory(slug string) *models.Story {
	return &models.Story{
		Title:   "Herbstlicht",
		Slug:    slug,
		Date:    "13. Oktober 2024",
		Excerpt: "Über das Licht im Oktober.",
	}
}

func TestStoryRepository_FindIDBySlug(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))

	story := herbststory("herbstlicht")
	require.NoError(t, repo.Create(story))

	id, found, err := repo.FindIDBySlug("herbstlicht")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, story.ID, id)

	_, found, err = repo.FindIDBySlug("nie-gesehen")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoryRepository_DuplicateSlug(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))

	require.NoError(t, repo.Create(herbststory("herbstlicht")))

	err := repo.Create(herbststory("herbstlicht"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

// Deleting a story must genuinely free its slug: the resolver and the
// unique index have to agree on which slugs are taken, otherwise a
// recreated story can never be saved under its old address.
func TestStoryRepository_DeleteFreesSlug(t *testing.T) {
	repo := NewStoryRepository(newTestDB(t))

	story := herbststory("herbstlicht")
	require.NoError(t, repo.Create(story))
	require.NoError(t, repo.Delete(story.ID))

	_, found, err := repo.FindIDBySlug("herbstlicht")
	require.NoError(t, err)
	assert.False(t, found, "deleted story must not occupy its slug")

	slug, err := stories.ResolveUniqueSlug(repo, "herbstlicht", 0)
	require.NoError(t, err)
	assert.Equal(t, "herbstlicht", slug)

	assert.NoError(t, repo.Create(herbststory(slug)), "recreating under the freed slug must succeed")
}
