package stories

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDirectory answers slug lookups from an in-memory map.
type fakeDirectory struct {
	slugs   map[string]uint64
	lookups int
	err     error
}

func (d *fakeDirectory) FindIDBySlug(slug string) (uint64, bool, error) {
	d.lookups++
	if d.err != nil {
		return 0, false, d.err
	}
	id, ok := d.slugs[slug]
	return id, ok, nil
}

func TestResolveUniqueSlug(t *testing.T) {
	t.Parallel()

	t.Run("free candidate is accepted unchanged", func(t *testing.T) {
		dir := &fakeDirectory{slugs: map[string]uint64{}}
		got, err := ResolveUniqueSlug(dir, "herbstlicht", 0)
		require.NoError(t, err)
		assert.Equal(t, "herbstlicht", got)
		assert.Equal(t, 1, dir.lookups)
	})

	t.Run("suffix counts up from the original base", func(t *testing.T) {
		dir := &fakeDirectory{slugs: map[string]uint64{
			"geschichte":   1,
			"geschichte-1": 2,
		}}
		got, err := ResolveUniqueSlug(dir, "geschichte", 0)
		require.NoError(t, err)
		assert.Equal(t, "geschichte-2", got)
	})

	t.Run("editing a story does not collide with itself", func(t *testing.T) {
		dir := &fakeDirectory{slugs: map[string]uint64{"mein-text": 42}}
		got, err := ResolveUniqueSlug(dir, "mein-text", 42)
		require.NoError(t, err)
		assert.Equal(t, "mein-text", got)
	})

	t.Run("collision with another story while editing", func(t *testing.T) {
		dir := &fakeDirectory{slugs: map[string]uint64{"mein-text": 7}}
		got, err := ResolveUniqueSlug(dir, "mein-text", 42)
		require.NoError(t, err)
		assert.Equal(t, "mein-text-1", got)
	})

	t.Run("empty candidate defaults", func(t *testing.T) {
		dir := &fakeDirectory{slugs: map[string]uint64{}}
		got, err := ResolveUniqueSlug(dir, "", 0)
		require.NoError(t, err)
		assert.Equal(t, "geschichte", got)
	})

	t.Run("leading hyphens are stripped", func(t *testing.T) {
		dir := &fakeDirectory{slugs: map[string]uint64{}}
		got, err := ResolveUniqueSlug(dir, "--nacht", 0)
		require.NoError(t, err)
		assert.Equal(t, "nacht", got)
	})

	t.Run("lookup failure aborts instead of guessing", func(t *testing.T) {
		cause := fmt.Errorf("connection refused")
		dir := &fakeDirectory{err: cause}
		_, err := ResolveUniqueSlug(dir, "herbstlicht", 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSlugLookupFailed)
		assert.Equal(t, 1, dir.lookups)
	})

	t.Run("exhausts after the attempt budget", func(t *testing.T) {
		// Every candidate collides with a foreign story.
		dir := &fakeDirectory{slugs: map[string]uint64{"basis": 1}}
		for i := 1; i <= maxSlugAttempts; i++ {
			dir.slugs[fmt.Sprintf("basis-%d", i)] = uint64(i + 1)
		}
		_, err := ResolveUniqueSlug(dir, "basis", 0)
		assert.True(t, errors.Is(err, ErrSlugResolutionExhausted))
		assert.Equal(t, maxSlugAttempts, dir.lookups)
	})
}

func TestResolveUniqueSlug_BackToBackTitles(t *testing.T) {
	t.Parallel()

	// Two stories titled "Herbstlicht" saved one after the other must end
	// up under distinct slugs that both resolve by exact lookup.
	dir := &fakeDirectory{slugs: map[string]uint64{}}

	first, err := ResolveUniqueSlug(dir, Slugify("Herbstlicht"), 0)
	require.NoError(t, err)
	dir.slugs[first] = 1

	second, err := ResolveUniqueSlug(dir, Slugify("Herbstlicht"), 0)
	require.NoError(t, err)
	dir.slugs[second] = 2

	assert.NotEqual(t, first, second)
	assert.Contains(t, []string{"herbstlicht", "herbstlicht-1"}, first)
	assert.Contains(t, []string{"herbstlicht", "herbstlicht-1"}, second)

	id, found, err := dir.FindIDBySlug(first)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(1), id)

	id, found, err = dir.FindIDBySlug(second)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(2), id)
}
