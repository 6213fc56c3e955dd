package sitemap

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levitenleser/levitenleser/app/models"
)

func TestEntriesFromStories(t *testing.T) {
	created := time.Date(2024, time.March, 12, 9, 30, 0, 0, time.UTC)

	list := []models.Story{
		{ID: 1, Title: "Die Steuererklärung", Slug: "die-steuererklaerung", Date: "12. März 2024", CreatedAt: created},
		{ID: 2, Title: "Der Elfmeter", Date: "13. März 2024"},
		{ID: 3, Title: "Ohne Datum", Date: "irgendwann"},
	}

	entries := EntriesFromStories(list)
	require.Len(t, entries, 3)

	assert.Equal(t, "die-steuererklaerung", entries[0].Slug)
	assert.Equal(t, "2024-03-12T09:30:00Z", entries[0].LastMod)

	// missing slug falls back to the slugified title with id suffix
	assert.Equal(t, "der-elfmeter-2", entries[1].Slug)
	assert.Equal(t, "2024-03-13T00:00:00Z", entries[1].LastMod)

	// no timestamp and no parseable date: lastmod omitted
	assert.Equal(t, "ohne-datum-3", entries[2].Slug)
	assert.Empty(t, entries[2].LastMod)
}

func TestMerge(t *testing.T) {
	primary := []Entry{
		{Slug: "a", LastMod: "2024-03-12T00:00:00Z"},
		{Slug: "b"},
	}
	fallback := []Entry{
		{Slug: "b", LastMod: "should-not-win"},
		{Slug: "c"},
	}

	merged := Merge(primary, fallback)
	require.Len(t, merged, 3)
	assert.Equal(t, "a", merged[0].Slug)
	assert.Equal(t, "b", merged[1].Slug)
	assert.Empty(t, merged[1].LastMod, "primary entry must win over the fallback duplicate")
	assert.Equal(t, "c", merged[2].Slug)
}

func TestMerge_EmptyPrimary(t *testing.T) {
	fallback := []Entry{{Slug: "a"}, {Slug: "b"}}
	merged := Merge(nil, fallback)
	require.Len(t, merged, 2)
}

func TestBuild(t *testing.T) {
	entries := []Entry{
		{Slug: "die-steuererklaerung", LastMod: "2024-03-12T09:30:00Z"},
		{Slug: "der-elfmeter"},
	}

	out, err := Build("https://levitenleser.de", entries)
	require.NoError(t, err)
	doc := string(out)

	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)

	// static pages come first
	for _, p := range []string{
		"<loc>https://levitenleser.de/</loc>",
		"<loc>https://levitenleser.de/newsletter</loc>",
		"<loc>https://levitenleser.de/impressum</loc>",
		"<loc>https://levitenleser.de/datenschutz</loc>",
	} {
		assert.Contains(t, doc, p)
	}

	assert.Contains(t, doc, "<loc>https://levitenleser.de/stories/die-steuererklaerung</loc>")
	assert.Contains(t, doc, "<lastmod>2024-03-12T09:30:00Z</lastmod>")
	assert.Contains(t, doc, "<loc>https://levitenleser.de/stories/der-elfmeter</loc>")

	// entries without lastmod must not emit an empty element
	assert.NotContains(t, doc, "<lastmod></lastmod>")

	staticIdx := strings.Index(doc, "levitenleser.de/newsletter")
	storyIdx := strings.Index(doc, "stories/die-steuererklaerung")
	assert.Less(t, staticIdx, storyIdx)
}

func TestBuild_NoEntries(t *testing.T) {
	out, err := Build("https://levitenleser.de", nil)
	require.NoError(t, err)
	assert.Equal(t, len(StaticPaths), strings.Count(string(out), "<url>"))
}
