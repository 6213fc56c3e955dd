package sitemap

import (
	"encoding/xml"
	"time"

	"github.com/levitenleser/levitenleser/app/models"
	"github.com/levitenleser/levitenleser/internal/pkg/stories"
)

// Entry is one story destined for the urlset.
type Entry struct {
	Slug    string
	LastMod string
}

// StaticPaths are always part of the sitemap, before any story URL.
var StaticPaths = []string{"/", "/newsletter", "/impressum", "/datenschutz"}

type urlNode struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name  `xml:"urlset"`
	Xmlns   string    `xml:"xmlns,attr"`
	URLs    []urlNode `xml:"url"`
}

// EntriesFromStories maps stories to sitemap entries. Slugs run through
// EnsureSlug so rows predating the slug column still get stable URLs.
// LastMod prefers the repository timestamp, falls back to the parsed date
// field and is omitted when neither yields a calendar date.
func EntriesFromStories(list []models.Story) []Entry {
	entries := make([]Entry, 0, len(list))
	for i, s := range list {
		slug := s.Slug
		if slug == "" {
			slug = stories.EnsureSlug(stories.SlugSeed{
				Slug:     s.Slug,
				Title:    s.Title,
				Tag:      s.Tag,
				Category: s.Category,
				ID:       s.ID,
				Position: i + 1,
			})
		}
		entries = append(entries, Entry{Slug: slug, LastMod: lastMod(s)})
	}
	return entries
}

func lastMod(s models.Story) string {
	if !s.CreatedAt.IsZero() {
		return s.CreatedAt.UTC().Format(time.RFC3339)
	}
	if t, ok := stories.ParseStoryDate(s.Date); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return ""
}

// Merge appends fallback entries to the primary list, dropping fallback
// slugs that are already present.
func Merge(primary, fallback []Entry) []Entry {
	seen := make(map[string]struct{}, len(primary))
	merged := make([]Entry, 0, len(primary)+len(fallback))
	for _, e := range primary {
		if _, dup := seen[e.Slug]; dup {
			continue
		}
		seen[e.Slug] = struct{}{}
		merged = append(merged, e)
	}
	for _, e := range fallback {
		if _, dup := seen[e.Slug]; dup {
			continue
		}
		seen[e.Slug] = struct{}{}
		merged = append(merged, e)
	}
	return merged
}

// Build renders the urlset document: the static pages first, then one URL
// per story under {origin}/stories/{slug}.
func Build(origin string, entries []Entry) ([]byte, error) {
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	for _, p := range StaticPaths {
		loc := origin + p
		if p == "/" {
			loc = origin + "/"
		}
		set.URLs = append(set.URLs, urlNode{Loc: loc})
	}
	for _, e := range entries {
		set.URLs = append(set.URLs, urlNode{
			Loc:     origin + "/stories/" + e.Slug,
			LastMod: e.LastMod,
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
