package stories

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain title", "Die Leselampe", "die-leselampe"},
		{"umlauts stripped", "Die Stille hinter den Schiebetüren", "die-stille-hinter-den-schiebeturen"},
		{"eszett transliterated", "Die Straße am Fluss", "die-strasse-am-fluss"},
		{"punctuation collapsed", "Hallo,   Welt!!!", "hallo-welt"},
		{"leading and trailing junk", "--- Nacht & Nebel ---", "nacht-nebel"},
		{"digits kept", "Ausgabe 03 / 2024", "ausgabe-03-2024"},
		{"only punctuation", "!?!", ""},
		{"mixed case", "HERBSTLICHT", "herbstlicht"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.in))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Die Stille hinter den Schiebetüren",
		"Aufrecht gehen die Schatten",
		"ß ß ß",
		"  --über--  ",
		"2024-10-13",
		"",
	}

	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "slugify must be idempotent for %q", in)
	}
}

func TestSlugify_OutputAlphabet(t *testing.T) {
	t.Parallel()

	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	inputs := []string{
		"Das Telefon der Großmutter",
		"…ein merkwürdiger Titel (Teil 2)…",
		"emoji 🐉 und so",
		"čarobnjak suärve",
	}

	for _, in := range inputs {
		out := Slugify(in)
		if out == "" {
			continue
		}
		assert.Regexp(t, valid, out, "input %q", in)
	}
}

func TestEnsureSlug(t *testing.T) {
	t.Parallel()

	t.Run("explicit slug wins without suffix", func(t *testing.T) {
		got := EnsureSlug(SlugSeed{Slug: "Mein-Text", Title: "Etwas anderes", ID: 7})
		assert.Equal(t, "mein-text", got)
	})

	t.Run("title with id suffix", func(t *testing.T) {
		got := EnsureSlug(SlugSeed{Title: "Die Stille hinter den Schiebetüren", ID: 12})
		assert.Equal(t, "die-stille-hinter-den-schiebeturen-12", got)
	})

	t.Run("position suffix when no id yet", func(t *testing.T) {
		got := EnsureSlug(SlugSeed{Title: "Herbstlicht", Position: 3})
		assert.Equal(t, "herbstlicht-3", got)
	})

	t.Run("falls back to tag then category", func(t *testing.T) {
		assert.Equal(t, "erinnerung-1", EnsureSlug(SlugSeed{Tag: "Erinnerung", Position: 1}))
		assert.Equal(t, "feuilleton-2", EnsureSlug(SlugSeed{Category: "Feuilleton", Position: 2}))
	})

	t.Run("everything empty yields the default", func(t *testing.T) {
		assert.Equal(t, "geschichte-1", EnsureSlug(SlugSeed{Position: 1}))
	})

	t.Run("deterministic", func(t *testing.T) {
		seed := SlugSeed{Title: "Herbstlicht", ID: 42}
		assert.Equal(t, EnsureSlug(seed), EnsureSlug(seed))
	})

	t.Run("slug of only punctuation falls back to title", func(t *testing.T) {
		got := EnsureSlug(SlugSeed{Slug: "!!!", Title: "Die Leselampe", ID: 4})
		assert.Equal(t, "die-leselampe-4", got)
	})
}
