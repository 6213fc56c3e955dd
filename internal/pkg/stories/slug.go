package stories

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSlug is used when neither slug, title, tag nor category
// yield any usable characters.
const DefaultSlug = "geschichte"

var (
	// NFD-decompose, drop the combining marks, recompose ("ö" -> "o").
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	// Runs of anything outside [a-z0-9] become a single hyphen.
	nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)
	hyphenRun   = regexp.MustCompile(`-{2,}`)
)

// Slugify converts arbitrary text into a lowercase ASCII slug candidate.
// "ß" is transliterated to "ss" before decomposition; it has no combining
// form and would otherwise vanish entirely ("Straße" -> "strae").
func Slugify(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, "ß", "ss")
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	s = nonAlnumRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")

	return s
}

// SlugSeed carries everything EnsureSlug may derive a candidate from.
// Position is the 1-based place of the story in its source sequence and is
// only consulted when ID is zero (the story has not been persisted yet).
type SlugSeed struct {
	Slug     string
	Title    string
	Tag      string
	Category string
	ID       uint64
	Position int
}

// EnsureSlug produces a deterministic candidate slug for a story. An
// explicitly supplied slug wins as-is; otherwise the candidate is derived
// from title, tag or category and carries an identifier suffix to keep
// back-to-back stories with the same title apart before the uniqueness
// check runs. EnsureSlug never talks to the repository.
func EnsureSlug(seed SlugSeed) string {
	provided := Slugify(seed.Slug)
	if provided != "" && !strings.HasPrefix(provided, "-") {
		return provided
	}

	source := seed.Title
	if source == "" {
		source = seed.Tag
	}
	if source == "" {
		source = seed.Category
	}

	base := Slugify(source)
	if base == "" {
		base = DefaultSlug
	}

	suffix := seed.ID
	if suffix == 0 {
		suffix = uint64(seed.Position)
	}

	return Slugify(fmt.Sprintf("%s-%d", base, suffix))
}
