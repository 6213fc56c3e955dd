package stories

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSlugLookupFailed wraps a repository failure during the existence
	// check. The save must abort; a failed lookup is never "no collision".
	ErrSlugLookupFailed = errors.New("slug lookup failed")

	// ErrSlugResolutionExhausted is returned after the suffix budget is
	// spent. Realistically only reachable when the directory keeps
	// answering with stale rows.
	ErrSlugResolutionExhausted = errors.New("could not resolve a unique slug")
)

// maxSlugAttempts bounds the collision-retry loop so a misbehaving
// directory cannot spin it forever.
const maxSlugAttempts = 50

// SlugDirectory answers exact-match slug lookups. Implementations must
// report an absent row as found=false with a nil error.
type SlugDirectory interface {
	FindIDBySlug(slug string) (id uint64, found bool, err error)
}

// ResolveUniqueSlug turns a candidate slug into one that is free in the
// directory. Numeric suffixes are always appended to the original base,
// never to an already suffixed attempt. A match on excludeID is accepted:
// editing a story does not collide with itself. Pass excludeID zero for
// new stories.
func ResolveUniqueSlug(dir SlugDirectory, candidate string, excludeID uint64) (string, error) {
	base := strings.TrimLeft(candidate, "-")
	if base == "" {
		base = DefaultSlug
	}

	slug := base
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		id, found, err := dir.FindIDBySlug(slug)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrSlugLookupFailed, err)
		}
		if !found || (excludeID != 0 && id == excludeID) {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, attempt+1)
	}

	return "", ErrSlugResolutionExhausted
}
