package stories

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthNames = [12]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// Keyed by the lowercased month name; umlaut spellings and their ASCII
// transliterations both resolve.
var monthLookup = map[string]time.Month{
	"januar":    time.January,
	"februar":   time.February,
	"maerz":     time.March,
	"märz":      time.March,
	"april":     time.April,
	"mai":       time.May,
	"juni":      time.June,
	"juli":      time.July,
	"august":    time.August,
	"september": time.September,
	"oktober":   time.October,
	"november":  time.November,
	"dezember":  time.December,
}

var (
	isoDateRe     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	numericDateRe = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{4})$`)
	longDateRe    = regexp.MustCompile(`^(\d{1,2})\.?\s+([A-Za-zäöüÄÖÜß]+)\s+(\d{4})$`)
)

var asciiUmlauts = strings.NewReplacer("ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss")

// Layouts tried when none of the known story date forms match.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2. January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ParseStoryDate interprets a human-entered publication date. It accepts
// the ISO form (2024-10-13), the numeric form (13.10.2024, also with "/"
// or "-"), the long German form (13. Oktober 2024, month matched
// case-insensitively with umlaut or ASCII spelling) and finally a small
// set of generic layouts. The second return value is false when no date
// was recognized; absence of a date is an expected outcome, not a fault.
func ParseStoryDate(text string) (time.Time, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, false
	}

	if m := isoDateRe.FindStringSubmatch(trimmed); m != nil {
		if t, ok := makeDate(atoi(m[1]), atoi(m[2]), atoi(m[3])); ok {
			return t, true
		}
	}

	if m := numericDateRe.FindStringSubmatch(trimmed); m != nil {
		if t, ok := makeDate(atoi(m[3]), atoi(m[2]), atoi(m[1])); ok {
			return t, true
		}
	}

	if m := longDateRe.FindStringSubmatch(trimmed); m != nil {
		key := strings.ToLower(m[2])
		month, ok := monthLookup[key]
		if !ok {
			month, ok = monthLookup[asciiUmlauts.Replace(key)]
		}
		if ok {
			if t, valid := makeDate(atoi(m[3]), int(month), atoi(m[1])); valid {
				return t, true
			}
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// makeDate builds a calendar date and rejects inputs that time.Date would
// silently normalize, such as 31.02.2024.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// FormatDateHuman renders a date the way the site prints it: "13. Oktober 2024".
func FormatDateHuman(t time.Time) string {
	return strconv.Itoa(t.Day()) + ". " + monthNames[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

// ToISODate renders a zero-padded YYYY-MM-DD string for date-picker inputs.
func ToISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// NormalizeDateInput parses a date and re-renders it in the human form,
// leaving unparseable input trimmed but otherwise untouched so authors can
// correct it.
func NormalizeDateInput(text string) string {
	if t, ok := ParseStoryDate(text); ok {
		return FormatDateHuman(t)
	}
	return strings.TrimSpace(text)
}

// DatePickerValue returns the ISO form for a parseable date and an empty
// string otherwise, matching what an <input type="date"> accepts.
func DatePickerValue(text string) string {
	if t, ok := ParseStoryDate(text); ok {
		return ToISODate(t)
	}
	return ""
}
