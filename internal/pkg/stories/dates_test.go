package stories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseStoryDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want time.Time
		ok   bool
	}{
		{"iso", "2024-10-13", date(2024, time.October, 13), true},
		{"numeric dots", "13.10.2024", date(2024, time.October, 13), true},
		{"numeric slashes", "13/10/2024", date(2024, time.October, 13), true},
		{"numeric hyphens", "13-10-2024", date(2024, time.October, 13), true},
		{"numeric single digits", "1.9.2024", date(2024, time.September, 1), true},
		{"long german", "13. Oktober 2024", date(2024, time.October, 13), true},
		{"long german no dot", "13 Oktober 2024", date(2024, time.October, 13), true},
		{"long german lowercase", "13. oktober 2024", date(2024, time.October, 13), true},
		{"ascii transliteration", "13. Maerz 2024", date(2024, time.March, 13), true},
		{"umlaut month", "13. März 2024", date(2024, time.March, 13), true},
		{"rfc3339 fallback", "2024-10-13T12:30:00Z", date(2024, time.October, 13), true},
		{"whitespace around", "  29. September 2024  ", date(2024, time.September, 29), true},
		{"nonsense", "nonsense", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"whitespace only", "   ", time.Time{}, false},
		{"unknown month", "13. Brumaire 2024", time.Time{}, false},
		{"overflowing day", "31.02.2024", time.Time{}, false},
		{"invalid iso month", "2024-13-01", time.Time{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseStoryDate(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseStoryDate_NeverPanics(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", " ", "\n", "0", "-", "....", "99.99.9999", "0000-00-00",
		"13. 2024", "Oktober", "13. Oktober", "🐉", "<script>", "9999999999999",
		"1.2.3.4.5", "13.10.24", "am 13. Oktober 2024 abends",
	}

	for _, in := range inputs {
		assert.NotPanics(t, func() { ParseStoryDate(in) }, "input %q", in)
	}
}

func TestFormatDateHuman_RoundTrip(t *testing.T) {
	t.Parallel()

	dates := []time.Time{
		date(2024, time.October, 13),
		date(2024, time.March, 1),
		date(2023, time.December, 31),
		date(2025, time.January, 9),
		date(1999, time.August, 7),
	}

	for _, d := range dates {
		human := FormatDateHuman(d)
		parsed, ok := ParseStoryDate(human)
		require.True(t, ok, "human form %q must parse", human)
		assert.True(t, parsed.Equal(d), "round-trip of %q: got %v", human, parsed)
	}
}

func TestFormatDateHuman(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "13. Oktober 2024", FormatDateHuman(date(2024, time.October, 13)))
	assert.Equal(t, "1. März 2024", FormatDateHuman(date(2024, time.March, 1)))
}

func TestToISODate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-10-13", ToISODate(date(2024, time.October, 13)))
	assert.Equal(t, "2024-03-01", ToISODate(date(2024, time.March, 1)))
}

func TestNormalizeDateInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "13. Oktober 2024", NormalizeDateInput("2024-10-13"))
	assert.Equal(t, "13. Oktober 2024", NormalizeDateInput("13.10.2024"))
	assert.Equal(t, "irgendwann", NormalizeDateInput("  irgendwann  "))
}

func TestDatePickerValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-10-13", DatePickerValue("13. Oktober 2024"))
	assert.Equal(t, "", DatePickerValue("kein datum"))
}

func TestNormalizeReadTime(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"ca. 8 Minuten", "8 Min"},
		{"8", "8 Min"},
		{"12 Min", "12 Min"},
		{"eine Weile", "eine Weile"},
		{"  kurz  ", "kurz"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeReadTime(tc.in), "input %q", tc.in)
	}
}
