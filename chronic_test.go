package chronic_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chronic "github.com/musicmunky/chronic"
)

// reference instant used throughout: Wednesday, August 16th 2006, 2pm
var now = time.Date(2006, time.August, 16, 14, 0, 0, 0, time.Local)

func local(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.Local)
}

func parseNow(t *testing.T, text string, opts ...chronic.Option) *time.Time {
	t.Helper()
	opts = append([]chronic.Option{chronic.WithNow(now)}, opts...)
	got, err := chronic.Parse(text, opts...)
	require.NoError(t, err, "input %q", text)
	return got
}

func TestRelativeExpressions(t *testing.T) {
	cases := map[string]time.Time{
		"now":              local(2006, time.August, 16, 14, 0, 0),
		"today":            local(2006, time.August, 16, 19, 30, 0),
		"tomorrow":         local(2006, time.August, 17, 12, 0, 0),
		"yesterday":        local(2006, time.August, 15, 12, 0, 0),
		"tonight":          local(2006, time.August, 16, 22, 0, 0),
		"this second":      local(2006, time.August, 16, 14, 0, 0),
		"next day":         local(2006, time.August, 17, 12, 0, 0),
		"monday":           local(2006, time.August, 21, 12, 0, 0),
		"next monday":      local(2006, time.August, 21, 12, 0, 0),
		"last monday":      local(2006, time.August, 14, 12, 0, 0),
		"next week":        local(2006, time.August, 23, 12, 0, 0),
		"last week":        local(2006, time.August, 9, 12, 0, 0),
		"next month":       local(2006, time.September, 16, 0, 0, 0),
		"last month":       local(2006, time.July, 16, 12, 0, 0),
		"next year":        local(2007, time.July, 2, 12, 0, 0),
		"november":         local(2006, time.November, 16, 0, 0, 0),
	}
	for text, want := range cases {
		got := parseNow(t, text)
		require.NotNil(t, got, "input %q", text)
		assert.Equal(t, want, *got, "input %q", text)
	}
}

func TestClockTimes(t *testing.T) {
	cases := map[string]time.Time{
		"yesterday at 4:00":    local(2006, time.August, 15, 16, 0, 0),
		"tomorrow at 7pm":      local(2006, time.August, 17, 19, 0, 0),
		"noon":                 local(2006, time.August, 16, 12, 0, 0),
		"midnight":             local(2006, time.August, 17, 0, 0, 0),
		"12:00 am":             local(2006, time.August, 16, 0, 0, 0),
		"12:00 pm":             local(2006, time.August, 16, 12, 0, 0),
		"24:00":                local(2006, time.August, 17, 0, 0, 0),
		"14:30":                local(2006, time.August, 16, 14, 30, 0),
		"4:00 in the morning":  local(2006, time.August, 16, 4, 0, 0),
		"today at 6:00 pm":     local(2006, time.August, 16, 18, 0, 0),
		"tomorrow at 12:30 pm": local(2006, time.August, 17, 12, 30, 0),
	}
	for text, want := range cases {
		got := parseNow(t, text)
		require.NotNil(t, got, "input %q", text)
		assert.Equal(t, want, *got, "input %q", text)
	}
}

func TestSeasonsAndWeekends(t *testing.T) {
	got := parseNow(t, "this summer")
	require.NotNil(t, got)
	assert.Equal(t, local(2006, time.August, 7, 0, 0, 0), *got)

	got = parseNow(t, "next spring")
	require.NotNil(t, got)
	assert.Equal(t, local(2007, time.May, 5, 12, 0, 0), *got)

	got = parseNow(t, "next weekend")
	require.NotNil(t, got)
	assert.Equal(t, local(2006, time.August, 20, 0, 0, 0), *got)

	got = parseNow(t, "last weekend")
	require.NotNil(t, got)
	assert.Equal(t, local(2006, time.August, 13, 0, 0, 0), *got)
}

func TestOClock(t *testing.T) {
	got := parseNow(t, "3 oclock")
	require.NotNil(t, got)
	assert.Equal(t, local(2006, time.August, 16, 15, 0, 0), *got)

	got = parseNow(t, "3oclock")
	require.NotNil(t, got)
	assert.Equal(t, local(2006, time.August, 16, 15, 0, 0), *got)
}

func TestArrowExpressions(t *testing.T) {
	cases := map[string]time.Time{
		"3 weeks from now":    local(2006, time.September, 6, 14, 0, 0),
		"three weeks ago":     local(2006, time.July, 26, 14, 0, 0),
		"in 3 days":           local(2006, time.August, 19, 14, 0, 0),
		"a day ago":           local(2006, time.August, 15, 14, 0, 0),
		"2 months from now":   local(2006, time.October, 16, 14, 0, 0),
		"1 year ago":          local(2005, time.August, 16, 14, 0, 0),
		"3 hours before now":  local(2006, time.August, 16, 11, 0, 0),
		"5 minutes from now":  local(2006, time.August, 16, 14, 5, 0),
	}
	for text, want := range cases {
		got := parseNow(t, text)
		require.NotNil(t, got, "input %q", text)
		assert.Equal(t, want, *got, "input %q", text)
	}
}

func TestNarrowExpressions(t *testing.T) {
	got := parseNow(t, "3rd wednesday in november")
	require.NotNil(t, got)
	assert.Equal(t, local(2006, time.November, 15, 12, 0, 0), *got)

	got = parseNow(t, "third wednesday in november")
	require.NotNil(t, got)
	assert.Equal(t, local(2006, time.November, 15, 12, 0, 0), *got)

	got = parseNow(t, "1st friday in august")
	require.NotNil(t, got)
	assert.Equal(t, local(2007, time.August, 3, 12, 0, 0), *got)

	got = parseNow(t, "3rd month next year")
	require.NotNil(t, got)
	assert.Equal(t, local(2007, time.March, 16, 12, 0, 0), *got)

	// November 2006 has only four Saturdays; the sixth is out of range
	got = parseNow(t, "6th saturday in november")
	assert.Nil(t, got)
}

func TestExplicitDates(t *testing.T) {
	cases := map[string]time.Time{
		"may 27":              local(2007, time.May, 27, 12, 0, 0),
		"may 27 2011":         local(2011, time.May, 27, 12, 0, 0),
		"may 27, 2011":        local(2011, time.May, 27, 12, 0, 0),
		"27 may 2011":         local(2011, time.May, 27, 12, 0, 0),
		"may 27th":            local(2007, time.May, 27, 12, 0, 0),
		"27th may":            local(2007, time.May, 27, 12, 0, 0),
		"22nd february 2012":  local(2012, time.February, 22, 12, 0, 0),
		"march 2011":          local(2011, time.March, 16, 12, 0, 0),
		"2006-08-16":          local(2006, time.August, 16, 12, 0, 0),
		"2011-03-04":          local(2011, time.March, 4, 12, 0, 0),
		"january 5 at 7pm":    local(2007, time.January, 5, 19, 0, 0),
		"may 27 2011 at 4pm":  local(2011, time.May, 27, 16, 0, 0),
	}
	for text, want := range cases {
		got := parseNow(t, text)
		require.NotNil(t, got, "input %q", text)
		assert.Equal(t, want, *got, "input %q", text)
	}
}

func TestEndianPrecedence(t *testing.T) {
	middle := parseNow(t, "03/04/2011")
	require.NotNil(t, middle)
	assert.Equal(t, local(2011, time.March, 4, 12, 0, 0), *middle)

	little := parseNow(t, "03/04/2011",
		chronic.WithEndianPrecedence(chronic.EndianLittle, chronic.EndianMiddle))
	require.NotNil(t, little)
	assert.Equal(t, local(2011, time.April, 3, 12, 0, 0), *little)

	// when one side cannot be a month the precedence makes no difference
	a := parseNow(t, "13/04/2011")
	b := parseNow(t, "13/04/2011",
		chronic.WithEndianPrecedence(chronic.EndianLittle, chronic.EndianMiddle))
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, *a, *b)
	assert.Equal(t, local(2011, time.April, 13, 12, 0, 0), *a)
}

func TestImpossibleDates(t *testing.T) {
	assert.Nil(t, parseNow(t, "february 30"))
	assert.Nil(t, parseNow(t, "february 29 2007"), "2007 is not a leap year")

	got := parseNow(t, "february 29 2008")
	require.NotNil(t, got)
	assert.Equal(t, local(2008, time.February, 29, 12, 0, 0), *got)
}

func TestTwoDigitYears(t *testing.T) {
	got := parseNow(t, "may 27 79")
	require.NotNil(t, got)
	assert.Equal(t, 1979, got.Year())

	got = parseNow(t, "may 27 35")
	require.NotNil(t, got)
	assert.Equal(t, 2035, got.Year())

	// the exact pivot maps to the earlier century
	got = parseNow(t, "may 27 56")
	require.NotNil(t, got)
	assert.Equal(t, 1956, got.Year())

	got = parseNow(t, "may 27 55")
	require.NotNil(t, got)
	assert.Equal(t, 2055, got.Year())

	// with a zero bias the century window starts at the reference year itself
	got = parseNow(t, "may 27 85")
	require.NotNil(t, got)
	assert.Equal(t, 1985, got.Year())

	got = parseNow(t, "may 27 85", chronic.WithAmbiguousYearFutureBias(0))
	require.NotNil(t, got)
	assert.Equal(t, 2085, got.Year())
}

func TestContext(t *testing.T) {
	got := parseNow(t, "monday", chronic.WithContext(chronic.ContextPast))
	require.NotNil(t, got)
	assert.Equal(t, local(2006, time.August, 14, 12, 0, 0), *got)

	got = parseNow(t, "may", chronic.WithContext(chronic.ContextPast))
	require.NotNil(t, got)
	assert.Equal(t, 2006, got.Year())

	got = parseNow(t, "may")
	require.NotNil(t, got)
	assert.Equal(t, 2007, got.Year())
}

func TestGuessLaw(t *testing.T) {
	for _, text := range []string{"tomorrow", "next week", "may 27 2011", "now"} {
		sp, err := chronic.ParseSpan(text, chronic.WithNow(now))
		require.NoError(t, err)
		require.NotNil(t, sp, "input %q", text)
		assert.True(t, sp.End().After(sp.Begin()), "input %q", text)

		got := parseNow(t, text)
		require.NotNil(t, got, "input %q", text)
		assert.False(t, got.Before(sp.Begin()), "input %q", text)
		assert.True(t, got.Before(sp.End()), "input %q", text)
	}
}

func TestAbsoluteDatesIgnoreNow(t *testing.T) {
	other := time.Date(2019, time.February, 2, 3, 4, 5, 0, time.Local)
	for _, text := range []string{"may 27 2011", "2011-03-04", "03/04/2011"} {
		a := parseNow(t, text)
		b, err := chronic.Parse(text, chronic.WithNow(other))
		require.NoError(t, err)
		require.NotNil(t, a, "input %q", text)
		require.NotNil(t, b, "input %q", text)
		assert.Equal(t, *a, *b, "input %q", text)
	}
}

func TestAmbiguousTimeRange(t *testing.T) {
	// with the default range, 4:00 lands in the afternoon
	got := parseNow(t, "4:00")
	require.NotNil(t, got)
	assert.Equal(t, local(2006, time.August, 16, 16, 0, 0), *got)

	// with the heuristic off, 4:00 is the next literal occurrence
	got = parseNow(t, "4:00", chronic.WithAmbiguousTimeRange(chronic.AmbiguousTimeRangeNone))
	require.NotNil(t, got)
	assert.Equal(t, local(2006, time.August, 17, 4, 0, 0), *got)
}

func TestNoParse(t *testing.T) {
	for _, text := range []string{"", "completely unrelated words", "the quick brown fox"} {
		got, err := chronic.Parse(text, chronic.WithNow(now))
		assert.NoError(t, err, "input %q", text)
		assert.Nil(t, got, "input %q", text)
	}
}

func TestInvalidOptions(t *testing.T) {
	_, err := chronic.Parse("tomorrow", chronic.WithNow(now), chronic.WithAmbiguousTimeRange(15))
	assert.Error(t, err)

	_, err = chronic.Parse("tomorrow", chronic.WithNow(now), chronic.WithContext(chronic.Context(42)))
	assert.Error(t, err)

	_, err = chronic.Parse("tomorrow", chronic.WithNow(now), chronic.WithEndianPrecedence())
	assert.Error(t, err)

	_, err = chronic.Parse("tomorrow", chronic.WithNow(now), chronic.WithEndianPrecedence(chronic.Endian(9)))
	assert.Error(t, err)
}

func TestClockProvider(t *testing.T) {
	got, err := chronic.Parse("now", chronic.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, now, *got)
}
