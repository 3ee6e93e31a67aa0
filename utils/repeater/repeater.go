// Package repeater implements the unit-parameterized span operators behind
// relative expressions. A repeater knows the span of its unit containing a
// reference instant, can step to the next or previous occurrence, and can
// shift an arbitrary span by whole units.
package repeater

import (
	"regexp"
	"time"

	"github.com/musicmunky/chronic/utils/span"
	"github.com/musicmunky/chronic/utils/tag"
)

// Nominal unit widths in seconds.
const (
	SecondSeconds    int64 = 1
	MinuteSeconds    int64 = 60
	HourSeconds      int64 = 60 * 60
	DaySeconds       int64 = 24 * 60 * 60
	WeekSeconds      int64 = 7 * DaySeconds
	FortnightSeconds int64 = 14 * DaySeconds
	WeekendSeconds   int64 = 2 * DaySeconds
	MonthSeconds     int64 = 30 * DaySeconds
	SeasonSeconds    int64 = 91 * DaySeconds
	YearSeconds      int64 = 365 * DaySeconds
)

// Repeater is the capability set shared by every unit. Implementations carry
// iteration state: Start seeds the reference instant and resets the cursor,
// after which consecutive Next calls walk successive occurrences.
type Repeater interface {
	tag.Tag

	// Start seeds the reference instant and resets iteration state.
	Start(now time.Time)

	// This returns the span of this unit containing (or, for point-like
	// units, adjacent to) the reference instant. The context trims or
	// orients the span: Future keeps the remaining part, Past the elapsed
	// part, None the whole unit. Named units (day names, month names,
	// season names, weekdays, clock times) and day portions document their
	// own resolution, which can be an occurrence that does not contain the
	// reference instant.
	This(ctx tag.Direction) *span.Span

	// Next steps one occurrence in the given direction and returns its span.
	Next(dir tag.Direction) *span.Span

	// Offset shifts s by amount units in the given direction.
	Offset(s *span.Span, amount int, dir tag.Direction) *span.Span

	// Width returns the nominal width of the unit in seconds.
	Width() int64
}

// direction maps Future to +1 and anything else to -1.
func direction(dir tag.Direction) int {
	if dir == tag.Future {
		return 1
	}
	return -1
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func hourStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

func minuteStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func yearStart(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func secondsOf(n int64) time.Duration {
	return time.Duration(n) * time.Second
}

// weekAnchor returns the start of the most recent day of the given weekday at
// or before the day containing t.
func weekAnchor(t time.Time, day time.Weekday) time.Time {
	cur := dayStart(t)
	for cur.Weekday() != day {
		cur = cur.AddDate(0, 0, -1)
	}
	return cur
}

// nextWeekday returns the start of the first day of the given weekday
// strictly after the day containing t.
func nextWeekday(t time.Time, day time.Weekday) time.Time {
	cur := dayStart(t).AddDate(0, 0, 1)
	for cur.Weekday() != day {
		cur = cur.AddDate(0, 0, 1)
	}
	return cur
}

var (
	dayNameTable = []struct {
		regex    string
		day      time.Weekday
		compiled *regexp.Regexp
	}{
		{regex: `^m[ou]n(day)?$`, day: time.Monday},
		{regex: `^t(ue|eu|oo|u)s?(day)?$`, day: time.Tuesday},
		{regex: `^we(d|dnes|nds|nns)(day)?$`, day: time.Wednesday},
		{regex: `^th(u|ur|urs|ers)(day)?$`, day: time.Thursday},
		{regex: `^fr[iy](day)?$`, day: time.Friday},
		{regex: `^sat(t?[ue]rday)?$`, day: time.Saturday},
		{regex: `^su[nm](day)?$`, day: time.Sunday},
	}

	monthNameTable = []struct {
		regex    string
		month    time.Month
		compiled *regexp.Regexp
	}{
		{regex: `^jan(uary)?$`, month: time.January},
		{regex: `^feb(ruary)?$`, month: time.February},
		{regex: `^mar(ch)?$`, month: time.March},
		{regex: `^apr(il)?$`, month: time.April},
		{regex: `^may$`, month: time.May},
		{regex: `^jun(e)?$`, month: time.June},
		{regex: `^jul(y)?$`, month: time.July},
		{regex: `^aug(ust)?$`, month: time.August},
		{regex: `^sep(t|tember)?$`, month: time.September},
		{regex: `^oct(ober)?$`, month: time.October},
		{regex: `^nov(ember)?$`, month: time.November},
		{regex: `^dec(ember)?$`, month: time.December},
	}

	seasonNameTable = []struct {
		regex    string
		season   SeasonType
		compiled *regexp.Regexp
	}{
		{regex: `^springs?$`, season: Spring},
		{regex: `^summers?$`, season: Summer},
		{regex: `^(autumns?|falls?)$`, season: Autumn},
		{regex: `^winters?$`, season: Winter},
	}

	portionTable = []struct {
		regex    string
		portion  PortionType
		compiled *regexp.Regexp
	}{
		{regex: `^ams?$`, portion: AM},
		{regex: `^pms?$`, portion: PM},
		{regex: `^mornings?$`, portion: Morning},
		{regex: `^afternoons?$`, portion: Afternoon},
		{regex: `^evenings?$`, portion: Evening},
		{regex: `^nights?$`, portion: Night},
	}

	unitTable = []struct {
		regex    string
		build    func() Repeater
		compiled *regexp.Regexp
	}{
		{regex: `^years?$`, build: func() Repeater { return NewYear() }},
		{regex: `^seasons?$`, build: func() Repeater { return NewSeason() }},
		{regex: `^months?$`, build: func() Repeater { return NewMonth() }},
		{regex: `^fortnights?$`, build: func() Repeater { return NewFortnight() }},
		{regex: `^weeks?$`, build: func() Repeater { return NewWeek() }},
		{regex: `^weekends?$`, build: func() Repeater { return NewWeekend() }},
		{regex: `^(week|business)days?$`, build: func() Repeater { return NewWeekday() }},
		{regex: `^days?$`, build: func() Repeater { return NewDay() }},
		{regex: `^hours?$|^hrs?$`, build: func() Repeater { return NewHour() }},
		{regex: `^minutes?$|^mins?$`, build: func() Repeater { return NewMinute() }},
		{regex: `^seconds?$|^secs?$`, build: func() Repeater { return NewSecond() }},
	}

	timeWordRe *regexp.Regexp
)

// The Go runtime will execute this once at startup, before calling main()
func init() {
	for i := range dayNameTable {
		dayNameTable[i].compiled = regexp.MustCompile(dayNameTable[i].regex)
	}
	for i := range monthNameTable {
		monthNameTable[i].compiled = regexp.MustCompile(monthNameTable[i].regex)
	}
	for i := range seasonNameTable {
		seasonNameTable[i].compiled = regexp.MustCompile(seasonNameTable[i].regex)
	}
	for i := range portionTable {
		portionTable[i].compiled = regexp.MustCompile(portionTable[i].regex)
	}
	for i := range unitTable {
		unitTable[i].compiled = regexp.MustCompile(unitTable[i].regex)
	}
	timeWordRe = regexp.MustCompile(`^\d{1,2}(:?\d{2})?([.:]?\d{2})?$`)
}

// Scan returns the repeater tag for a word, or nil when the word is not a
// repeater. Every call builds a fresh repeater so iteration state is never
// shared between parses.
func Scan(word string) tag.Tag {
	for _, e := range monthNameTable {
		if e.compiled.MatchString(word) {
			return NewMonthName(e.month)
		}
	}
	for _, e := range dayNameTable {
		if e.compiled.MatchString(word) {
			return NewDayName(e.day)
		}
	}
	for _, e := range seasonNameTable {
		if e.compiled.MatchString(word) {
			return NewSeasonName(e.season)
		}
	}
	for _, e := range portionTable {
		if e.compiled.MatchString(word) {
			return NewDayPortion(e.portion)
		}
	}
	if timeWordRe.MatchString(word) {
		if t, ok := NewTime(word); ok {
			return t
		}
	}
	for _, e := range unitTable {
		if e.compiled.MatchString(word) {
			return e.build()
		}
	}
	return nil
}
