package repeater_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicmunky/chronic/utils/repeater"
	"github.com/musicmunky/chronic/utils/tag"
)

// reference instant used throughout: a Wednesday afternoon
var now = time.Date(2006, time.August, 16, 14, 0, 0, 0, time.Local)

func local(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.Local)
}

func TestScan(t *testing.T) {
	cases := map[string]tag.Kind{
		"year":      tag.KindRepeaterYear,
		"years":     tag.KindRepeaterYear,
		"season":    tag.KindRepeaterSeason,
		"spring":    tag.KindRepeaterSeasonName,
		"fall":      tag.KindRepeaterSeasonName,
		"month":     tag.KindRepeaterMonth,
		"january":   tag.KindRepeaterMonthName,
		"jan":       tag.KindRepeaterMonthName,
		"sept":      tag.KindRepeaterMonthName,
		"fortnight": tag.KindRepeaterFortnight,
		"week":      tag.KindRepeaterWeek,
		"weekend":   tag.KindRepeaterWeekend,
		"weekday":   tag.KindRepeaterWeekday,
		"day":       tag.KindRepeaterDay,
		"monday":    tag.KindRepeaterDayName,
		"tues":      tag.KindRepeaterDayName,
		"wed":       tag.KindRepeaterDayName,
		"morning":   tag.KindRepeaterDayPortion,
		"pm":        tag.KindRepeaterDayPortion,
		"hour":      tag.KindRepeaterHour,
		"minute":    tag.KindRepeaterMinute,
		"second":    tag.KindRepeaterSecond,
		"7:30":      tag.KindRepeaterTime,
		"14:00":     tag.KindRepeaterTime,
		"4":         tag.KindRepeaterTime,
	}
	for word, want := range cases {
		got := repeater.Scan(word)
		require.NotNil(t, got, "word %q", word)
		assert.Equal(t, want, got.Kind(), "word %q", word)
	}

	assert.Nil(t, repeater.Scan("hello"))
	assert.Nil(t, repeater.Scan("oclock"))
}

func TestSecond(t *testing.T) {
	r := repeater.NewSecond()
	r.Start(now)

	this := r.This(tag.Future)
	assert.Equal(t, now, this.Begin())
	assert.Equal(t, int64(1), this.Width())

	r.Start(now)
	assert.Equal(t, now.Add(time.Second), r.Next(tag.Future).Begin())
	assert.Equal(t, now.Add(2*time.Second), r.Next(tag.Future).Begin())
}

func TestDay(t *testing.T) {
	r := repeater.NewDay()
	r.Start(now)

	next := r.Next(tag.Future)
	assert.Equal(t, local(2006, time.August, 17, 0, 0, 0), next.Begin())
	assert.Equal(t, local(2006, time.August, 18, 0, 0, 0), next.End())

	r.Start(now)
	prev := r.Next(tag.Past)
	assert.Equal(t, local(2006, time.August, 15, 0, 0, 0), prev.Begin())

	r.Start(now)
	whole := r.This(tag.None)
	assert.Equal(t, local(2006, time.August, 16, 0, 0, 0), whole.Begin())
	assert.Equal(t, repeater.DaySeconds, whole.Width())
}

func TestDayName(t *testing.T) {
	r := repeater.NewDayName(time.Monday)
	r.Start(now)

	next := r.Next(tag.Future)
	assert.Equal(t, local(2006, time.August, 21, 0, 0, 0), next.Begin())
	assert.Equal(t, local(2006, time.August, 28, 0, 0, 0), r.Next(tag.Future).Begin())

	r.Start(now)
	prev := r.Next(tag.Past)
	assert.Equal(t, local(2006, time.August, 14, 0, 0, 0), prev.Begin())
}

func TestWeek(t *testing.T) {
	r := repeater.NewWeek()
	r.Start(now)

	next := r.Next(tag.Future)
	assert.Equal(t, local(2006, time.August, 20, 0, 0, 0), next.Begin())
	assert.Equal(t, local(2006, time.August, 27, 0, 0, 0), next.End())

	r.Start(now)
	prev := r.Next(tag.Past)
	assert.Equal(t, local(2006, time.August, 6, 0, 0, 0), prev.Begin())
	assert.Equal(t, local(2006, time.August, 13, 0, 0, 0), prev.End())
}

func TestWeekend(t *testing.T) {
	r := repeater.NewWeekend()
	r.Start(now)

	next := r.Next(tag.Future)
	assert.Equal(t, local(2006, time.August, 19, 0, 0, 0), next.Begin())
	assert.Equal(t, local(2006, time.August, 21, 0, 0, 0), next.End())

	r.Start(now)
	prev := r.Next(tag.Past)
	assert.Equal(t, local(2006, time.August, 12, 0, 0, 0), prev.Begin())
}

func TestWeekday(t *testing.T) {
	// Friday afternoon: the next weekday is Monday
	friday := local(2006, time.August, 18, 14, 0, 0)
	r := repeater.NewWeekday()
	r.Start(friday)
	assert.Equal(t, local(2006, time.August, 21, 0, 0, 0), r.Next(tag.Future).Begin())

	r.Start(now)
	assert.Equal(t, local(2006, time.August, 17, 0, 0, 0), r.Next(tag.Future).Begin())
}

func TestMonth(t *testing.T) {
	r := repeater.NewMonth()
	r.Start(now)

	next := r.Next(tag.Future)
	assert.Equal(t, local(2006, time.September, 1, 0, 0, 0), next.Begin())
	assert.Equal(t, local(2006, time.October, 1, 0, 0, 0), next.End())

	r.Start(now)
	prev := r.Next(tag.Past)
	assert.Equal(t, local(2006, time.July, 1, 0, 0, 0), prev.Begin())
}

func TestMonthName(t *testing.T) {
	r := repeater.NewMonthName(time.November)
	r.Start(now)

	next := r.Next(tag.Future)
	assert.Equal(t, local(2006, time.November, 1, 0, 0, 0), next.Begin())
	assert.Equal(t, local(2006, time.December, 1, 0, 0, 0), next.End())

	// a month already past this year resolves to next year
	r2 := repeater.NewMonthName(time.May)
	r2.Start(now)
	assert.Equal(t, local(2007, time.May, 1, 0, 0, 0), r2.Next(tag.Future).Begin())

	r3 := repeater.NewMonthName(time.May)
	r3.Start(now)
	assert.Equal(t, local(2006, time.May, 1, 0, 0, 0), r3.Next(tag.Past).Begin())
}

func TestYear(t *testing.T) {
	r := repeater.NewYear()
	r.Start(now)

	next := r.Next(tag.Future)
	assert.Equal(t, local(2007, time.January, 1, 0, 0, 0), next.Begin())
	assert.Equal(t, local(2008, time.January, 1, 0, 0, 0), next.End())

	r.Start(now)
	assert.Equal(t, local(2005, time.January, 1, 0, 0, 0), r.Next(tag.Past).Begin())
}

func TestSeasonName(t *testing.T) {
	r := repeater.NewSeasonName(repeater.Spring)
	r.Start(now)

	next := r.Next(tag.Future)
	assert.Equal(t, local(2007, time.March, 20, 0, 0, 0), next.Begin())
	assert.Equal(t, local(2007, time.June, 21, 0, 0, 0), next.End())

	// mid-August is summer
	r2 := repeater.NewSeasonName(repeater.Summer)
	r2.Start(now)
	this := r2.This(tag.None)
	assert.Equal(t, local(2006, time.June, 21, 0, 0, 0), this.Begin())
}

func TestDayPortion(t *testing.T) {
	r := repeater.NewDayPortion(repeater.Morning)
	r.Start(now)

	// 14:00 is past the morning, so the next one is tomorrow's
	next := r.Next(tag.Future)
	assert.Equal(t, local(2006, time.August, 17, 6, 0, 0), next.Begin())
	assert.Equal(t, local(2006, time.August, 17, 12, 0, 0), next.End())

	r.Start(now)
	this := r.This(tag.None)
	assert.Equal(t, local(2006, time.August, 16, 6, 0, 0), this.Begin())

	rng := repeater.NewDayPortionRange(6)
	rng.Start(local(2006, time.August, 15, 0, 0, 0))
	sp := rng.This(tag.None)
	assert.Equal(t, local(2006, time.August, 15, 6, 0, 0), sp.Begin())
	assert.Equal(t, local(2006, time.August, 15, 18, 0, 0), sp.End())
}

func TestTimeParsing(t *testing.T) {
	cases := []struct {
		word      string
		tick      int64
		ambiguous bool
	}{
		{"4", 4 * 60 * 60, true},
		{"12", 0, true},
		{"14", 14 * 60 * 60, true},
		{"4:00", 4 * 60 * 60, true},
		{"14:00", 14 * 60 * 60, false},
		{"12:30", 30 * 60, true},
		{"24:00", 24 * 60 * 60, false},
		{"00:00", 0, false},
		{"730", 7*60*60 + 30*60, true},
		{"19:30:40", 19*60*60 + 30*60 + 40, false},
	}
	for _, c := range cases {
		r, ok := repeater.NewTime(c.word)
		require.True(t, ok, "word %q", c.word)
		assert.Equal(t, c.tick, r.Tick(), "word %q", c.word)
		assert.Equal(t, c.ambiguous, r.Ambiguous(), "word %q", c.word)
	}

	_, ok := repeater.NewTime("1234567")
	assert.False(t, ok)
}

func TestTimeNext(t *testing.T) {
	// ambiguous 4:00 at 14:00 resolves forward to 16:00
	r, ok := repeater.NewTime("4:00")
	require.True(t, ok)
	r.Start(now)
	assert.Equal(t, local(2006, time.August, 16, 16, 0, 0), r.Next(tag.Future).Begin())
	// and twelve hours further on the second step
	assert.Equal(t, local(2006, time.August, 17, 4, 0, 0), r.Next(tag.Future).Begin())

	// unambiguous 14:30 is still ahead today
	r2, ok := repeater.NewTime("14:30")
	require.True(t, ok)
	r2.Start(now)
	assert.Equal(t, local(2006, time.August, 16, 14, 30, 0), r2.Next(tag.Future).Begin())

	// 24:00 is the end of the current day
	r3, ok := repeater.NewTime("24:00")
	require.True(t, ok)
	r3.Start(now)
	assert.Equal(t, local(2006, time.August, 17, 0, 0, 0), r3.Next(tag.Future).Begin())
}

func TestOffsets(t *testing.T) {
	r := repeater.NewWeek()
	base := repeater.NewSecond()
	base.Start(now)
	sp := base.This(tag.Future)

	shifted := r.Offset(sp, 3, tag.Future)
	assert.Equal(t, local(2006, time.September, 6, 14, 0, 0), shifted.Begin())

	back := r.Offset(sp, 3, tag.Past)
	assert.Equal(t, local(2006, time.July, 26, 14, 0, 0), back.Begin())

	m := repeater.NewMonth()
	assert.Equal(t, local(2006, time.September, 16, 14, 0, 0), m.Offset(sp, 1, tag.Future).Begin())

	y := repeater.NewYear()
	assert.Equal(t, local(2008, time.August, 16, 14, 0, 0), y.Offset(sp, 2, tag.Future).Begin())
}
