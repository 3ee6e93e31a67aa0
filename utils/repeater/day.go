package repeater

import (
	"fmt"
	"strings"
	"time"

	"github.com/musicmunky/chronic/utils/span"
	"github.com/musicmunky/chronic/utils/tag"
)

// Day steps calendar days.
type Day struct {
	now     time.Time
	cursor  time.Time // start of the current day
	started bool
}

// NewDay creates a day repeater.
func NewDay() *Day { return &Day{} }

// Kind implements tag.Tag.
func (r *Day) Kind() tag.Kind { return tag.KindRepeaterDay }

// String implements tag.Tag.
func (r *Day) String() string { return "repeater_day" }

// Start implements Repeater.
func (r *Day) Start(now time.Time) {
	r.now = now
	r.started = false
}

// Width implements Repeater.
func (r *Day) Width() int64 { return DaySeconds }

// This returns today: the remaining hours with a future context, the elapsed
// hours with a past context, the whole day otherwise.
func (r *Day) This(ctx tag.Direction) *span.Span {
	begin := dayStart(r.now)
	switch ctx {
	case tag.Future:
		return span.New(hourStart(r.now).Add(time.Hour), begin.AddDate(0, 0, 1))
	case tag.Past:
		return span.New(begin, hourStart(r.now))
	default:
		return span.New(begin, begin.AddDate(0, 0, 1))
	}
}

// Next implements Repeater.
func (r *Day) Next(dir tag.Direction) *span.Span {
	d := direction(dir)
	if !r.started {
		r.started = true
		r.cursor = dayStart(r.now).AddDate(0, 0, d)
	} else {
		r.cursor = r.cursor.AddDate(0, 0, d)
	}
	return span.New(r.cursor, r.cursor.AddDate(0, 0, 1))
}

// Offset implements Repeater.
func (r *Day) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	return s.Shift(int64(direction(dir)*amount) * DaySeconds)
}

// DayName steps occurrences of a named weekday.
type DayName struct {
	day     time.Weekday
	now     time.Time
	cursor  time.Time // start of the current occurrence
	started bool
}

// NewDayName creates a repeater for the given weekday.
func NewDayName(day time.Weekday) *DayName { return &DayName{day: day} }

// Kind implements tag.Tag.
func (r *DayName) Kind() tag.Kind { return tag.KindRepeaterDayName }

// String implements tag.Tag.
func (r *DayName) String() string {
	return "repeater_day_name-" + strings.ToLower(r.day.String())
}

// Day returns the weekday this repeater walks.
func (r *DayName) Day() time.Weekday { return r.day }

// Start implements Repeater.
func (r *DayName) Start(now time.Time) {
	r.now = now
	r.started = false
}

// Width implements Repeater.
func (r *DayName) Width() int64 { return DaySeconds }

// This implements Repeater. A bare day name has no containing span, so the
// neutral context resolves forward.
func (r *DayName) This(ctx tag.Direction) *span.Span {
	if ctx == tag.Past {
		return r.Next(tag.Past)
	}
	return r.Next(tag.Future)
}

// Next implements Repeater.
func (r *DayName) Next(dir tag.Direction) *span.Span {
	d := direction(dir)
	if !r.started {
		r.started = true
		r.cursor = dayStart(r.now).AddDate(0, 0, d)
		for r.cursor.Weekday() != r.day {
			r.cursor = r.cursor.AddDate(0, 0, d)
		}
	} else {
		r.cursor = r.cursor.AddDate(0, 0, 7*d)
	}
	return span.New(r.cursor, r.cursor.AddDate(0, 0, 1))
}

// Offset implements Repeater.
func (r *DayName) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	return s.Shift(int64(direction(dir)*amount) * WeekSeconds)
}

// PortionType enumerates the named portions of a day.
type PortionType int

const (
	AM PortionType = iota
	PM
	Morning
	Afternoon
	Evening
	Night
)

// portionRanges gives the second-of-day window for each named portion.
var portionRanges = map[PortionType][2]int64{
	AM:        {0, 12*HourSeconds - 1},
	PM:        {12 * HourSeconds, 24*HourSeconds - 1},
	Morning:   {6 * HourSeconds, 12 * HourSeconds},
	Afternoon: {13 * HourSeconds, 17 * HourSeconds},
	Evening:   {17 * HourSeconds, 20 * HourSeconds},
	Night:     {20 * HourSeconds, 24 * HourSeconds},
}

var portionNames = map[PortionType]string{
	AM: "am", PM: "pm", Morning: "morning",
	Afternoon: "afternoon", Evening: "evening", Night: "night",
}

// DayPortion steps a fixed daily window, either a named portion or an
// arbitrary hour range (used for ambiguous-time disambiguation).
type DayPortion struct {
	name       string
	rangeBegin int64 // seconds from midnight
	rangeEnd   int64
	now        time.Time
	current    *span.Span
}

// NewDayPortion creates a repeater for a named day portion.
func NewDayPortion(p PortionType) *DayPortion {
	rng := portionRanges[p]
	return &DayPortion{name: portionNames[p], rangeBegin: rng[0], rangeEnd: rng[1]}
}

// NewDayPortionRange creates a repeater for the window from the given hour to
// twelve hours later, the window implied by an ambiguous clock time.
func NewDayPortionRange(hour int) *DayPortion {
	return &DayPortion{
		name:       fmt.Sprintf("range-%d", hour),
		rangeBegin: int64(hour) * HourSeconds,
		rangeEnd:   int64(hour+12) * HourSeconds,
	}
}

// PortionName returns the portion's name ("morning", "pm", ...); synthetic
// range portions report "range-N".
func (r *DayPortion) PortionName() string { return r.name }

// Kind implements tag.Tag.
func (r *DayPortion) Kind() tag.Kind { return tag.KindRepeaterDayPortion }

// String implements tag.Tag.
func (r *DayPortion) String() string { return "repeater_day_portion-" + r.name }

// Start implements Repeater.
func (r *DayPortion) Start(now time.Time) {
	r.now = now
	r.current = nil
}

// Width implements Repeater.
func (r *DayPortion) Width() int64 { return r.rangeEnd - r.rangeBegin }

// This returns the portion window of the day containing the reference
// instant, independent of context.
func (r *DayPortion) This(tag.Direction) *span.Span {
	begin := dayStart(r.now).Add(secondsOf(r.rangeBegin))
	r.current = span.New(begin, begin.Add(secondsOf(r.Width())))
	return r.current
}

// Next implements Repeater.
func (r *DayPortion) Next(dir tag.Direction) *span.Span {
	if r.current != nil {
		r.current = r.current.Shift(int64(direction(dir)) * DaySeconds)
		return r.current
	}
	today := dayStart(r.now)
	nowSecs := int64(r.now.Sub(today) / time.Second)
	var base time.Time
	switch {
	case nowSecs < r.rangeBegin:
		if dir == tag.Future {
			base = today
		} else {
			base = today.AddDate(0, 0, -1)
		}
	case nowSecs > r.rangeEnd:
		if dir == tag.Future {
			base = today.AddDate(0, 0, 1)
		} else {
			base = today
		}
	default:
		if dir == tag.Future {
			base = today.AddDate(0, 0, 1)
		} else {
			base = today.AddDate(0, 0, -1)
		}
	}
	begin := base.Add(secondsOf(r.rangeBegin))
	r.current = span.New(begin, begin.Add(secondsOf(r.Width())))
	return r.current
}

// Offset implements Repeater.
func (r *DayPortion) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	return s.Shift(int64(direction(dir)*amount) * DaySeconds)
}

// Weekday steps days that are not Saturday or Sunday.
type Weekday struct {
	now     time.Time
	cursor  time.Time
	started bool
}

// NewWeekday creates a weekday repeater.
func NewWeekday() *Weekday { return &Weekday{} }

// Kind implements tag.Tag.
func (r *Weekday) Kind() tag.Kind { return tag.KindRepeaterWeekday }

// String implements tag.Tag.
func (r *Weekday) String() string { return "repeater_weekday" }

// Start implements Repeater.
func (r *Weekday) Start(now time.Time) {
	r.now = now
	r.started = false
}

// Width implements Repeater.
func (r *Weekday) Width() int64 { return DaySeconds }

// This implements Repeater.
func (r *Weekday) This(ctx tag.Direction) *span.Span {
	if ctx == tag.Past {
		return r.Next(tag.Past)
	}
	return r.Next(tag.Future)
}

// Next implements Repeater.
func (r *Weekday) Next(dir tag.Direction) *span.Span {
	d := direction(dir)
	if !r.started {
		r.started = true
		r.cursor = dayStart(r.now)
	}
	r.cursor = r.cursor.AddDate(0, 0, d)
	for isWeekend(r.cursor.Weekday()) {
		r.cursor = r.cursor.AddDate(0, 0, d)
	}
	return span.New(r.cursor, r.cursor.AddDate(0, 0, 1))
}

// Offset counts whole weekdays, hopping over weekends.
func (r *Weekday) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	d := direction(dir)
	passed := 0
	cur := s.Begin()
	for passed < amount {
		cur = cur.AddDate(0, 0, d)
		if !isWeekend(cur.Weekday()) {
			passed++
		}
	}
	return s.Shift(int64(cur.Sub(s.Begin()) / time.Second))
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

// Weekend steps the Saturday-Sunday window of successive weeks.
type Weekend struct {
	now     time.Time
	cursor  time.Time // start of the current Saturday
	started bool
}

// NewWeekend creates a weekend repeater.
func NewWeekend() *Weekend { return &Weekend{} }

// Kind implements tag.Tag.
func (r *Weekend) Kind() tag.Kind { return tag.KindRepeaterWeekend }

// String implements tag.Tag.
func (r *Weekend) String() string { return "repeater_weekend" }

// Start implements Repeater.
func (r *Weekend) Start(now time.Time) {
	r.now = now
	r.started = false
}

// Width implements Repeater.
func (r *Weekend) Width() int64 { return WeekendSeconds }

// This implements Repeater.
func (r *Weekend) This(ctx tag.Direction) *span.Span {
	switch ctx {
	case tag.Past:
		return r.Next(tag.Past)
	case tag.Future:
		return r.Next(tag.Future)
	default:
		begin := weekAnchor(r.now, time.Saturday)
		return span.New(begin, begin.AddDate(0, 0, 2))
	}
}

// Next implements Repeater.
func (r *Weekend) Next(dir tag.Direction) *span.Span {
	d := direction(dir)
	if !r.started {
		r.started = true
		if dir == tag.Future {
			r.cursor = nextWeekday(r.now, time.Saturday)
		} else {
			r.cursor = weekAnchor(r.now.AddDate(0, 0, -1), time.Saturday)
		}
	} else {
		r.cursor = r.cursor.AddDate(0, 0, 7*d)
	}
	return span.New(r.cursor, r.cursor.AddDate(0, 0, 2))
}

// Offset lands on the weekend nearest the shifted span, stepping whole weeks
// beyond the first.
func (r *Weekend) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	d := direction(dir)
	weekend := NewWeekend()
	weekend.Start(s.Begin())
	start := weekend.Next(dir).Begin().Add(secondsOf(int64((amount - 1) * d * int(WeekSeconds))))
	return span.New(start, start.Add(secondsOf(s.Width())))
}
