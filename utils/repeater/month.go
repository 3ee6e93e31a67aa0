package repeater

import (
	"strings"
	"time"

	"github.com/musicmunky/chronic/utils/span"
	"github.com/musicmunky/chronic/utils/tag"
)

// Month steps calendar months.
type Month struct {
	now     time.Time
	cursor  time.Time // first of the current month
	started bool
}

// NewMonth creates a month repeater.
func NewMonth() *Month { return &Month{} }

// Kind implements tag.Tag.
func (r *Month) Kind() tag.Kind { return tag.KindRepeaterMonth }

// String implements tag.Tag.
func (r *Month) String() string { return "repeater_month" }

// Start implements Repeater.
func (r *Month) Start(now time.Time) {
	r.now = now
	r.started = false
}

// Width implements Repeater.
func (r *Month) Width() int64 { return MonthSeconds }

// This implements Repeater.
func (r *Month) This(ctx tag.Direction) *span.Span {
	begin := monthStart(r.now)
	switch ctx {
	case tag.Future:
		return span.New(dayStart(r.now).AddDate(0, 0, 1), begin.AddDate(0, 1, 0))
	case tag.Past:
		return span.New(begin, dayStart(r.now))
	default:
		return span.New(begin, begin.AddDate(0, 1, 0))
	}
}

// Next implements Repeater.
func (r *Month) Next(dir tag.Direction) *span.Span {
	d := direction(dir)
	if !r.started {
		r.started = true
		r.cursor = monthStart(r.now).AddDate(0, d, 0)
	} else {
		r.cursor = r.cursor.AddDate(0, d, 0)
	}
	return span.New(r.cursor, r.cursor.AddDate(0, 1, 0))
}

// Offset shifts by whole calendar months, preserving the day of month the
// way time.AddDate does.
func (r *Month) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	d := direction(dir)
	return span.New(s.Begin().AddDate(0, d*amount, 0), s.End().AddDate(0, d*amount, 0))
}

// MonthName steps yearly occurrences of a named month.
type MonthName struct {
	month   time.Month
	now     time.Time
	cursor  time.Time // first of the current occurrence
	started bool
}

// NewMonthName creates a repeater for the given month.
func NewMonthName(month time.Month) *MonthName { return &MonthName{month: month} }

// Kind implements tag.Tag.
func (r *MonthName) Kind() tag.Kind { return tag.KindRepeaterMonthName }

// String implements tag.Tag.
func (r *MonthName) String() string {
	return "repeater_month_name-" + strings.ToLower(r.month.String())
}

// Index returns the month this repeater walks.
func (r *MonthName) Index() time.Month { return r.month }

// Start implements Repeater.
func (r *MonthName) Start(now time.Time) {
	r.now = now
	r.started = false
}

// Width implements Repeater.
func (r *MonthName) Width() int64 { return MonthSeconds }

// This implements Repeater. A named month resolves forward unless the context
// points at the past.
func (r *MonthName) This(ctx tag.Direction) *span.Span {
	if ctx == tag.Past {
		return r.Next(tag.Past)
	}
	return r.Next(tag.Future)
}

// Next implements Repeater.
func (r *MonthName) Next(dir tag.Direction) *span.Span {
	d := direction(dir)
	if !r.started {
		r.started = true
		year := r.now.Year()
		if dir == tag.Future {
			if r.now.Month() >= r.month {
				year++
			}
		} else {
			if r.now.Month() <= r.month {
				year--
			}
		}
		r.cursor = time.Date(year, r.month, 1, 0, 0, 0, 0, r.now.Location())
	} else {
		r.cursor = r.cursor.AddDate(d, 0, 0)
	}
	return span.New(r.cursor, r.cursor.AddDate(0, 1, 0))
}

// Offset implements Repeater.
func (r *MonthName) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	return s.Shift(int64(direction(dir)*amount) * MonthSeconds)
}
