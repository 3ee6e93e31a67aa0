package repeater

import (
	"time"

	"github.com/musicmunky/chronic/utils/span"
	"github.com/musicmunky/chronic/utils/tag"
)

// Week steps Sunday-anchored calendar weeks.
type Week struct {
	now     time.Time
	cursor  time.Time // start of the current week (a Sunday)
	started bool
}

// NewWeek creates a week repeater.
func NewWeek() *Week { return &Week{} }

// Kind implements tag.Tag.
func (r *Week) Kind() tag.Kind { return tag.KindRepeaterWeek }

// String implements tag.Tag.
func (r *Week) String() string { return "repeater_week" }

// Start implements Repeater.
func (r *Week) Start(now time.Time) {
	r.now = now
	r.started = false
}

// Width implements Repeater.
func (r *Week) Width() int64 { return WeekSeconds }

// This implements Repeater.
func (r *Week) This(ctx tag.Direction) *span.Span {
	anchor := weekAnchor(r.now, time.Sunday)
	switch ctx {
	case tag.Future:
		return span.New(hourStart(r.now).Add(time.Hour), anchor.AddDate(0, 0, 7))
	case tag.Past:
		return span.New(anchor, hourStart(r.now))
	default:
		return span.New(anchor, anchor.AddDate(0, 0, 7))
	}
}

// Next implements Repeater.
func (r *Week) Next(dir tag.Direction) *span.Span {
	d := direction(dir)
	if !r.started {
		r.started = true
		if dir == tag.Future {
			r.cursor = nextWeekday(r.now, time.Sunday)
		} else {
			r.cursor = weekAnchor(r.now, time.Sunday).AddDate(0, 0, -7)
		}
	} else {
		r.cursor = r.cursor.AddDate(0, 0, 7*d)
	}
	return span.New(r.cursor, r.cursor.AddDate(0, 0, 7))
}

// Offset implements Repeater.
func (r *Week) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	return s.Shift(int64(direction(dir)*amount) * WeekSeconds)
}

// Fortnight steps Sunday-anchored fourteen-day windows.
type Fortnight struct {
	now     time.Time
	cursor  time.Time
	started bool
}

// NewFortnight creates a fortnight repeater.
func NewFortnight() *Fortnight { return &Fortnight{} }

// Kind implements tag.Tag.
func (r *Fortnight) Kind() tag.Kind { return tag.KindRepeaterFortnight }

// String implements tag.Tag.
func (r *Fortnight) String() string { return "repeater_fortnight" }

// Start implements Repeater.
func (r *Fortnight) Start(now time.Time) {
	r.now = now
	r.started = false
}

// Width implements Repeater.
func (r *Fortnight) Width() int64 { return FortnightSeconds }

// This implements Repeater.
func (r *Fortnight) This(ctx tag.Direction) *span.Span {
	switch ctx {
	case tag.Future:
		return span.New(hourStart(r.now).Add(time.Hour), nextWeekday(r.now, time.Sunday).AddDate(0, 0, 7))
	case tag.Past:
		return span.New(weekAnchor(r.now, time.Sunday).AddDate(0, 0, -7), hourStart(r.now))
	default:
		anchor := weekAnchor(r.now, time.Sunday)
		return span.New(anchor, anchor.AddDate(0, 0, 14))
	}
}

// Next implements Repeater.
func (r *Fortnight) Next(dir tag.Direction) *span.Span {
	d := direction(dir)
	if !r.started {
		r.started = true
		if dir == tag.Future {
			r.cursor = nextWeekday(r.now, time.Sunday)
		} else {
			r.cursor = weekAnchor(r.now, time.Sunday).AddDate(0, 0, -14)
		}
	} else {
		r.cursor = r.cursor.AddDate(0, 0, 14*d)
	}
	return span.New(r.cursor, r.cursor.AddDate(0, 0, 14))
}

// Offset implements Repeater.
func (r *Fortnight) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	return s.Shift(int64(direction(dir)*amount) * FortnightSeconds)
}
