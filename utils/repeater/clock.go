package repeater

import (
	"time"

	"github.com/musicmunky/chronic/utils/span"
	"github.com/musicmunky/chronic/utils/tag"
)

// Second steps one-second spans.
type Second struct {
	now     time.Time
	cursor  time.Time
	started bool
}

// NewSecond creates a second repeater.
func NewSecond() *Second { return &Second{} }

// Kind implements tag.Tag.
func (r *Second) Kind() tag.Kind { return tag.KindRepeaterSecond }

// String implements tag.Tag.
func (r *Second) String() string { return "repeater_second" }

// Start implements Repeater.
func (r *Second) Start(now time.Time) {
	r.now = now
	r.started = false
}

// Width implements Repeater.
func (r *Second) Width() int64 { return SecondSeconds }

// This returns the second containing the reference instant; the context makes
// no difference at this resolution.
func (r *Second) This(tag.Direction) *span.Span {
	return span.New(r.now, r.now.Add(time.Second))
}

// Next implements Repeater.
func (r *Second) Next(dir tag.Direction) *span.Span {
	step := time.Duration(direction(dir)) * time.Second
	if !r.started {
		r.started = true
		r.cursor = r.now.Add(step)
	} else {
		r.cursor = r.cursor.Add(step)
	}
	return span.New(r.cursor, r.cursor.Add(time.Second))
}

// Offset implements Repeater.
func (r *Second) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	return s.Shift(int64(direction(dir)*amount) * SecondSeconds)
}

// Minute steps one-minute spans.
type Minute struct {
	now     time.Time
	cursor  time.Time
	started bool
}

// NewMinute creates a minute repeater.
func NewMinute() *Minute { return &Minute{} }

// Kind implements tag.Tag.
func (r *Minute) Kind() tag.Kind { return tag.KindRepeaterMinute }

// String implements tag.Tag.
func (r *Minute) String() string { return "repeater_minute" }

// Start implements Repeater.
func (r *Minute) Start(now time.Time) {
	r.now = now
	r.started = false
}

// Width implements Repeater.
func (r *Minute) Width() int64 { return MinuteSeconds }

// This implements Repeater.
func (r *Minute) This(ctx tag.Direction) *span.Span {
	begin := minuteStart(r.now)
	switch ctx {
	case tag.Future:
		return span.New(r.now, begin.Add(time.Minute))
	case tag.Past:
		return span.New(begin, r.now)
	default:
		return span.New(begin, begin.Add(time.Minute))
	}
}

// Next implements Repeater.
func (r *Minute) Next(dir tag.Direction) *span.Span {
	step := time.Duration(direction(dir)) * time.Minute
	if !r.started {
		r.started = true
		r.cursor = minuteStart(r.now).Add(step)
	} else {
		r.cursor = r.cursor.Add(step)
	}
	return span.New(r.cursor, r.cursor.Add(time.Minute))
}

// Offset implements Repeater.
func (r *Minute) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	return s.Shift(int64(direction(dir)*amount) * MinuteSeconds)
}

// Hour steps one-hour spans.
type Hour struct {
	now     time.Time
	cursor  time.Time
	started bool
}

// NewHour creates an hour repeater.
func NewHour() *Hour { return &Hour{} }

// Kind implements tag.Tag.
func (r *Hour) Kind() tag.Kind { return tag.KindRepeaterHour }

// String implements tag.Tag.
func (r *Hour) String() string { return "repeater_hour" }

// Start implements Repeater.
func (r *Hour) Start(now time.Time) {
	r.now = now
	r.started = false
}

// Width implements Repeater.
func (r *Hour) Width() int64 { return HourSeconds }

// This implements Repeater.
func (r *Hour) This(ctx tag.Direction) *span.Span {
	begin := hourStart(r.now)
	switch ctx {
	case tag.Future:
		return span.New(minuteStart(r.now).Add(time.Minute), begin.Add(time.Hour))
	case tag.Past:
		return span.New(begin, minuteStart(r.now))
	default:
		return span.New(begin, begin.Add(time.Hour))
	}
}

// Next implements Repeater.
func (r *Hour) Next(dir tag.Direction) *span.Span {
	step := time.Duration(direction(dir)) * time.Hour
	if !r.started {
		r.started = true
		r.cursor = hourStart(r.now).Add(step)
	} else {
		r.cursor = r.cursor.Add(step)
	}
	return span.New(r.cursor, r.cursor.Add(time.Hour))
}

// Offset implements Repeater.
func (r *Hour) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	return s.Shift(int64(direction(dir)*amount) * HourSeconds)
}
