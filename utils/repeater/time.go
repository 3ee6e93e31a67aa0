package repeater

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/musicmunky/chronic/utils/span"
	"github.com/musicmunky/chronic/utils/tag"
)

// Time steps occurrences of a clock time. The tick is the offset from
// midnight in seconds; a tick of 24 hours is the end-of-day sentinel produced
// by "24:00". Forms of one, two, three or five digits ("4", "14", "730") are
// always flagged ambiguous; four- and six-digit forms ("12:30", "19:30:40")
// only when written with a colon, without a leading zero and with an hour of
// at most 12. An ambiguous time repeats every twelve hours until a day portion
// pins it down.
type Time struct {
	tick      int64 // seconds past midnight
	ambiguous bool
	now       time.Time
	cursor    time.Time
	started   bool
}

// NewTime parses a normalized clock word ("7", "7:30", "19:30:40", "0730")
// into a time repeater. The boolean reports whether the word was a valid
// clock form.
func NewTime(word string) (*Time, bool) {
	hasColon := strings.Contains(word, ":")
	digits := strings.NewReplacer(":", "", ".", "").Replace(word)
	if _, err := strconv.Atoi(digits); err != nil {
		return nil, false
	}
	num := func(s string) int64 {
		n, _ := strconv.Atoi(s)
		return int64(n)
	}

	t := &Time{}
	switch len(digits) {
	case 1, 2:
		hours := num(digits)
		t.ambiguous = true
		if hours == 12 {
			t.tick = 0
		} else {
			t.tick = hours * HourSeconds
		}
	case 3:
		t.ambiguous = true
		t.tick = num(digits[0:1])*HourSeconds + num(digits[1:3])*MinuteSeconds
	case 4:
		hours := num(digits[0:2])
		t.ambiguous = hasColon && digits[0] != '0' && hours <= 12
		if hours == 12 {
			t.tick = num(digits[2:4]) * MinuteSeconds
		} else {
			t.tick = hours*HourSeconds + num(digits[2:4])*MinuteSeconds
		}
	case 5:
		t.ambiguous = true
		t.tick = num(digits[0:1])*HourSeconds + num(digits[1:3])*MinuteSeconds + num(digits[3:5])
	case 6:
		hours := num(digits[0:2])
		t.ambiguous = hasColon && digits[0] != '0' && hours <= 12
		if hours == 12 {
			t.tick = num(digits[2:4])*MinuteSeconds + num(digits[4:6])
		} else {
			t.tick = hours*HourSeconds + num(digits[2:4])*MinuteSeconds + num(digits[4:6])
		}
	default:
		return nil, false
	}
	return t, true
}

// Kind implements tag.Tag.
func (r *Time) Kind() tag.Kind { return tag.KindRepeaterTime }

// String implements tag.Tag.
func (r *Time) String() string { return fmt.Sprintf("repeater_time-%d", r.tick) }

// Ambiguous reports whether the clock time is flagged ambiguous (see Time).
func (r *Time) Ambiguous() bool { return r.ambiguous }

// DisableAmbiguity pins the tick to a 24-hour period, so stepping visits one
// occurrence per day. Used when the ambiguous-time heuristic is switched off.
func (r *Time) DisableAmbiguity() { r.ambiguous = false }

// Tick returns the offset from midnight in seconds.
func (r *Time) Tick() int64 { return r.tick }

// Start implements Repeater.
func (r *Time) Start(now time.Time) {
	r.now = now
	r.started = false
	r.cursor = time.Time{}
}

// Width implements Repeater.
func (r *Time) Width() int64 { return 1 }

// This implements Repeater; a clock time is point-like, so the neutral
// context resolves forward.
func (r *Time) This(ctx tag.Direction) *span.Span {
	if ctx == tag.Past {
		return r.Next(tag.Past)
	}
	return r.Next(tag.Future)
}

// Next returns the closest occurrence of the clock time in the given
// direction. Ambiguous times repeat every half day, exact ones every day.
func (r *Time) Next(dir tag.Direction) *span.Span {
	halfDay := secondsOf(12 * HourSeconds)
	fullDay := secondsOf(24 * HourSeconds)

	if r.started {
		step := fullDay
		if r.ambiguous {
			step = halfDay
		}
		if dir != tag.Future {
			step = -step
		}
		r.cursor = r.cursor.Add(step)
		return span.New(r.cursor, r.cursor.Add(time.Second))
	}

	r.started = true
	midnight := dayStart(r.now)
	tick := secondsOf(r.tick)

	var candidates []time.Time
	if dir == tag.Future {
		if r.ambiguous {
			candidates = []time.Time{
				midnight.Add(tick),
				midnight.Add(halfDay + tick),
				midnight.Add(fullDay + tick),
			}
		} else {
			candidates = []time.Time{
				midnight.Add(tick),
				midnight.Add(fullDay + tick),
			}
		}
		for _, c := range candidates {
			if !c.Before(r.now) {
				r.cursor = c
				break
			}
		}
	} else {
		if r.ambiguous {
			candidates = []time.Time{
				midnight.Add(halfDay + tick),
				midnight.Add(tick),
				midnight.Add(-fullDay + halfDay + tick),
			}
		} else {
			candidates = []time.Time{
				midnight.Add(tick),
				midnight.Add(-fullDay + tick),
			}
		}
		for _, c := range candidates {
			if !c.After(r.now) {
				r.cursor = c
				break
			}
		}
	}
	if r.cursor.IsZero() {
		// every candidate was on the wrong side; fall back to the last one
		r.cursor = candidates[len(candidates)-1]
	}
	return span.New(r.cursor, r.cursor.Add(time.Second))
}

// Offset implements Repeater.
func (r *Time) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	return s.Shift(int64(direction(dir) * amount))
}
