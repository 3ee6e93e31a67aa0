// Package span provides the half-open time interval returned by the parser.
package span

import (
	"fmt"
	"time"
)

// Span represents a half-open interval of instants [Begin, End).
// A span of width one second represents a single point in time.
type Span struct {
	begin time.Time
	end   time.Time
}

// New creates a new Span instance from the provided begin and end instants.
func New(begin, end time.Time) *Span {
	return &Span{begin: begin, end: end}
}

// Begin returns the inclusive lower bound of the span.
func (s *Span) Begin() time.Time {
	return s.begin
}

// End returns the exclusive upper bound of the span.
func (s *Span) End() time.Time {
	return s.end
}

// Width returns the length of the span in whole seconds.
func (s *Span) Width() int64 {
	return int64(s.end.Sub(s.begin) / time.Second)
}

// Include reports whether t falls inside the half-open interval [Begin, End).
func (s *Span) Include(t time.Time) bool {
	return !t.Before(s.begin) && t.Before(s.end)
}

// Cover reports whether t falls inside the closed interval [Begin, End].
// Nested repeater resolution uses the closed test so that a unit landing
// exactly on the outer boundary (midnight at the end of a day) still counts.
func (s *Span) Cover(t time.Time) bool {
	return !t.Before(s.begin) && !t.After(s.end)
}

// Shift returns a new Span with both endpoints moved by the given number of seconds.
func (s *Span) Shift(seconds int64) *Span {
	d := time.Duration(seconds) * time.Second
	return New(s.begin.Add(d), s.end.Add(d))
}

// String returns the span formatted for debug output.
func (s *Span) String() string {
	return fmt.Sprintf("(%s..%s)", s.begin.Format(time.DateTime), s.end.Format(time.DateTime))
}
