package tag

import (
	"fmt"
	"regexp"
	"strconv"
)

// Grabber selects which occurrence of a repeater an anchor expression means:
// this, next or last.
type Grabber struct {
	Direction Direction // Past for "last", Future for "next", None for "this"
}

// NewGrabber creates a new Grabber tag with the given direction.
func NewGrabber(d Direction) *Grabber {
	return &Grabber{Direction: d}
}

// Kind implements Tag.
func (g *Grabber) Kind() Kind { return KindGrabber }

// String implements Tag.
func (g *Grabber) String() string { return "grabber-" + g.Direction.String() }

// ScanGrabber returns a Grabber tag for "this", "next" or "last", or nil.
func ScanGrabber(word string) Tag {
	switch word {
	case "this":
		return NewGrabber(None)
	case "next":
		return NewGrabber(Future)
	case "last":
		return NewGrabber(Past)
	}
	return nil
}

// Pointer gives the direction of an arrow expression ("3 weeks ago" points to
// the past, "in 3 weeks" to the future).
type Pointer struct {
	Direction Direction
}

// NewPointer creates a new Pointer tag with the given direction.
func NewPointer(d Direction) *Pointer {
	return &Pointer{Direction: d}
}

// Kind implements Tag.
func (p *Pointer) Kind() Kind { return KindPointer }

// String implements Tag.
func (p *Pointer) String() string { return "pointer-" + p.Direction.String() }

// ScanPointer returns a Pointer tag for a direction word, or nil. The word
// "in" doubles as a future pointer and a separator; both tags end up on the
// same token.
func ScanPointer(word string) Tag {
	switch word {
	case "past":
		return NewPointer(Past)
	case "future", "in":
		return NewPointer(Future)
	}
	return nil
}

// Scalar is a bare integer. Subtypes (day, month, year) are inferred from the
// magnitude and resolved from position by the handlers.
type Scalar struct {
	Amount int
	kind   Kind
}

// NewScalar creates a generic Scalar tag.
func NewScalar(amount int) *Scalar { return &Scalar{Amount: amount, kind: KindScalar} }

// NewScalarDay creates a Scalar tag subtyped as a day of month.
func NewScalarDay(amount int) *Scalar { return &Scalar{Amount: amount, kind: KindScalarDay} }

// NewScalarMonth creates a Scalar tag subtyped as a month number.
func NewScalarMonth(amount int) *Scalar { return &Scalar{Amount: amount, kind: KindScalarMonth} }

// NewScalarYear creates a Scalar tag subtyped as a year.
func NewScalarYear(amount int) *Scalar { return &Scalar{Amount: amount, kind: KindScalarYear} }

// Kind implements Tag.
func (s *Scalar) Kind() Kind { return s.kind }

// String implements Tag.
func (s *Scalar) String() string { return fmt.Sprintf("%s-%d", s.kind, s.Amount) }

var digitsRe = regexp.MustCompile(`^\d+$`)

// dayPortionWords suppress scalar and ordinal tags on the preceding token so
// that "5 pm" leaves "5" to the clock-time tagger alone.
var dayPortionWords = map[string]bool{
	"am": true, "pm": true,
	"morning": true, "afternoon": true, "evening": true, "night": true,
}

// ScanScalar returns the scalar tags for a pure integer word: always the
// generic scalar, plus day (1-31), month (1-12) and year (13-99 or >= 100)
// subtypes by magnitude. A following day-portion word suppresses all of them.
func ScanScalar(word, next string) []Tag {
	if !digitsRe.MatchString(word) || dayPortionWords[next] {
		return nil
	}
	n, err := strconv.Atoi(word)
	if err != nil {
		return nil
	}
	tags := []Tag{NewScalar(n)}
	if n >= 1 && n <= 31 {
		tags = append(tags, NewScalarDay(n))
	}
	if n >= 1 && n <= 12 {
		tags = append(tags, NewScalarMonth(n))
	}
	if n >= 13 {
		tags = append(tags, NewScalarYear(n))
	}
	return tags
}

// Ordinal is an integer with an ordinal suffix ("3rd", "21st").
type Ordinal struct {
	Amount int
	kind   Kind
}

// NewOrdinal creates a generic Ordinal tag.
func NewOrdinal(amount int) *Ordinal { return &Ordinal{Amount: amount, kind: KindOrdinal} }

// NewOrdinalDay creates an Ordinal tag subtyped as a day of month.
func NewOrdinalDay(amount int) *Ordinal { return &Ordinal{Amount: amount, kind: KindOrdinalDay} }

// Kind implements Tag.
func (o *Ordinal) Kind() Kind { return o.kind }

// String implements Tag.
func (o *Ordinal) String() string { return fmt.Sprintf("%s-%d", o.kind, o.Amount) }

var ordinalRe = regexp.MustCompile(`^(\d+)(st|nd|rd|th)$`)

// ScanOrdinal returns the ordinal tags for a suffixed integer word, with a
// day subtype when the value can be a day of month.
func ScanOrdinal(word, next string) []Tag {
	m := ordinalRe.FindStringSubmatch(word)
	if m == nil || dayPortionWords[next] {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	tags := []Tag{NewOrdinal(n)}
	if n >= 1 && n <= 31 {
		tags = append(tags, NewOrdinalDay(n))
	}
	return tags
}

// Separator is punctuation or a filler word that shapes a pattern without
// contributing content.
type Separator struct {
	kind Kind
}

// Kind implements Tag.
func (s *Separator) Kind() Kind { return s.kind }

// String implements Tag.
func (s *Separator) String() string { return s.kind.String() }

// ScanSeparator returns a Separator tag for a separator word, or nil.
func ScanSeparator(word string) Tag {
	switch word {
	case ",":
		return &Separator{kind: KindSeparatorComma}
	case "/", "-":
		return &Separator{kind: KindSeparatorSlashOrDash}
	case "at", "@":
		return &Separator{kind: KindSeparatorAt}
	case "in":
		return &Separator{kind: KindSeparatorIn}
	case "on":
		return &Separator{kind: KindSeparatorOn}
	}
	return nil
}

// TimeZone is a zone designator. The payload is recorded for callers but does
// not shift computation; all arithmetic happens in the reference instant's
// location.
type TimeZone struct {
	Zone string
}

// Kind implements Tag.
func (t *TimeZone) Kind() Kind { return KindTimeZone }

// String implements Tag.
func (t *TimeZone) String() string { return "time_zone-" + t.Zone }

var timeZoneRe = regexp.MustCompile(`^([pmce][sd]t|gmt|utc|bst|tzminus\d{4}|tzplus\d{4})$`)

// ScanTimeZone returns a TimeZone tag for a recognized zone word, or nil.
func ScanTimeZone(word string) Tag {
	if !timeZoneRe.MatchString(word) {
		return nil
	}
	return &TimeZone{Zone: word}
}
