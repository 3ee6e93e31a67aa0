// Package tag defines the token and tag model of the parser. A token is a
// word plus a small bag of typed tags; a single token may carry several tags
// of different kinds at once ("in" is both a separator and a future pointer).
package tag

import (
	"fmt"
	"strings"
)

// Kind discriminates the tag variants. Family kinds (Repeater, Scalar,
// Ordinal, Separator) group their subtypes for pattern matching.
type Kind int

const (
	KindNone Kind = iota

	// Repeater subtypes must stay contiguous after KindRepeater.
	KindRepeater
	KindRepeaterYear
	KindRepeaterSeason
	KindRepeaterSeasonName
	KindRepeaterMonth
	KindRepeaterMonthName
	KindRepeaterFortnight
	KindRepeaterWeek
	KindRepeaterWeekend
	KindRepeaterWeekday
	KindRepeaterDay
	KindRepeaterDayName
	KindRepeaterDayPortion
	KindRepeaterHour
	KindRepeaterMinute
	KindRepeaterSecond
	KindRepeaterTime

	KindGrabber
	KindPointer

	KindScalar
	KindScalarDay
	KindScalarMonth
	KindScalarYear

	KindOrdinal
	KindOrdinalDay

	KindSeparator
	KindSeparatorComma
	KindSeparatorSlashOrDash
	KindSeparatorAt
	KindSeparatorIn
	KindSeparatorOn

	KindTimeZone
)

var kindNames = map[Kind]string{
	KindNone:                 "none",
	KindRepeater:             "repeater",
	KindRepeaterYear:         "repeater_year",
	KindRepeaterSeason:       "repeater_season",
	KindRepeaterSeasonName:   "repeater_season_name",
	KindRepeaterMonth:        "repeater_month",
	KindRepeaterMonthName:    "repeater_month_name",
	KindRepeaterFortnight:    "repeater_fortnight",
	KindRepeaterWeek:         "repeater_week",
	KindRepeaterWeekend:      "repeater_weekend",
	KindRepeaterWeekday:      "repeater_weekday",
	KindRepeaterDay:          "repeater_day",
	KindRepeaterDayName:      "repeater_day_name",
	KindRepeaterDayPortion:   "repeater_day_portion",
	KindRepeaterHour:         "repeater_hour",
	KindRepeaterMinute:       "repeater_minute",
	KindRepeaterSecond:       "repeater_second",
	KindRepeaterTime:         "repeater_time",
	KindGrabber:              "grabber",
	KindPointer:              "pointer",
	KindScalar:               "scalar",
	KindScalarDay:            "scalar_day",
	KindScalarMonth:          "scalar_month",
	KindScalarYear:           "scalar_year",
	KindOrdinal:              "ordinal",
	KindOrdinalDay:           "ordinal_day",
	KindSeparator:            "separator",
	KindSeparatorComma:       "separator_comma",
	KindSeparatorSlashOrDash: "separator_slash_or_dash",
	KindSeparatorAt:          "separator_at",
	KindSeparatorIn:          "separator_in",
	KindSeparatorOn:          "separator_on",
	KindTimeZone:             "time_zone",
}

// String returns the snake_case name of the kind for debug output.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Is reports whether a tag of kind k satisfies a pattern atom that requires
// want. Family kinds are satisfied by any of their subtypes.
func (k Kind) Is(want Kind) bool {
	if k == want {
		return true
	}
	switch want {
	case KindRepeater:
		return k > KindRepeater && k <= KindRepeaterTime
	case KindScalar:
		return k == KindScalarDay || k == KindScalarMonth || k == KindScalarYear
	case KindOrdinal:
		return k == KindOrdinalDay
	case KindSeparator:
		return k >= KindSeparatorComma && k <= KindSeparatorOn
	}
	return false
}

// Direction expresses the temporal orientation used by grabbers, pointers and
// the context option. None is the neutral value.
type Direction int

const (
	None Direction = iota
	Past
	Future
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Past:
		return "past"
	case Future:
		return "future"
	default:
		return "none"
	}
}

// Tag is the interface implemented by every tag variant, including the
// repeaters defined in the repeater package.
type Tag interface {
	// Kind returns the discriminator of this tag.
	Kind() Kind
	// String renders the tag for debug output.
	String() string
}

// Token is one word of the normalized input together with the tags the
// scanners attached to it.
type Token struct {
	Word string
	tags []Tag
}

// NewToken creates a new Token for the given word with no tags.
func NewToken(word string) *Token {
	return &Token{Word: word}
}

// Add appends tags to the token, skipping nil entries.
func (t *Token) Add(tags ...Tag) {
	for _, tg := range tags {
		if tg != nil {
			t.tags = append(t.tags, tg)
		}
	}
}

// Untag removes every tag satisfying the given kind.
func (t *Token) Untag(kind Kind) {
	kept := t.tags[:0]
	for _, tg := range t.tags {
		if !tg.Kind().Is(kind) {
			kept = append(kept, tg)
		}
	}
	t.tags = kept
}

// Get returns the first tag satisfying the given kind, or nil.
func (t *Token) Get(kind Kind) Tag {
	for _, tg := range t.tags {
		if tg.Kind().Is(kind) {
			return tg
		}
	}
	return nil
}

// Tags returns the tags attached to the token.
func (t *Token) Tags() []Tag {
	return t.tags
}

// Tagged reports whether the token carries at least one tag.
func (t *Token) Tagged() bool {
	return len(t.tags) > 0
}

// String renders the token and its tags for debug output.
func (t *Token) String() string {
	names := make([]string, 0, len(t.tags))
	for _, tg := range t.tags {
		names = append(names, tg.Kind().String())
	}
	return fmt.Sprintf("%s(%s)", t.Word, strings.Join(names, ", "))
}
