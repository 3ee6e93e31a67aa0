package repeater

import (
	"time"

	"github.com/musicmunky/chronic/utils/span"
	"github.com/musicmunky/chronic/utils/tag"
)

// Year steps calendar years.
type Year struct {
	now     time.Time
	cursor  time.Time // January 1st of the current year
	started bool
}

// NewYear creates a year repeater.
func NewYear() *Year { return &Year{} }

// Kind implements tag.Tag.
func (r *Year) Kind() tag.Kind { return tag.KindRepeaterYear }

// String implements tag.Tag.
func (r *Year) String() string { return "repeater_year" }

// Start implements Repeater.
func (r *Year) Start(now time.Time) {
	r.now = now
	r.started = false
}

// Width implements Repeater.
func (r *Year) Width() int64 { return YearSeconds }

// This implements Repeater.
func (r *Year) This(ctx tag.Direction) *span.Span {
	begin := yearStart(r.now)
	switch ctx {
	case tag.Future:
		return span.New(dayStart(r.now).AddDate(0, 0, 1), begin.AddDate(1, 0, 0))
	case tag.Past:
		return span.New(begin, dayStart(r.now))
	default:
		return span.New(begin, begin.AddDate(1, 0, 0))
	}
}

// Next implements Repeater.
func (r *Year) Next(dir tag.Direction) *span.Span {
	d := direction(dir)
	if !r.started {
		r.started = true
		r.cursor = yearStart(r.now).AddDate(d, 0, 0)
	} else {
		r.cursor = r.cursor.AddDate(d, 0, 0)
	}
	return span.New(r.cursor, r.cursor.AddDate(1, 0, 0))
}

// Offset shifts by whole calendar years.
func (r *Year) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	d := direction(dir)
	return span.New(s.Begin().AddDate(d*amount, 0, 0), s.End().AddDate(d*amount, 0, 0))
}

// SeasonType enumerates the astronomical seasons.
type SeasonType int

const (
	Spring SeasonType = iota
	Summer
	Autumn
	Winter
)

var seasonNames = map[SeasonType]string{
	Spring: "spring", Summer: "summer", Autumn: "autumn", Winter: "winter",
}

// seasonBounds holds the first day of each season. A season's span runs from
// its own start to the start of the following season; winter rolls into the
// next year.
var seasonBounds = map[SeasonType][2]int{
	Spring: {int(time.March), 20},
	Summer: {int(time.June), 21},
	Autumn: {int(time.September), 23},
	Winter: {int(time.December), 22},
}

// seasonSpan returns the span of the given season whose start lies in year.
func seasonSpan(s SeasonType, year int, loc *time.Location) *span.Span {
	b := seasonBounds[s]
	begin := time.Date(year, time.Month(b[0]), b[1], 0, 0, 0, 0, loc)
	nextSeason := (s + 1) % 4
	n := seasonBounds[nextSeason]
	endYear := year
	if s == Winter {
		endYear++
	}
	end := time.Date(endYear, time.Month(n[0]), n[1], 0, 0, 0, 0, loc)
	return span.New(begin, end)
}

// currentSeason returns the season containing t and the year its span starts in.
func currentSeason(t time.Time) (SeasonType, int) {
	for _, s := range []SeasonType{Spring, Summer, Autumn, Winter} {
		sp := seasonSpan(s, t.Year(), t.Location())
		if sp.Include(t) {
			return s, t.Year()
		}
	}
	// January to mid-March belongs to the winter that started last year.
	return Winter, t.Year() - 1
}

// SeasonName steps yearly occurrences of a named season.
type SeasonName struct {
	season  SeasonType
	now     time.Time
	year    int
	started bool
}

// NewSeasonName creates a repeater for the given season.
func NewSeasonName(s SeasonType) *SeasonName { return &SeasonName{season: s} }

// Kind implements tag.Tag.
func (r *SeasonName) Kind() tag.Kind { return tag.KindRepeaterSeasonName }

// String implements tag.Tag.
func (r *SeasonName) String() string { return "repeater_season_name-" + seasonNames[r.season] }

// Start implements Repeater.
func (r *SeasonName) Start(now time.Time) {
	r.now = now
	r.started = false
}

// Width implements Repeater.
func (r *SeasonName) Width() int64 { return SeasonSeconds }

// This returns, with a past context, the latest occurrence that has already
// ended; otherwise the occurrence containing the reference instant when there
// is one, else the next one ahead.
func (r *SeasonName) This(ctx tag.Direction) *span.Span {
	if ctx == tag.Past {
		return r.Next(tag.Past)
	}
	cur, year := currentSeason(r.now)
	if cur == r.season {
		r.started = true
		r.year = year
		return seasonSpan(r.season, year, r.now.Location())
	}
	return r.Next(tag.Future)
}

// Next implements Repeater.
func (r *SeasonName) Next(dir tag.Direction) *span.Span {
	d := direction(dir)
	if !r.started {
		r.started = true
		if dir == tag.Future {
			r.year = r.now.Year() - 1
			for !seasonSpan(r.season, r.year, r.now.Location()).Begin().After(r.now) {
				r.year++
			}
		} else {
			r.year = r.now.Year() + 1
			for seasonSpan(r.season, r.year, r.now.Location()).End().After(r.now) {
				r.year--
			}
		}
	} else {
		r.year += d
	}
	return seasonSpan(r.season, r.year, r.now.Location())
}

// Offset implements Repeater.
func (r *SeasonName) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	return s.Shift(int64(direction(dir)*amount) * SeasonSeconds)
}

// Season steps through the cycle of seasons starting from the one containing
// the reference instant.
type Season struct {
	now     time.Time
	season  SeasonType
	year    int
	started bool
}

// NewSeason creates a generic season repeater.
func NewSeason() *Season { return &Season{} }

// Kind implements tag.Tag.
func (r *Season) Kind() tag.Kind { return tag.KindRepeaterSeason }

// String implements tag.Tag.
func (r *Season) String() string { return "repeater_season" }

// Start implements Repeater.
func (r *Season) Start(now time.Time) {
	r.now = now
	r.started = false
}

// Width implements Repeater.
func (r *Season) Width() int64 { return SeasonSeconds }

// This implements Repeater.
func (r *Season) This(ctx tag.Direction) *span.Span {
	season, year := currentSeason(r.now)
	r.season, r.year, r.started = season, year, true
	sp := seasonSpan(season, year, r.now.Location())
	switch ctx {
	case tag.Future:
		return span.New(dayStart(r.now).AddDate(0, 0, 1), sp.End())
	case tag.Past:
		return span.New(sp.Begin(), dayStart(r.now))
	default:
		return sp
	}
}

// Next implements Repeater.
func (r *Season) Next(dir tag.Direction) *span.Span {
	d := direction(dir)
	if !r.started {
		r.season, r.year = currentSeason(r.now)
		r.started = true
	}
	r.season += SeasonType(d)
	switch {
	case r.season > Winter:
		r.season = Spring
		r.year++
	case r.season < Spring:
		r.season = Winter
		r.year--
	}
	return seasonSpan(r.season, r.year, r.now.Location())
}

// Offset implements Repeater.
func (r *Season) Offset(s *span.Span, amount int, dir tag.Direction) *span.Span {
	return s.Shift(int64(direction(dir)*amount) * SeasonSeconds)
}
