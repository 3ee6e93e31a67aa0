package chronic

import (
	"time"

	"github.com/musicmunky/chronic/utils/repeater"
	"github.com/musicmunky/chronic/utils/span"
	"github.com/musicmunky/chronic/utils/tag"
)

func monthNameOf(t *tag.Token) *repeater.MonthName {
	m, _ := t.Get(tag.KindRepeaterMonthName).(*repeater.MonthName)
	return m
}

func scalarAmount(t *tag.Token, kind tag.Kind) (int, bool) {
	s, ok := t.Get(kind).(*tag.Scalar)
	if !ok {
		return 0, false
	}
	return s.Amount, true
}

func ordinalAmount(t *tag.Token, kind tag.Kind) (int, bool) {
	o, ok := t.Get(kind).(*tag.Ordinal)
	if !ok {
		return 0, false
	}
	return o.Amount, true
}

// makeYear expands a two-digit year against the reference year. Literal years
// below the pivot land in the century window starting bias years back; the
// exact pivot maps to the earlier century. With a bias of zero the window
// starts at the reference year itself.
func makeYear(year int, o *Options) int {
	if year > 99 {
		return year
	}
	windowStart := o.now.Year() - o.AmbiguousYearFutureBias
	full := (windowStart/100)*100 + year
	if full < windowStart {
		full += 100
	}
	return full
}

// dayOrTime returns the whole day when no time tokens follow, otherwise the
// clock time resolved from that day's midnight.
func dayOrTime(dayBegin time.Time, timeTokens []*tag.Token, o *Options) *span.Span {
	outer := span.New(dayBegin, dayBegin.AddDate(0, 0, 1))
	if len(timeTokens) == 0 {
		return outer
	}
	sub := o.withNow(outer.Begin())
	return getAnchor(dealiasAndDisambiguateTimes(timeTokens, sub), sub)
}

// buildDay validates an explicit year/month/day and resolves any trailing
// time tokens. Impossible calendar dates yield no match.
func buildDay(year int, month time.Month, day int, timeTokens []*tag.Token, o *Options) *span.Span {
	t := time.Date(year, month, day, 0, 0, 0, 0, o.now.Location())
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return nil
	}
	return dayOrTime(t, timeTokens, o)
}

// handleMD resolves a month-name plus day-of-month against the context's
// nearest occurrence of that month.
func handleMD(month *repeater.MonthName, day int, timeTokens []*tag.Token, o *Options) *span.Span {
	if month == nil {
		return nil
	}
	month.Start(o.now)
	sp := month.This(o.Context)
	if sp == nil {
		return nil
	}
	return buildDay(sp.Begin().Year(), sp.Begin().Month(), day, timeTokens, o)
}

// handleRmnSd resolves "may 27".
func handleRmnSd(tokens []*tag.Token, o *Options) *span.Span {
	day, ok := scalarAmount(tokens[1], tag.KindScalarDay)
	if !ok {
		return nil
	}
	return handleMD(monthNameOf(tokens[0]), day, tokens[2:], o)
}

// handleRmnOd resolves "may 27th".
func handleRmnOd(tokens []*tag.Token, o *Options) *span.Span {
	day, ok := ordinalAmount(tokens[1], tag.KindOrdinalDay)
	if !ok {
		return nil
	}
	return handleMD(monthNameOf(tokens[0]), day, tokens[2:], o)
}

// handleOdRmn resolves "27th may".
func handleOdRmn(tokens []*tag.Token, o *Options) *span.Span {
	day, ok := ordinalAmount(tokens[0], tag.KindOrdinalDay)
	if !ok {
		return nil
	}
	return handleMD(monthNameOf(tokens[1]), day, tokens[2:], o)
}

// handleSdRmn resolves "27 may".
func handleSdRmn(tokens []*tag.Token, o *Options) *span.Span {
	day, ok := scalarAmount(tokens[0], tag.KindScalarDay)
	if !ok {
		return nil
	}
	return handleMD(monthNameOf(tokens[1]), day, tokens[2:], o)
}

// handleRmnSdOn resolves "5:00 pm on may 27"; the clock tokens precede the date.
func handleRmnSdOn(tokens []*tag.Token, o *Options) *span.Span {
	var month *repeater.MonthName
	var day int
	var ok bool
	var timeTokens []*tag.Token
	if len(tokens) > 3 {
		month = monthNameOf(tokens[2])
		day, ok = scalarAmount(tokens[3], tag.KindScalarDay)
		timeTokens = tokens[0:2]
	} else {
		month = monthNameOf(tokens[1])
		day, ok = scalarAmount(tokens[2], tag.KindScalarDay)
		timeTokens = tokens[0:1]
	}
	if !ok {
		return nil
	}
	return handleMD(month, day, timeTokens, o)
}

// handleRmnOdOn resolves "5:00 pm on may 27th".
func handleRmnOdOn(tokens []*tag.Token, o *Options) *span.Span {
	var month *repeater.MonthName
	var day int
	var ok bool
	var timeTokens []*tag.Token
	if len(tokens) > 3 {
		month = monthNameOf(tokens[2])
		day, ok = ordinalAmount(tokens[3], tag.KindOrdinalDay)
		timeTokens = tokens[0:2]
	} else {
		month = monthNameOf(tokens[1])
		day, ok = ordinalAmount(tokens[2], tag.KindOrdinalDay)
		timeTokens = tokens[0:1]
	}
	if !ok {
		return nil
	}
	return handleMD(month, day, timeTokens, o)
}

// handleRmnSdSy resolves "may 27 2011" with an optional trailing time.
func handleRmnSdSy(tokens []*tag.Token, o *Options) *span.Span {
	month := monthNameOf(tokens[0])
	day, dayOK := scalarAmount(tokens[1], tag.KindScalarDay)
	year, yearOK := scalarAmount(tokens[2], tag.KindScalarYear)
	if month == nil || !dayOK || !yearOK {
		return nil
	}
	return buildDay(makeYear(year, o), month.Index(), day, tokens[3:], o)
}

// handleRmnOdSy resolves "may 27th, 2011".
func handleRmnOdSy(tokens []*tag.Token, o *Options) *span.Span {
	month := monthNameOf(tokens[0])
	day, dayOK := ordinalAmount(tokens[1], tag.KindOrdinalDay)
	year, yearOK := scalarAmount(tokens[2], tag.KindScalarYear)
	if month == nil || !dayOK || !yearOK {
		return nil
	}
	return buildDay(makeYear(year, o), month.Index(), day, tokens[3:], o)
}

// handleOdRmnSy resolves "22nd February 2012".
func handleOdRmnSy(tokens []*tag.Token, o *Options) *span.Span {
	day, dayOK := ordinalAmount(tokens[0], tag.KindOrdinalDay)
	month := monthNameOf(tokens[1])
	year, yearOK := scalarAmount(tokens[2], tag.KindScalarYear)
	if month == nil || !dayOK || !yearOK {
		return nil
	}
	return buildDay(makeYear(year, o), month.Index(), day, tokens[3:], o)
}

// handleSdRmnSy resolves "3 jan 2010".
func handleSdRmnSy(tokens []*tag.Token, o *Options) *span.Span {
	day, dayOK := scalarAmount(tokens[0], tag.KindScalarDay)
	month := monthNameOf(tokens[1])
	year, yearOK := scalarAmount(tokens[2], tag.KindScalarYear)
	if month == nil || !dayOK || !yearOK {
		return nil
	}
	return buildDay(makeYear(year, o), month.Index(), day, tokens[3:], o)
}

// handleRmnSy resolves "march 2011" into the whole month.
func handleRmnSy(tokens []*tag.Token, o *Options) *span.Span {
	month := monthNameOf(tokens[0])
	year, yearOK := scalarAmount(tokens[1], tag.KindScalarYear)
	if month == nil || !yearOK {
		return nil
	}
	begin := time.Date(makeYear(year, o), month.Index(), 1, 0, 0, 0, 0, o.now.Location())
	return span.New(begin, begin.AddDate(0, 1, 0))
}

// handleRdnRmnSd resolves "friday november 10"; the day name is decorative.
func handleRdnRmnSd(tokens []*tag.Token, o *Options) *span.Span {
	day, ok := scalarAmount(tokens[2], tag.KindScalarDay)
	if !ok {
		return nil
	}
	return handleMD(monthNameOf(tokens[1]), day, tokens[3:], o)
}

// handleRdnRmnSdTTzSy resolves full timestamps like
// "mon apr 02 17:00:00 pdt 2007"; the zone is recorded but arithmetic stays
// in the reference location.
func handleRdnRmnSdTTzSy(tokens []*tag.Token, o *Options) *span.Span {
	month := monthNameOf(tokens[1])
	day, dayOK := scalarAmount(tokens[2], tag.KindScalarDay)
	year, yearOK := scalarAmount(tokens[5], tag.KindScalarYear)
	if month == nil || !dayOK || !yearOK {
		return nil
	}
	return buildDay(makeYear(year, o), month.Index(), day, tokens[3:4], o)
}

// handleSmSdSy resolves month-first slashed dates: "03/04/2011".
func handleSmSdSy(tokens []*tag.Token, o *Options) *span.Span {
	month, monthOK := scalarAmount(tokens[0], tag.KindScalarMonth)
	day, dayOK := scalarAmount(tokens[1], tag.KindScalarDay)
	year, yearOK := scalarAmount(tokens[2], tag.KindScalarYear)
	if !monthOK || !dayOK || !yearOK {
		return nil
	}
	return buildDay(makeYear(year, o), time.Month(month), day, tokens[3:], o)
}

// handleSdSmSy resolves day-first slashed dates: "04/03/2011".
func handleSdSmSy(tokens []*tag.Token, o *Options) *span.Span {
	day, dayOK := scalarAmount(tokens[0], tag.KindScalarDay)
	month, monthOK := scalarAmount(tokens[1], tag.KindScalarMonth)
	year, yearOK := scalarAmount(tokens[2], tag.KindScalarYear)
	if !monthOK || !dayOK || !yearOK {
		return nil
	}
	return buildDay(makeYear(year, o), time.Month(month), day, tokens[3:], o)
}

// handleSySmSd resolves ISO ordered dates: "2011-03-04".
func handleSySmSd(tokens []*tag.Token, o *Options) *span.Span {
	year, yearOK := scalarAmount(tokens[0], tag.KindScalarYear)
	month, monthOK := scalarAmount(tokens[1], tag.KindScalarMonth)
	day, dayOK := scalarAmount(tokens[2], tag.KindScalarDay)
	if !monthOK || !dayOK || !yearOK {
		return nil
	}
	return buildDay(makeYear(year, o), time.Month(month), day, tokens[3:], o)
}

// handleSmSd resolves "5/27" against the context's nearest occurrence.
func handleSmSd(tokens []*tag.Token, o *Options) *span.Span {
	month, monthOK := scalarAmount(tokens[0], tag.KindScalarMonth)
	day, dayOK := scalarAmount(tokens[1], tag.KindScalarDay)
	if !monthOK || !dayOK {
		return nil
	}
	return handleMD(repeater.NewMonthName(time.Month(month)), day, tokens[2:], o)
}

// handleSdSm resolves "27/5".
func handleSdSm(tokens []*tag.Token, o *Options) *span.Span {
	day, dayOK := scalarAmount(tokens[0], tag.KindScalarDay)
	month, monthOK := scalarAmount(tokens[1], tag.KindScalarMonth)
	if !monthOK || !dayOK {
		return nil
	}
	return handleMD(repeater.NewMonthName(time.Month(month)), day, tokens[2:], o)
}

// handleSmSy resolves "5/2011" into the whole month.
func handleSmSy(tokens []*tag.Token, o *Options) *span.Span {
	month, monthOK := scalarAmount(tokens[0], tag.KindScalarMonth)
	year, yearOK := scalarAmount(tokens[1], tag.KindScalarYear)
	if !monthOK || !yearOK {
		return nil
	}
	begin := time.Date(makeYear(year, o), time.Month(month), 1, 0, 0, 0, 0, o.now.Location())
	return span.New(begin, begin.AddDate(0, 1, 0))
}
