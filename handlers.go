package chronic

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/musicmunky/chronic/utils/repeater"
	"github.com/musicmunky/chronic/utils/span"
	"github.com/musicmunky/chronic/utils/tag"
)

// repeaterOf returns the repeater tag of a token, or nil.
func repeaterOf(t *tag.Token) repeater.Repeater {
	tg := t.Get(tag.KindRepeater)
	if tg == nil {
		return nil
	}
	rep, ok := tg.(repeater.Repeater)
	if !ok {
		return nil
	}
	return rep
}

// getRepeaters collects the repeater tags of the tokens sorted widest first,
// so the outermost unit anchors the search and the narrower ones nest inside.
func getRepeaters(tokens []*tag.Token) []repeater.Repeater {
	var reps []repeater.Repeater
	for _, t := range tokens {
		if rep := repeaterOf(t); rep != nil {
			reps = append(reps, rep)
		}
	}
	sort.SliceStable(reps, func(i, j int) bool {
		return reps[i].Width() > reps[j].Width()
	})
	return reps
}

// getAnchor resolves a grabber plus a stack of repeaters into a span: the
// widest repeater picks the occurrence the grabber names, and each narrower
// repeater selects its first occurrence inside that window.
func getAnchor(tokens []*tag.Token, o *Options) *span.Span {
	reps := getRepeaters(tokens)
	if len(reps) == 0 {
		return nil
	}

	grabber := tag.None
	if len(tokens) > 0 {
		if g := tokens[0].Get(tag.KindGrabber); g != nil {
			grabber = g.(*tag.Grabber).Direction
		}
	}

	head, rest := reps[0], reps[1:]
	head.Start(o.now)

	var outer *span.Span
	switch grabber {
	case tag.Past:
		outer = head.Next(tag.Past)
	case tag.Future:
		outer = head.Next(tag.Future)
	default:
		if len(rest) > 0 {
			outer = head.This(tag.None)
		} else {
			outer = head.This(o.Context)
		}
	}
	if outer == nil {
		return nil
	}
	if o.Logger.Enabled() {
		o.Logger.Debug("anchor outer span",
			zap.String("repeater", head.String()),
			zap.Stringer("span", outer),
		)
	}

	return findWithin(rest, outer, o.Context, o)
}

// findWithin recursively locates each repeater inside the span of the one
// before it. Returns nil when an occurrence falls outside its window.
func findWithin(reps []repeater.Repeater, sp *span.Span, dir tag.Direction, o *Options) *span.Span {
	if len(reps) == 0 {
		return sp
	}

	head, rest := reps[0], reps[1:]
	if dir == tag.Past {
		head.Start(sp.End())
	} else {
		head.Start(sp.Begin())
	}
	h := head.This(tag.None)
	if h == nil {
		return nil
	}

	if sp.Cover(h.Begin()) || sp.Cover(h.End()) {
		return findWithin(rest, h, dir, o)
	}
	return nil
}

// dealiasAndDisambiguateTimes rewrites day portions that alias a meridian
// ("5:00 in the morning" means 5:00 am) and, when the ambiguous time range is
// active, appends a synthetic day-portion token behind every ambiguous clock
// time so the anchor search lands in the assumed window.
func dealiasAndDisambiguateTimes(tokens []*tag.Token, o *Options) []*tag.Token {
	portionIdx, timeIdx := -1, -1
	for i, t := range tokens {
		if portionIdx < 0 && t.Get(tag.KindRepeaterDayPortion) != nil {
			portionIdx = i
		}
		if timeIdx < 0 && t.Get(tag.KindRepeaterTime) != nil {
			timeIdx = i
		}
	}
	if portionIdx >= 0 && timeIdx >= 0 {
		portion := tokens[portionIdx].Get(tag.KindRepeaterDayPortion).(*repeater.DayPortion)
		switch portion.PortionName() {
		case "morning":
			tokens[portionIdx].Untag(tag.KindRepeaterDayPortion)
			tokens[portionIdx].Add(repeater.NewDayPortion(repeater.AM))
		case "afternoon", "evening", "night":
			tokens[portionIdx].Untag(tag.KindRepeaterDayPortion)
			tokens[portionIdx].Add(repeater.NewDayPortion(repeater.PM))
		}
	}

	out := make([]*tag.Token, 0, len(tokens)+1)
	for i, t := range tokens {
		out = append(out, t)
		timeTag, ok := t.Get(tag.KindRepeaterTime).(*repeater.Time)
		if !ok || !timeTag.Ambiguous() {
			continue
		}
		var next *tag.Token
		if i+1 < len(tokens) {
			next = tokens[i+1]
		}
		if next != nil && next.Get(tag.KindRepeaterDayPortion) != nil {
			continue
		}
		if o.AmbiguousTimeRange == AmbiguousTimeRangeNone {
			// heuristic off: the bare time means its first literal
			// occurrence, once per day
			timeTag.DisableAmbiguity()
			continue
		}
		disambiguator := tag.NewToken("disambiguator")
		disambiguator.Add(repeater.NewDayPortionRange(o.AmbiguousTimeRange))
		out = append(out, disambiguator)
	}
	return out
}

// handleR resolves an anchor expression: an optional grabber plus one or more
// stacked repeaters.
func handleR(tokens []*tag.Token, o *Options) *span.Span {
	return getAnchor(dealiasAndDisambiguateTimes(tokens, o), o)
}

// handleRGR resolves "january next year" style expressions by rotating the
// grabber in front of its outer repeater.
func handleRGR(tokens []*tag.Token, o *Options) *span.Span {
	rotated := []*tag.Token{tokens[1], tokens[0], tokens[2]}
	return handleR(rotated, o)
}

// shiftSpanBy applies scalar × repeater in the pointer's direction to a base
// span. The token order is scalar, repeater, pointer.
func shiftSpanBy(tokens []*tag.Token, base *span.Span, o *Options) *span.Span {
	scalar, _ := tokens[0].Get(tag.KindScalar).(*tag.Scalar)
	rep := repeaterOf(tokens[1])
	pointer, _ := tokens[2].Get(tag.KindPointer).(*tag.Pointer)
	if scalar == nil || rep == nil || pointer == nil {
		return nil
	}
	return rep.Offset(base, scalar.Amount, pointer.Direction)
}

// handleSRP resolves "3 weeks ago": the reference instant shifted by scalar
// units in the pointer's direction.
func handleSRP(tokens []*tag.Token, o *Options) *span.Span {
	base := span.New(o.now, o.now.Add(time.Second))
	return shiftSpanBy(tokens, base, o)
}

// handlePSR resolves "in 3 weeks" by reordering to scalar, repeater, pointer.
func handlePSR(tokens []*tag.Token, o *Options) *span.Span {
	reordered := []*tag.Token{tokens[1], tokens[2], tokens[0]}
	return handleSRP(reordered, o)
}

// handleSRPA resolves "3 weeks from tomorrow": the anchor expression supplies
// the base span that gets shifted.
func handleSRPA(tokens []*tag.Token, o *Options) *span.Span {
	anchor := getAnchor(tokens[3:], o)
	if anchor == nil {
		return nil
	}
	return shiftSpanBy(tokens[:3], anchor, o)
}

// handleORR selects the ordinal-th occurrence of the inner repeater inside
// the outer span. Out of range means no match.
func handleORR(ordTok, repTok *tag.Token, outer *span.Span, o *Options) *span.Span {
	if outer == nil {
		return nil
	}
	ordinal, _ := ordTok.Get(tag.KindOrdinal).(*tag.Ordinal)
	rep := repeaterOf(repTok)
	if ordinal == nil || rep == nil {
		return nil
	}

	// back up one second so an occurrence starting exactly at the window
	// boundary still counts as the first
	rep.Start(outer.Begin().Add(-time.Second))

	var sp *span.Span
	for i := 0; i < ordinal.Amount; i++ {
		sp = rep.Next(tag.Future)
		if !sp.Begin().Before(outer.End()) {
			return nil
		}
	}
	return sp
}

// handleORSR resolves "3rd wednesday in november".
func handleORSR(tokens []*tag.Token, o *Options) *span.Span {
	outer := getAnchor(tokens[3:4], o)
	return handleORR(tokens[0], tokens[1], outer, o)
}

// handleORGR resolves "3rd month next year".
func handleORGR(tokens []*tag.Token, o *Options) *span.Span {
	outer := getAnchor(tokens[2:4], o)
	return handleORR(tokens[0], tokens[1], outer, o)
}
