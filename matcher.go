package chronic

import (
	"go.uber.org/zap"

	"github.com/musicmunky/chronic/utils/span"
	"github.com/musicmunky/chronic/utils/tag"
)

// patternMatch reports whether the tokens are fully consumed by the pattern.
// Optional atoms consume zero or one token; a sub-grammar atom hands the
// remaining tokens to every pattern of the named list.
func patternMatch(atoms []atom, tokens []*tag.Token, defs definitionSet) bool {
	ti := 0
	for _, a := range atoms {
		if a.grammar != "" {
			if a.optional && ti == len(tokens) {
				return true
			}
			for _, def := range defs[a.grammar] {
				if patternMatch(def.atoms, tokens[ti:], defs) {
					return true
				}
			}
			return false
		}
		if ti < len(tokens) && tokens[ti].Get(a.kind) != nil {
			ti++
			continue
		}
		if !a.optional {
			return false
		}
	}
	return ti == len(tokens)
}

// dropSeparators removes every separator-tagged token before a date, endian
// or anchor handler runs.
func dropSeparators(tokens []*tag.Token) []*tag.Token {
	kept := make([]*tag.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Get(tag.KindSeparator) == nil {
			kept = append(kept, t)
		}
	}
	return kept
}

// dropPunctuation removes only the at ("at" or "@"), slash-or-dash and comma
// separators before an arrow handler runs; "in" stays because it doubles as a future pointer.
func dropPunctuation(tokens []*tag.Token) []*tag.Token {
	kept := make([]*tag.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Get(tag.KindSeparatorAt) != nil ||
			t.Get(tag.KindSeparatorSlashOrDash) != nil ||
			t.Get(tag.KindSeparatorComma) != nil {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// keepAll passes the unfiltered token stream through; narrow handlers see
// their separators.
func keepAll(tokens []*tag.Token) []*tag.Token {
	return tokens
}

// tokensToSpan tries the pattern lists in fixed order and invokes the handler
// of the first fully matching pattern on the filtered tokens. A handler may
// still reject the combination by returning nil.
func tokensToSpan(tokens []*tag.Token, o *Options) *span.Span {
	defs := definitions(o)

	lists := []struct {
		name   string
		filter func([]*tag.Token) []*tag.Token
	}{
		{name: "date", filter: dropSeparators},
		{name: "endian", filter: dropSeparators},
		{name: "anchor", filter: dropSeparators},
		{name: "arrow", filter: dropPunctuation},
		{name: "narrow", filter: keepAll},
	}

	for _, list := range lists {
		for _, def := range defs[list.name] {
			if !patternMatch(def.atoms, tokens, defs) {
				continue
			}
			if o.Logger.Enabled() {
				o.Logger.Debug("pattern matched",
					zap.String("list", list.name),
					zap.String("pattern", def.name),
				)
			}
			return def.handler(list.filter(tokens), o)
		}
	}

	o.Logger.Debug("no pattern matched")
	return nil
}
