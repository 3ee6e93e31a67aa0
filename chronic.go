// Package chronic parses short natural-language English expressions that
// denote a date, a time, or both ("tomorrow at 7pm", "3 weeks from now",
// "03/04/2011", "3rd wednesday in november") and resolves them to an absolute
// instant or a half-open span relative to a reference instant.
//
// The pipeline is: normalize the text, split it into words, tag each word
// with the typed scanners, match the tagged tokens against the grammar
// pattern catalogue, and hand the first full match to its handler. Input that
// matches nothing yields a nil result, never an error; errors are reserved
// for caller misuse (invalid options).
package chronic

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/musicmunky/chronic/utils/normalizer"
	"github.com/musicmunky/chronic/utils/repeater"
	"github.com/musicmunky/chronic/utils/span"
	"github.com/musicmunky/chronic/utils/tag"
)

// Parse resolves text to a single instant, the guess projection of the
// matched span: its begin for point-like spans, its midpoint otherwise.
// A nil instant with a nil error means the text did not parse. A non-nil
// error always reports caller misuse (blame.Blame).
func Parse(text string, opts ...Option) (*time.Time, error) {
	o, err := buildOptions(opts...)
	if err != nil {
		return nil, err
	}
	sp := parseSpan(text, o)
	if sp == nil {
		return nil, nil
	}
	guessed := guess(sp)
	return &guessed, nil
}

// ParseSpan resolves text to the matched half-open span without collapsing it
// to an instant. A nil span with a nil error means the text did not parse.
func ParseSpan(text string, opts ...Option) (*span.Span, error) {
	o, err := buildOptions(opts...)
	if err != nil {
		return nil, err
	}
	return parseSpan(text, o), nil
}

// ParseWithMap is the loosely-typed entry point: options arrive as a
// string-keyed map. The guess option picks the return shape: an instant when
// enabled (the default), the raw span otherwise. Unknown keys and disallowed
// values are invalid-argument errors.
func ParseWithMap(text string, options map[string]any) (*time.Time, *span.Span, error) {
	opts, err := OptionsFromMap(options)
	if err != nil {
		return nil, nil, err
	}
	o, err := buildOptions(opts...)
	if err != nil {
		return nil, nil, err
	}
	sp := parseSpan(text, o)
	if sp == nil {
		return nil, nil, nil
	}
	if o.Guess {
		guessed := guess(sp)
		return &guessed, nil, nil
	}
	return nil, sp, nil
}

// parseSpan runs the pipeline against resolved options.
func parseSpan(text string, o *Options) *span.Span {
	normalized := normalizer.Normalize(text)
	if o.Logger.Enabled() {
		o.Logger.Debug("normalized", zap.String("input", text), zap.String("text", normalized))
	}

	tokens := tokenize(normalized)
	if o.Logger.Enabled() {
		for _, t := range tokens {
			o.Logger.Debug("token", zap.Stringer("token", t))
		}
	}
	if len(tokens) == 0 {
		o.Logger.Debug("no tagged tokens")
		return nil
	}

	result := tokensToSpan(tokens, o)
	if result != nil && o.Logger.Enabled() {
		o.Logger.Debug("span resolved", zap.Stringer("span", result))
	}
	return result
}

// tokenize splits normalized text on whitespace and runs the taggers over
// every word in their fixed order: repeater, grabber, pointer, scalar,
// ordinal, separator, time zone. Words no tagger claims are dropped.
func tokenize(normalized string) []*tag.Token {
	words := strings.Fields(normalized)

	tokens := make([]*tag.Token, 0, len(words))
	for i, word := range words {
		next := ""
		if i+1 < len(words) {
			next = words[i+1]
		}

		token := tag.NewToken(word)
		token.Add(repeater.Scan(word))
		token.Add(tag.ScanGrabber(word))
		token.Add(tag.ScanPointer(word))
		token.Add(tag.ScanScalar(word, next)...)
		token.Add(tag.ScanOrdinal(word, next)...)
		token.Add(tag.ScanSeparator(word))
		token.Add(tag.ScanTimeZone(word))

		if token.Tagged() {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// guess collapses a span to a single instant: the begin for point-like
// spans, otherwise the midpoint rounded toward the begin.
func guess(sp *span.Span) time.Time {
	if sp.Width() > 1 {
		return sp.Begin().Add(time.Duration(sp.Width()/2) * time.Second)
	}
	return sp.Begin()
}
