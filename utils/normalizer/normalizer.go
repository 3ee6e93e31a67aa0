// Package normalizer rewrites raw input into the canonical lowercased form
// the tokenizer expects. The rewrites are an ordered table; later rules rely
// on the output of earlier ones, so entries must not be reordered casually.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/musicmunky/chronic/utils/numerizer"
)

// rewrite is one entry of the ordered rewrite table.
type rewrite struct {
	regex    string
	replace  string
	compiled *regexp.Regexp
}

// preNumerize runs before the number words are turned into digits.
var preNumerize = []rewrite{
	// quotes and periods carry no information for the grammar
	{regex: `['".]`, replace: ``},
	// disambiguate the English word "second" in ordinal position before the
	// numerizer gets a chance to see it
	{regex: `\bsecond (of|day|month|hour|minute|second)\b`, replace: `2nd $1`},
}

// postNumerize runs after numerization, still before word substitutions.
var postNumerize = []rewrite{
	// a trailing four-digit group after a minus is a UTC offset, not a
	// negative scalar
	{regex: ` -(\d{4})\b`, replace: ` tzminus$1`},
	// separators become standalone tokens
	{regex: `([/\-,@])`, replace: ` $1 `},
	// drop the leading zero from meridian clock forms so "07:30pm" and
	// "7:30pm" tokenize identically
	{regex: `\b0(\d+:\d+ *[ap]m?\b)`, replace: `$1`},
}

// substitutions maps idioms onto the canonical grabber/repeater vocabulary.
// Order matters: "before now" must win over both "now" and "before".
var substitutions = []rewrite{
	{regex: `\btoday\b`, replace: `this day`},
	{regex: `\btomm?orr?ow\b`, replace: `next day`},
	{regex: `\byesterday\b`, replace: `last day`},
	{regex: `\bnoon\b`, replace: `12:00`},
	{regex: `\bmidnight\b`, replace: `24:00`},
	{regex: `\bbefore now\b`, replace: `past`},
	{regex: `\bnow\b`, replace: `this second`},
	{regex: `\b(ago|before)\b`, replace: `past`},
	{regex: `\bthis past\b`, replace: `last`},
	{regex: `\bthis last\b`, replace: `last`},
	{regex: `\b(?:in|during) the (morning)\b`, replace: `$1`},
	{regex: `\b(?:in the|during the|at) (afternoon|evening|night)\b`, replace: `$1`},
	{regex: `\btonight\b`, replace: `this night`},
	{regex: `\b(hence|after|from)\b`, replace: `future`},
}

// meridian normalizes compact clock suffixes: "5p" -> "5pm", "7am" -> "7 am".
var meridian = []rewrite{
	{regex: `\b(\d{1,2}(?::\d{2})?)([ap])\b`, replace: `${1}${2}m`},
	{regex: `(\d)(am|pm|oclock)\b`, replace: `$1 $2`},
}

var spacesRe *regexp.Regexp

// The Go runtime will execute this once at startup, before calling main()
func init() {
	spacesRe = regexp.MustCompile(` +`)
	for _, table := range [][]rewrite{preNumerize, postNumerize, substitutions, meridian} {
		for i := range table {
			table[i].compiled = regexp.MustCompile(table[i].regex)
		}
	}
}

// Normalize rewrites text into the canonical form consumed by the tokenizer:
// lowercased, number words numerized, separators isolated, and idioms mapped
// onto the grabber/repeater vocabulary. Normalize is idempotent.
func Normalize(text string) string {
	s := strings.ToLower(text)
	for _, r := range preNumerize {
		s = r.compiled.ReplaceAllString(s, r.replace)
	}
	s = numerizer.Numerize(s)
	for _, r := range postNumerize {
		s = r.compiled.ReplaceAllString(s, r.replace)
	}
	for _, r := range substitutions {
		s = r.compiled.ReplaceAllString(s, r.replace)
	}
	for _, r := range meridian {
		s = r.compiled.ReplaceAllString(s, r.replace)
	}
	s = spacesRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
