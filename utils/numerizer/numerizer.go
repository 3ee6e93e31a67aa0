// Package numerizer rewrites English number words into digits so that the
// tokenizer only ever sees numeric scalars and ordinals ("twenty three" -> "23",
// "third" -> "3rd"). The word "second" is deliberately absent from every table
// here; it is disambiguated upstream before numerization because it collides
// with the time unit.
package numerizer

import (
	"regexp"
	"strconv"
	"strings"
)

// numWord pairs a cardinal word with its value. The tables are ordered;
// longer words must be replaced before their prefixes (eleven before one,
// fourteen before four).
type numWord struct {
	word     string
	value    int
	compiled *regexp.Regexp
}

var directNums = []numWord{
	{word: "eleven", value: 11},
	{word: "twelve", value: 12},
	{word: "thirteen", value: 13},
	{word: "fourteen", value: 14},
	{word: "fifteen", value: 15},
	{word: "sixteen", value: 16},
	{word: "seventeen", value: 17},
	{word: "eighteen", value: 18},
	{word: "nineteen", value: 19},
	{word: "ninteen", value: 19}, // common misspelling
	{word: "zero", value: 0},
	{word: "ten", value: 10},
	{word: "one", value: 1},
	{word: "two", value: 2},
	{word: "three", value: 3},
	{word: "four", value: 4},
	{word: "five", value: 5},
	{word: "six", value: 6},
	{word: "seven", value: 7},
	{word: "eight", value: 8},
	{word: "nine", value: 9},
	{word: "a", value: 1},
}

var tenPrefixes = []numWord{
	{word: "twenty", value: 20},
	{word: "thirty", value: 30},
	{word: "forty", value: 40},
	{word: "fourty", value: 40}, // common misspelling
	{word: "fifty", value: 50},
	{word: "sixty", value: 60},
	{word: "seventy", value: 70},
	{word: "eighty", value: 80},
	{word: "ninety", value: 90},
}

var bigPrefixes = []numWord{
	{word: "hundred", value: 100},
	{word: "thousand", value: 1000},
	{word: "million", value: 1000000},
	{word: "billion", value: 1000000000},
	{word: "trillion", value: 1000000000000},
}

// ordinalWords maps ordinal words to their digit form, compound words first so
// that they win over their suffix words. "second" is handled upstream.
var ordinalWords = []struct {
	word     string
	digits   string
	compiled *regexp.Regexp
}{
	{word: "thirty first", digits: "31st"},
	{word: "twenty first", digits: "21st"},
	{word: "twenty 2nd", digits: "22nd"},
	{word: "twenty third", digits: "23rd"},
	{word: "twenty fourth", digits: "24th"},
	{word: "twenty fifth", digits: "25th"},
	{word: "twenty sixth", digits: "26th"},
	{word: "twenty seventh", digits: "27th"},
	{word: "twenty eighth", digits: "28th"},
	{word: "twenty ninth", digits: "29th"},
	{word: "thirtieth", digits: "30th"},
	{word: "twentieth", digits: "20th"},
	{word: "eleventh", digits: "11th"},
	{word: "twelfth", digits: "12th"},
	{word: "thirteenth", digits: "13th"},
	{word: "fourteenth", digits: "14th"},
	{word: "fifteenth", digits: "15th"},
	{word: "sixteenth", digits: "16th"},
	{word: "seventeenth", digits: "17th"},
	{word: "eighteenth", digits: "18th"},
	{word: "nineteenth", digits: "19th"},
	{word: "tenth", digits: "10th"},
	{word: "ninth", digits: "9th"},
	{word: "eighth", digits: "8th"},
	{word: "seventh", digits: "7th"},
	{word: "sixth", digits: "6th"},
	{word: "fifth", digits: "5th"},
	{word: "fourth", digits: "4th"},
	{word: "third", digits: "3rd"},
	{word: "first", digits: "1st"},
}

var (
	hyphenRe    *regexp.Regexp
	spacesRe    *regexp.Regexp
	tenCombine  []*regexp.Regexp
	bigCombine  []*regexp.Regexp
	anditionRe  *regexp.Regexp
	numMarkerRe *regexp.Regexp
)

// The Go runtime will execute this once at startup, before calling main()
func init() {
	hyphenRe = regexp.MustCompile(`([^\d])-([^\d])`)
	spacesRe = regexp.MustCompile(` +`)
	anditionRe = regexp.MustCompile(`<num>(\d+)( and | )<num>(\d+)\b`)
	numMarkerRe = regexp.MustCompile(`<num>`)

	for i := range ordinalWords {
		ordinalWords[i].compiled = regexp.MustCompile(`\b` + ordinalWords[i].word + `\b`)
	}
	for i := range directNums {
		directNums[i].compiled = regexp.MustCompile(`\b` + directNums[i].word + `\b`)
	}
	for i := range tenPrefixes {
		tenPrefixes[i].compiled = regexp.MustCompile(`\b` + tenPrefixes[i].word + `\b`)
		tenCombine = append(tenCombine, regexp.MustCompile(`\b`+tenPrefixes[i].word+` *<num>(\d)\b`))
	}
	for i := range bigPrefixes {
		bigPrefixes[i].compiled = regexp.MustCompile(`\b` + bigPrefixes[i].word + `\b`)
		bigCombine = append(bigCombine, regexp.MustCompile(`(?:<num>)?(\d*) *\b`+bigPrefixes[i].word+`\b`))
	}
}

// Numerize replaces English cardinal and ordinal words in text with their
// digit forms. A hyphen between two non-digits becomes a space and runs of
// spaces collapse to one; apart from that, text that contains no number words
// is returned unchanged. Ordinal suffixes (st, nd, rd, th) are preserved.
func Numerize(text string) string {
	s := text

	// hyphenated compounds become plain words; extra spacing is collapsed
	s = hyphenRe.ReplaceAllString(s, "$1 $2")
	s = spacesRe.ReplaceAllString(s, " ")

	// ordinal words first so "sixth" is not shadowed by "six"
	for _, ord := range ordinalWords {
		s = ord.compiled.ReplaceAllString(s, ord.digits)
	}

	// direct cardinal words
	for _, dn := range directNums {
		s = dn.compiled.ReplaceAllString(s, "<num>"+strconv.Itoa(dn.value))
	}

	// tens followed by a unit digit ("twenty <num>3" -> "<num>23"), then bare tens
	for i, tp := range tenPrefixes {
		s = tenCombine[i].ReplaceAllStringFunc(s, func(m string) string {
			sub := tenCombine[i].FindStringSubmatch(m)
			unit, _ := strconv.Atoi(sub[1])
			return "<num>" + strconv.Itoa(tp.value+unit)
		})
		s = tp.compiled.ReplaceAllString(s, "<num>"+strconv.Itoa(tp.value))
	}

	// hundreds, thousands, millions and friends
	for i, bp := range bigPrefixes {
		s = bigCombine[i].ReplaceAllStringFunc(s, func(m string) string {
			sub := bigCombine[i].FindStringSubmatch(m)
			multiplier := 1
			if sub[1] != "" {
				multiplier, _ = strconv.Atoi(sub[1])
			}
			return "<num>" + strconv.Itoa(bp.value*multiplier)
		})
		s = andition(s)
	}
	s = andition(s)

	return numMarkerRe.ReplaceAllString(s, "")
}

// andition folds adjacent marked numbers into a sum when they are joined with
// "and" or when the left number is the larger place value ("<num>100 <num>5"
// -> "<num>105"). It repeats until no more folds apply.
func andition(s string) string {
	for {
		folded := false
		for _, m := range anditionRe.FindAllStringSubmatchIndex(s, -1) {
			left := s[m[2]:m[3]]
			sep := s[m[4]:m[5]]
			right := s[m[6]:m[7]]
			if !strings.Contains(sep, "and") && len(left) <= len(right) {
				continue
			}
			l, _ := strconv.Atoi(left)
			r, _ := strconv.Atoi(right)
			s = s[:m[0]] + "<num>" + strconv.Itoa(l+r) + s[m[1]:]
			folded = true
			break
		}
		if !folded {
			return s
		}
	}
}
