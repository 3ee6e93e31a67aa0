package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/musicmunky/chronic/utils/normalizer"
)

func TestSubstitutions(t *testing.T) {
	cases := map[string]string{
		"today":             "this day",
		"TODAY":             "this day",
		"tomorrow":          "next day",
		"tommorrow":         "next day",
		"tomorow":           "next day",
		"yesterday":         "last day",
		"noon":              "12:00",
		"midnight":          "24:00",
		"now":               "this second",
		"before now":        "past",
		"3 weeks ago":       "3 weeks past",
		"3 weeks from now":  "3 weeks future this second",
		"this past monday":  "last monday",
		"this last monday":  "last monday",
		"in the morning":    "morning",
		"during the morning": "morning",
		"at night":          "night",
		"in the evening":    "evening",
		"tonight":           "this night",
		"a week hence":      "1 week future",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizer.Normalize(in), "input %q", in)
	}
}

func TestNumberWords(t *testing.T) {
	assert.Equal(t, "3 weeks past", normalizer.Normalize("three weeks ago"))
	assert.Equal(t, "3rd wednesday in november", normalizer.Normalize("third wednesday in november"))
	assert.Equal(t, "2nd of may", normalizer.Normalize("second of may"))
	assert.Equal(t, "this second", normalizer.Normalize("this second"))
}

func TestSeparators(t *testing.T) {
	assert.Equal(t, "03 / 04 / 2011", normalizer.Normalize("03/04/2011"))
	assert.Equal(t, "2011 - 03 - 04", normalizer.Normalize("2011-03-04"))
	assert.Equal(t, "may 27 , 2011", normalizer.Normalize("may 27, 2011"))
	assert.Equal(t, "5:00 @ 7", normalizer.Normalize("5:00@7"))
}

func TestClockForms(t *testing.T) {
	assert.Equal(t, "7:30 pm", normalizer.Normalize("07:30pm"))
	assert.Equal(t, "7:30 pm", normalizer.Normalize("7:30P"))
	assert.Equal(t, "5 am", normalizer.Normalize("5a"))
	assert.Equal(t, "6 pm", normalizer.Normalize("6pm"))
	assert.Equal(t, "3 oclock", normalizer.Normalize("3oclock"))
}

func TestTimeZoneOffset(t *testing.T) {
	assert.Equal(t, "5:00 tzminus0500", normalizer.Normalize("5:00 -0500"))
}

func TestPunctuationStripped(t *testing.T) {
	assert.Equal(t, "5 pm", normalizer.Normalize("5 p.m."))
	assert.Equal(t, "mondays child", normalizer.Normalize(`"monday's" child`))
}

func TestIdempotent(t *testing.T) {
	inputs := []string{
		"tomorrow at 7pm",
		"03/04/2011",
		"three weeks from now",
		"yesterday at 4:00",
		"may 27, 2011 at noon",
	}
	for _, in := range inputs {
		once := normalizer.Normalize(in)
		assert.Equal(t, once, normalizer.Normalize(once), "input %q", in)
	}
}
