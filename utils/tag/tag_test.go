package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicmunky/chronic/utils/tag"
)

func TestTokenTagging(t *testing.T) {
	token := tag.NewToken("in")
	assert.False(t, token.Tagged())

	token.Add(tag.ScanPointer("in"))
	token.Add(tag.ScanSeparator("in"))
	require.True(t, token.Tagged())

	// one word, two tags of different kinds
	assert.NotNil(t, token.Get(tag.KindPointer))
	assert.NotNil(t, token.Get(tag.KindSeparatorIn))
	assert.NotNil(t, token.Get(tag.KindSeparator), "family kind matches the subtype")
	assert.Nil(t, token.Get(tag.KindGrabber))

	token.Untag(tag.KindSeparator)
	assert.Nil(t, token.Get(tag.KindSeparatorIn))
	assert.NotNil(t, token.Get(tag.KindPointer))
}

func TestScanGrabber(t *testing.T) {
	g := tag.ScanGrabber("next").(*tag.Grabber)
	assert.Equal(t, tag.Future, g.Direction)
	g = tag.ScanGrabber("last").(*tag.Grabber)
	assert.Equal(t, tag.Past, g.Direction)
	g = tag.ScanGrabber("this").(*tag.Grabber)
	assert.Equal(t, tag.None, g.Direction)
	assert.Nil(t, tag.ScanGrabber("that"))
}

func TestScanPointer(t *testing.T) {
	p := tag.ScanPointer("past").(*tag.Pointer)
	assert.Equal(t, tag.Past, p.Direction)
	p = tag.ScanPointer("future").(*tag.Pointer)
	assert.Equal(t, tag.Future, p.Direction)
	p = tag.ScanPointer("in").(*tag.Pointer)
	assert.Equal(t, tag.Future, p.Direction)
	assert.Nil(t, tag.ScanPointer("out"))
}

func TestScanScalarSubtypes(t *testing.T) {
	kinds := func(word string) map[tag.Kind]bool {
		got := map[tag.Kind]bool{}
		for _, tg := range tag.ScanScalar(word, "") {
			got[tg.Kind()] = true
		}
		return got
	}

	five := kinds("5")
	assert.True(t, five[tag.KindScalar])
	assert.True(t, five[tag.KindScalarDay])
	assert.True(t, five[tag.KindScalarMonth])
	assert.False(t, five[tag.KindScalarYear])

	thirteen := kinds("13")
	assert.True(t, thirteen[tag.KindScalarDay])
	assert.False(t, thirteen[tag.KindScalarMonth])
	assert.True(t, thirteen[tag.KindScalarYear], "13-99 can be a year")

	twelve := kinds("12")
	assert.True(t, twelve[tag.KindScalarMonth])
	assert.False(t, twelve[tag.KindScalarYear])

	fortyTwo := kinds("42")
	assert.False(t, fortyTwo[tag.KindScalarDay], "32-99 is no day of month")
	assert.True(t, fortyTwo[tag.KindScalarYear])

	year := kinds("2011")
	assert.True(t, year[tag.KindScalarYear])
	assert.False(t, year[tag.KindScalarDay])

	assert.Empty(t, tag.ScanScalar("5", "pm"), "a following meridian claims the number")
	assert.Empty(t, tag.ScanScalar("5", "morning"))
	assert.Empty(t, tag.ScanScalar("abc", ""))
}

func TestScanOrdinal(t *testing.T) {
	tags := tag.ScanOrdinal("3rd", "")
	require.Len(t, tags, 2)
	assert.Equal(t, tag.KindOrdinal, tags[0].Kind())
	assert.Equal(t, tag.KindOrdinalDay, tags[1].Kind())
	assert.Equal(t, 3, tags[0].(*tag.Ordinal).Amount)

	tags = tag.ScanOrdinal("40th", "")
	require.Len(t, tags, 1, "40th cannot be a day of month")

	assert.Empty(t, tag.ScanOrdinal("3", ""))
	assert.Empty(t, tag.ScanOrdinal("3rd", "pm"))
}

func TestScanSeparator(t *testing.T) {
	cases := map[string]tag.Kind{
		",":  tag.KindSeparatorComma,
		"/":  tag.KindSeparatorSlashOrDash,
		"-":  tag.KindSeparatorSlashOrDash,
		"at": tag.KindSeparatorAt,
		"@":  tag.KindSeparatorAt,
		"in": tag.KindSeparatorIn,
		"on": tag.KindSeparatorOn,
	}
	for word, want := range cases {
		got := tag.ScanSeparator(word)
		require.NotNil(t, got, "word %q", word)
		assert.Equal(t, want, got.Kind(), "word %q", word)
	}
	assert.Nil(t, tag.ScanSeparator("of"))
}

func TestScanTimeZone(t *testing.T) {
	for _, word := range []string{"est", "pdt", "cst", "mdt", "utc", "gmt", "tzminus0500", "tzplus0100"} {
		assert.NotNil(t, tag.ScanTimeZone(word), "word %q", word)
	}
	assert.Nil(t, tag.ScanTimeZone("banana"))
}
