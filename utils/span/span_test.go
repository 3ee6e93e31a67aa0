package span_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/musicmunky/chronic/utils/span"
)

func TestWidth(t *testing.T) {
	begin := time.Date(2006, time.August, 16, 0, 0, 0, 0, time.Local)
	s := span.New(begin, begin.AddDate(0, 0, 1))

	assert.Equal(t, int64(60*60*24), s.Width())
	assert.True(t, s.End().After(s.Begin()))
}

func TestInclude(t *testing.T) {
	begin := time.Date(2006, time.August, 16, 0, 0, 0, 0, time.Local)
	s := span.New(begin, begin.AddDate(0, 0, 1))

	assert.True(t, s.Include(begin))
	assert.True(t, s.Include(begin.Add(12*time.Hour)))
	assert.False(t, s.Include(s.End()), "half-open interval excludes the end")
	assert.False(t, s.Include(begin.Add(-time.Second)))
}

func TestCover(t *testing.T) {
	begin := time.Date(2006, time.August, 16, 0, 0, 0, 0, time.Local)
	s := span.New(begin, begin.AddDate(0, 0, 1))

	assert.True(t, s.Cover(s.End()), "closed interval includes the end")
	assert.False(t, s.Cover(s.End().Add(time.Second)))
}

func TestShift(t *testing.T) {
	begin := time.Date(2006, time.August, 16, 14, 0, 0, 0, time.Local)
	s := span.New(begin, begin.Add(time.Second))

	shifted := s.Shift(3 * 60 * 60)
	assert.Equal(t, begin.Add(3*time.Hour), shifted.Begin())
	assert.Equal(t, s.Width(), shifted.Width())

	back := shifted.Shift(-3 * 60 * 60)
	assert.Equal(t, s.Begin(), back.Begin())
}
