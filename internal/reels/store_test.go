package reels

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(n int) []Reel {
	out := make([]Reel, n)
	for i := range out {
		out[i] = Reel{ID: string(rune('a' + i))}
	}
	return out
}

func TestStore_ReplaceNotifiesCount(t *testing.T) {
	s := NewStore()
	var counts []int
	s.Subscribe(func(n int) { counts = append(counts, n) })

	s.Replace(sample(3))
	s.Replace(nil)

	assert.Equal(t, []int{3, 0}, counts)
	assert.Equal(t, 0, s.Count())
}

func TestStore_ReplaceCopiesInput(t *testing.T) {
	s := NewStore()
	in := sample(2)
	s.Replace(in)
	in[0].ID = "mutated"

	r, ok := s.At(0)
	require.True(t, ok)
	assert.Equal(t, "a", r.ID)
}

func TestStore_AtBounds(t *testing.T) {
	s := NewStore()
	s.Replace(sample(2))

	_, ok := s.At(-1)
	assert.False(t, ok)
	_, ok = s.At(2)
	assert.False(t, ok)
	r, ok := s.At(1)
	assert.True(t, ok)
	assert.Equal(t, "b", r.ID)
}

func TestStore_RequestLifecycle(t *testing.T) {
	s := NewStore()
	assert.False(t, s.HasSearched())
	assert.Equal(t, StatusIdle, s.Status())

	s.BeginRequest("natgeo")
	assert.True(t, s.Loading())
	assert.Equal(t, "natgeo", s.Username())

	s.Complete(nil)
	assert.Equal(t, StatusLoaded, s.Status())
	assert.NoError(t, s.Err())
	assert.Equal(t, 0, s.Count())

	s.BeginRequest("natgeo")
	s.Complete(sample(2))
	boom := errors.New("boom")
	s.BeginRequest("other")
	s.Fail(boom)
	assert.Equal(t, StatusFailed, s.Status())
	assert.ErrorIs(t, s.Err(), boom)
	assert.Equal(t, 0, s.Count(), "failed fetch leaves an empty collection")
}

func TestReel_HasLongCaption(t *testing.T) {
	assert.False(t, Reel{Caption: strings.Repeat("x", 150)}.HasLongCaption())
	assert.True(t, Reel{Caption: strings.Repeat("x", 151)}.HasLongCaption())
	// Multi-byte runes count once.
	assert.False(t, Reel{Caption: strings.Repeat("é", 150)}.HasLongCaption())
	assert.False(t, Reel{}.HasLongCaption())
}

func TestReel_HasViews(t *testing.T) {
	zero, some := int64(0), int64(12)
	assert.False(t, Reel{}.HasViews())
	assert.False(t, Reel{Views: &zero}.HasViews())
	assert.True(t, Reel{Views: &some}.HasViews())
}
