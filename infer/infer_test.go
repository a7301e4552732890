package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tripsentry/gazetteer"
)

func newInferrer() *Inferrer {
	return &Inferrer{Gazetteer: gazetteer.New()}
}

func TestInferLocationPatterns(t *testing.T) {
	i := newInferrer()

	cases := map[string]string{
		"I'm traveling to Medellin next month":          "medellin",
		"We are planning a trip to Japan in spring":     "japan",
		"Is Bangkok safe right now?":                    "bangkok",
		"Thinking about visiting Paris with the kids":   "paris",
		"What's the safety in Colombia like these days": "colombia",
		"flying to tokyo on friday":                     "tokyo",
	}
	for text, wantKey := range cases {
		loc, ok := i.InferLocation(text)
		require.True(t, ok, "no location found in %q", text)
		assert.Equal(t, wantKey, loc.Key, "text %q", text)
	}
}

func TestInferLocationAlias(t *testing.T) {
	i := newInferrer()

	loc, ok := i.InferLocation("is NYC safe for solo travelers")
	require.True(t, ok)
	assert.Equal(t, "new york", loc.Key)
}

func TestInferLocationTrailingWords(t *testing.T) {
	i := newInferrer()

	// The capture runs past the place name; shorter prefixes still match.
	loc, ok := i.InferLocation("traveling to mexico city next week with friends")
	require.True(t, ok)
	assert.Equal(t, "mexico city", loc.Key)
}

func TestInferLocationNoMatch(t *testing.T) {
	i := newInferrer()

	_, ok := i.InferLocation("what should I pack for a long flight")
	assert.False(t, ok)

	_, ok = i.InferLocation("")
	assert.False(t, ok)
}
