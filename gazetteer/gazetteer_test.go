package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCity(t *testing.T) {
	g := New()

	loc, ok := g.Resolve("medellin")
	require.True(t, ok)
	assert.Equal(t, "medellin", loc.Key)
	assert.Equal(t, "Colombia", loc.Country)
	assert.Equal(t, "colombia", loc.CountryKey)
	assert.True(t, loc.IsCity)
	assert.True(t, loc.HasCoords)
}

func TestResolveCountry(t *testing.T) {
	g := New()

	loc, ok := g.Resolve("Japan")
	require.True(t, ok)
	assert.Equal(t, "japan", loc.Key)
	assert.Equal(t, "Japan", loc.Country)
	assert.False(t, loc.IsCity)
}

func TestResolveNormalization(t *testing.T) {
	g := New()

	a, ok := g.Resolve("  ToKyO  ")
	require.True(t, ok)
	b, ok := g.Resolve("tokyo")
	require.True(t, ok)
	assert.Equal(t, b, a)
}

func TestResolveAliases(t *testing.T) {
	g := New()

	nyc, ok := g.Resolve("NYC")
	require.True(t, ok)
	full, ok := g.Resolve("new york")
	require.True(t, ok)
	assert.Equal(t, full, nyc, "alias and canonical form resolve identically")

	kyiv, ok := g.Resolve("kiev")
	require.True(t, ok)
	assert.Equal(t, "kyiv", kyiv.Key)

	usa, ok := g.Resolve("usa")
	require.True(t, ok)
	assert.Equal(t, "united states", usa.Key)
}

func TestResolveHyphenatedSlug(t *testing.T) {
	g := New()

	// gov.uk-style URL slugs hyphenate multi-word country names.
	cases := map[string]string{
		"south-korea":    "south korea",
		"new-zealand":    "new zealand",
		"united-kingdom": "united kingdom",
		"south-africa":   "south africa",
	}
	for slug, wantKey := range cases {
		loc, ok := g.Resolve(slug)
		require.True(t, ok, "slug %q did not resolve", slug)
		assert.Equal(t, wantKey, loc.Key, "slug %q", slug)
	}

	// Hyphenated city slugs work the same way.
	loc, ok := g.Resolve("mexico-city")
	require.True(t, ok)
	assert.Equal(t, "mexico city", loc.Key)
}

func TestResolveIdempotent(t *testing.T) {
	g := New()

	loc, ok := g.Resolve("paris")
	require.True(t, ok)

	// Resolving an already-canonical key returns the same location.
	again, ok := g.Resolve(loc.Key)
	require.True(t, ok)
	assert.Equal(t, loc, again)
}

func TestResolveSubstringFallback(t *testing.T) {
	g := New()

	loc, ok := g.Resolve("zealand")
	require.True(t, ok)
	assert.Equal(t, "new zealand", loc.Key)
	assert.False(t, loc.IsCity)
}

func TestResolveUnknown(t *testing.T) {
	g := New()

	_, ok := g.Resolve("atlantis")
	assert.False(t, ok)

	_, ok = g.Resolve("")
	assert.False(t, ok)

	_, ok = g.Resolve("   ")
	assert.False(t, ok)
}

func TestNearby(t *testing.T) {
	g := New()

	loc, ok := g.Resolve("paris")
	require.True(t, ok)

	nearby := g.Nearby(loc, 3)
	require.Len(t, nearby, 3)
	for _, n := range nearby {
		assert.NotEqual(t, loc.Key, n.Key, "origin excluded from its own neighbors")
		assert.True(t, n.HasCoords)
	}

	// London is much closer to Paris than any city outside Europe.
	keys := []string{nearby[0].Key, nearby[1].Key, nearby[2].Key}
	assert.Contains(t, keys, "london")
}

func TestNearbyNoCoords(t *testing.T) {
	g := New()

	loc, ok := g.Resolve("colombia")
	require.True(t, ok)
	assert.False(t, loc.HasCoords)
	assert.Nil(t, g.Nearby(loc, 3))
}

func TestCoordinateBackfill(t *testing.T) {
	g := New()

	missing := g.MissingCoordinates()
	require.Contains(t, missing, "auckland")

	require.True(t, g.SetCoordinates("auckland", -36.8485, 174.7633))
	assert.NotContains(t, g.MissingCoordinates(), "auckland")

	loc, ok := g.Resolve("auckland")
	require.True(t, ok)
	assert.True(t, loc.HasCoords)
	assert.InDelta(t, -36.8485, loc.Lat, 1e-9)

	assert.False(t, g.SetCoordinates("no-such-city", 0, 0))
}

func TestHaversineDistance(t *testing.T) {
	// Paris to London is roughly 344 km.
	d := haversineDistance(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 344, d, 10)

	assert.InDelta(t, 0, haversineDistance(10, 20, 10, 20), 1e-9)
}
