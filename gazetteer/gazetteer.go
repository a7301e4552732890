package gazetteer

import (
	"math"
	"sort"
	"strings"
	"sync"

	"go-tripsentry/types"
)

const earthRadiusKM = 6371.0

// Gazetteer holds the static city/country tables. Lookups are read-only;
// the only mutation is the startup coordinate backfill behind the mutex.
type Gazetteer struct {
	mu        sync.RWMutex
	cities    []cityEntry
	countries []countryEntry
	cityIdx   map[string]int
	aliasSub  map[string]string
}

// New builds a Gazetteer from the static tables.
func New() *Gazetteer {
	g := &Gazetteer{
		cities:    append([]cityEntry(nil), cityEntries...),
		countries: countryEntries,
		cityIdx:   make(map[string]int, len(cityEntries)),
		aliasSub:  aliases,
	}
	for i, c := range g.cities {
		g.cityIdx[c.Key] = i
	}
	return g
}

// Resolve maps a free-form query to a Location. Normalization is trim +
// lowercase, then alias substitution, then exact city, exact country, and
// finally the first country whose key or display name contains the query.
// Hyphenated queries (URL slugs like "south-korea") retry with hyphens as
// spaces when the literal form misses.
func (g *Gazetteer) Resolve(query string) (types.Location, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return types.Location{}, false
	}

	if loc, ok := g.resolveKey(q); ok {
		return loc, true
	}
	if strings.Contains(q, "-") {
		return g.resolveKey(strings.ReplaceAll(q, "-", " "))
	}
	return types.Location{}, false
}

func (g *Gazetteer) resolveKey(q string) (types.Location, bool) {
	if canonical, ok := g.aliasSub[q]; ok {
		q = canonical
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if i, ok := g.cityIdx[q]; ok {
		return g.cityLocation(g.cities[i]), true
	}

	for _, c := range g.countries {
		if c.Key == q {
			return countryLocation(c), true
		}
	}

	// Substring fallback over countries, first match in table order.
	for _, c := range g.countries {
		if strings.Contains(c.Key, q) || strings.Contains(strings.ToLower(c.Name), q) {
			return countryLocation(c), true
		}
	}

	return types.Location{}, false
}

// CountryName returns the display name for a country key.
func (g *Gazetteer) CountryName(key string) (string, bool) {
	for _, c := range g.countries {
		if c.Key == key {
			return c.Name, true
		}
	}
	return "", false
}

// Nearby returns up to n gazetteer cities closest to loc, nearest first.
// Cities without coordinates are skipped; loc itself is excluded.
func (g *Gazetteer) Nearby(loc types.Location, n int) []types.Location {
	if !loc.HasCoords || n <= 0 {
		return nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	type candidate struct {
		loc  types.Location
		dist float64
	}
	var candidates []candidate
	for _, c := range g.cities {
		if !c.HasCoords || c.Key == loc.Key {
			continue
		}
		d := haversineDistance(loc.Lat, loc.Lon, c.Lat, c.Lon)
		candidates = append(candidates, candidate{g.cityLocation(c), d})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].loc.Key < candidates[j].loc.Key
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	out := make([]types.Location, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.loc)
	}
	return out
}

// MissingCoordinates lists city keys that have no coordinates yet, for the
// startup geocode backfill.
func (g *Gazetteer) MissingCoordinates() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var keys []string
	for _, c := range g.cities {
		if !c.HasCoords {
			keys = append(keys, c.Key)
		}
	}
	return keys
}

// SetCoordinates fills in coordinates for a city. Only the startup backfill
// calls this; the table is immutable once the server is taking requests.
func (g *Gazetteer) SetCoordinates(key string, lat, lon float64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.cityIdx[key]
	if !ok {
		return false
	}
	g.cities[i].Lat = lat
	g.cities[i].Lon = lon
	g.cities[i].HasCoords = true
	return true
}

func (g *Gazetteer) cityLocation(c cityEntry) types.Location {
	country := c.CountryKey
	for _, ce := range g.countries {
		if ce.Key == c.CountryKey {
			country = ce.Name
			break
		}
	}
	return types.Location{
		Key:        c.Key,
		Name:       c.Name,
		Country:    country,
		CountryKey: c.CountryKey,
		Lat:        c.Lat,
		Lon:        c.Lon,
		HasCoords:  c.HasCoords,
		IsCity:     true,
	}
}

func countryLocation(c countryEntry) types.Location {
	return types.Location{
		Key:        c.Key,
		Name:       c.Name,
		Country:    c.Name,
		CountryKey: c.Key,
	}
}

// haversineDistance returns the great-circle distance in kilometers.
func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180.0)*math.Cos(lat2*math.Pi/180.0)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKM * c
}
