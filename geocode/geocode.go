package geocode

import (
	"context"
	"fmt"
	"log"
	"os"

	"googlemaps.github.io/maps"

	"go-tripsentry/gazetteer"
)

// NewMapsClient builds a Google Maps client from MAPS_CREDENTIALS. Returns
// an error when unconfigured; the backfill is skipped then.
func NewMapsClient() (*maps.Client, error) {
	apiKey := os.Getenv("MAPS_CREDENTIALS")
	if apiKey == "" {
		return nil, fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
	}
	return maps.NewClient(maps.WithAPIKey(apiKey))
}

// GeocodeAddress forward-geocodes an address string.
func GeocodeAddress(client *maps.Client, address string) ([]maps.GeocodingResult, error) {
	req := &maps.GeocodingRequest{
		Address: address,
	}
	return client.Geocode(context.Background(), req)
}

// BackfillGazetteer fills in coordinates for gazetteer cities that ship
// without them. Runs once at startup, before the server takes requests, so
// the table stays immutable while serving.
func BackfillGazetteer(client *maps.Client, g *gazetteer.Gazetteer) {
	for _, key := range g.MissingCoordinates() {
		results, err := GeocodeAddress(client, key)
		if err != nil {
			log.Printf("geocode backfill failed for %s: %v", key, err)
			continue
		}
		if len(results) == 0 {
			log.Printf("geocode backfill: no results for %s", key)
			continue
		}
		loc := results[0].Geometry.Location
		g.SetCoordinates(key, loc.Lat, loc.Lng)
		log.Printf("geocode backfill: %s -> (%f, %f)", key, loc.Lat, loc.Lng)
	}
}
