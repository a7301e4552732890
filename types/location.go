package types

// Location is a resolved entry from the static gazetteer. Key is the
// canonical lowercase identifier used everywhere (cache keys, vote counters).
type Location struct {
	Key        string  `json:"key"`
	Name       string  `json:"name"`
	Country    string  `json:"country"`
	CountryKey string  `json:"countryKey"`
	Lat        float64 `json:"lat,omitempty"`
	Lon        float64 `json:"lon,omitempty"`
	HasCoords  bool    `json:"hasCoords"`
	IsCity     bool    `json:"isCity"`
}
