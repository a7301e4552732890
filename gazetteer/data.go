package gazetteer

// Static tables. Entries are registered in a fixed order so substring
// matching stays deterministic (first match wins).

type cityEntry struct {
	Key        string
	Name       string
	CountryKey string
	Lat        float64
	Lon        float64
	HasCoords  bool
}

type countryEntry struct {
	Key  string
	Name string
}

var countryEntries = []countryEntry{
	{"colombia", "Colombia"},
	{"mexico", "Mexico"},
	{"brazil", "Brazil"},
	{"peru", "Peru"},
	{"argentina", "Argentina"},
	{"chile", "Chile"},
	{"ecuador", "Ecuador"},
	{"united states", "United States"},
	{"canada", "Canada"},
	{"united kingdom", "United Kingdom"},
	{"france", "France"},
	{"spain", "Spain"},
	{"portugal", "Portugal"},
	{"italy", "Italy"},
	{"germany", "Germany"},
	{"netherlands", "Netherlands"},
	{"greece", "Greece"},
	{"turkey", "Turkey"},
	{"ukraine", "Ukraine"},
	{"egypt", "Egypt"},
	{"morocco", "Morocco"},
	{"south africa", "South Africa"},
	{"kenya", "Kenya"},
	{"nigeria", "Nigeria"},
	{"israel", "Israel"},
	{"united arab emirates", "United Arab Emirates"},
	{"india", "India"},
	{"thailand", "Thailand"},
	{"vietnam", "Vietnam"},
	{"indonesia", "Indonesia"},
	{"philippines", "Philippines"},
	{"japan", "Japan"},
	{"south korea", "South Korea"},
	{"china", "China"},
	{"australia", "Australia"},
	{"new zealand", "New Zealand"},
	{"myanmar", "Myanmar"},
	{"haiti", "Haiti"},
	{"venezuela", "Venezuela"},
	{"russia", "Russia"},
}

var cityEntries = []cityEntry{
	{"medellin", "Medellín", "colombia", 6.2442, -75.5812, true},
	{"bogota", "Bogotá", "colombia", 4.711, -74.0721, true},
	{"cartagena", "Cartagena", "colombia", 10.391, -75.4794, true},
	{"cali", "Cali", "colombia", 3.4516, -76.532, true},
	{"mexico city", "Mexico City", "mexico", 19.4326, -99.1332, true},
	{"cancun", "Cancún", "mexico", 21.1619, -86.8515, true},
	{"tulum", "Tulum", "mexico", 20.2114, -87.4654, true},
	{"guadalajara", "Guadalajara", "mexico", 20.6597, -103.3496, true},
	{"rio de janeiro", "Rio de Janeiro", "brazil", -22.9068, -43.1729, true},
	{"sao paulo", "São Paulo", "brazil", -23.5505, -46.6333, true},
	{"lima", "Lima", "peru", -12.0464, -77.0428, true},
	{"cusco", "Cusco", "peru", -13.5319, -71.9675, true},
	{"buenos aires", "Buenos Aires", "argentina", -34.6037, -58.3816, true},
	{"santiago", "Santiago", "chile", -33.4489, -70.6693, true},
	{"quito", "Quito", "ecuador", -0.1807, -78.4678, true},
	{"new york", "New York", "united states", 40.7128, -74.006, true},
	{"los angeles", "Los Angeles", "united states", 34.0522, -118.2437, true},
	{"miami", "Miami", "united states", 25.7617, -80.1918, true},
	{"london", "London", "united kingdom", 51.5074, -0.1278, true},
	{"paris", "Paris", "france", 48.8566, 2.3522, true},
	{"barcelona", "Barcelona", "spain", 41.3851, 2.1734, true},
	{"madrid", "Madrid", "spain", 40.4168, -3.7038, true},
	{"lisbon", "Lisbon", "portugal", 38.7223, -9.1393, true},
	{"rome", "Rome", "italy", 41.9028, 12.4964, true},
	{"berlin", "Berlin", "germany", 52.52, 13.405, true},
	{"amsterdam", "Amsterdam", "netherlands", 52.3676, 4.9041, true},
	{"athens", "Athens", "greece", 37.9838, 23.7275, true},
	{"istanbul", "Istanbul", "turkey", 41.0082, 28.9784, true},
	{"kyiv", "Kyiv", "ukraine", 50.4501, 30.5234, true},
	{"cairo", "Cairo", "egypt", 30.0444, 31.2357, true},
	{"marrakech", "Marrakech", "morocco", 31.6295, -7.9811, true},
	{"cape town", "Cape Town", "south africa", -33.9249, 18.4241, true},
	{"nairobi", "Nairobi", "kenya", -1.2921, 36.8219, true},
	{"lagos", "Lagos", "nigeria", 6.5244, 3.3792, true},
	{"tel aviv", "Tel Aviv", "israel", 32.0853, 34.7818, true},
	{"dubai", "Dubai", "united arab emirates", 25.2048, 55.2708, true},
	{"delhi", "Delhi", "india", 28.7041, 77.1025, true},
	{"mumbai", "Mumbai", "india", 19.076, 72.8777, true},
	{"bangkok", "Bangkok", "thailand", 13.7563, 100.5018, true},
	{"chiang mai", "Chiang Mai", "thailand", 18.7883, 98.9853, true},
	{"hanoi", "Hanoi", "vietnam", 21.0278, 105.8342, true},
	{"ho chi minh city", "Ho Chi Minh City", "vietnam", 10.8231, 106.6297, true},
	{"bali", "Bali", "indonesia", -8.3405, 115.092, true},
	{"manila", "Manila", "philippines", 14.5995, 120.9842, true},
	{"tokyo", "Tokyo", "japan", 35.6762, 139.6503, true},
	{"kyoto", "Kyoto", "japan", 35.0116, 135.7681, true},
	{"osaka", "Osaka", "japan", 34.6937, 135.5023, true},
	{"seoul", "Seoul", "south korea", 37.5665, 126.978, true},
	{"shanghai", "Shanghai", "china", 31.2304, 121.4737, true},
	{"sydney", "Sydney", "australia", -33.8688, 151.2093, true},
	{"auckland", "Auckland", "new zealand", 0, 0, false},
	{"port-au-prince", "Port-au-Prince", "haiti", 18.5944, -72.3074, true},
}

// Alias table: alternate spellings and nicknames mapped to canonical keys.
var aliases = map[string]string{
	"nyc":           "new york",
	"new york city": "new york",
	"la":            "los angeles",
	"cdmx":          "mexico city",
	"df":            "mexico city",
	"rio":           "rio de janeiro",
	"saigon":        "ho chi minh city",
	"bsas":          "buenos aires",
	"kiev":          "kyiv",
	"bombay":        "mumbai",
	"usa":           "united states",
	"us":            "united states",
	"america":       "united states",
	"uk":            "united kingdom",
	"england":       "united kingdom",
	"uae":           "united arab emirates",
	"burma":         "myanmar",
	"holland":       "netherlands",
}
