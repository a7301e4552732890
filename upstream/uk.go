package upstream

import (
	"fmt"
	"strings"

	"go-tripsentry/types"
)

// Countries whose gov.uk slug differs from the naive transform.
var ukSlugOverrides = map[string]string{
	"united states": "usa",
	"myanmar":       "myanmar-burma",
	"ivory coast":   "cote-d-ivoire",
	"south korea":   "south-korea",
	"cape verde":    "cape-verde",
	"the gambia":    "gambia",
	"vatican city":  "vatican-city",
}

// CountrySlug maps a country display name to its gov.uk URL slug: override
// table first, then lowercase, strip periods and commas, and collapse
// whitespace runs to single hyphens.
func CountrySlug(country string) string {
	key := strings.ToLower(strings.TrimSpace(country))
	if slug, ok := ukSlugOverrides[key]; ok {
		return slug
	}
	key = strings.ReplaceAll(key, ".", "")
	key = strings.ReplaceAll(key, ",", "")
	return strings.Join(strings.Fields(key), "-")
}

type ukContentResponse struct {
	Details struct {
		AlertStatus       []string `json:"alert_status"`
		ChangeDescription string   `json:"change_description"`
	} `json:"details"`
	PublicUpdatedAt string `json:"public_updated_at"`
	BasePath        string `json:"base_path"`
}

// FetchUKAdvisory queries the gov.uk content API for one country. An empty
// alert_status list is a valid "no special alerts" result, not a failure.
func (c *Client) FetchUKAdvisory(country string) (*types.SecondaryAdvisoryRecord, error) {
	slug := CountrySlug(country)
	url := fmt.Sprintf("%s/%s", c.UKContentBase, slug)

	var body ukContentResponse
	if err := c.getJSON(url, &body); err != nil {
		return nil, fmt.Errorf("uk advisory for %q: %w", country, err)
	}

	alertStatus := body.Details.AlertStatus
	if alertStatus == nil {
		alertStatus = []string{}
	}

	pageURL := "https://www.gov.uk/foreign-travel-advice/" + slug
	if body.BasePath != "" {
		pageURL = "https://www.gov.uk" + body.BasePath
	}

	return &types.SecondaryAdvisoryRecord{
		Country:           country,
		AlertStatus:       alertStatus,
		ChangeDescription: body.Details.ChangeDescription,
		LastUpdated:       body.PublicUpdatedAt,
		URL:               pageURL,
	}, nil
}
