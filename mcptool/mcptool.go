// Package mcptool exposes the travel-safety check as a single MCP tool
// served over stdio.
package mcptool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"go-tripsentry/aggregator"
	"go-tripsentry/gazetteer"
	"go-tripsentry/types"
)

// The static list of sources the tool reports consulting.
var dataSourceNames = []string{
	"US State Department Travel Advisories",
	"UK FCDO Foreign Travel Advice",
	"ACLED Conflict Data",
	"GDELT News Tone",
	"Community Sentiment",
}

type Deps struct {
	Gazetteer  *gazetteer.Gazetteer
	Aggregator *aggregator.Aggregator
}

// NewServer builds the MCP server with the one tool registered.
func NewServer(deps Deps) *server.MCPServer {
	s := server.NewMCPServer("tripsentry", "1.0.0")

	tool := mcp.NewTool("check_travel_safety",
		mcp.WithDescription("Check travel-safety data for a destination: government advisories, conflict statistics, news tone and a composite 1-100 safety score. All fields are optional; call with no arguments to let the user pick a destination."),
		mcp.WithString("location", mcp.Description("Free-form destination, city or country")),
		mcp.WithString("country", mcp.Description("Country name, if known")),
		mcp.WithString("city", mcp.Description("City name, if known")),
		mcp.WithBoolean("include_news", mcp.Description("Include news-sentiment data (default true)")),
		mcp.WithBoolean("include_conflict", mcp.Description("Include conflict-event data (default true)")),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := handleCheck(deps, request.Params.Arguments)
		payload, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("encode tool result: %w", err)
		}
		return mcp.NewToolResultText(string(payload)), nil
	})

	return s
}

// ServeStdio blocks serving the MCP session on stdin/stdout.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

type checkSummary struct {
	Location    string   `json:"location,omitempty"`
	Country     string   `json:"country,omitempty"`
	City        string   `json:"city,omitempty"`
	QueryType   string   `json:"queryType"`
	DataSources []string `json:"dataSources"`
}

type checkResult struct {
	Inputs     map[string]interface{}     `json:"inputs"`
	Summary    checkSummary               `json:"summary"`
	Assessment *types.CompositeAssessment `json:"assessment,omitempty"`
	Error      string                     `json:"error,omitempty"`
	FollowUps  []string                   `json:"followUps"`
}

// handleCheck resolves whichever of location/city/country was provided
// (most specific first) and assesses it. An empty call is valid and asks
// the user to pick.
func handleCheck(deps Deps, args map[string]interface{}) checkResult {
	location := stringArg(args, "location")
	country := stringArg(args, "country")
	city := stringArg(args, "city")

	result := checkResult{
		Inputs: map[string]interface{}{
			"location":         location,
			"country":          country,
			"city":             city,
			"include_news":     boolArg(args, "include_news", true),
			"include_conflict": boolArg(args, "include_conflict", true),
		},
		Summary: checkSummary{DataSources: dataSourceNames},
	}

	query := location
	if query == "" {
		query = city
	}
	if query == "" {
		query = country
	}

	if query == "" {
		result.Summary.QueryType = "open"
		result.FollowUps = []string{
			"Which destination would you like a safety check for?",
			"You can ask about a city (e.g. Medellín) or a whole country.",
		}
		return result
	}

	loc, ok := deps.Gazetteer.Resolve(query)
	if !ok {
		result.Summary.QueryType = "unresolved"
		result.Error = fmt.Sprintf("no match for %q in the gazetteer", query)
		result.FollowUps = []string{
			"Try the nearest major city or the country name.",
		}
		return result
	}

	assessment := deps.Aggregator.Assess(loc, aggregator.Options{
		IncludeConflict: boolArg(args, "include_conflict", true),
		IncludeNews:     boolArg(args, "include_news", true),
	})

	result.Summary.Location = loc.Name
	result.Summary.Country = loc.Country
	if loc.IsCity {
		result.Summary.City = loc.Name
		result.Summary.QueryType = "city"
	} else {
		result.Summary.QueryType = "country"
	}
	result.Assessment = &assessment
	result.FollowUps = followUpsFor(assessment)
	return result
}

func followUpsFor(a types.CompositeAssessment) []string {
	followUps := []string{
		fmt.Sprintf("Want a breakdown of what drives the %d/100 score for %s?", a.Score, a.Location.Name),
		"Should I compare this with another destination?",
	}
	if len(a.MissingSources) > 0 {
		followUps = append(followUps, "Some sources were unavailable; want me to retry them?")
	}
	if len(a.Nearby) > 0 {
		followUps = append(followUps, fmt.Sprintf("Interested in nearby destinations like %s?", a.Nearby[0].Name))
	}
	return followUps
}

func stringArg(args map[string]interface{}, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func boolArg(args map[string]interface{}, key string, fallback bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return fallback
}
