// Package social samples recent public posts mentioning a location from the
// Bluesky API. Presentation-only: nothing here feeds the composite score.
package social

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bluesky-social/indigo/xrpc"
)

const (
	publicAPIHost = "https://public.api.bsky.app"
	searchMethod  = "app.bsky.feed.searchPosts"
)

// Post is the trimmed-down view the widget renders.
type Post struct {
	Author    string `json:"author"`
	Handle    string `json:"handle"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
	LikeCount int    `json:"likeCount"`
}

type searchResponse struct {
	Posts []struct {
		Author struct {
			DisplayName string `json:"displayName"`
			Handle      string `json:"handle"`
		} `json:"author"`
		Record struct {
			Text      string `json:"text"`
			CreatedAt string `json:"createdAt"`
		} `json:"record"`
		LikeCount int `json:"likeCount"`
	} `json:"posts"`
}

// FetchRecentPosts searches the public endpoint for posts mentioning the
// location. Unauthenticated; failures surface as errors for the handler to
// degrade.
func FetchRecentPosts(ctx context.Context, location string, limit int) ([]Post, error) {
	client := &xrpc.Client{
		Client:    &http.Client{Timeout: 10 * time.Second},
		Host:      publicAPIHost,
		UserAgent: nil,
	}

	if limit <= 0 || limit > 25 {
		limit = 10
	}
	params := map[string]interface{}{
		"q":     location,
		"limit": limit,
		"sort":  "latest",
	}

	var out searchResponse
	if err := client.Do(ctx, xrpc.Query, "json", searchMethod, params, nil, &out); err != nil {
		return nil, fmt.Errorf("bluesky search: %w", err)
	}

	posts := make([]Post, 0, len(out.Posts))
	for _, p := range out.Posts {
		posts = append(posts, Post{
			Author:    p.Author.DisplayName,
			Handle:    p.Author.Handle,
			Text:      p.Record.Text,
			CreatedAt: p.Record.CreatedAt,
			LikeCount: p.LikeCount,
		})
	}
	return posts, nil
}
