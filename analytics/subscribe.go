package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// SubscribeRequest is forwarded to the email-subscription upstream.
type SubscribeRequest struct {
	Email     string `json:"email"`
	TopicID   string `json:"topicId,omitempty"`
	TopicName string `json:"topicName,omitempty"`
}

var subscribeClient = &http.Client{Timeout: 10 * time.Second}

// Subscribe proxies a subscription to the upstream configured in
// SUBSCRIBE_API_URL. An "already subscribed" rejection is treated as a
// successful idempotent outcome.
func Subscribe(req SubscribeRequest) error {
	apiURL := os.Getenv("SUBSCRIBE_API_URL")
	if apiURL == "" {
		return fmt.Errorf("SUBSCRIBE_API_URL not configured")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if key := os.Getenv("SUBSCRIBE_API_KEY"); key != "" {
		httpReq.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := subscribeClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("subscribe upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(strings.ToLower(string(body)), "already subscribed") {
		return nil
	}
	return fmt.Errorf("subscribe upstream: status %s", resp.Status)
}
