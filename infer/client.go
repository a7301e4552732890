package infer

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	language "cloud.google.com/go/language/apiv2"
	"google.golang.org/api/option"
)

// InitLanguageClient builds a Cloud Natural Language client from the
// base64-encoded service account in NATURAL_LANGUAGE_CREDENTIALS. Returns
// an error when unconfigured; the caller runs regex-only inference then.
func InitLanguageClient() (*language.Client, error) {
	encodedCreds := os.Getenv("NATURAL_LANGUAGE_CREDENTIALS")
	if encodedCreds == "" {
		return nil, fmt.Errorf("NATURAL_LANGUAGE_CREDENTIALS not set")
	}

	creds, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("decode natural language credentials: %w", err)
	}

	opt := option.WithCredentialsJSON(creds)
	client, err := language.NewClient(context.Background(), opt)
	if err != nil {
		return nil, fmt.Errorf("create natural language client: %w", err)
	}
	return client, nil
}
