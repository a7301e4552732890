package community

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const sentimentCollection = "communitySentiment"

// FirestoreStore persists one document per location key. Selected in main
// when Firebase credentials are configured.
type FirestoreStore struct {
	Client *firestore.Client
}

// InitFirestore builds a Firestore client from the base64-encoded service
// account in FIREBASE_CREDENTIALS.
func InitFirestore() (*firestore.Client, error) {
	encodedCreds := os.Getenv("FIREBASE_CREDENTIALS")
	if encodedCreds == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS not set")
	}
	creds, err := base64.StdEncoding.DecodeString(encodedCreds)
	if err != nil {
		return nil, fmt.Errorf("decode firebase credentials: %w", err)
	}

	opt := option.WithCredentialsJSON(creds)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Firestore(context.Background())
	if err != nil {
		return nil, fmt.Errorf("get firestore client: %w", err)
	}
	return client, nil
}

func (f *FirestoreStore) Load() (Table, error) {
	ctx := context.Background()
	table := Table{}

	iter := f.Client.Collection(sentimentCollection).Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			// A fresh project with no collection yet is an empty table, not
			// a startup failure.
			if status.Code(err) == codes.NotFound {
				return Table{}, nil
			}
			return nil, fmt.Errorf("iterate %s: %w", sentimentCollection, err)
		}

		var c Counters
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("decode doc %s: %w", doc.Ref.ID, err)
		}
		table[doc.Ref.ID] = c
	}

	return table, nil
}

func (f *FirestoreStore) Save(t Table) error {
	ctx := context.Background()
	for key, c := range t {
		_, err := f.Client.Collection(sentimentCollection).Doc(key).Set(ctx, c)
		if err != nil {
			return fmt.Errorf("write doc %s: %w", key, err)
		}
	}
	return nil
}
